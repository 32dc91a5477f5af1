package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation   ErrCode = "VALIDATION_ERROR"
	ErrInvalidID    ErrCode = "INVALID_ID"
	ErrDateRequired ErrCode = "DATE_REQUIRED"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal          ErrCode = "INTERNAL_ERROR"
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Missing required fields"
	case ErrInvalidID:
		return "Invalid id"
	case ErrDateRequired:
		return "date is required (YYYY-MM-DD)"
	case ErrNotFound:
		return "Not found"
	case ErrConflict:
		return "Already exists"
	case ErrDependencyExists:
		return "Unable to delete because it is referenced by other records (offerings, enrollments, etc.)."
	case ErrInternal:
		return "Server error"
	case ErrRateLimitExceeded:
		return "Too many requests, please try again later"
	default:
		return "Server error"
	}
}
