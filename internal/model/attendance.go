package model

// RosterStudent is one attendance roster row. IsPresent is a ternary:
// 1 present, 0 absent, nil unmarked — never defaulted to either boolean.
// Note is always null; the attendance table has no note column but the
// API shape stays stable.
type RosterStudent struct {
	StudentID int     `json:"student_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	IsPresent *int    `json:"is_present"`
	Note      *string `json:"note"`
}

// AttendanceRoster is the response for GET /attendance/roster.
type AttendanceRoster struct {
	OfferingID int             `json:"offering_id"`
	Students   []RosterStudent `json:"students"`
}

// AttendanceMark is one entry of a batch mark request. Rows missing a
// student id or a present flag are skipped, not rejected.
type AttendanceMark struct {
	StudentID int     `json:"student_id"`
	IsPresent *bool   `json:"is_present"`
	Note      *string `json:"note"`
}

// MarkAttendanceRequest is the payload for POST /attendance/mark.
type MarkAttendanceRequest struct {
	LectureID   int              `json:"lecture_id" binding:"required"`
	LectureDate string           `json:"lecture_date" binding:"required,datetime=2006-01-02"`
	Marks       []AttendanceMark `json:"marks" binding:"required"`
	Actor       string           `json:"actor"`
}
