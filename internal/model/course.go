package model

// Course is a catalog entry. The absence policy columns drive the
// warning notifications enqueued after attendance batches.
type Course struct {
	ID                      int    `json:"course_id"`
	Name                    string `json:"course_name"`
	Department              string `json:"department"`
	MaxAbsenceAllowed       int    `json:"max_absence_allowed"`
	AbsenceWarningThreshold int    `json:"absence_warning_threshold"`
	StatusID                int    `json:"course_status_id"`
}

// CourseRequest is the payload for creating or updating a course.
type CourseRequest struct {
	Name                    string `json:"course_name" binding:"required,min=1,max=200"`
	Department              string `json:"department" binding:"omitempty,max=100"`
	MaxAbsenceAllowed       int    `json:"max_absence_allowed" binding:"omitempty,min=0"`
	AbsenceWarningThreshold int    `json:"absence_warning_threshold" binding:"omitempty,min=0"`
	StatusID                int    `json:"course_status_id" binding:"required"`
}
