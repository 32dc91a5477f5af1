package model

// Enrollment links a student to an offering. StatusID references the
// enrollment_status lookup domain and may be NULL for legacy rows.
type Enrollment struct {
	ID         int  `json:"enrollment_id"`
	StudentID  int  `json:"student_id"`
	OfferingID int  `json:"offering_id"`
	StatusID   *int `json:"status_id"`
}

// EnrollmentRow is the joined listing shape (student + course + semester).
type EnrollmentRow struct {
	EnrollmentID int    `json:"enrollment_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CourseName   string `json:"course_name"`
	SemesterName string `json:"semester_name"`
}

// CreateEnrollmentRequest is the payload for enrolling a student.
type CreateEnrollmentRequest struct {
	StudentID  int  `json:"student_id" binding:"required"`
	OfferingID int  `json:"offering_id" binding:"required"`
	StatusID   *int `json:"status_id"`
}
