package model

// Offering is a specific section of a course taught in a specific semester.
// Enrolled is derived from the enrollments table, never stored.
type Offering struct {
	ID           int    `json:"offering_id"`
	CourseID     int    `json:"course_id"`
	CourseName   string `json:"course_name"`
	Section      string `json:"section"`
	Capacity     int    `json:"capacity"`
	SemesterID   int    `json:"semester_id"`
	SemesterName string `json:"semester_name"`
	Enrolled     int    `json:"enrolled"`
}

// CreateOfferingRequest is the payload for creating an offering.
type CreateOfferingRequest struct {
	CourseID   int    `json:"course_id" binding:"required"`
	SemesterID int    `json:"semester_id" binding:"required"`
	Section    string `json:"section" binding:"required,min=1,max=20"`
	Capacity   *int   `json:"capacity" binding:"omitempty,min=1"`
}

// UpdateOfferingRequest carries a partial update; nil fields keep the
// stored value.
type UpdateOfferingRequest struct {
	Section  *string `json:"section" binding:"omitempty,min=1,max=20"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
}
