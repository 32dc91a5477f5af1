package model

// Lookup domains used across the schema.
const (
	DomainLectureDays      = "lecture_days"
	DomainGradeType        = "grade_type"
	DomainEnrollmentStatus = "enrollment_status"
	DomainCourseStatus     = "course_status"
	DomainStudentStatus    = "student_status"
)

// Lookup is a row of the shared enumeration table. The code column is free
// text; for the lecture_days domain it holds one or more weekday names
// separated by commas ("Monday" or "Sunday, Tuesday").
type Lookup struct {
	ID        int    `json:"lookup_id"`
	Domain    string `json:"domain"`
	Code      string `json:"code"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// LookupOption is the slim id/name pair returned to picklists.
type LookupOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
