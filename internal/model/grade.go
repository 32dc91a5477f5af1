package model

import "time"

// GradeRosterStudent is one grade roster row. GradeValue is the most
// recently timestamped record matching the requested type and label, or
// nil when no grade has been saved yet.
type GradeRosterStudent struct {
	StudentID  int      `json:"student_id"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      *string  `json:"email"`
	GradeValue *float64 `json:"grade_value"`
}

// GradeRoster is the response for GET /grades/roster.
type GradeRoster struct {
	OfferingID   int                  `json:"offering_id"`
	CourseID     int                  `json:"course_id"`
	SemesterName string               `json:"semester_name"`
	Students     []GradeRosterStudent `json:"students"`
}

// GradeHistoryEntry is one record of a student's append-only grade
// history for a type+label key, newest first.
type GradeHistoryEntry struct {
	GradeValue float64   `json:"grade_value"`
	GradedAt   time.Time `json:"graded_at"`
}

// GradeItem is one entry of a batch grade save. Rows with a zero student
// id or a nil value are skipped, not rejected.
type GradeItem struct {
	StudentID  int      `json:"student_id"`
	GradeValue *float64 `json:"grade_value"`
}

// SaveGradesRequest is the payload for POST /grades/save. An empty label
// is canonicalized to null before it reaches storage.
type SaveGradesRequest struct {
	LectureID int         `json:"lecture_id" binding:"required"`
	Type      string      `json:"type" binding:"omitempty,max=50"`
	Label     *string     `json:"label" binding:"omitempty,max=100"`
	GradedAt  *string     `json:"graded_at" binding:"omitempty,datetime=2006-01-02"`
	Items     []GradeItem `json:"items" binding:"required,min=1"`
}
