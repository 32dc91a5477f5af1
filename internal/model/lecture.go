package model

// Lecture is a recurring weekly time slot belonging to an offering, not a
// single calendar event. Which weekdays it meets on is encoded by the
// lecture_days lookup entry it references.
type Lecture struct {
	ID            int     `json:"lecture_id"`
	OfferingID    int     `json:"offering_id"`
	LectureDaysID int     `json:"lecture_days_id"`
	Days          string  `json:"lecture_days"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Room          *string `json:"room"`
}

// LectureOccurrence is one lecture that meets on a requested calendar date.
type LectureOccurrence struct {
	LectureID  int     `json:"lecture_id"`
	OfferingID int     `json:"offering_id"`
	CourseName string  `json:"course_name"`
	Section    string  `json:"section"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Room       *string `json:"room"`
}

// LectureCandidate is an occurrence candidate whose owning semester covers
// the requested date; the day-of-week decision still has to be made against
// DayCode by the schedule package.
type LectureCandidate struct {
	LectureOccurrence
	DayCode string `json:"-"`
}

// LectureContext resolves a lecture to its offering, course and semester.
type LectureContext struct {
	OfferingID   int    `json:"offering_id"`
	CourseID     int    `json:"course_id"`
	SemesterName string `json:"semester_name"`
}

// CreateLectureRequest is the payload for creating a lecture slot.
type CreateLectureRequest struct {
	OfferingID    int     `json:"offering_id" binding:"required"`
	LectureDaysID int     `json:"lecture_days_id" binding:"required"`
	StartTime     string  `json:"start_time" binding:"required"`
	EndTime       string  `json:"end_time" binding:"required"`
	Room          *string `json:"room"`
}

// LecturePicklists bundles the dropdown sources for the lecture admin page.
type LecturePicklists struct {
	Semesters []LookupOption `json:"semesters"`
	Courses   []LookupOption `json:"courses"`
	Offerings []LookupOption `json:"offerings"`
	Days      []LookupOption `json:"days"`
}
