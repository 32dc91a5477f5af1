package model

import "time"

// Semester bounds every offering; a lecture only occurs on dates inside
// its owning semester's [start_date, end_date] range.
type Semester struct {
	ID        int       `json:"semester_id"`
	Name      string    `json:"semester_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
