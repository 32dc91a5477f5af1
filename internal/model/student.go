package model

import "time"

// Student is an administrative record; students never log in.
type Student struct {
	ID             int       `json:"student_id"`
	MajorID        *int      `json:"major_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          *string   `json:"email"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	StatusID       int       `json:"status_id"`
}

// StudentRequest is the payload for creating or updating a student.
type StudentRequest struct {
	FirstName      string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string  `json:"last_name" binding:"required,min=1,max=100"`
	Email          *string `json:"email" binding:"omitempty,email"`
	MajorID        *int    `json:"major_id"`
	EnrollmentDate string  `json:"enrollment_date" binding:"required,datetime=2006-01-02"`
	StatusID       int     `json:"status_id" binding:"required"`
}
