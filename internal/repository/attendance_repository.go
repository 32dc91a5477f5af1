package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

// AttendanceRepository handles attendance records. Batch writes go through
// the record_attendance stored procedure inside a caller-owned transaction.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Roster retrieves every student enrolled in the lecture's offering,
// left-joined with the attendance record for the given date. Enrollment
// status never excludes a student from an attendance roster. is_present
// comes back as 1, 0 or NULL (unmarked).
func (r *AttendanceRepository) Roster(ctx context.Context, lectureID int, date time.Time) ([]model.RosterStudent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT
		   s.student_id,
		   s.first_name,
		   s.last_name,
		   s.email,
		   a.is_present::int,
		   NULL::text AS note
		 FROM lectures l
		 JOIN enrollments e ON e.offering_id = l.offering_id
		 JOIN students s    ON s.student_id = e.student_id
		 LEFT JOIN attendance a
		   ON a.enrollment_id = e.enrollment_id
		  AND a.lecture_id = l.lecture_id
		  AND a.lecture_date = $2
		 WHERE l.lecture_id = $1
		 ORDER BY s.last_name, s.first_name`, lectureID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.RosterStudent
	for rows.Next() {
		var rs model.RosterStudent
		if err := rows.Scan(&rs.StudentID, &rs.FirstName, &rs.LastName,
			&rs.Email, &rs.IsPresent, &rs.Note); err != nil {
			return nil, err
		}
		students = append(students, rs)
	}
	return students, rows.Err()
}

// RecordMark calls the record_attendance procedure on tx. The procedure
// validates that the student is enrolled in the lecture's offering and
// upserts on the (enrollment, lecture, date) key; re-marking overwrites.
func (r *AttendanceRepository) RecordMark(ctx context.Context, tx pgx.Tx, studentID, lectureID int, date time.Time, present bool, actor string) error {
	_, err := tx.Exec(ctx,
		`SELECT record_attendance($1, $2, $3, $4, $5)`,
		studentID, lectureID, date, present, actor)
	return err
}

// AbsenceCount counts the absences a student has accumulated across all
// lectures of one offering. Feeds the absence-policy notifications.
func (r *AttendanceRepository) AbsenceCount(ctx context.Context, studentID, offeringID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM attendance a
		 JOIN enrollments e ON e.enrollment_id = a.enrollment_id
		 WHERE e.student_id = $1 AND e.offering_id = $2 AND NOT a.is_present`,
		studentID, offeringID,
	).Scan(&n)
	return n, err
}
