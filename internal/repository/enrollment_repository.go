package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

// ErrDuplicateEnrollment signals the student is already enrolled in the
// offering.
var ErrDuplicateEnrollment = errors.New("student already enrolled in this offering")

// EnrollmentRepository handles enrollment data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// List retrieves all enrollments joined with student, course and semester.
func (r *EnrollmentRepository) List(ctx context.Context) ([]model.EnrollmentRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.enrollment_id, s.first_name, s.last_name, c.course_name, se.semester_name
		 FROM enrollments e
		 JOIN students s          ON s.student_id = e.student_id
		 JOIN course_offerings co ON co.offering_id = e.offering_id
		 JOIN courses c           ON c.course_id = co.course_id
		 JOIN semesters se        ON se.semester_id = co.semester_id
		 ORDER BY e.enrollment_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.EnrollmentRow
	for rows.Next() {
		var e model.EnrollmentRow
		if err := rows.Scan(&e.EnrollmentID, &e.FirstName, &e.LastName,
			&e.CourseName, &e.SemesterName); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// Create enrolls a student in an offering.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO enrollments (student_id, offering_id, status_id)
		 VALUES ($1, $2, $3)
		 RETURNING enrollment_id`,
		e.StudentID, e.OfferingID, e.StatusID,
	).Scan(&e.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEnrollment
		}
		return err
	}
	return nil
}
