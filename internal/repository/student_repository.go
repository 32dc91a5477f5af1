package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

var (
	// ErrDuplicateEmail signals a unique-constraint hit on students.email.
	ErrDuplicateEmail = errors.New("student with this email already exists")
	// ErrStudentNotFound is returned when a student id does not resolve.
	ErrStudentNotFound = errors.New("student not found")
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// List retrieves all students, newest first.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT student_id, major_id, first_name, last_name, email,
		        enrollment_date, status_id
		 FROM students ORDER BY student_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.MajorID, &s.FirstName, &s.LastName,
			&s.Email, &s.EnrollmentDate, &s.StatusID); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT student_id, major_id, first_name, last_name, email,
		        enrollment_date, status_id
		 FROM students WHERE student_id = $1`, id,
	).Scan(&s.ID, &s.MajorID, &s.FirstName, &s.LastName, &s.Email,
		&s.EnrollmentDate, &s.StatusID)
	if err == pgx.ErrNoRows {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new student, stamping the creating actor.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student, actor string) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students
		   (first_name, last_name, email, major_id, enrollment_date, created_by, status_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING student_id`,
		s.FirstName, s.LastName, s.Email, s.MajorID, s.EnrollmentDate, actor, s.StatusID,
	).Scan(&s.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Update modifies a student and stamps the modifying actor.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student, actor string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students
		 SET first_name = $1, last_name = $2, email = $3, major_id = $4,
		     enrollment_date = $5, status_id = $6, modified_at = $7, modified_by = $8
		 WHERE student_id = $9`,
		s.FirstName, s.LastName, s.Email, s.MajorID, s.EnrollmentDate, s.StatusID,
		time.Now(), actor, s.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// Delete removes a student by ID.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}
