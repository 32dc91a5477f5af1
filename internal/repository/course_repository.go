package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

// ErrCourseNotFound is returned when a course id does not resolve.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// List retrieves all courses, newest first.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT course_id, course_name, department, max_absence_allowed,
		        absence_warning_threshold, course_status_id
		 FROM courses ORDER BY course_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Department, &c.MaxAbsenceAllowed,
			&c.AbsenceWarningThreshold, &c.StatusID); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetByID retrieves a course by its ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT course_id, course_name, department, max_absence_allowed,
		        absence_warning_threshold, course_status_id
		 FROM courses WHERE course_id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Department, &c.MaxAbsenceAllowed,
		&c.AbsenceWarningThreshold, &c.StatusID)
	if err == pgx.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses
		   (course_name, department, max_absence_allowed, absence_warning_threshold, course_status_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING course_id`,
		c.Name, c.Department, c.MaxAbsenceAllowed, c.AbsenceWarningThreshold, c.StatusID,
	).Scan(&c.ID)
}

// Update modifies an existing course. Returns ErrCourseNotFound when the
// id matches no row.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses
		 SET course_name = $1, department = $2, max_absence_allowed = $3,
		     absence_warning_threshold = $4, course_status_id = $5
		 WHERE course_id = $6`,
		c.Name, c.Department, c.MaxAbsenceAllowed, c.AbsenceWarningThreshold, c.StatusID, c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}
	return nil
}

// Delete removes a course by its ID. Foreign keys on offerings and
// enrollments block deletion of referenced courses; the handler maps the
// 23503 error to a conflict response.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}
	return nil
}
