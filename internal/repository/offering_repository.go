package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

// ErrOfferingNotFound is returned when an offering id does not resolve.
var ErrOfferingNotFound = errors.New("offering not found")

// OfferingRepository handles course offering data access.
type OfferingRepository struct {
	pool *pgxpool.Pool
}

// NewOfferingRepository creates a new OfferingRepository.
func NewOfferingRepository(pool *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{pool: pool}
}

// List retrieves offerings with their derived enrolled counts, optionally
// filtered by semester and/or course.
func (r *OfferingRepository) List(ctx context.Context, semesterID, courseID *int) ([]model.Offering, error) {
	query := `
		SELECT
		  co.offering_id,
		  c.course_id, c.course_name,
		  co.section,
		  co.capacity,
		  se.semester_id, se.semester_name,
		  COALESCE(enr.cnt, 0) AS enrolled
		FROM course_offerings co
		JOIN courses   c  ON c.course_id = co.course_id
		JOIN semesters se ON se.semester_id = co.semester_id
		LEFT JOIN (
		  SELECT offering_id, COUNT(*) AS cnt
		  FROM enrollments
		  GROUP BY offering_id
		) enr ON enr.offering_id = co.offering_id`

	var args []interface{}
	argIdx := 1
	where := ""
	if semesterID != nil {
		where += " WHERE co.semester_id = $" + strconv.Itoa(argIdx)
		args = append(args, *semesterID)
		argIdx++
	}
	if courseID != nil {
		if where == "" {
			where += " WHERE"
		} else {
			where += " AND"
		}
		where += " co.course_id = $" + strconv.Itoa(argIdx)
		args = append(args, *courseID)
	}

	query += where + " ORDER BY se.start_date DESC, c.course_name, co.section"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offerings []model.Offering
	for rows.Next() {
		var o model.Offering
		if err := rows.Scan(&o.ID, &o.CourseID, &o.CourseName, &o.Section,
			&o.Capacity, &o.SemesterID, &o.SemesterName, &o.Enrolled); err != nil {
			return nil, err
		}
		offerings = append(offerings, o)
	}
	return offerings, rows.Err()
}

// Create inserts a new offering.
func (r *OfferingRepository) Create(ctx context.Context, courseID, semesterID int, section string, capacity int) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO course_offerings (course_id, semester_id, section, capacity)
		 VALUES ($1, $2, $3, $4)
		 RETURNING offering_id`,
		courseID, semesterID, section, capacity,
	).Scan(&id)
	return id, err
}

// Update applies a partial update; nil fields keep the stored values.
func (r *OfferingRepository) Update(ctx context.Context, id int, section *string, capacity *int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE course_offerings
		 SET section = COALESCE($1, section),
		     capacity = COALESCE($2, capacity)
		 WHERE offering_id = $3`,
		section, capacity, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOfferingNotFound
	}
	return nil
}

// Delete removes an offering. Enrollments and lectures referencing it
// block the delete via foreign keys.
func (r *OfferingRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM course_offerings WHERE offering_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOfferingNotFound
	}
	return nil
}
