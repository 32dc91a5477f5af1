package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

// GradeRepository handles grade records. Grades are append-only: saving a
// new value for a key the student already has rewrites the latest matching
// record via the update_grade procedure, while a first save inserts a
// fresh timestamped row via add_grade.
type GradeRepository struct {
	pool *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(pool *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{pool: pool}
}

// RosterWithGrades retrieves the students of an offering with the most
// recently timestamped grade matching the requested type and label.
// Label comparison is NULL-safe: a nil label matches only records with no
// label. When allowedStatusIDs is empty no status filter is applied, so a
// misconfigured lookup table never hides every student; rows with a NULL
// status always pass.
func (r *GradeRepository) RosterWithGrades(ctx context.Context, offeringID int, gradeTypeID int, label *string, allowedStatusIDs []int) ([]model.GradeRosterStudent, error) {
	query := `
		SELECT
		  s.student_id,
		  s.first_name,
		  s.last_name,
		  s.email,
		  (
		    SELECT g.grade_value
		    FROM grades g
		    WHERE g.enrollment_id = e.enrollment_id`
	args := []interface{}{offeringID, label}
	if gradeTypeID > 0 {
		query += `
		      AND g.grade_type_id = $3`
		args = append(args, gradeTypeID)
	}
	query += `
		      AND g.grade_label IS NOT DISTINCT FROM $2
		    ORDER BY g.graded_at DESC
		    LIMIT 1
		  ) AS grade_value
		FROM enrollments e
		JOIN students s ON s.student_id = e.student_id
		WHERE e.offering_id = $1`
	if len(allowedStatusIDs) > 0 {
		query += `
		  AND (e.status_id = ANY($` + strconv.Itoa(len(args)+1) + `) OR e.status_id IS NULL)`
		args = append(args, allowedStatusIDs)
	}
	query += `
		ORDER BY s.last_name, s.first_name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.GradeRosterStudent
	for rows.Next() {
		var gs model.GradeRosterStudent
		if err := rows.Scan(&gs.StudentID, &gs.FirstName, &gs.LastName,
			&gs.Email, &gs.GradeValue); err != nil {
			return nil, err
		}
		students = append(students, gs)
	}
	return students, rows.Err()
}

// UpdateGrade calls the update_grade procedure on tx and returns how many
// records it rewrote. Zero means no matching grade exists yet and the
// caller should fall back to AddGrade. The count is a structured result;
// control flow never depends on parsing a message string.
func (r *GradeRepository) UpdateGrade(ctx context.Context, tx pgx.Tx, studentID, courseID int, semesterName, gradeType string, value float64, gradedAt *time.Time, label *string) (int, error) {
	var updated int
	err := tx.QueryRow(ctx,
		`SELECT update_grade($1, $2, $3, $4, $5, $6, $7)`,
		studentID, courseID, semesterName, gradeType, value, gradedAt, label,
	).Scan(&updated)
	return updated, err
}

// AddGrade calls the add_grade procedure on tx, inserting a new
// timestamped record.
func (r *GradeRepository) AddGrade(ctx context.Context, tx pgx.Tx, studentID, courseID int, semesterName, gradeType string, value float64, gradedAt *time.Time, label *string) error {
	_, err := tx.Exec(ctx,
		`SELECT add_grade($1, $2, $3, $4, $5, $6, $7)`,
		studentID, courseID, semesterName, gradeType, value, gradedAt, label)
	return err
}

// History lists every grade record of one student in an offering for a
// type+label key, newest first. The roster shows only the latest record;
// this is the audit trail behind it.
func (r *GradeRepository) History(ctx context.Context, studentID, offeringID, gradeTypeID int, label *string) ([]model.GradeHistoryEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT g.grade_value, g.graded_at
		 FROM grades g
		 JOIN enrollments e ON e.enrollment_id = g.enrollment_id
		 WHERE e.student_id = $1
		   AND e.offering_id = $2
		   AND g.grade_type_id = $3
		   AND g.grade_label IS NOT DISTINCT FROM $4
		 ORDER BY g.graded_at DESC, g.grade_id DESC`,
		studentID, offeringID, gradeTypeID, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.GradeHistoryEntry
	for rows.Next() {
		var e model.GradeHistoryEntry
		if err := rows.Scan(&e.GradeValue, &e.GradedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
