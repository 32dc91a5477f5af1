package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

// SemesterRepository handles semester data access.
type SemesterRepository struct {
	pool *pgxpool.Pool
}

// NewSemesterRepository creates a new SemesterRepository.
func NewSemesterRepository(pool *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{pool: pool}
}

// List retrieves all semesters, newest first.
func (r *SemesterRepository) List(ctx context.Context) ([]model.Semester, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT semester_id, semester_name, start_date, end_date
		 FROM semesters ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []model.Semester
	for rows.Next() {
		var s model.Semester
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate); err != nil {
			return nil, err
		}
		semesters = append(semesters, s)
	}
	return semesters, rows.Err()
}
