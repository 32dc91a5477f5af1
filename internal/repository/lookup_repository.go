package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

// LookupRepository handles the shared enumeration table.
type LookupRepository struct {
	pool *pgxpool.Pool
}

// NewLookupRepository creates a new LookupRepository.
func NewLookupRepository(pool *pgxpool.Pool) *LookupRepository {
	return &LookupRepository{pool: pool}
}

// ActiveByDomain retrieves the active entries of a domain as picklist options.
func (r *LookupRepository) ActiveByDomain(ctx context.Context, domain string) ([]model.LookupOption, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT lookup_id, code
		 FROM lookup
		 WHERE domain = $1 AND is_active
		 ORDER BY sort_order, lookup_id`, domain)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []model.LookupOption
	for rows.Next() {
		var o model.LookupOption
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

// FindIDByCode resolves a code within a domain, case-insensitively.
// Returns 0 with no error when the code is unknown.
func (r *LookupRepository) FindIDByCode(ctx context.Context, domain, code string) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`SELECT lookup_id FROM lookup
		 WHERE domain = $1 AND LOWER(code) = LOWER($2)
		 LIMIT 1`, domain, code,
	).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// IsInDomain reports whether a lookup id belongs to the given domain.
func (r *LookupRepository) IsInDomain(ctx context.Context, id int, domain string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM lookup WHERE lookup_id = $1 AND domain = $2)`,
		id, domain,
	).Scan(&ok)
	return ok, err
}

// IDsByCodes resolves several codes of a domain at once. Codes that do not
// exist are simply absent from the result.
func (r *LookupRepository) IDsByCodes(ctx context.Context, domain string, codes []string) ([]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT lookup_id FROM lookup
		 WHERE domain = $1 AND code = ANY($2)`, domain, codes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
