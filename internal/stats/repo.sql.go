package stats

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for the stats module.
type Repository interface {
	CollectOverview(ctx context.Context) (*Overview, error)
}

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// CollectOverview computes all dashboard aggregates in one round trip.
func (r *PGRepository) CollectOverview(ctx context.Context) (*Overview, error) {
	var overview Overview
	err := r.pool.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM users),
		       (SELECT COUNT(*) FROM properties),
		       (SELECT COUNT(*) FROM properties WHERE status = 'listed'),
		       (SELECT COUNT(*) FROM properties WHERE status = 'rented'),
		       (SELECT COUNT(*) FROM rent_payments),
		       (SELECT COALESCE(SUM(amount), 0) FROM rent_payments WHERE status = 'paid')
	`).Scan(
		&overview.TotalUsers,
		&overview.TotalProperties,
		&overview.ListedProperties,
		&overview.RentedProperties,
		&overview.TotalPayments,
		&overview.CollectedAmount,
	)
	if err != nil {
		return nil, err
	}
	overview.GeneratedAt = time.Now().UTC()
	return &overview, nil
}

var _ Repository = (*PGRepository)(nil)
