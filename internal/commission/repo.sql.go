package commission

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for the commission module.
type Repository interface {
	Upsert(ctx context.Context, kind string, fee float64) (*Fee, bool, error)
}

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Upsert creates the record of the given kind or updates its fee in a
// single atomic statement. Two concurrent calls can never both create:
// the unique constraint on kind turns the second insert into an update.
// The xmax trick distinguishes a fresh insert (wasCreated) from an
// update of an existing row.
func (r *PGRepository) Upsert(ctx context.Context, kind string, fee float64) (*Fee, bool, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO commission_fees (id, kind, fee, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (kind) DO UPDATE SET fee = EXCLUDED.fee, updated_at = now()
		RETURNING id, kind, fee, created_at, updated_at, (xmax = 0) AS created
	`, uuid.New(), kind, fee)

	var (
		record  Fee
		created bool
	)
	if err := row.Scan(&record.ID, &record.Kind, &record.Fee, &record.CreatedAt, &record.UpdatedAt, &created); err != nil {
		return nil, false, err
	}
	return &record, created, nil
}

var _ Repository = (*PGRepository)(nil)
