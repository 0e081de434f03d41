package properties

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentiva/rentiva-admin/internal/platform/db"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Repository defines persistence operations for the properties module.
type Repository interface {
	ListProperties(ctx context.Context, q shared.PageQuery) ([]Property, int, StatusCounts, error)
}

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListProperties returns one page of properties, the live total, and
// the listed/rented sub-counts. Counts come from a single aggregate
// query, and count plus page share a snapshot so all figures reflect
// the same instant.
func (r *PGRepository) ListProperties(ctx context.Context, q shared.PageQuery) ([]Property, int, StatusCounts, error) {
	var (
		items  []Property
		total  int
		counts StatusCounts
	)
	err := db.WithSnapshot(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			SELECT COUNT(*),
			       COUNT(*) FILTER (WHERE status = $1),
			       COUNT(*) FILTER (WHERE status = $2)
			FROM properties
		`, StatusListed, StatusRented).Scan(&total, &counts.Listed, &counts.Rented)
		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			SELECT id, title, address, status, rent_amount, owner_id, created_at
			FROM properties
			ORDER BY created_at, id
			LIMIT $1 OFFSET $2
		`, q.Limit, q.Offset())
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p Property
			if err := rows.Scan(&p.ID, &p.Title, &p.Address, &p.Status, &p.RentAmount, &p.OwnerID, &p.CreatedAt); err != nil {
				return err
			}
			items = append(items, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, StatusCounts{}, err
	}
	return items, total, counts, nil
}

var _ Repository = (*PGRepository)(nil)
