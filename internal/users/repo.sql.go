package users

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentiva/rentiva-admin/internal/platform/db"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Repository defines persistence operations for the users module.
type Repository interface {
	ListUsers(ctx context.Context, q shared.PageQuery) ([]User, int, error)
}

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListUsers returns one page of users plus the live total count. The
// total is re-counted on every call rather than cached, so TotalPages
// always reflects the collection size at response time. Ordering is by
// creation time with id as tiebreaker to keep pages stable. Count and
// page run inside one snapshot so they never disagree.
func (r *PGRepository) ListUsers(ctx context.Context, q shared.PageQuery) ([]User, int, error) {
	var (
		items []User
		total int
	)
	err := db.WithSnapshot(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			SELECT id, email, first_name, last_name, role, created_at
			FROM users
			ORDER BY created_at, id
			LIMIT $1 OFFSET $2
		`, q.Limit, q.Offset())
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var u User
			if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt); err != nil {
				return err
			}
			items = append(items, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

var _ Repository = (*PGRepository)(nil)
