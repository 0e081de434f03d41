package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentiva/rentiva-admin/internal/platform/db"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Repository defines persistence operations for the payments module.
type Repository interface {
	ListPayments(ctx context.Context, q shared.PageQuery) ([]RentPayment, int, error)
}

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListPayments returns one page of rent payments with tenant, landlord,
// and lease projections joined in. The joins are read-only; referenced
// records are never mutated here.
func (r *PGRepository) ListPayments(ctx context.Context, q shared.PageQuery) ([]RentPayment, int, error) {
	var (
		items []RentPayment
		total int
	)
	err := db.WithSnapshot(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM rent_payments`).Scan(&total); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			SELECT p.id, p.amount, p.status, p.paid_at, p.created_at,
			       t.id, t.first_name, t.last_name, t.email,
			       l.id, l.first_name, l.last_name, l.email,
			       ls.id, ls.property_id
			FROM rent_payments p
			LEFT JOIN users t ON t.id = p.tenant_id
			LEFT JOIN users l ON l.id = p.landlord_id
			LEFT JOIN leases ls ON ls.id = p.lease_id
			ORDER BY p.created_at, p.id
			LIMIT $1 OFFSET $2
		`, q.Limit, q.Offset())
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				p                                          RentPayment
				paidAt                                     pgtype.Timestamptz
				tenantID, landlordID                       pgtype.UUID
				tenantFirst, tenantLast, tenantEmail       pgtype.Text
				landlordFirst, landlordLast, landlordEmail pgtype.Text
				leaseID, leasePropertyID                   pgtype.UUID
			)
			err := rows.Scan(
				&p.ID, &p.Amount, &p.Status, &paidAt, &p.CreatedAt,
				&tenantID, &tenantFirst, &tenantLast, &tenantEmail,
				&landlordID, &landlordFirst, &landlordLast, &landlordEmail,
				&leaseID, &leasePropertyID,
			)
			if err != nil {
				return err
			}

			if paidAt.Valid {
				t := paidAt.Time
				p.PaidAt = &t
			}
			if tenantID.Valid {
				p.Tenant = &PartyRef{
					ID:        uuid.UUID(tenantID.Bytes),
					FirstName: tenantFirst.String,
					LastName:  tenantLast.String,
					Email:     tenantEmail.String,
				}
			}
			if landlordID.Valid {
				p.Landlord = &PartyRef{
					ID:        uuid.UUID(landlordID.Bytes),
					FirstName: landlordFirst.String,
					LastName:  landlordLast.String,
					Email:     landlordEmail.String,
				}
			}
			if leaseID.Valid {
				p.Lease = &LeaseRef{
					ID:         uuid.UUID(leaseID.Bytes),
					PropertyID: uuid.UUID(leasePropertyID.Bytes),
				}
			}
			items = append(items, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

var _ Repository = (*PGRepository)(nil)
