package commission

import (
	"context"
	"fmt"

	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Service wraps commission fee configuration rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert validates and stores the global commission fee, reporting
// whether the record was created or an existing one updated. Validation
// happens before any store access; an invalid fee never writes.
func (s *Service) Upsert(ctx context.Context, fee float64) (*Fee, bool, error) {
	if fee <= 0 {
		return nil, false, fmt.Errorf("%w: fee must be greater than zero", shared.ErrValidation)
	}
	record, created, err := s.repo.Upsert(ctx, KindCommissionFee, fee)
	if err != nil {
		return nil, false, fmt.Errorf("upsert commission fee: %w", err)
	}
	return record, created, nil
}
