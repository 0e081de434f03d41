package payments

import (
	"context"

	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Service wraps payment listing rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Page is one window of the payments collection with pagination metadata.
type Page struct {
	Items []RentPayment
	Meta  shared.Pagination
}

// List returns the requested page of rent payments.
func (s *Service) List(ctx context.Context, q shared.PageQuery) (*Page, error) {
	items, total, err := s.repo.ListPayments(ctx, q)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Meta: shared.NewPagination(q.Page, q.Limit, total)}, nil
}
