package properties

import (
	"context"

	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Service wraps property listing rules.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Page is one window of the properties collection with pagination
// metadata and the status sub-counts.
type Page struct {
	Items  []Property
	Meta   shared.Pagination
	Counts StatusCounts
}

// List returns the requested page of properties.
func (s *Service) List(ctx context.Context, q shared.PageQuery) (*Page, error) {
	items, total, counts, err := s.repo.ListProperties(ctx, q)
	if err != nil {
		return nil, err
	}
	return &Page{
		Items:  items,
		Meta:   shared.NewPagination(q.Page, q.Limit, total),
		Counts: counts,
	}, nil
}
