package shared

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

const (
	// DefaultPage is used when the client omits the page parameter.
	DefaultPage = 1
	// DefaultLimit is used when the client omits the limit parameter.
	DefaultLimit = 10
	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
)

// PageQuery is a normalized pagination request. Page and Limit are
// always positive and Limit never exceeds MaxLimit.
type PageQuery struct {
	Page  int
	Limit int
}

// Offset converts the page number to a row offset.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParsePageQuery reads page and limit from query parameters. Missing
// values fall back to the defaults; non-numeric or non-positive values
// are rejected rather than silently corrected. Limit is clamped to
// MaxLimit.
func ParsePageQuery(values url.Values) (PageQuery, error) {
	q := PageQuery{Page: DefaultPage, Limit: DefaultLimit}
	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return PageQuery{}, fmt.Errorf("%w: page must be a positive integer", ErrValidation)
		}
		q.Page = page
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return PageQuery{}, fmt.Errorf("%w: limit must be a positive integer", ErrValidation)
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		q.Limit = limit
	}
	return q, nil
}

// Pagination contains metadata for paginated listings. Total reflects
// the collection size at query time, never a cached value.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// NewPagination computes pagination metadata.
func NewPagination(page, limit, total int) Pagination {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = DefaultPage
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
