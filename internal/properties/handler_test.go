package properties_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentiva/rentiva-admin/internal/properties"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

type stubRepo struct {
	items []properties.Property
	err   error
}

func (s *stubRepo) ListProperties(ctx context.Context, q shared.PageQuery) ([]properties.Property, int, properties.StatusCounts, error) {
	if s.err != nil {
		return nil, 0, properties.StatusCounts{}, s.err
	}
	var counts properties.StatusCounts
	for _, p := range s.items {
		switch p.Status {
		case properties.StatusListed:
			counts.Listed++
		case properties.StatusRented:
			counts.Rented++
		}
	}
	start := q.Offset()
	if start > len(s.items) {
		start = len(s.items)
	}
	end := start + q.Limit
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[start:end], len(s.items), counts, nil
}

func seedProperties(listed, rented, inactive int) []properties.Property {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	var out []properties.Property
	add := func(status string, n int) {
		for i := 0; i < n; i++ {
			out = append(out, properties.Property{
				ID:         uuid.New(),
				Title:      fmt.Sprintf("%s unit %d", status, i),
				Address:    fmt.Sprintf("%d Harbor Lane", len(out)+1),
				Status:     status,
				RentAmount: 1200 + float64(i)*50,
				OwnerID:    uuid.New(),
				CreatedAt:  base.Add(time.Duration(len(out)) * time.Hour),
			})
		}
	}
	add(properties.StatusListed, listed)
	add(properties.StatusRented, rented)
	add(properties.StatusInactive, inactive)
	return out
}

func newRouter(repo properties.Repository) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := properties.NewHandler(logger, properties.NewService(repo))
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

type propertiesListBody struct {
	Properties []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"properties"`
	TotalPages      int    `json:"totalPages"`
	CurrentPage     int    `json:"currentPage"`
	TotalProperties int    `json:"totalProperties"`
	TotalListed     int    `json:"totalListed"`
	TotalRented     int    `json:"totalRented"`
	Message         string `json:"message"`
}

func getProperties(t *testing.T, router chi.Router, query string) propertiesListBody {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/manage-properties"+query, nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
	var body propertiesListBody
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	return body
}

func TestListPropertiesSubCounts(t *testing.T) {
	router := newRouter(&stubRepo{items: seedProperties(7, 4, 2)})

	body := getProperties(t, router, "?limit=5")
	assert.Len(t, body.Properties, 5)
	assert.Equal(t, 13, body.TotalProperties)
	assert.Equal(t, 3, body.TotalPages)
	assert.Equal(t, 7, body.TotalListed)
	assert.Equal(t, 4, body.TotalRented)
	assert.Equal(t, "Properties fetched successfully", body.Message)
}

func TestListPropertiesZeroSubCounts(t *testing.T) {
	// Statuses with no matches report zero rather than being omitted.
	router := newRouter(&stubRepo{items: seedProperties(0, 0, 3)})

	body := getProperties(t, router, "")
	assert.Equal(t, 3, body.TotalProperties)
	assert.Equal(t, 0, body.TotalListed)
	assert.Equal(t, 0, body.TotalRented)
}

func TestListPropertiesStoreFailure(t *testing.T) {
	router := newRouter(&stubRepo{err: fmt.Errorf("timeout")})

	req := httptest.NewRequest(http.MethodGet, "/manage-properties", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), "Error fetching properties")
}

func TestListPropertiesRejectsBadPagination(t *testing.T) {
	router := newRouter(&stubRepo{items: seedProperties(1, 1, 1)})

	req := httptest.NewRequest(http.MethodGet, "/manage-properties?limit=-10", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}
