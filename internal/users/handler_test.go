package users_test

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

	"github.com/rentiva/rentiva-admin/internal/shared"
	"github.com/rentiva/rentiva-admin/internal/users"
)

type stubRepo struct {
	users []users.User
	err   error
}

func (s *stubRepo) ListUsers(ctx context.Context, q shared.PageQuery) ([]users.User, int, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	start := q.Offset()
	if start > len(s.users) {
		start = len(s.users)
	}
	end := start + q.Limit
	if end > len(s.users) {
		end = len(s.users)
	}
	return s.users[start:end], len(s.users), nil
}

func seedUsers(n int) []users.User {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]users.User, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, users.User{
			ID:        uuid.New(),
			Email:     fmt.Sprintf("user%02d@rentiva.test", i),
			FirstName: "Test",
			LastName:  fmt.Sprintf("User%02d", i),
			Role:      "Tenant",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func newRouter(repo users.Repository) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := users.NewHandler(logger, users.NewService(repo))
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func getUsers(t *testing.T, router chi.Router, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/manage-users"+query, nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

type usersListBody struct {
	Users []struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"users"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	TotalUsers  int `json:"totalUsers"`
}

func TestListUsersLastPartialPage(t *testing.T) {
	seeded := seedUsers(25)
	router := newRouter(&stubRepo{users: seeded})

	res := getUsers(t, router, "?page=3&limit=10")
	require.Equal(t, http.StatusOK, res.Code)

	var body usersListBody
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Len(t, body.Users, 5)
	assert.Equal(t, 3, body.TotalPages)
	assert.Equal(t, 3, body.CurrentPage)
	assert.Equal(t, 25, body.TotalUsers)
	assert.Equal(t, seeded[20].Email, body.Users[0].Email)
	assert.Equal(t, seeded[24].Email, body.Users[4].Email)
}

func TestListUsersDefaults(t *testing.T) {
	router := newRouter(&stubRepo{users: seedUsers(25)})

	res := getUsers(t, router, "")
	require.Equal(t, http.StatusOK, res.Code)

	var body usersListBody
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Len(t, body.Users, 10)
	assert.Equal(t, 1, body.CurrentPage)
	assert.Equal(t, 3, body.TotalPages)
}

func TestListUsersCoversCollectionExactlyOnce(t *testing.T) {
	seeded := seedUsers(25)
	router := newRouter(&stubRepo{users: seeded})

	seen := make(map[string]int)
	for page := 1; page <= 3; page++ {
		res := getUsers(t, router, fmt.Sprintf("?page=%d&limit=10", page))
		require.Equal(t, http.StatusOK, res.Code)
		var body usersListBody
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		for _, u := range body.Users {
			seen[u.ID]++
		}
	}

	assert.Len(t, seen, 25)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "user %s returned %d times", id, count)
	}
}

func TestListUsersRejectsBadPagination(t *testing.T) {
	router := newRouter(&stubRepo{users: seedUsers(3)})

	for _, query := range []string{"?limit=0", "?limit=-1", "?page=0", "?page=x"} {
		res := getUsers(t, router, query)
		assert.Equalf(t, http.StatusBadRequest, res.Code, "query %s", query)
	}
}

func TestListUsersEmptyCollection(t *testing.T) {
	router := newRouter(&stubRepo{})

	res := getUsers(t, router, "")
	require.Equal(t, http.StatusOK, res.Code)

	var body usersListBody
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.NotNil(t, body.Users)
	assert.Empty(t, body.Users)
	assert.Equal(t, 0, body.TotalPages)
	assert.Equal(t, 0, body.TotalUsers)
}

func TestListUsersStoreFailure(t *testing.T) {
	router := newRouter(&stubRepo{err: fmt.Errorf("connection refused")})

	res := getUsers(t, router, "")
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), "Error fetching users")
	assert.NotContains(t, res.Body.String(), "connection refused")
}
