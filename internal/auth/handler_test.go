package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentiva/rentiva-admin/internal/auth"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

type stubRepo struct {
	byEmail map[string]*auth.Principal
	byID    map[uuid.UUID]*auth.Principal
}

func newStubRepo(principals ...*auth.Principal) *stubRepo {
	repo := &stubRepo{
		byEmail: make(map[string]*auth.Principal),
		byID:    make(map[uuid.UUID]*auth.Principal),
	}
	for _, p := range principals {
		repo.byEmail[p.Email] = p
		repo.byID[p.ID] = p
	}
	return repo
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*auth.Principal, error) {
	if p, ok := s.byEmail[email]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*auth.Principal, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func adminPrincipal(t *testing.T, email, password string) *auth.Principal {
	t.Helper()
	return &auth.Principal{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashPassword(t, password),
		FirstName:    "Ada",
		LastName:     "Okafor",
		Role:         auth.RoleAdmin,
	}
}

func newHandler(repo auth.Repository) (*auth.Handler, *auth.Tokens) {
	tokens := auth.NewTokens([]byte("handler-test-secret"), 15*time.Minute)
	service := auth.NewService(repo, tokens)
	return auth.NewHandler(discardLogger(), service), tokens
}

func postLogin(t *testing.T, handler *auth.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	mux := newRouterWith(handler)
	mux.ServeHTTP(res, req)
	return res
}

func TestLoginSuccess(t *testing.T) {
	admin := adminPrincipal(t, "ops@rentiva.test", "sw0rdfish-long")
	handler, tokens := newHandler(newStubRepo(admin))

	res := postLogin(t, handler, `{"email":"ops@rentiva.test","password":"sw0rdfish-long"}`)
	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID        string `json:"id"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, admin.ID.String(), body.User.ID)
	assert.Equal(t, "Ada", body.User.FirstName)
	assert.Equal(t, "ops@rentiva.test", body.User.Email)

	subject, err := tokens.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, subject)
}

func TestLoginWrongPassword(t *testing.T) {
	admin := adminPrincipal(t, "ops@rentiva.test", "sw0rdfish-long")
	handler, _ := newHandler(newStubRepo(admin))

	res := postLogin(t, handler, `{"email":"ops@rentiva.test","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "Invalid credentials")
}

func TestLoginNonDistinguishability(t *testing.T) {
	// An unknown email and a known non-admin account must produce
	// byte-identical responses.
	tenant := adminPrincipal(t, "tenant@rentiva.test", "sw0rdfish-long")
	tenant.Role = "Tenant"
	handler, _ := newHandler(newStubRepo(tenant))

	unknown := postLogin(t, handler, `{"email":"ghost@rentiva.test","password":"sw0rdfish-long"}`)
	nonAdmin := postLogin(t, handler, `{"email":"tenant@rentiva.test","password":"sw0rdfish-long"}`)

	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, unknown.Code, nonAdmin.Code)
	assert.Equal(t, unknown.Body.String(), nonAdmin.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	handler, _ := newHandler(newStubRepo())

	res := postLogin(t, handler, `{"email":"ops@rentiva.test"}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = postLogin(t, handler, `{not json`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}
