package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rentiva/rentiva-admin/internal/platform/httpx"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type principalSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type loginResponse struct {
	Token string           `json:"token"`
	User  principalSummary `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, principal, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrNotAdmin) || errors.Is(err, shared.ErrInvalidCredentials) {
			httpx.RespondError(w, err)
			return
		}
		h.logger.Error("login failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, httpx.GenericServerMessage)
		return
	}

	httpx.JSON(w, http.StatusOK, loginResponse{
		Token: token,
		User: principalSummary{
			ID:        principal.ID.String(),
			FirstName: principal.FirstName,
			LastName:  principal.LastName,
			Email:     principal.Email,
		},
	})
}
