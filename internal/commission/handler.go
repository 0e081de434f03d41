package commission

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rentiva/rentiva-admin/internal/platform/httpx"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Handler manages commission fee endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers commission routes inside the admin-protected group.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/commission", h.upsert)
}

type upsertRequest struct {
	// Pointer keeps "absent" distinguishable from an explicit zero.
	Fee *float64 `json:"fee" validate:"required,gt=0"`
}

type feeDTO struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Fee       float64   `json:"fee"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type upsertResponse struct {
	Message string `json:"message"`
	Data    feeDTO `json:"data"`
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid or missing fee value")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid or missing fee value")
		return
	}

	record, created, err := h.service.Upsert(r.Context(), *req.Fee)
	if err != nil {
		if errors.Is(err, shared.ErrValidation) {
			httpx.Message(w, http.StatusBadRequest, "Invalid or missing fee value")
			return
		}
		h.logger.Error("upsert commission fee failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Failed to add or update commission fee")
		return
	}

	status := http.StatusOK
	message := "Commission fee updated successfully"
	if created {
		status = http.StatusCreated
		message = "Commission fee added successfully"
	}
	httpx.JSON(w, status, upsertResponse{
		Message: message,
		Data: feeDTO{
			ID:        record.ID.String(),
			Kind:      record.Kind,
			Fee:       record.Fee,
			CreatedAt: record.CreatedAt,
			UpdatedAt: record.UpdatedAt,
		},
	})
}
