package users

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rentiva/rentiva-admin/internal/platform/httpx"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Handler manages user listing endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers user routes. Callers are expected to mount this
// inside the admin-protected group.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/manage-users", h.list)
}

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type listResponse struct {
	Users       []userDTO `json:"users"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
	TotalUsers  int       `json:"totalUsers"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q, err := shared.ParsePageQuery(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logger.Error("list users failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Error fetching users")
		return
	}

	items := make([]userDTO, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, userDTO{
			ID:        u.ID.String(),
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	httpx.JSON(w, http.StatusOK, listResponse{
		Users:       items,
		TotalPages:  page.Meta.TotalPages,
		CurrentPage: page.Meta.Page,
		TotalUsers:  page.Meta.Total,
	})
}
