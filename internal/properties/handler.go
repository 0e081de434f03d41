package properties

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rentiva/rentiva-admin/internal/platform/httpx"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Handler manages property listing endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers property routes inside the admin-protected group.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/manage-properties", h.list)
}

type propertyDTO struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Address    string    `json:"address"`
	Status     string    `json:"status"`
	RentAmount float64   `json:"rentAmount"`
	OwnerID    string    `json:"ownerId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type listResponse struct {
	Properties      []propertyDTO `json:"properties"`
	TotalPages      int           `json:"totalPages"`
	CurrentPage     int           `json:"currentPage"`
	TotalProperties int           `json:"totalProperties"`
	TotalListed     int           `json:"totalListed"`
	TotalRented     int           `json:"totalRented"`
	Message         string        `json:"message"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q, err := shared.ParsePageQuery(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logger.Error("list properties failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Error fetching properties")
		return
	}

	items := make([]propertyDTO, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, propertyDTO{
			ID:         p.ID.String(),
			Title:      p.Title,
			Address:    p.Address,
			Status:     p.Status,
			RentAmount: p.RentAmount,
			OwnerID:    p.OwnerID.String(),
			CreatedAt:  p.CreatedAt,
		})
	}

	httpx.JSON(w, http.StatusOK, listResponse{
		Properties:      items,
		TotalPages:      page.Meta.TotalPages,
		CurrentPage:     page.Meta.Page,
		TotalProperties: page.Meta.Total,
		TotalListed:     page.Counts.Listed,
		TotalRented:     page.Counts.Rented,
		Message:         "Properties fetched successfully",
	})
}
