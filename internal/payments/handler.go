package payments

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rentiva/rentiva-admin/internal/platform/httpx"
	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Handler manages rent payment listing endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers payment routes inside the admin-protected group.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/manage-payments", h.list)
}

type partyDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type leaseDTO struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
}

type paymentDTO struct {
	ID        string     `json:"id"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	Tenant    *partyDTO  `json:"tenant,omitempty"`
	Landlord  *partyDTO  `json:"landlord,omitempty"`
	Lease     *leaseDTO  `json:"lease,omitempty"`
}

type listResponse struct {
	Payments      []paymentDTO `json:"payments"`
	TotalPages    int          `json:"totalPages"`
	CurrentPage   int          `json:"currentPage"`
	TotalPayments int          `json:"totalPayments"`
}

func toPartyDTO(p *PartyRef) *partyDTO {
	if p == nil {
		return nil
	}
	return &partyDTO{
		ID:        p.ID.String(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q, err := shared.ParsePageQuery(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logger.Error("list payments failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "Error fetching payments")
		return
	}

	items := make([]paymentDTO, 0, len(page.Items))
	for _, p := range page.Items {
		dto := paymentDTO{
			ID:        p.ID.String(),
			Amount:    p.Amount,
			Status:    p.Status,
			PaidAt:    p.PaidAt,
			CreatedAt: p.CreatedAt,
			Tenant:    toPartyDTO(p.Tenant),
			Landlord:  toPartyDTO(p.Landlord),
		}
		if p.Lease != nil {
			dto.Lease = &leaseDTO{ID: p.Lease.ID.String(), PropertyID: p.Lease.PropertyID.String()}
		}
		items = append(items, dto)
	}

	httpx.JSON(w, http.StatusOK, listResponse{
		Payments:      items,
		TotalPages:    page.Meta.TotalPages,
		CurrentPage:   page.Meta.Page,
		TotalPayments: page.Meta.Total,
	})
}
