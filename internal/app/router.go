package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rentiva/rentiva-admin/internal/auth"
	"github.com/rentiva/rentiva-admin/internal/commission"
	"github.com/rentiva/rentiva-admin/internal/observability"
	"github.com/rentiva/rentiva-admin/internal/payments"
	"github.com/rentiva/rentiva-admin/internal/properties"
	"github.com/rentiva/rentiva-admin/internal/stats"
	"github.com/rentiva/rentiva-admin/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	AuthHandler       *auth.Handler
	AuthMiddleware    *auth.Middleware
	UsersHandler      *users.Handler
	PropertiesHandler *properties.Handler
	PaymentsHandler   *payments.Handler
	CommissionHandler *commission.Handler
	StatsHandler      *stats.Handler
	Metrics           *observability.Metrics
}

// NewRouter constructs the chi.Router with Rentiva defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.AuthHandler.MountRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(params.AuthMiddleware.RequireAdmin)
		if params.UsersHandler != nil {
			params.UsersHandler.MountRoutes(r)
		}
		if params.PropertiesHandler != nil {
			params.PropertiesHandler.MountRoutes(r)
		}
		if params.PaymentsHandler != nil {
			params.PaymentsHandler.MountRoutes(r)
		}
		if params.CommissionHandler != nil {
			params.CommissionHandler.MountRoutes(r)
		}
		if params.StatsHandler != nil {
			params.StatsHandler.MountRoutes(r)
		}
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
