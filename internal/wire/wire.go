package wire

import (
	"net/http"

	"event-planner/internal/adaptor"
	"event-planner/internal/data/repository"
	"event-planner/internal/usecase"
	"event-planner/pkg/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the router and the services behind it.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes. gatherer backs /metrics.
func Wiring(repo *repository.Repository, infra usecase.Infra, gatherer prometheus.Gatherer, logger *zap.Logger) *App {
	service := usecase.NewService(repo, infra, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, infra, gatherer, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	infra usecase.Infra,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger, infra.Metrics))
	r.Use(middleware.Recover(logger))

	wireBooking(r, handler.Booking)
	wireBudget(r, handler.Budget)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
