package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solestock/solestock-backend/api/controllers"
	"github.com/solestock/solestock-backend/api/middleware"
	"github.com/solestock/solestock-backend/internal/inventory"
	"github.com/solestock/solestock-backend/pkg/config"
	"github.com/solestock/solestock-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	inventoryService inventory.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(inventoryService, logg))
			r.Post("/", controllers.CreateProduct(inventoryService, logg))
			r.Put("/{productId}", controllers.UpdateProduct(inventoryService, logg))
			r.Delete("/{productId}", controllers.DeleteProduct(inventoryService, logg))
		})
	})

	return r
}
