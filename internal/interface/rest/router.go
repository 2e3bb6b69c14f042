package rest

import (
	"net/http"

	"flights-service/internal/interface/middleware"
	"flights-service/pkg/logger"
	"flights-service/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the full route table. Reads are open; mutations
// sit behind the bearer token; the credential endpoints are rate
// limited per IP.
func NewRouter(
	authHandler *AuthHandler,
	flightHandler *FlightHandler,
	jwtSecret string,
	log logger.Logger,
	m *metrics.Metrics,
) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Instrument(m))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Get("/flights/{flight_id}", flightHandler.HandleGet)
	r.Post("/flights/search", flightHandler.HandleSearch)

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(jwtSecret))
		r.Post("/flights/add", flightHandler.HandleAdd)
		r.Delete("/flights/{flight_id}", flightHandler.HandleDelete)
	})

	return r
}
