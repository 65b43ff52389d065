package http

import (
	"net/http"

	"blood-donor-registry/internal/delivery/http/handler"
	"blood-donor-registry/internal/delivery/http/middleware"
	"blood-donor-registry/internal/infrastructure/metrics"
	"blood-donor-registry/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	donorHandler       *handler.DonorHandler
	identityMiddleware *middleware.IdentityMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	requestLog         *middleware.RequestLogMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
	metrics            *metrics.Metrics
}

func NewRouter(
	donorHandler *handler.DonorHandler,
	identityMiddleware *middleware.IdentityMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLog *middleware.RequestLogMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	metrics *metrics.Metrics,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		donorHandler:       donorHandler,
		identityMiddleware: identityMiddleware,
		corsMiddleware:     corsMiddleware,
		requestLog:         requestLog,
		metricsMiddleware:  metricsMiddleware,
		metrics:            metrics,
	}
}

// Setup registers every route and returns the fully wrapped handler.
// CORS sits outside the router so preflight requests for any path are
// answered even though mux has no OPTIONS routes.
func (r *Router) Setup() http.Handler {
	// Health check
	r.router.HandleFunc("/", r.healthCheck).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	// Directory and lookups (public)
	r.router.HandleFunc("/donors", r.donorHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/donors/stats", r.donorHandler.Stats).Methods(http.MethodGet)
	r.router.HandleFunc("/donor", r.donorHandler.GetByEmail).Methods(http.MethodGet)
	r.router.HandleFunc("/donor/{id}", r.donorHandler.GetByID).Methods(http.MethodGet)

	// Profile writes (identity checked when a verifier is configured)
	r.router.Handle("/donor/register", r.protect(r.donorHandler.Register)).Methods(http.MethodPost)
	r.router.Handle("/donor/update", r.protect(r.donorHandler.Update)).Methods(http.MethodPut)
	r.router.Handle("/donor", r.protect(r.donorHandler.DeleteByEmail)).Methods(http.MethodDelete)
	r.router.Handle("/donor/{id}/availability", r.protect(r.donorHandler.UpdateAvailability)).Methods(http.MethodPut)
	r.router.Handle("/donor/{id}", r.protect(r.donorHandler.DeleteByID)).Methods(http.MethodDelete)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, response.CategoryValidation, "Method not allowed")
	})

	r.router.Use(r.metricsMiddleware.Handle)

	return r.corsMiddleware.Handle(r.requestLog.Handle(r.router))
}

func (r *Router) protect(h http.HandlerFunc) http.Handler {
	return r.identityMiddleware.Authenticate(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
