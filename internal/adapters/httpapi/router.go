package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type RouterOptions struct {
	Logger *slog.Logger
	// Metrics instruments every request; nil disables it.
	Metrics *Metrics
	// MetricsHandler is mounted at /metrics when non-nil.
	MetricsHandler http.Handler
	// AllowedOrigins for CORS. Empty means any origin.
	AllowedOrigins []string
}

// NewRouter constructs the API HTTP router.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger, opts.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", SessionHeader, idempotencyHeader},
		ExposedHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
	}).Handler)
	r.Use(sessionMiddleware)

	// Health endpoint is used for infra checks.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}

	r.Post("/trips/generate", s.GenerateTrip)
	r.Post("/trips/document", s.RenderTripDocument)
	r.Get("/trips/stats", s.GetTripStats)
	r.Get("/trips", s.ListTrips)
	r.Post("/trips", s.SaveTrip)
	r.Get("/trips/{tripId}", s.GetTrip)
	r.Delete("/trips/{tripId}", s.DeleteTrip)
	r.Put("/trips/{tripId}/status", s.UpdateTripStatus)

	r.Get("/generations/{generationId}", s.GetGeneration)
	r.Get("/generations/{generationId}/document", s.GetGenerationDocument)

	r.Get("/profile", s.GetProfile)
	r.Patch("/profile", s.UpdateProfile)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "no such endpoint", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})
	return r
}
