package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mizan-accounting/jalali-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /metrics
//	GET    /api/v1/convert/to-jalali?date=YYYY-MM-DD
//	GET    /api/v1/convert/to-gregorian?date=YYYY/MM/DD
//	GET    /api/v1/convert/input?value=...
//	GET    /api/v1/today
//	GET    /api/v1/years/{year}
//	GET    /api/v1/years/{year}/months/{month}
//	GET    /api/v1/contracts/end-date?start=YYYY-MM-DD&days=N
//	GET    /api/v1/format/price?value=...
//	GET    /api/v1/occasions?year=YYYY&month=M
//	POST   /api/v1/admin/occasions          (admin key)
//	DELETE /api/v1/admin/occasions/{id}     (admin key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
		MetricsMiddleware(handlers.metrics),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", handlers.HealthCheck)
	r.Method(http.MethodGet, "/metrics", handlers.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// ==========================================================================
		// Public routes
		// ==========================================================================
		r.Get("/convert/to-jalali", handlers.ConvertToJalali)
		r.Get("/convert/to-gregorian", handlers.ConvertToGregorian)
		r.Get("/convert/input", handlers.MaskInput)
		r.Get("/today", handlers.Today)
		r.Get("/years/{year}", handlers.GetYear)
		r.Get("/years/{year}/months/{month}", handlers.GetMonth)
		r.Get("/contracts/end-date", handlers.ContractEndDate)
		r.Get("/format/price", handlers.FormatPrice)
		r.Get("/occasions", handlers.ListOccasions)

		// ==========================================================================
		// Admin routes (admin key only)
		// ==========================================================================
		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminOnlyMiddleware(cfg, logger))
			r.Post("/occasions", handlers.CreateOccasion)
			r.Delete("/occasions/{id}", handlers.DeleteOccasion)
		})
	})

	return r
}
