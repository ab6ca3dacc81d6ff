package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bondwise/bond-advisor-backend/internal/api/handlers"
	custommiddleware "github.com/bondwise/bond-advisor-backend/internal/api/middleware"
	"github.com/bondwise/bond-advisor-backend/internal/config"
	"github.com/bondwise/bond-advisor-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	catalogService *service.CatalogService,
	recommendationService *service.RecommendationService,
	payoutService *service.PayoutService,
	advisorService *service.AdvisorService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/bond", func(r chi.Router) {
			bondHandler := handlers.NewBondHandler(catalogService)
			r.Get("/", bondHandler.GetAllBonds)
			r.With(custommiddleware.APIKeyMiddleware).Post("/reload", bondHandler.Reload)
			r.Route("/{isin}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateISINMiddleware)
				r.Get("/", bondHandler.GetBond)
			})
		})

		r.Route("/recommendation", func(r chi.Router) {
			recommendationHandler := handlers.NewRecommendationHandler(
				recommendationService,
				payoutService,
				advisorService,
			)
			r.Post("/", recommendationHandler.Recommend)
			r.Post("/advice", recommendationHandler.Advice)
		})

		r.Route("/payout", func(r chi.Router) {
			payoutHandler := handlers.NewPayoutHandler(payoutService)
			r.Post("/", payoutHandler.ComputeSchedule)
		})

		r.Route("/advisor", func(r chi.Router) {
			advisorHandler := handlers.NewAdvisorHandler(advisorService)
			r.Use(custommiddleware.APIKeyMiddleware)
			r.Get("/config", advisorHandler.GetConfig)
			r.Put("/config", advisorHandler.SetConfig)
		})
	})

	return r
}
