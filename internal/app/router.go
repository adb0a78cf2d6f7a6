package app

import (
	"github.com/fundstracker/funds-tracker/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(h *handlerSet, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, h)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger.Named("http")))
	r.Use(handlers.RecoveryMiddleware(logger.Named("http")))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, h *handlerSet) {
	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", h.users.Create)

		r.Route("/{userID}", func(r chi.Router) {
			r.Get("/", h.users.Get)
			r.Get("/net-worth", h.netWorth.GetTotal)
			r.Get("/cash-flow", h.netWorth.GetCashFlow)

			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.accounts.Create)
				r.Get("/", h.accounts.List)

				r.Route("/{accountID}", func(r chi.Router) {
					r.Get("/", h.accounts.Get)
					r.Patch("/", h.accounts.Rename)
					r.Delete("/", h.accounts.Delete)
					r.Put("/balance", h.accounts.UpdateBalance)
					r.Get("/history", h.history.GetHistory)
					r.Get("/history/profit", h.history.GetProfit)
				})
			})

			r.Route("/goals", func(r chi.Router) {
				r.Post("/", h.goals.Create)
				r.Get("/", h.goals.List)
				r.Get("/{goalID}", h.goals.Get)
				r.Patch("/{goalID}", h.goals.Update)
				r.Delete("/{goalID}", h.goals.Delete)
			})
		})
	})
}
