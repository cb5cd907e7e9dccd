package routes

import (
	"github.com/dkazarin/league-manager/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
)

func SetupRoutes(router *chi.Mux, leagueHandler *handlers.LeagueHandler, allowedOrigins []string) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", leagueHandler.HealthcheckHandler)

	router.Route("/league", func(r chi.Router) {
		r.Post("/calendar", leagueHandler.GenerateCalendarHandler)
		r.Post("/standings", leagueHandler.LeagueTableHandler)
		r.Post("/overview", leagueHandler.OverviewHandler)
	})

	router.Route("/playoffs", func(r chi.Router) {
		r.Post("/semifinals", leagueHandler.SeedSemifinalsHandler)
		r.Post("/final", leagueHandler.SeedFinalRoundHandler)
	})
}
