package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/socceronline/soccer-api/internal/api"
	apiMiddleware "github.com/socceronline/soccer-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.teamService, app.roleStore, app.logger)
	teamHandler := api.NewTeamHandler(app.teamService, app.logger)
	playerHandler := api.NewPlayerHandler(app.playerService, app.transferService, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// User management
			r.Get("/users", userHandler.ListUsers)
			r.Post("/users", userHandler.CreateUser)
			r.Get("/users/{id}", userHandler.GetUser)
			r.Patch("/users/{id}", userHandler.UpdateUser)
			r.Delete("/users/{id}", userHandler.DeleteUser)
			r.Get("/users/{id}/team", userHandler.GetUserTeam)
			r.Get("/users/{id}/team/players", userHandler.GetUserTeamPlayers)
			r.Get("/roles", userHandler.ListRoles)

			// Team management
			r.Get("/teams", teamHandler.ListTeams)
			r.Post("/teams", teamHandler.CreateTeam)
			r.Get("/teams/{id}", teamHandler.GetTeam)
			r.Patch("/teams/{id}", teamHandler.UpdateTeam)
			r.Delete("/teams/{id}", teamHandler.DeleteTeam)
			r.Get("/teams/{id}/players", teamHandler.ListTeamPlayers)

			// Player management
			r.Get("/players", playerHandler.ListPlayers)
			r.Post("/players", playerHandler.CreatePlayer)
			r.Get("/players/{id}", playerHandler.GetPlayer)
			r.Patch("/players/{id}", playerHandler.UpdatePlayer)
			r.Delete("/players/{id}", playerHandler.DeletePlayer)

			// Transfer market
			r.Get("/market", playerHandler.Market)
			r.Post("/players/{id}/offer", playerHandler.OfferPlayer)
			r.Post("/players/{id}/cancel-offer", playerHandler.CancelOffer)
			r.Post("/players/{id}/buy", playerHandler.BuyPlayer)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
