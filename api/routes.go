package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the dashboard API. Paths mirror the frontend's
// expectations and must stay stable.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Projects
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())

		// Registry transaction log
		r.Get("/transactions", handlers.transactionHandler.getAllTransactions())
		r.Post("/transactions", handlers.transactionHandler.createTransaction())

		// Marketplace listings
		r.Get("/carbon-credits", handlers.creditHandler.getAllCarbonCredits())
		r.Post("/carbon-credits", handlers.creditHandler.createCarbonCredit())

		// MRV data
		r.Get("/mrv-data", handlers.mrvHandler.getMrvData())
		r.Post("/mrv-data", handlers.mrvHandler.createMrvData())

		// Community feed and leaderboard
		r.Get("/community/posts", handlers.communityHandler.getAllPosts())
		r.Post("/community/posts", handlers.communityHandler.createPost())
		r.Get("/community/members", handlers.communityHandler.getAllMembers())
		r.Post("/community/members", handlers.communityHandler.createMember())

		// Analytics
		r.Get("/analytics/dashboard", handlers.analyticsHandler.getDashboard())
		r.Get("/analytics/blockchain", handlers.analyticsHandler.getBlockchain())
		r.Get("/analytics/marketplace", handlers.analyticsHandler.getMarketplace())
	})
}
