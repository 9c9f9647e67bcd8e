package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"sahayak-backend/internal/handlers"
	"sahayak-backend/internal/middleware"
)

func New(chatHandler *handlers.ChatHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigins))

	// Chat rate limiter (30 req/min per IP)
	chatLimiter := middleware.NewRateLimiter(30, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", chatHandler.Health)
		r.Get("/links", chatHandler.Links)

		r.Group(func(r chi.Router) {
			r.Use(chatLimiter.Middleware)
			r.Post("/chat", chatHandler.Chat)
		})
	})

	return r
}
