package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"moviereviews/internal/handler"
	"moviereviews/internal/httputil"
	"moviereviews/internal/service"
	authmw "moviereviews/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler   *handler.AuthHandler
	MovieHandler  *handler.MovieHandler
	ReviewHandler *handler.ReviewHandler
	Verifier      authmw.TokenVerifier
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Post("/signup", cfg.AuthHandler.Signup)
	r.Post("/signin", cfg.AuthHandler.Signin)

	// Reviews are world-readable; everything else on them is gated.
	r.Get("/reviews", cfg.ReviewHandler.List)

	// Protected routes - require a valid "JWT <token>" Authorization header
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.Verifier, service.TokenScheme))

		r.Get("/movies", cfg.MovieHandler.List)
		r.Post("/movies", cfg.MovieHandler.Create)
		r.Get("/movies/{title}", cfg.MovieHandler.GetByTitle)
		r.Put("/movies/{title}", cfg.MovieHandler.Update)
		r.Delete("/movies/{title}", cfg.MovieHandler.Delete)

		r.Get("/movie/{id}", cfg.MovieHandler.GetByID)

		r.Post("/reviews", cfg.ReviewHandler.Create)
		r.Delete("/reviews/{id}", cfg.ReviewHandler.Delete)
	})

	return r
}
