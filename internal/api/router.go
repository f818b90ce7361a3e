package api

import (
	"github.com/aaronlopez/review-board-be/internal/api/handlers"
	"github.com/aaronlopez/review-board-be/internal/auth"
	"github.com/aaronlopez/review-board-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenService,
	userService services.UserServiceProvider,
	itemService services.ItemServiceProvider,
	reviewService services.ReviewServiceProvider,
	commentService services.CommentServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokens)
	itemHandler := handlers.NewItemHandler(itemService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// requireAuth resolves the bearer token to a user record or rejects with 401.
	requireAuth := tokens.Middleware(userService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.With(requireAuth).Get("/auth/me", userHandler.GetMe)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.GetAll)
			r.Post("/", itemHandler.Create)
			r.Route("/{itemID}", func(r chi.Router) {
				r.Get("/", itemHandler.Get)
				r.Post("/reviews", reviewHandler.Create)
				r.Route("/reviews/{reviewID}", func(r chi.Router) {
					r.Get("/", reviewHandler.Get)
					r.With(requireAuth).Post("/comments", commentHandler.Create)
				})
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.With(requireAuth).Get("/me", reviewHandler.GetMine)
			r.With(requireAuth).Delete("/{reviewID}", reviewHandler.Delete)
			r.Get("/{reviewID}/comments", commentHandler.GetForReview)
		})

		r.With(requireAuth).Get("/comments/me", commentHandler.GetMine)

		// Mutations addressed through a user path segment; the path user must
		// match the resolved identity.
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Use(requireAuth)
			r.Put("/reviews/{reviewID}", reviewHandler.Update)
			r.Put("/comments/{commentID}", commentHandler.Update)
			r.Delete("/comments/{commentID}", commentHandler.Delete)
		})
	})

	return r
}
