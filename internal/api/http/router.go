package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/paperforge/paperforge/internal/access"
	"github.com/paperforge/paperforge/internal/extract"
	"github.com/paperforge/paperforge/internal/history"
)

// NewRouter wires the admin surface: login, allow-list management, on-demand
// paper generation and extraction stats.
func NewRouter(authSvc *AuthService, acl access.Store, events *history.EventRepo, svc *extract.Service, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", LoginHandler(authSvc))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	r.Group(func(pr chi.Router) {
		pr.Use(JWTMiddleware(authSvc))

		pr.Get("/users", ListUsersHandler(acl))
		pr.With(RequireRole(RoleOwner)).Post("/users", AuthorizeUserHandler(acl))
		pr.With(RequireRole(RoleOwner)).Delete("/users/{userID}", RevokeUserHandler(acl))

		pr.Get("/papers/{testID}", PaperHandler(svc))
		pr.Get("/stats", StatsHandler(events))
	})

	return r
}
