package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/jasongilchristp/xrm-by-json/internal/api/handlers"
	"github.com/jasongilchristp/xrm-by-json/internal/config"
	"github.com/jasongilchristp/xrm-by-json/internal/metrics"
	"github.com/jasongilchristp/xrm-by-json/internal/middleware"
)

type RouterDeps struct {
	Cfg      config.Config
	Auth     *handlers.AuthHandler
	Contacts *handlers.ContactsHandler
	Users    *handlers.UsersHandler
	AuthMW   *middleware.AuthMiddleware
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.HTTPMetrics)

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/signup", d.Auth.Signup)
		r.Post("/auth/login", d.Auth.Login)

		// ---------- session required ----------
		r.Group(func(r chi.Router) {
			r.Use(d.AuthMW.Auth)

			r.Post("/auth/logout", d.Auth.Logout)
			r.Get("/auth/me", d.Auth.Me)

			// ---------- contacts ----------
			r.Get("/contacts", d.Contacts.List)
			r.Post("/contacts", d.Contacts.Create)
			r.Put("/contacts/{id}", d.Contacts.Update)
			r.Delete("/contacts/{id}", d.Contacts.Delete)

			// ---------- user management (admin) ----------
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/users", d.Users.List)
				r.Post("/users", d.Users.Create)
				r.Delete("/users/{username}", d.Users.Delete)
			})
		})
	})

	return r
}
