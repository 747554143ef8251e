package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/exam-portal/exam-portal/internal/auth"
	"github.com/exam-portal/exam-portal/internal/exam"
	"github.com/exam-portal/exam-portal/internal/identity"
)

// NewRouter assembles the full HTTP surface: open signup/login, then the
// token-guarded test and result routes.
func NewRouter(svc *exam.Service, users identity.Store, authSvc *auth.AuthService, corsOrigins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(ar chi.Router) {
		ar.Post("/signup", SignupHandler(users, authSvc))
		ar.Post("/login", LoginHandler(users, authSvc))

		ar.Group(func(pr chi.Router) {
			pr.Use(auth.JWTMiddleware(authSvc))
			pr.Get("/tests", ListTestsHandler(svc))
			pr.Get("/tests/{testID}", GetTestHandler(svc))
			pr.Post("/tests/{testID}/submit", SubmitTestHandler(svc))
			pr.Get("/results", ListResultsHandler(svc))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	return r
}
