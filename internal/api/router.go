package api

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitlog/exercise-tracker/internal/api/handlers"
	"github.com/fitlog/exercise-tracker/internal/config"
	"github.com/fitlog/exercise-tracker/internal/middleware"
	"github.com/fitlog/exercise-tracker/internal/services"
)

//go:embed index.html
var landingPage []byte

func NewRouter(cfg config.Config, us *services.UserService, es *services.ExerciseService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// landing page, health & metrics
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(landingPage)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	uh := handlers.NewUserHandler(us)
	eh := handlers.NewExerciseHandler(es)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", uh.Create)
		r.Get("/users", uh.List)
		r.Post("/users/{id}/exercises", eh.Create)
		r.Get("/users/{id}/logs", eh.Logs)
	})

	return r
}
