package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/portfolio-studio/showcase/internal/api/handlers"
	mw "github.com/portfolio-studio/showcase/internal/api/middleware"
)

type Dependencies struct {
	ProjectsHandler *handlers.ProjectsHandler
	StaticHandler   *handlers.StaticHandler
	HealthHandler   *handlers.HealthHandler

	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	// TrustProxyHeaders takes the client address from X-Forwarded-For /
	// X-Real-IP. Enable only behind a proxy that sets them.
	TrustProxyHeaders bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	if dep.TrustProxyHeaders {
		r.Use(chimid.RealIP)
	}
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(dep.AllowedOrigins))
	r.Use(chimid.GetHead)
	r.Use(chimid.Compress(5))

	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)

	// Only writes are rate limited; reads and static files always answer.
	r.Route("/api", func(api chi.Router) {
		api.Get("/projects", dep.ProjectsHandler.List)
		api.With(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst)).Post("/projects", dep.ProjectsHandler.Create)
	})

	r.Get("/", dep.StaticHandler.Index)
	r.Get("/*", dep.StaticHandler.File)

	return r
}
