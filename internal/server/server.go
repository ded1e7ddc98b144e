// Package server exposes the engine's operations over HTTP for chat-bot
// collaborators. The API is a convenience surface; the engine remains the
// contract.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lazypower/pond/internal/engine"
	"github.com/lazypower/pond/internal/store"
)

// Server is the pond HTTP API server.
type Server struct {
	db      *store.DB
	engine  *engine.Engine
	log     *zap.Logger
	router  chi.Router
	version string
	started time.Time
}

// New creates a new Server over the given store and engine.
func New(db *store.DB, eng *engine.Engine, log *zap.Logger, version string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		db:      db,
		engine:  eng,
		log:     log,
		version: version,
		started: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/draw", s.handleDraw)
		r.Post("/bait", s.handleBait)
		r.Post("/karma", s.handleKarma)
		r.Put("/profile", s.handleProfile)
		r.Get("/daily", s.handleDaily)
		r.Get("/collection", s.handleCollection)
		r.Get("/rankings/{kind}", s.handleRankings)
		r.Get("/events", s.handleEvents)
		r.Post("/events/sweep", s.handleSweep)
	})

	r.Handle("/metrics", promhttp.Handler())

	s.router = r
}
