package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/blacksite-games/incursion-engine/internal/challenges"
	"github.com/blacksite-games/incursion-engine/internal/config"
	"github.com/blacksite-games/incursion-engine/internal/game"
	"github.com/blacksite-games/incursion-engine/internal/missions"
)

// Server represents the HTTP API server
type Server struct {
	config   config.ServerConfig
	router   *chi.Mux
	engine   *game.Engine
	missions *missions.Manager
	library  *challenges.Library
	session  *challenges.Session
	hub      *Hub
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	engine *game.Engine,
	manager *missions.Manager,
	library *challenges.Library,
	session *challenges.Session,
	hub *Hub,
) *Server {
	s := &Server{
		config:   cfg,
		engine:   engine,
		missions: manager,
		library:  library,
		session:  session,
		hub:      hub,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health checks (public)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	// State push for displays and consoles
	r.Get("/ws/state", s.handleStateWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)

		r.Route("/game", func(r chi.Router) {
			r.Post("/start", s.handleGameStart)
			r.Post("/stop", s.handleGameStop)
			r.Post("/reset", s.handleGameReset)
			r.Get("/session", s.handleGetSession)
			r.Post("/session", s.handleGameSession)
		})

		r.Route("/sector", func(r chi.Router) {
			r.Post("/adjust", s.handleSectorAdjust)
			r.Post("/adjust-all", s.handleSectorAdjustAll)
			r.Post("/set", s.handleSectorSet)
			r.Post("/lock/{id}", s.handleSectorLock)
			r.Post("/secure/{id}", s.handleSectorSecure)
		})

		r.Get("/passwords", s.handleListPasswords)
		r.Route("/password", func(r chi.Router) {
			r.Post("/try", s.handlePasswordTry)
			r.Post("/add", s.handlePasswordAdd)
			r.Delete("/{code}", s.handlePasswordRemove)
		})

		r.Get("/missions", s.handleListMissions)
		r.Route("/mission", func(r chi.Router) {
			r.Post("/complete", s.handleMissionComplete)
			r.Post("/failed", s.handleMissionFailed)
			r.Post("/reset/{id}", s.handleMissionReset)
			r.Post("/create", s.handleMissionCreate)
			r.Delete("/{id}", s.handleMissionDelete)
		})

		r.Get("/events", s.handleEvents)

		r.Get("/challenges", s.handleListChallenges)
		r.Route("/challenge", func(r chi.Router) {
			r.Get("/next", s.handleChallengeNext)
			r.Post("/inject", s.handleChallengeInject)
			r.Post("/answer", s.handleChallengeAnswer)
			r.Post("/verify", s.handleChallengeVerify)
			r.Post("/reset", s.handleChallengeReset)
		})

		r.Post("/hint/send", s.handleHintSend)
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
