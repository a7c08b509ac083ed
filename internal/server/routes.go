package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/studycoach/studycoach/internal/agent"
	"github.com/studycoach/studycoach/internal/handler"
	"github.com/studycoach/studycoach/internal/middleware"
	"github.com/studycoach/studycoach/internal/security"
	"github.com/studycoach/studycoach/internal/service"
	"github.com/studycoach/studycoach/internal/syllabus"
	"github.com/studycoach/studycoach/internal/tools"
	"github.com/studycoach/studycoach/internal/web"
)

func (s *Server) setupRoutes() (http.Handler, error) {
	cfg := s.cfg

	// ─── Syllabus catalog ────────────────────────────────────────────────────────
	cat := syllabus.Default()
	if cfg.SyllabusPath != "" {
		loaded, err := syllabus.LoadFile(cfg.SyllabusPath)
		if err != nil {
			return nil, fmt.Errorf("load syllabus %s: %w", cfg.SyllabusPath, err)
		}
		cat = loaded
		log.Info().Str("path", cfg.SyllabusPath).Int("modules", cat.Len()).Msg("syllabus loaded from file")
	}

	// ─── Agent backend ───────────────────────────────────────────────────────────
	var backend agent.Backend
	switch cfg.Provider {
	case "groq":
		backend = agent.NewGroqBackend(cfg.GroqAPIKey, cfg.Model, cfg.GroqBaseURL)
	case "anthropic":
		backend = agent.NewAnthropicBackend(cfg.AnthropicAPIKey, cfg.Model, cfg.AnthropicBaseURL)
	}

	var coach *agent.Coach
	if backend != nil {
		var err error
		coach, err = agent.NewCoach(backend, tools.All(cat), cfg.MaxIterations)
		if err != nil {
			return nil, fmt.Errorf("create agent: %w", err)
		}
	} else {
		log.Warn().Str("provider", cfg.Provider).Msg("no backend for provider - agent disabled")
	}

	log.Info().
		Str("provider", cfg.Provider).
		Bool("agent_enabled", coach != nil).
		Bool("auth_enabled", cfg.EnableAuth && len(cfg.APIKeys) > 0).
		Bool("audit_logging", cfg.EnableAuditLogging).
		Int("modules", cat.Len()).
		Msg("service configuration")

	if cfg.EnableAuth && len(cfg.APIKeys) == 0 {
		log.Warn().Msg("auth enabled but no API keys configured - API routes are open")
	}

	// ─── Components ──────────────────────────────────────────────────────────────
	promptVal := security.NewPromptValidator()
	auditLogger := security.NewAuditLogger(cfg.EnableAuditLogging)
	intentRouter := service.NewIntentRouter()

	healthH := handler.NewHealthHandler(coach, cat)
	modulesH := handler.NewModulesHandler(cat)
	coachH := handler.NewCoachHandler(coach, intentRouter, promptVal, auditLogger)

	uiH, err := web.Handler(cfg.APIPrefix)
	if err != nil {
		return nil, err
	}

	// ─── Router ──────────────────────────────────────────────────────────────────
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	// Public routes
	r.Get("/", uiH)
	r.Get("/health", healthH.Health)

	// Auth + rate limiting for API routes
	apiMiddleware := []func(http.Handler) http.Handler{
		middleware.RateLimit(cfg.RateLimitPerMinute),
	}
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		apiMiddleware = append(apiMiddleware, middleware.Auth(cfg.APIKeys, cfg.APIKeyHeader))
	}

	r.Group(func(r chi.Router) {
		for _, m := range apiMiddleware {
			r.Use(m)
		}

		r.Route(cfg.APIPrefix, func(r chi.Router) {
			r.Post("/coach", coachH.Ask)
			r.Get("/modules", modulesH.ListModules)
			r.Get("/modules/{module_name}", modulesH.GetModule)
		})
	})

	return r, nil
}
