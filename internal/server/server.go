package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/studycoach/studycoach/internal/config"
)

type Server struct {
	cfg  *config.Config
	http *http.Server
}

func New(cfg *config.Config) (*Server, error) {
	s := &Server{cfg: cfg}

	router, err := s.setupRoutes()
	if err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.AgentTimeout+30) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string { return s.http.Addr }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", s.http.Addr).Msg("listening")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown initiated")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
