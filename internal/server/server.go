package server

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/felfel/go-felfel/internal/datastore"
	"github.com/felfel/go-felfel/internal/namegen"
	"github.com/felfel/go-felfel/pkg/http"
	"github.com/felfel/go-felfel/pkg/middleware"
	"github.com/rs/zerolog"
	"github.com/unrolled/render"
)

type Server struct {
	cfg      Config
	log      zerolog.Logger
	server   *http.Server
	names    datastore.NameStore
	stats    datastore.StatsStore
	errCh    chan error
	shutdown sync.Once
}

func NewServer(cfg Config, log zerolog.Logger) (*Server, error) {
	if err := cfg.Generator.validate(); err != nil {
		return nil, err
	}
	names, err := datastore.NewCockroachClient(context.Background(), &cfg.Datastore.Cockroach)
	if err != nil {
		return nil, err
	}
	stats, err := datastore.NewRedisClient(&cfg.Datastore.Redis)
	if err != nil {
		_ = names.Close(context.Background())
		return nil, err
	}
	handler := NewHandler(log, render.New(), namegen.New(nil), cfg.Generator, names, stats,
		NewStatsAdapter(stats, log), NewLogAdapter(log))
	r := NewRouter(cfg.Router)
	r.Use(middleware.RequestLogger(log))
	r = AddRoutes(r, handler, cfg.Router)
	return &Server{
		cfg:    cfg,
		log:    log,
		server: http.NewServer(cfg.Server, r, log),
		names:  names,
		stats:  stats,
		errCh:  make(chan error),
	}, nil
}

func (s *Server) Start() {
	go s.server.Start(s.errCh)
	for err := range s.errCh {
		if err != nil {
			s.log.Error().Caller().Err(err).Msg("fatal error")
			s.Shutdown(true)
		}
	}
}

func (s *Server) Shutdown(errored bool) {
	s.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info().Msg("attempting graceful shutdown")
		graceful := make(chan bool)
		go func(graceful <-chan bool) {
			for {
				select {
				case <-ctx.Done():
					if errors.Is(ctx.Err(), context.DeadlineExceeded) {
						s.log.Panic().Msg("timeout so shutdown ungracefully")
					}
					return
				case <-graceful:
					return
				}
			}
		}(graceful)
		if err := s.server.Shutdown(ctx); err != nil {
			s.log.Error().Caller().Err(err).Msg("failed to shutdown server gracefully")
		}
		if err := s.names.Close(ctx); err != nil {
			s.log.Error().Caller().Err(err).Msg("failed to close name store")
		}
		if err := s.stats.Close(); err != nil {
			s.log.Error().Caller().Err(err).Msg("failed to close stats store")
		}
		close(s.errCh)
		close(graceful)
		if errored {
			s.log.Info().Msg("shutdown gracefully but error detected")
			os.Exit(1)
		}
	})
}
