package server

import (
	"context"

	"github.com/felfel/go-felfel/internal/datastore"
	"github.com/rs/zerolog"
)

// NameAdapter lets external systems react to every name handed out,
// for example to keep statistics.
type NameAdapter interface {
	OnGenerate(ctx context.Context, kind, name string)
}

type StatsAdapter struct {
	stats datastore.StatsStore
	log   zerolog.Logger
}

func NewStatsAdapter(stats datastore.StatsStore, log zerolog.Logger) *StatsAdapter {
	return &StatsAdapter{
		stats: stats,
		log:   log,
	}
}

func (s *StatsAdapter) OnGenerate(ctx context.Context, kind, name string) {
	if err := s.stats.IncrStat(ctx, kind); err != nil {
		s.log.Debug().Caller().Err(err).Msgf("failed to incr generated count for kind %s", kind)
	}
}

// LogAdapter logs every generated name at debug level.
type LogAdapter struct {
	log zerolog.Logger
}

func NewLogAdapter(log zerolog.Logger) *LogAdapter {
	return &LogAdapter{log: log}
}

func (l *LogAdapter) OnGenerate(_ context.Context, kind, name string) {
	l.log.Debug().Str("kind", kind).Str("name", name).Msg("name generated")
}
