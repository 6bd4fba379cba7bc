package server

import (
	"time"
	"unicode/utf8"

	"github.com/felfel/go-felfel/internal/namegen"
)

const (
	KindSimple = "simple"
	KindID     = "id"
	KindCustom = "custom"
	KindStream = "stream"

	reserveAttempts = 5

	defaultStreamInterval = time.Second
	defaultStreamMaxCount = 100
)

var kinds = []string{KindSimple, KindID, KindCustom, KindStream}

type GeneratorConfig struct {
	DefaultMaxSuffix int
	DefaultDelimiter string
	StreamInterval   time.Duration
	StreamMaxCount   int
}

// validate checks the defaults used by the custom endpoint and fills in stream limits.
func (c *GeneratorConfig) validate() error {
	if c.DefaultDelimiter == "" {
		c.DefaultDelimiter = " "
	}
	if utf8.RuneCountInString(c.DefaultDelimiter) != 1 {
		return ErrInvalidDelimiter
	}
	if c.DefaultMaxSuffix < 0 {
		return ErrInvalidMaxSuffix(c.DefaultMaxSuffix)
	}
	if c.DefaultMaxSuffix == 1 {
		return namegen.ErrDegenerateRange
	}
	if c.StreamInterval <= 0 {
		c.StreamInterval = defaultStreamInterval
	}
	if c.StreamMaxCount <= 0 {
		c.StreamMaxCount = defaultStreamMaxCount
	}
	return nil
}

type NameResponse struct {
	Name string
}

type ReserveResponse struct {
	Name      string
	CreatedAt time.Time
}

type StatsResponse struct {
	Generated map[string]int
}

type errorResponse struct {
	Message string
}
