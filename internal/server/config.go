package server

import (
	"fmt"
	"strings"

	"github.com/felfel/go-felfel/internal/datastore"
	"github.com/felfel/go-felfel/pkg/http"
	"github.com/felfel/go-felfel/pkg/logger"
)

type Config struct {
	Environment string
	Log         logger.Config
	Router      http.RouterConfig
	Server      http.ServerConfig
	Generator   GeneratorConfig
	Datastore   datastore.DatastoreConfig
}

// Str renders the config with secrets masked so it is safe to log.
func (c Config) Str() string {
	masked := c
	if masked.Datastore.Cockroach.Password != "" {
		masked.Datastore.Cockroach.Password = "***"
	}
	if i := strings.Index(masked.Datastore.Redis.URL, "@"); i >= 0 {
		masked.Datastore.Redis.URL = "***" + masked.Datastore.Redis.URL[i:]
	}
	return fmt.Sprintf("%+v", masked)
}
