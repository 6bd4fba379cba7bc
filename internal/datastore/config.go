package datastore

import (
	"fmt"
	"time"
)

type DatastoreConfig struct {
	Cockroach CockroachConfig
	Redis     RedisConfig
}

type CockroachConfig struct {
	Enabled         bool
	Host            string
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxConns        int32
	MaxConnLifetime time.Duration
}

func (c *CockroachConfig) GetURL() string {
	url := fmt.Sprintf("postgres://%s:%s@%s/%s", c.Username, c.Password, c.Host, c.Database)
	if c.SSLMode != "" {
		url += "?sslmode=" + c.SSLMode
	}
	return url
}

type RedisConfig struct {
	Enabled bool
	URL     string // EX: "redis://:password@localhost:6379/0"
}
