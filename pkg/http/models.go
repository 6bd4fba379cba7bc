package http

import "time"

type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
}

type RouterConfig struct {
	TimeoutSec         int
	RequestPerSecLimit int
	DisableCors        bool
	AllowedOrigins     []string
	AllowedMethods     []string
	AllowedHeaders     []string
}
