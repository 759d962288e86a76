package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Server   ServerConfig
	Ops      OpsConfig
	Snapshot SnapshotConfig
}

// ServerConfig drives the TCP request dispatcher.
type ServerConfig struct {
	Addr string `env:"LISTEN_ADDR, default=:7455"`
	// ReadTimeout bounds how long an idle connection may sit before
	// delivering its request.
	ReadTimeout time.Duration `env:"READ_TIMEOUT, default=30s"`
}

// OpsConfig drives the HTTP surface exposing health probes and metrics.
type OpsConfig struct {
	Addr string `env:"OPS_ADDR, default=:8080"`
}

// SnapshotConfig locates the entity snapshot files.
type SnapshotConfig struct {
	Dir string `env:"SNAPSHOT_DIR, default=data"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
