package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const appID = "menu"

type config struct {
	HTTPAddress string `envconfig:"http_address" default:":8080"`
	GRPCAddress string `envconfig:"grpc_address" default:":8081"`

	CatalogPath string `envconfig:"catalog_path"`
	AssetsDir   string `envconfig:"assets_dir" default:"immagini"`

	// Empty disables the receipt journal.
	DatabaseDSN string `envconfig:"database_dsn"`

	SessionIdleTTL       time.Duration `envconfig:"session_idle_ttl" default:"30m"`
	SessionEvictInterval time.Duration `envconfig:"session_evict_interval" default:"1m"`
	ShutdownTimeout      time.Duration `envconfig:"shutdown_timeout" default:"10s"`

	LogLevel string `envconfig:"log_level" default:"info"`
}

func parseEnv() (*config, error) {
	c := new(config)
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	return c, nil
}

func initLogger(c *config) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(level)
	return nil
}
