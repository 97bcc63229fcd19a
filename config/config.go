package config

import (
	"github.com/elide-dev/michelin-server/router"
	"github.com/elide-dev/michelin-server/util/conf"
)

// EnvPrefix is the prefix of environment variables read into Config.
const EnvPrefix = "MICHELIN_"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Router is the identity published by the router
	Router router.Config `conf:"router"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_format": "production",
}.Merge(conf.Namespace("router", router.DefaultConfig))
