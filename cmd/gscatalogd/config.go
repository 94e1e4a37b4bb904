// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/diffeo/go-geoserver/backend"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Config holds the daemon settings.  Values come from an optional YAML
// file, and command-line flags override them.
type Config struct {
	// HTTP is the [ip]:port to listen on.
	HTTP string `mapstructure:"http"`

	// Backend is the impl[:address] of the storage backend.
	Backend backend.Backend `mapstructure:"-"`

	// BackendString is Backend as it appears in the YAML file.
	BackendString string `mapstructure:"backend"`

	// Cache wraps the backend in a name cache.
	Cache bool `mapstructure:"cache"`

	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`

	// LogRequests logs every HTTP request at debug level.
	LogRequests bool `mapstructure:"log_requests"`

	// Username and Password, if Username is non-empty, are required
	// of every REST request.
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// MetricsInterval is how often the catalog gauges are refreshed.
	MetricsInterval time.Duration `mapstructure:"metrics_interval"`
}

func defaultConfig() Config {
	return Config{
		HTTP:            ":8080",
		Backend:         backend.Backend{Implementation: "memory"},
		Cache:           true,
		LogLevel:        "info",
		MetricsInterval: 15 * time.Second,
	}
}

// loadConfigYaml reads a YAML file over the top of cfg.
func loadConfigYaml(filename string, cfg *Config) error {
	bytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	var raw map[string]interface{}
	if err = yaml.Unmarshal(bytes, &raw); err != nil {
		return err
	}
	return decodeConfig(raw, cfg)
}

// decodeConfig decodes a string-keyed map into cfg.  Unknown keys are
// an error.
func decodeConfig(raw map[string]interface{}, cfg *Config) error {
	cfg.BackendString = ""
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      cfg,
	})
	if err != nil {
		return err
	}
	if err = decoder.Decode(raw); err != nil {
		return err
	}
	if cfg.BackendString != "" {
		if err = cfg.Backend.Set(cfg.BackendString); err != nil {
			return fmt.Errorf("backend: %w", err)
		}
	}
	return nil
}

// parseFlags builds the configuration from command-line arguments.
// If -config names a file, it is loaded first, and any flags given
// explicitly override its values.
func parseFlags(name string, args []string) (Config, error) {
	cfg := defaultConfig()
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	fromFlags := defaultConfig()
	flags.StringVar(&fromFlags.HTTP, "http", fromFlags.HTTP,
		"[ip]:port for HTTP REST interface")
	flags.Var(&fromFlags.Backend, "backend",
		"impl[:address] of the storage backend")
	flags.BoolVar(&fromFlags.Cache, "cache", fromFlags.Cache,
		"cache styles and layers in memory")
	flags.StringVar(&fromFlags.LogLevel, "log-level", fromFlags.LogLevel,
		"minimum level of log messages")
	flags.BoolVar(&fromFlags.LogRequests, "log-requests", fromFlags.LogRequests,
		"log all requests")
	flags.StringVar(&fromFlags.Username, "username", fromFlags.Username,
		"require HTTP basic authentication with this user")
	flags.StringVar(&fromFlags.Password, "password", fromFlags.Password,
		"password for -username")
	flags.DurationVar(&fromFlags.MetricsInterval, "metrics-interval",
		fromFlags.MetricsInterval, "how often to refresh catalog metrics")
	configFile := flags.String("config", "", "global configuration YAML file")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	if *configFile != "" {
		if err := loadConfigYaml(*configFile, &cfg); err != nil {
			return cfg, err
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "http":
			cfg.HTTP = fromFlags.HTTP
		case "backend":
			cfg.Backend = fromFlags.Backend
		case "cache":
			cfg.Cache = fromFlags.Cache
		case "log-level":
			cfg.LogLevel = fromFlags.LogLevel
		case "log-requests":
			cfg.LogRequests = fromFlags.LogRequests
		case "username":
			cfg.Username = fromFlags.Username
		case "password":
			cfg.Password = fromFlags.Password
		case "metrics-interval":
			cfg.MetricsInterval = fromFlags.MetricsInterval
		}
	})
	return cfg, nil
}
