// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command gscatalogd serves a map server catalog over HTTP.  The REST
// interface is under /rest, and is what the restclient package and the
// gsctl tool talk to; Prometheus metrics are at /metrics.
//
// Settings come from flags, or from a YAML file named by -config:
//
//     http: ":8080"
//     backend: "postgres://geoserver@localhost/catalog"
//     cache: true
//     log_level: debug
//     log_requests: true
//     username: admin
//     password: geoserver
//     metrics_interval: 30s
//
// Flags given explicitly on the command line override the file.
package main

import (
	"net/http"
	"os"

	"github.com/diffeo/go-geoserver/cache"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.StandardLogger()

	cfg, err := parseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("Could not load configuration")
		return
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level")
		return
	}
	log.SetLevel(level)
	if cfg.LogRequests && level < logrus.DebugLevel {
		log.SetLevel(logrus.DebugLevel)
	}

	c, err := cfg.Backend.Catalog()
	if err != nil {
		log.WithFields(logrus.Fields{
			"backend": cfg.Backend.String(),
			"err":     err,
		}).Fatal("Could not create catalog backend")
		return
	}
	if cfg.Cache {
		c = cache.New(c)
	}

	done := make(chan struct{})
	defer close(done)
	go observe(c, cfg.MetricsInterval, log, done)

	log.WithFields(logrus.Fields{
		"http":    cfg.HTTP,
		"backend": cfg.Backend.Implementation,
		"cache":   cfg.Cache,
	}).Info("Starting catalog server")
	err = http.ListenAndServe(cfg.HTTP, newHandler(c, cfg, log))
	log.WithError(err).Fatal("HTTP server failed")
}
