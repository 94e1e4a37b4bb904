// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restserver"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// newHandler builds the complete HTTP handler: the REST interface
// under /rest, and Prometheus metrics at /metrics.
func newHandler(c catalog.Catalog, cfg Config, log *logrus.Logger) http.Handler {
	api := negroni.New()
	if cfg.Username != "" {
		api.Use(basicAuth(cfg.Username, cfg.Password))
	}
	api.Use(negroni.HandlerFunc(instrument))
	rest := mux.NewRouter()
	restserver.PopulateRouter(rest.PathPrefix("/rest").Subrouter(), c)
	api.UseHandler(rest)

	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.PathPrefix("/rest").Handler(api)

	n := negroni.New()
	recovery := negroni.NewRecovery()
	recovery.Logger = log
	recovery.PrintStack = false
	n.Use(recovery)
	if cfg.LogRequests {
		n.Use(negroni.HandlerFunc(requestLogger(log)))
	}
	n.UseHandler(r)
	return n
}

// basicAuth is negroni middleware that requires a fixed user name and
// password.
func basicAuth(username, password string) negroni.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
		user, pass, ok := req.BasicAuth()
		if ok &&
			subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1 &&
			subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1 {
			next(rw, req)
			return
		}
		rw.Header().Set("WWW-Authenticate", `Basic realm="geoserver"`)
		http.Error(rw, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
}

// requestLogger returns negroni middleware that logs every request at
// debug level.
func requestLogger(log logrus.FieldLogger) func(http.ResponseWriter, *http.Request, http.HandlerFunc) {
	return func(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
		start := time.Now()
		next(rw, req)
		fields := logrus.Fields{
			"method":   req.Method,
			"url":      req.URL.String(),
			"remote":   req.RemoteAddr,
			"duration": time.Since(start),
		}
		if nrw, ok := rw.(negroni.ResponseWriter); ok {
			fields["status"] = nrw.Status()
		}
		log.WithFields(fields).Debug("HTTP request")
	}
}
