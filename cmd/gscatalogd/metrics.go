// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

var catalogSummary = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "diffeo",
		Subsystem: "geoserver",
		Name:      "catalog_objects",
		Help:      "Number of objects in the catalog",
	},
	[]string{
		"kind",
	},
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "diffeo",
		Subsystem: "geoserver",
		Name:      "http_requests_total",
		Help:      "HTTP requests to the REST interface",
	},
	[]string{
		"method",
		"code",
	},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "diffeo",
		Subsystem: "geoserver",
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests to the REST interface",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{
		"method",
	},
)

func init() {
	prometheus.MustRegister(catalogSummary, requestCount, requestDuration)
}

// recordSummary copies catalog counts into the gauges.
func recordSummary(summary catalog.Summary) {
	catalogSummary.WithLabelValues("style").Set(float64(summary.Styles))
	catalogSummary.WithLabelValues("workspace").Set(float64(summary.Workspaces))
	catalogSummary.WithLabelValues("datastore").Set(float64(summary.Datastores))
	catalogSummary.WithLabelValues("layer").Set(float64(summary.Layers))
}

// observe refreshes the catalog gauges every interval until done is
// closed.
func observe(c catalog.Catalog, interval time.Duration, log logrus.FieldLogger, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		summary, err := c.Summarize()
		if err != nil {
			log.WithError(err).Warn("could not summarize catalog")
		} else {
			recordSummary(summary)
		}
		select {
		case <-ticker.C:
		case <-done:
			return
		}
	}
}

// instrument is negroni middleware that counts and times requests.
func instrument(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(rw, req)
	status := http.StatusOK
	if nrw, ok := rw.(negroni.ResponseWriter); ok && nrw.Status() != 0 {
		status = nrw.Status()
	}
	requestCount.WithLabelValues(req.Method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
}
