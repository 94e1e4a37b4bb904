// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/diffeo/go-geoserver/backend"
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/memory"
	"github.com/diffeo/go-geoserver/restclient"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "gscatalogd.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultFlags(t *testing.T) {
	cfg, err := parseFlags("gscatalogd", nil)
	if assert.NoError(t, err) {
		assert.Equal(t, defaultConfig(), cfg)
	}
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
http: ":9090"
backend: "postgres:dbname=catalog"
cache: false
log_requests: true
username: admin
password: geoserver
metrics_interval: 1m
`)
	cfg, err := parseFlags("gscatalogd", []string{"-config", path})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, ":9090", cfg.HTTP)
	assert.Equal(t, backend.Backend{Implementation: "postgres", Address: "dbname=catalog"}, cfg.Backend)
	assert.False(t, cfg.Cache)
	assert.True(t, cfg.LogRequests)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "geoserver", cfg.Password)
	assert.Equal(t, time.Minute, cfg.MetricsInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "http: \":9090\"\nbackend: postgres\n")
	cfg, err := parseFlags("gscatalogd", []string{
		"-config", path,
		"-http", ":7070",
		"-backend", "memory",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, ":7070", cfg.HTTP)
		assert.Equal(t, backend.Backend{Implementation: "memory"}, cfg.Backend)
	}
}

func TestConfigErrors(t *testing.T) {
	path := writeConfig(t, "htttp: \":9090\"\n")
	_, err := parseFlags("gscatalogd", []string{"-config", path})
	assert.Error(t, err, "misspelled key")

	path = writeConfig(t, "backend: nosql\n")
	_, err = parseFlags("gscatalogd", []string{"-config", path})
	assert.Error(t, err, "unknown backend")

	_, err = parseFlags("gscatalogd", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err, "missing file")
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = ioutil.Discard
	return log
}

// TestHandler runs the full handler stack behind basic authentication.
func TestHandler(t *testing.T) {
	cfg := defaultConfig()
	cfg.Username = "admin"
	cfg.Password = "geoserver"
	cfg.LogRequests = true
	c := memory.New()
	server := httptest.NewServer(newHandler(c, cfg, testLogger()))
	defer server.Close()

	resp, err := http.Get(server.URL + "/rest/")
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}

	client, err := restclient.NewWithOptions(server.URL+"/rest/", restclient.Options{
		Username: "admin",
		Password: "geoserver",
		Logger:   testLogger(),
	})
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, client.CreateWorkspace("topp"))
	ok, err := c.ExistsWorkspace("topp")
	if assert.NoError(t, err) {
		assert.True(t, ok)
	}

	// Metrics need no credentials
	resp, err = http.Get(server.URL + "/metrics")
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		assert.True(t, strings.Contains(string(body), "diffeo_geoserver_http_requests_total"))
	}
}

func TestRecordSummary(t *testing.T) {
	recordSummary(catalog.Summary{Styles: 2, Workspaces: 1, Datastores: 3, Layers: 4})
	assert.Equal(t, 2.0, testutil.ToFloat64(catalogSummary.WithLabelValues("style")))
	assert.Equal(t, 1.0, testutil.ToFloat64(catalogSummary.WithLabelValues("workspace")))
	assert.Equal(t, 3.0, testutil.ToFloat64(catalogSummary.WithLabelValues("datastore")))
	assert.Equal(t, 4.0, testutil.ToFloat64(catalogSummary.WithLabelValues("layer")))
}
