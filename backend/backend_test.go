// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package backend_test

import (
	"flag"
	"io/ioutil"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-geoserver/backend"
	"github.com/diffeo/go-geoserver/memory"
	"github.com/diffeo/go-geoserver/restserver"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	var b backend.Backend
	if assert.NoError(t, b.Set("memory")) {
		assert.Equal(t, "memory", b.Implementation)
		assert.Equal(t, "", b.Address)
		assert.Equal(t, "memory", b.String())
	}

	if assert.NoError(t, b.Set("postgres://user:pass@db/catalog")) {
		assert.Equal(t, "postgres", b.Implementation)
		assert.Equal(t, "//user:pass@db/catalog", b.Address)
		assert.Equal(t, "postgres://user:pass@db/catalog", b.String())
	}

	assert.Error(t, b.Set(""))
	assert.Error(t, b.Set("mongodb:foo"))
}

func TestFlag(t *testing.T) {
	b := backend.Backend{Implementation: "memory"}
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.SetOutput(ioutil.Discard)
	flags.Var(&b, "backend", "impl:address of catalog storage")

	assert.NoError(t, flags.Parse([]string{"-backend", "postgres:dbname=gs"}))
	assert.Equal(t, backend.Backend{Implementation: "postgres", Address: "dbname=gs"}, b)

	assert.Error(t, flags.Parse([]string{"-backend", "bogus"}))
}

func TestMemory(t *testing.T) {
	b := backend.Backend{Implementation: "memory"}
	c, err := b.Catalog()
	if assert.NoError(t, err) {
		assert.NoError(t, c.CreateWorkspace("topp"))
	}
}

func TestHTTP(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(memory.New()))
	defer server.Close()

	var b backend.Backend
	if !assert.NoError(t, b.Set(server.URL)) {
		return
	}
	assert.Equal(t, "http", b.Implementation)
	c, err := b.Catalog()
	if assert.NoError(t, err) {
		names, err := c.Workspaces()
		if assert.NoError(t, err) {
			assert.Empty(t, names)
		}
	}
}

func TestUnknown(t *testing.T) {
	b := backend.Backend{Implementation: "bogus"}
	_, err := b.Catalog()
	assert.Error(t, err)
}
