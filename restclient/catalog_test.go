// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/catalog/catalogtest"
	"github.com/diffeo/go-geoserver/memory"
	"github.com/diffeo/go-geoserver/restclient"
	"github.com/diffeo/go-geoserver/restserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic catalog tests through the REST client, which
// talks to the REST server code, which points at an in-memory backend.
type Suite struct {
	catalogtest.Suite
	server *httptest.Server
}

// SetupSuite starts the HTTP server and connects to it.
func (s *Suite) SetupSuite() {
	s.Suite.SetupSuite()
	router := restserver.NewRouter(memory.NewWithClock(s.Clock))
	s.server = httptest.NewServer(router)
	c, err := restclient.New(s.server.URL)
	s.Require().NoError(err)
	s.Catalog = c
}

// TearDownSuite stops the HTTP server.
func (s *Suite) TearDownSuite() {
	s.server.Close()
}

// TestCatalog runs the generic catalog tests.
func TestCatalog(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestEmptyURL(t *testing.T) {
	_, err := restclient.New("")
	assert.Error(t, err, "expected error when given empty URL")
}

// TestRelativeURL checks that a base URL without a scheme and host is
// rejected before any request is made.
func TestRelativeURL(t *testing.T) {
	for _, baseURL := range []string{"/rest/", "localhost:8080/rest/", "rest"} {
		assert.NotPanics(t, func() {
			_, err := restclient.New(baseURL)
			assert.Error(t, err, baseURL)
		}, baseURL)
	}
}

// TestBasicAuth checks that credentials are sent with every request.
func TestBasicAuth(t *testing.T) {
	router := restserver.NewRouter(memory.New())
	handler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		user, pass, ok := req.BasicAuth()
		if !ok || user != "admin" || pass != "geoserver" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		router.ServeHTTP(w, req)
	})
	server := httptest.NewServer(handler)
	defer server.Close()

	_, err := restclient.New(server.URL)
	if assert.Error(t, err) {
		assert.IsType(t, restclient.ErrorHTTP{}, err)
	}

	c, err := restclient.NewWithOptions(server.URL, restclient.Options{
		Username: "admin",
		Password: "geoserver",
	})
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, c.CreateWorkspace("topp"))
	names, err := c.Workspaces()
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"topp"}, names)
	}
}

// TestTypedErrors checks that server errors come back as the catalog's
// own error types.
func TestTypedErrors(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(memory.New()))
	defer server.Close()
	c, err := restclient.New(server.URL)
	if !assert.NoError(t, err) {
		return
	}

	_, err = c.Style("missing")
	assert.Equal(t, catalog.ErrNoSuchStyle{Name: "missing"}, err)

	_, err = c.Datastore("nowhere", "store")
	assert.Equal(t, catalog.ErrNoSuchWorkspace{Name: "nowhere"}, err)

	ok, err := c.ExistsDatastore("nowhere", "store")
	if assert.NoError(t, err) {
		assert.False(t, ok)
	}

	if assert.NoError(t, c.CreateWorkspace("topp")) {
		err = c.CreateWorkspace("topp")
		assert.Equal(t, catalog.ErrWorkspaceExists{Name: "topp"}, err)
	}

	_, err = c.WorkspaceLayer("topp", "nolayer")
	assert.Equal(t, catalog.ErrNoSuchLayer{Workspace: "topp", Name: "nolayer"}, err)
}

// TestDotNames round-trips names that are relative path segments in
// a URL.
func TestDotNames(t *testing.T) {
	backend := memory.New()
	server := httptest.NewServer(restserver.NewRouter(backend))
	defer server.Close()
	c, err := restclient.New(server.URL)
	if !assert.NoError(t, err) {
		return
	}

	for _, name := range []string{".", ".."} {
		if _, err = c.PublishStyle(catalogtest.StyleSLD, name); !assert.NoError(t, err, name) {
			continue
		}
		sld, err := c.SLD(name)
		if assert.NoError(t, err, name) {
			assert.Equal(t, catalogtest.StyleSLD, sld, name)
		}
		assert.NoError(t, c.RemoveStyle(name, true), name)

		if assert.NoError(t, c.CreateWorkspace(name), name) {
			ok, err := c.ExistsWorkspace(name)
			if assert.NoError(t, err, name) {
				assert.True(t, ok, name)
			}
			assert.NoError(t, c.RemoveWorkspace(name, false), name)
		}
	}

	styles, err := backend.Styles()
	if assert.NoError(t, err) {
		assert.Empty(t, styles)
	}
	workspaces, err := backend.Workspaces()
	if assert.NoError(t, err) {
		assert.Empty(t, workspaces)
	}
}
