// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a catalog HTTP REST client that talks to
// the matching server in the "restserver" package.
//
// The server in github.com/diffeo/go-geoserver/cmd/gscatalogd can run
// a compatible REST server.  Call New() with the base URL of that
// service; for instance,
//
//     c, err := restclient.New("http://localhost:8080/rest/")
//
// If the server requires credentials, use NewWithOptions:
//
//     c, err := restclient.NewWithOptions("http://localhost:8080/rest/",
//         restclient.Options{Username: "admin", Password: "geoserver"})
package restclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restdata"
	"github.com/sirupsen/logrus"
)

// Options controls how the client talks to the server.
type Options struct {
	// Username and Password, if Username is non-empty, are sent
	// with every request using HTTP basic authentication.
	Username string
	Password string

	// HTTPClient performs the requests.  If nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client

	// Logger receives a debug-level entry for every request.  If
	// nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

// New creates a new catalog interface that speaks to an external REST
// server.
func New(baseURL string) (catalog.Catalog, error) {
	return NewWithOptions(baseURL, Options{})
}

// NewWithOptions creates a new catalog interface that speaks to an
// external REST server, with explicit connection options.  It fetches
// the server's root document, so it fails if the server cannot be
// reached.
func NewWithOptions(baseURL string, opts Options) (catalog.Catalog, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("REST base URL %q must be absolute", baseURL)
	}

	conn := &connection{
		HTTPClient: opts.HTTPClient,
		Username:   opts.Username,
		Password:   opts.Password,
		Log:        opts.Logger,
	}
	if conn.HTTPClient == nil {
		conn.HTTPClient = http.DefaultClient
	}
	if conn.Log == nil {
		conn.Log = logrus.StandardLogger()
	}
	c := &restCatalog{
		resource: resource{URL: base, conn: conn},
	}
	if err = c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

type restCatalog struct {
	resource
	Representation restdata.RootData
}

func (c *restCatalog) Refresh() error {
	c.Representation = restdata.RootData{}
	return c.Get(&c.Representation)
}

// noVars is the variable map for URLs that are not templates.
func noVars() map[string]interface{} {
	return map[string]interface{}{}
}

// exists converts a lookup result into an existence check.
func exists(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if catalog.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

func (c *restCatalog) Summarize() (catalog.Summary, error) {
	var resp restdata.Summary
	err := c.GetFrom(c.Representation.SummaryURL, noVars(), &resp)
	if err != nil {
		return catalog.Summary{}, err
	}
	return resp.ToSummary(), nil
}
