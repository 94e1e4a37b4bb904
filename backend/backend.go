// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a catalog
// interface based on command-line flags.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/memory"
	"github.com/diffeo/go-geoserver/postgres"
	"github.com/diffeo/go-geoserver/restclient"
)

// Backend describes user-visible parameters to store catalog data.
// This implements the flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{Implementation: "memory"}
//         flag.Var(&backend, "backend", "impl:address of catalog storage")
//         flag.Parse()
//         c, err := backend.Catalog()
//     }
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "memory".
	Implementation string

	// Address holds some backend-specific address, such as a
	// database connect string.
	Address string
}

// Implementations lists the known values of Backend.Implementation.
var Implementations = []string{"memory", "postgres", "http"}

// Catalog creates a new catalog interface.  This generally should be
// only called once.  If the backend has in-process state, such as a
// database connection pool or an in-memory store, calling this
// multiple times will create multiple copies of that state.  In
// particular, if b.Implementation is "memory", multiple calls to this
// will create multiple independent catalogs.
//
// "http" and "https" talk to a remote REST server; the address is the
// rest of its URL, so "http://localhost:8080/" is a valid backend
// string.
func (b *Backend) Catalog() (catalog.Catalog, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(), nil
	case "postgres", "postgresql":
		return postgres.New(b.Address)
	case "http", "https":
		return restclient.New(b.String())
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", b.Implementation)
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Note that Set does not
// validate the b.Address part of the string or attempt to actually
// make a connection.
func (b *Backend) Set(param string) error {
	if param == "" {
		return errors.New("must specify a backend type")
	}
	parts := strings.SplitN(param, ":", 2)
	impl := parts[0]
	switch impl {
	case "memory", "postgres", "postgresql", "http", "https":
	default:
		return fmt.Errorf("unknown catalog backend %q (known: %s)",
			impl, strings.Join(Implementations, ", "))
	}
	b.Implementation = impl
	b.Address = ""
	if len(parts) == 2 {
		b.Address = parts[1]
	}
	return nil
}
