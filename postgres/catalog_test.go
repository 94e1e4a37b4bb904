// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres_test

import (
	"os"
	"testing"

	"github.com/diffeo/go-geoserver/catalog/catalogtest"
	"github.com/diffeo/go-geoserver/postgres"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic catalog tests against PostgreSQL.
//
// This creates a PostgreSQL catalog using an empty string as the
// connection string.  This means that, when you run "go test", you
// must set environment variables as described in
// http://www.postgresql.org/docs/current/static/libpq-envars.html;
// the tests are skipped if PGHOST is not set.  The tests delete every
// workspace and style in the target database.
type Suite struct {
	catalogtest.Suite
}

// SetupSuite does one-time test setup, connecting to the database.
func (s *Suite) SetupSuite() {
	s.Suite.SetupSuite()
	c, err := postgres.NewWithClock("", s.Clock)
	s.Require().NoError(err)
	s.Catalog = c
}

// TestCatalog runs the generic catalog tests.
func TestCatalog(t *testing.T) {
	if os.Getenv("PGHOST") == "" {
		t.Skip("PGHOST not set")
	}
	suite.Run(t, &Suite{})
}
