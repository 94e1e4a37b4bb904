// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package catalogtest provides generic functional tests for the
// catalog interface.  A typical backend test module needs to wrap
// Suite to create its backend:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/diffeo/go-geoserver/catalog/catalogtest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // Suite is the per-backend generic test suite.
//     type Suite struct{
//             catalogtest.Suite
//     }
//
//     // SetupSuite does global setup for the test suite.
//     func (s *Suite) SetupSuite() {
//             s.Suite.SetupSuite()
//             s.Catalog = NewWithClock(s.Clock)
//     }
//
//     // TestCatalog runs the catalog generic tests.
//     func TestCatalog(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
//
// Every test starts from an empty catalog: SetupTest removes all
// workspaces and styles through the manager.
package catalogtest

import (
	"io/ioutil"
	"path/filepath"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/manager"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic catalog backend test suite.
type Suite struct {
	suite.Suite

	// Clock contains the alternate time source to be used in tests.  It
	// is pre-initialized to a mock clock.
	Clock *clock.Mock

	// Catalog contains the top-level interface to the backend under
	// test.  It is set by importing packages.
	Catalog catalog.Catalog

	// Manager wraps Catalog in the boolean Publisher/Reader pair.
	// It is recreated before every test.
	Manager *manager.Manager
}

// SetupSuite does one-time initialization for the test suite.
func (s *Suite) SetupSuite() {
	s.Clock = clock.NewMock()
}

// SetupTest resets the catalog to an empty state before each test.
func (s *Suite) SetupTest() {
	log := logrus.New()
	log.Out = ioutil.Discard
	s.Manager = manager.New(s.Catalog, log)
	s.Require().True(s.Manager.DeleteAll(), "could not clear catalog")
}

// tempFile writes content to a file in a per-test temporary directory
// and returns its path.
func (s *Suite) tempFile(name string, content []byte) string {
	path := filepath.Join(s.T().TempDir(), name)
	err := ioutil.WriteFile(path, content, 0644)
	s.Require().NoError(err)
	return path
}

// cleanupTestStyle removes a style if a previous run left it behind,
// so the test starts from a known state.
func (s *Suite) cleanupTestStyle(name string) {
	if s.Manager.Reader.ExistsStyle(name) {
		if !s.Manager.Publisher.RemoveStyle(name) {
			s.FailNow("Could not unpublish style " + name)
		}
	}
	s.Require().False(s.Manager.Reader.ExistsStyle(name), "Cleanup failed")
}

// publishStyle publishes one of the test styles through the catalog
// and fails the test on error.
func (s *Suite) publishStyle(sld, name string) catalog.Style {
	style, err := s.Catalog.PublishStyle(sld, name)
	s.Require().NoError(err)
	return style
}

// createWorkspace creates a workspace and fails the test on error.
func (s *Suite) createWorkspace(name string) {
	s.Require().NoError(s.Catalog.CreateWorkspace(name))
}

// publishCities publishes the point shapefile as a layer and fails
// the test on error.
func (s *Suite) publishCities(workspace, store, layer, style string) {
	err := s.Catalog.PublishShp(catalog.Shapefile{
		Workspace:    workspace,
		Store:        store,
		Layer:        layer,
		Zip:          ShapefileZip("cities", ShapePoint),
		SRS:          "EPSG:4326",
		DefaultStyle: style,
	})
	s.Require().NoError(err)
}
