// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/catalog/catalogtest"
	"github.com/diffeo/go-geoserver/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic catalog tests against the in-memory backend.
type Suite struct {
	catalogtest.Suite
}

// SetupSuite does one-time test setup, creating the backend.
func (s *Suite) SetupSuite() {
	s.Suite.SetupSuite()
	s.Catalog = memory.NewWithClock(s.Clock)
}

// TestCatalog runs the generic catalog tests.
func TestCatalog(t *testing.T) {
	suite.Run(t, &Suite{})
}

// TestConcurrentPublish publishes layers into one workspace from many
// goroutines at once.
func TestConcurrentPublish(t *testing.T) {
	c := memory.New()
	if !assert.NoError(t, c.CreateWorkspace("ws")) {
		return
	}
	zip := catalogtest.ShapefileZip("cities", catalogtest.ShapePoint)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := c.PublishShp(catalog.Shapefile{
				Workspace: "ws",
				Store:     "store",
				Layer:     fmt.Sprintf("layer%02d", i),
				Zip:       zip,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	summary, err := c.Summarize()
	if assert.NoError(t, err) {
		assert.Equal(t, catalog.Summary{Workspaces: 1, Datastores: 1, Layers: 16}, summary)
	}
}
