// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache_test

import (
	"testing"

	"github.com/diffeo/go-geoserver/cache"
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/catalog/catalogtest"
	"github.com/diffeo/go-geoserver/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic catalog tests against a cache wrapping the
// in-memory backend.
type Suite struct {
	catalogtest.Suite
}

// SetupSuite does one-time test setup, creating the backend.
func (s *Suite) SetupSuite() {
	s.Suite.SetupSuite()
	s.Catalog = cache.New(memory.NewWithClock(s.Clock))
}

// TestCatalog runs the generic catalog tests.
func TestCatalog(t *testing.T) {
	suite.Run(t, &Suite{})
}

type CacheAssertions struct {
	*assert.Assertions
	Backend catalog.Catalog
	Catalog catalog.Catalog
}

func NewCacheAssertions(t assert.TestingT) *CacheAssertions {
	backend := memory.New()
	return &CacheAssertions{
		assert.New(t),
		backend,
		cache.New(backend),
	}
}

// Layer publishes a point layer through the cache; if it fails, fail
// the test.
func (a *CacheAssertions) Layer(workspace, store, layer string) {
	ok, err := a.Catalog.ExistsWorkspace(workspace)
	if a.NoError(err) && !ok {
		a.NoError(a.Catalog.CreateWorkspace(workspace))
	}
	err = a.Catalog.PublishShp(catalog.Shapefile{
		Workspace: workspace,
		Store:     store,
		Layer:     layer,
		Zip:       catalogtest.ShapefileZip(layer, catalogtest.ShapePoint),
	})
	if !a.NoError(err, "error publishing layer") {
		a.FailNow("cannot publish layer")
	}
}

// TestStaleUpstream shows that changes made behind the cache's back
// are not seen while the object is cached.
func TestStaleUpstream(t *testing.T) {
	a := NewCacheAssertions(t)
	_, err := a.Catalog.PublishStyle(catalogtest.StyleSLD, "")
	if !a.NoError(err) {
		return
	}
	sld, err := a.Catalog.SLD(catalogtest.StyleName)
	if a.NoError(err) {
		a.Equal(catalogtest.StyleSLD, sld)
	}

	a.NoError(a.Backend.UpdateStyle(catalogtest.StyleName, catalogtest.StyleSLD2))
	sld, err = a.Catalog.SLD(catalogtest.StyleName)
	if a.NoError(err) {
		a.Equal(catalogtest.StyleSLD, sld, "expected the cached document")
	}

	// Updating through the cache refreshes it
	a.NoError(a.Catalog.UpdateStyle(catalogtest.StyleName, catalogtest.StyleSLD2))
	sld, err = a.Catalog.SLD(catalogtest.StyleName)
	if a.NoError(err) {
		a.Equal(catalogtest.StyleSLD2, sld)
	}
}

// TestStyleRemovalDropsLayers checks that a cached layer picks up the
// default style change made by removing its style.
func TestStyleRemovalDropsLayers(t *testing.T) {
	a := NewCacheAssertions(t)
	_, err := a.Catalog.PublishStyle(catalogtest.StyleSLD, "")
	if !a.NoError(err) {
		return
	}
	a.Layer("topp", "store", "cities")
	a.NoError(a.Catalog.ConfigureLayer("topp", "cities",
		*new(catalog.LayerEncoder).SetDefaultStyle(catalogtest.StyleName)))

	layer, err := a.Catalog.Layer("topp:cities")
	if a.NoError(err) {
		a.Equal(catalogtest.StyleName, layer.DefaultStyle)
	}

	a.NoError(a.Catalog.RemoveStyle(catalogtest.StyleName, true))
	layer, err = a.Catalog.WorkspaceLayer("topp", "cities")
	if a.NoError(err) {
		a.Equal(catalog.DefaultStyleGeneric, layer.DefaultStyle)
	}
}

// TestWorkspaceRemovalDropsLayers checks that removing a workspace
// forgets only its own layers.
func TestWorkspaceRemovalDropsLayers(t *testing.T) {
	a := NewCacheAssertions(t)
	a.Layer("topp", "store", "cities")
	a.Layer("sf", "store", "cities")
	_, err := a.Catalog.WorkspaceLayer("topp", "cities")
	a.NoError(err)
	_, err = a.Catalog.WorkspaceLayer("sf", "cities")
	a.NoError(err)

	a.NoError(a.Catalog.RemoveWorkspace("topp", true))

	_, err = a.Catalog.WorkspaceLayer("topp", "cities")
	a.Equal(catalog.ErrNoSuchWorkspace{Name: "topp"}, err)
	ok, err := a.Catalog.ExistsLayer("topp", "cities")
	if a.NoError(err) {
		a.False(ok)
	}
	ok, err = a.Catalog.ExistsLayer("sf", "cities")
	if a.NoError(err) {
		a.True(ok)
	}
}

// TestCachedLayerIsCopied checks that callers cannot modify the cached
// style list.
func TestCachedLayerIsCopied(t *testing.T) {
	a := NewCacheAssertions(t)
	a.Layer("topp", "store", "cities")
	a.NoError(a.Catalog.ConfigureLayer("topp", "cities",
		*new(catalog.LayerEncoder).AddStyle(catalog.DefaultStylePoint)))

	layer, err := a.Catalog.WorkspaceLayer("topp", "cities")
	if a.NoError(err) && a.Len(layer.Styles, 1) {
		layer.Styles[0] = "scribbled"
	}
	layer, err = a.Catalog.WorkspaceLayer("topp", "cities")
	if a.NoError(err) {
		a.Equal([]string{catalog.DefaultStylePoint}, layer.Styles)
	}
}
