// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package cache provides name-based caching of catalog objects.  The
// cache wraps some other catalog backend.  Most methods simply pass
// through to the upstream catalog, but methods that fetch a single
// style or layer by name will return a cached copy if one is
// available.
//
// Invalidation
//
// Every mutation made through the cache drops the cached objects it
// could have changed.  Removing or updating a style drops every cached
// layer, since layers may have referred to it.  Removing a workspace
// or a datastore drops every cached layer in that workspace.
//
// Mutations made directly against the upstream catalog, or by another
// process sharing it, are not seen until the cached object is evicted:
//
//     c := cache.New(upstream)
//     c.Style("roads")
//     upstream.UpdateStyle("roads", newSLD)
//     c.SLD("roads")  // may still return the old document
//
// Existence checks, lists, datastores, summaries, and lookups of
// unqualified layer names always go to the upstream catalog.
package cache

import (
	"strings"

	"github.com/diffeo/go-geoserver/catalog"
)

type cache struct {
	upstream catalog.Catalog
	styles   *lru
	slds     *lru
	layers   *lru
}

// New creates a new caching backend, wrapping some other backend.
func New(upstream catalog.Catalog) catalog.Catalog {
	return &cache{
		upstream: upstream,
		styles:   newLRU(64),
		slds:     newLRU(64),
		layers:   newLRU(256),
	}
}

// invalidateStyle drops a style and everything that may refer to it.
func (c *cache) invalidateStyle(name string) {
	c.styles.Remove(name)
	c.slds.Remove(name)
	c.layers.Clear()
}

// invalidateWorkspace drops every layer in a workspace.
func (c *cache) invalidateWorkspace(workspace string) {
	prefix := catalog.QualifyName(workspace, "")
	c.layers.RemoveIf(func(key string) bool {
		return strings.HasPrefix(key, prefix)
	})
}

func (c *cache) PublishStyle(sld, name string) (catalog.Style, error) {
	style, err := c.upstream.PublishStyle(sld, name)
	if err == nil {
		c.styles.Put(style.Name, style)
		c.slds.Put(style.Name, sld)
	}
	return style, err
}

func (c *cache) UpdateStyle(name, sld string) error {
	defer c.invalidateStyle(name)
	return c.upstream.UpdateStyle(name, sld)
}

func (c *cache) RemoveStyle(name string, purge bool) error {
	defer c.invalidateStyle(name)
	return c.upstream.RemoveStyle(name, purge)
}

func (c *cache) CreateWorkspace(name string) error {
	return c.upstream.CreateWorkspace(name)
}

func (c *cache) RemoveWorkspace(name string, recurse bool) error {
	defer c.invalidateWorkspace(name)
	return c.upstream.RemoveWorkspace(name, recurse)
}

func (c *cache) PublishShp(shp catalog.Shapefile) error {
	defer c.invalidateWorkspace(shp.Workspace)
	return c.upstream.PublishShp(shp)
}

func (c *cache) ConfigureLayer(workspace, layer string, encoder catalog.LayerEncoder) error {
	defer c.layers.Remove(catalog.QualifyName(workspace, layer))
	return c.upstream.ConfigureLayer(workspace, layer, encoder)
}

func (c *cache) RemoveLayer(workspace, layer string) error {
	defer c.layers.Remove(catalog.QualifyName(workspace, layer))
	return c.upstream.RemoveLayer(workspace, layer)
}

func (c *cache) RemoveDatastore(workspace, store string, recurse bool) error {
	defer c.invalidateWorkspace(workspace)
	return c.upstream.RemoveDatastore(workspace, store, recurse)
}

func (c *cache) Styles() ([]string, error) {
	return c.upstream.Styles()
}

func (c *cache) ExistsStyle(name string) (bool, error) {
	if _, present := c.styles.Peek(name); present {
		return true, nil
	}
	return c.upstream.ExistsStyle(name)
}

func (c *cache) Style(name string) (catalog.Style, error) {
	style, err := c.styles.Get(name, func(n string) (interface{}, error) {
		return c.upstream.Style(n)
	})
	if err != nil {
		return catalog.Style{}, err
	}
	return style.(catalog.Style), nil
}

func (c *cache) SLD(name string) (string, error) {
	sld, err := c.slds.Get(name, func(n string) (interface{}, error) {
		return c.upstream.SLD(n)
	})
	if err != nil {
		return "", err
	}
	return sld.(string), nil
}

func (c *cache) Workspaces() ([]string, error) {
	return c.upstream.Workspaces()
}

func (c *cache) ExistsWorkspace(name string) (bool, error) {
	return c.upstream.ExistsWorkspace(name)
}

func (c *cache) Datastores(workspace string) ([]string, error) {
	return c.upstream.Datastores(workspace)
}

func (c *cache) Datastore(workspace, name string) (catalog.Datastore, error) {
	return c.upstream.Datastore(workspace, name)
}

func (c *cache) ExistsDatastore(workspace, name string) (bool, error) {
	return c.upstream.ExistsDatastore(workspace, name)
}

func (c *cache) Layers() ([]string, error) {
	return c.upstream.Layers()
}

func (c *cache) Layer(name string) (catalog.Layer, error) {
	workspace, layer := catalog.SplitName(name)
	if workspace == "" {
		return c.upstream.Layer(name)
	}
	return c.WorkspaceLayer(workspace, layer)
}

func (c *cache) WorkspaceLayer(workspace, name string) (catalog.Layer, error) {
	key := catalog.QualifyName(workspace, name)
	layer, err := c.layers.Get(key, func(string) (interface{}, error) {
		return c.upstream.WorkspaceLayer(workspace, name)
	})
	if err != nil {
		return catalog.Layer{}, err
	}
	return copyLayer(layer.(catalog.Layer)), nil
}

func (c *cache) ExistsLayer(workspace, name string) (bool, error) {
	if _, present := c.layers.Peek(catalog.QualifyName(workspace, name)); present {
		return true, nil
	}
	return c.upstream.ExistsLayer(workspace, name)
}

func (c *cache) Summarize() (catalog.Summary, error) {
	return c.upstream.Summarize()
}

// copyLayer returns a layer that shares no slices with the cached one.
func copyLayer(layer catalog.Layer) catalog.Layer {
	if layer.Styles != nil {
		layer.Styles = append([]string{}, layer.Styles...)
	}
	return layer
}
