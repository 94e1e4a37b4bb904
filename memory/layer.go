// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"github.com/diffeo/go-geoserver/catalog"
)

type layer struct {
	layer catalog.Layer
}

// snapshot returns a copy of the layer that does not share the style
// slice with the stored object.
func (l *layer) snapshot() catalog.Layer {
	result := l.layer
	result.Styles = append([]string{}, l.layer.Styles...)
	return result
}

func (c *memCatalog) PublishShp(shp catalog.Shapefile) error {
	return c.do(func() error {
		ws, err := c.workspace(shp.Workspace)
		if err != nil {
			return err
		}
		prepared, err := catalog.PrepareLayer(shp, c.styleExists)
		if err != nil {
			return err
		}
		if _, present := ws.layers[prepared.Name]; present {
			return catalog.ErrLayerExists{Workspace: ws.name, Name: prepared.Name}
		}
		now := c.clock.Now()
		if _, present := ws.datastores[shp.Store]; !present {
			ws.datastores[shp.Store] = &datastore{
				store: catalog.Datastore{
					Workspace:   ws.name,
					Name:        shp.Store,
					Type:        catalog.DatastoreTypeShapefile,
					Enabled:     true,
					DateCreated: now,
				},
			}
		}
		prepared.DateCreated = now
		prepared.DateModified = now
		ws.layers[prepared.Name] = &layer{layer: prepared}
		return nil
	})
}

// layer looks up a layer in a workspace.  It expects to run within the
// global lock.
func (c *memCatalog) layer(workspace, name string) (*layer, error) {
	ws, err := c.workspace(workspace)
	if err != nil {
		return nil, err
	}
	l, present := ws.layers[name]
	if !present {
		return nil, catalog.ErrNoSuchLayer{Workspace: workspace, Name: name}
	}
	return l, nil
}

func (c *memCatalog) ConfigureLayer(workspace, name string, encoder catalog.LayerEncoder) error {
	return c.do(func() error {
		l, err := c.layer(workspace, name)
		if err != nil {
			return err
		}
		if err = catalog.CheckEncoder(encoder, c.styleExists); err != nil {
			return err
		}
		encoder.Apply(&l.layer)
		l.layer.DateModified = c.clock.Now()
		return nil
	})
}

func (c *memCatalog) RemoveLayer(workspace, name string) error {
	return c.do(func() error {
		if _, err := c.layer(workspace, name); err != nil {
			return err
		}
		delete(c.workspaces[workspace].layers, name)
		return nil
	})
}

func (c *memCatalog) Layers() (names []string, err error) {
	err = c.do(func() error {
		names = []string{}
		for _, wsName := range catalog.SortedNames(c.workspaces) {
			for _, name := range catalog.SortedNames(c.workspaces[wsName].layers) {
				names = append(names, catalog.QualifyName(wsName, name))
			}
		}
		return nil
	})
	return
}

func (c *memCatalog) Layer(name string) (result catalog.Layer, err error) {
	workspace, bare := catalog.SplitName(name)
	if workspace != "" {
		return c.WorkspaceLayer(workspace, bare)
	}
	err = c.do(func() error {
		for _, wsName := range catalog.SortedNames(c.workspaces) {
			if l, present := c.workspaces[wsName].layers[bare]; present {
				result = l.snapshot()
				return nil
			}
		}
		return catalog.ErrNoSuchLayer{Name: bare}
	})
	return
}

func (c *memCatalog) WorkspaceLayer(workspace, name string) (result catalog.Layer, err error) {
	err = c.do(func() error {
		l, err := c.layer(workspace, name)
		if err != nil {
			return err
		}
		result = l.snapshot()
		return nil
	})
	return
}

func (c *memCatalog) ExistsLayer(workspace, name string) (exists bool, err error) {
	err = c.do(func() error {
		if ws, present := c.workspaces[workspace]; present {
			_, exists = ws.layers[name]
		}
		return nil
	})
	return
}
