// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"github.com/diffeo/go-geoserver/catalog"
)

type workspace struct {
	name       string
	datastores map[string]*datastore
	layers     map[string]*layer
}

type datastore struct {
	store catalog.Datastore
}

func (c *memCatalog) CreateWorkspace(name string) error {
	if err := catalog.CheckName(name); err != nil {
		return err
	}
	return c.do(func() error {
		if _, present := c.workspaces[name]; present {
			return catalog.ErrWorkspaceExists{Name: name}
		}
		c.workspaces[name] = &workspace{
			name:       name,
			datastores: make(map[string]*datastore),
			layers:     make(map[string]*layer),
		}
		return nil
	})
}

func (c *memCatalog) RemoveWorkspace(name string, recurse bool) error {
	return c.do(func() error {
		ws, err := c.workspace(name)
		if err != nil {
			return err
		}
		if !recurse && len(ws.datastores) > 0 {
			return catalog.ErrWorkspaceNotEmpty{Name: name}
		}
		delete(c.workspaces, name)
		return nil
	})
}

func (c *memCatalog) Workspaces() (names []string, err error) {
	err = c.do(func() error {
		names = catalog.SortedNames(c.workspaces)
		return nil
	})
	return
}

func (c *memCatalog) ExistsWorkspace(name string) (exists bool, err error) {
	err = c.do(func() error {
		_, exists = c.workspaces[name]
		return nil
	})
	return
}

// datastore looks up a datastore.  It expects to run within the global
// lock.
func (c *memCatalog) datastore(workspace, name string) (*workspace, *datastore, error) {
	ws, err := c.workspace(workspace)
	if err != nil {
		return nil, nil, err
	}
	ds, present := ws.datastores[name]
	if !present {
		return ws, nil, catalog.ErrNoSuchDatastore{Workspace: workspace, Name: name}
	}
	return ws, ds, nil
}

func (c *memCatalog) Datastores(workspace string) (names []string, err error) {
	err = c.do(func() error {
		ws, err := c.workspace(workspace)
		if err != nil {
			return err
		}
		names = catalog.SortedNames(ws.datastores)
		return nil
	})
	return
}

func (c *memCatalog) Datastore(workspace, name string) (result catalog.Datastore, err error) {
	err = c.do(func() error {
		ws, ds, err := c.datastore(workspace, name)
		if err != nil {
			return err
		}
		result = ds.store
		result.FeatureTypes = ws.featureTypes(name)
		return nil
	})
	return
}

func (c *memCatalog) ExistsDatastore(workspace, name string) (exists bool, err error) {
	err = c.do(func() error {
		if ws, present := c.workspaces[workspace]; present {
			_, exists = ws.datastores[name]
		}
		return nil
	})
	return
}

func (c *memCatalog) RemoveDatastore(workspace, name string, recurse bool) error {
	return c.do(func() error {
		ws, _, err := c.datastore(workspace, name)
		if err != nil {
			return err
		}
		owned := ws.featureTypes(name)
		if !recurse && len(owned) > 0 {
			return catalog.ErrDatastoreNotEmpty{Workspace: workspace, Name: name}
		}
		for _, layerName := range owned {
			delete(ws.layers, layerName)
		}
		delete(ws.datastores, name)
		return nil
	})
}

// featureTypes returns the sorted names of the layers backed by a
// datastore.  It expects to run within the global lock.
func (ws *workspace) featureTypes(store string) []string {
	owned := make(map[string]*layer)
	for name, l := range ws.layers {
		if l.layer.Store == store {
			owned[name] = l
		}
	}
	return catalog.SortedNames(owned)
}
