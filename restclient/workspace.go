// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restdata"
)

func (c *restCatalog) CreateWorkspace(name string) error {
	var resp restdata.Workspace
	req := restdata.WorkspaceShort{}
	req.Name = name
	return c.PostTo(c.Representation.WorkspacesURL, noVars(), req, &resp)
}

func (c *restCatalog) RemoveWorkspace(name string, recurse bool) error {
	flag := ""
	if recurse {
		flag = "recurse"
	}
	vars := map[string]interface{}{"workspace": name}
	return c.DeleteAt(c.Representation.WorkspaceURL, vars, flag)
}

func (c *restCatalog) Workspaces() ([]string, error) {
	var resp restdata.WorkspaceList
	err := c.GetFrom(c.Representation.WorkspacesURL, noVars(), &resp)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(resp.Workspaces))
	for i, ws := range resp.Workspaces {
		names[i] = ws.Name
	}
	return names, nil
}

// workspace fetches the representation of a workspace, which holds
// the links to its contents.
func (c *restCatalog) workspace(name string) (*restdata.Workspace, error) {
	resp := &restdata.Workspace{}
	vars := map[string]interface{}{"workspace": name}
	err := c.GetFrom(c.Representation.WorkspaceURL, vars, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *restCatalog) ExistsWorkspace(name string) (bool, error) {
	_, err := c.workspace(name)
	return exists(err)
}

func storeVars(name string) map[string]interface{} {
	return map[string]interface{}{"store": name}
}

func (c *restCatalog) Datastores(workspace string) ([]string, error) {
	ws, err := c.workspace(workspace)
	if err != nil {
		return nil, err
	}
	var resp restdata.DatastoreList
	err = c.GetFrom(ws.DatastoresURL, noVars(), &resp)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(resp.Datastores))
	for i, store := range resp.Datastores {
		names[i] = store.Name
	}
	return names, nil
}

func (c *restCatalog) Datastore(workspace, name string) (catalog.Datastore, error) {
	ws, err := c.workspace(workspace)
	if err != nil {
		return catalog.Datastore{}, err
	}
	var resp restdata.Datastore
	err = c.GetFrom(ws.DatastoreURL, storeVars(name), &resp)
	if err != nil {
		return catalog.Datastore{}, err
	}
	return resp.ToDatastore(), nil
}

func (c *restCatalog) ExistsDatastore(workspace, name string) (bool, error) {
	_, err := c.Datastore(workspace, name)
	return exists(err)
}

func (c *restCatalog) RemoveDatastore(workspace, name string, recurse bool) error {
	ws, err := c.workspace(workspace)
	if err != nil {
		return err
	}
	flag := ""
	if recurse {
		flag = "recurse"
	}
	return c.DeleteAt(ws.DatastoreURL, storeVars(name), flag)
}

func (c *restCatalog) PublishShp(shp catalog.Shapefile) error {
	ws, err := c.workspace(shp.Workspace)
	if err != nil {
		return err
	}
	req := restdata.ShapefileUpload{
		Layer:        shp.Layer,
		SRS:          shp.SRS,
		DefaultStyle: shp.DefaultStyle,
		Zip:          shp.Zip,
	}
	var resp restdata.Layer
	return c.PostTo(ws.ShapefileURL, storeVars(shp.Store), req, &resp)
}
