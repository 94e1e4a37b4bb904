// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restdata"
)

func layerVars(name string) map[string]interface{} {
	return map[string]interface{}{"layer": name}
}

func (c *restCatalog) ConfigureLayer(workspace, name string, encoder catalog.LayerEncoder) error {
	ws, err := c.workspace(workspace)
	if err != nil {
		return err
	}
	var req restdata.LayerUpdate
	req.FromEncoder(encoder)
	return c.PutTo(ws.LayerURL, layerVars(name), req, nil)
}

func (c *restCatalog) RemoveLayer(workspace, name string) error {
	ws, err := c.workspace(workspace)
	if err != nil {
		return err
	}
	return c.DeleteAt(ws.LayerURL, layerVars(name), "")
}

func (c *restCatalog) Layers() ([]string, error) {
	var resp restdata.LayerList
	err := c.GetFrom(c.Representation.LayersURL, noVars(), &resp)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(resp.Layers))
	for i, layer := range resp.Layers {
		names[i] = catalog.QualifyName(layer.Workspace, layer.Name)
	}
	return names, nil
}

func (c *restCatalog) Layer(name string) (catalog.Layer, error) {
	var resp restdata.Layer
	err := c.GetFrom(c.Representation.LayerURL, layerVars(name), &resp)
	if err != nil {
		return catalog.Layer{}, err
	}
	return resp.ToLayer(), nil
}

func (c *restCatalog) WorkspaceLayer(workspace, name string) (catalog.Layer, error) {
	ws, err := c.workspace(workspace)
	if err != nil {
		return catalog.Layer{}, err
	}
	var resp restdata.Layer
	err = c.GetFrom(ws.LayerURL, layerVars(name), &resp)
	if err != nil {
		return catalog.Layer{}, err
	}
	return resp.ToLayer(), nil
}

func (c *restCatalog) ExistsLayer(workspace, name string) (bool, error) {
	_, err := c.WorkspaceLayer(workspace, name)
	return exists(err)
}
