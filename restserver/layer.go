// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restdata"
	"github.com/gorilla/mux"
)

func (api *restAPI) fillLayerShort(workspace, name string, summary *restdata.LayerShort) error {
	summary.Name = name
	summary.Workspace = workspace
	return buildURLs(api.Router, "workspace", workspace, "layer", name).
		URL(&summary.URL, "workspaceLayer").
		Error
}

func (api *restAPI) fillLayer(layer catalog.Layer, result *restdata.Layer) error {
	result.FromLayer(layer)
	err := api.fillLayerShort(layer.Workspace, layer.Name, &result.LayerShort)
	if err == nil {
		err = buildURLs(api.Router, "workspace", layer.Workspace).
			URL(&result.WorkspaceURL, "workspace").
			Error
	}
	if err == nil {
		err = buildURLs(api.Router, "workspace", layer.Workspace, "store", layer.Store).
			URL(&result.DatastoreURL, "datastore").
			Error
	}
	return err
}

func (api *restAPI) layerResult(layer catalog.Layer, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	result := restdata.Layer{}
	err = api.fillLayer(layer, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LayerList gets a list of every layer in every workspace.
func (api *restAPI) LayerList(ctx *context) (interface{}, error) {
	names, err := api.Catalog.Layers()
	if err != nil {
		return nil, err
	}
	result := restdata.LayerList{Layers: []restdata.LayerShort{}}
	for _, qualified := range names {
		workspace, name := catalog.SplitName(qualified)
		summary := restdata.LayerShort{}
		err = api.fillLayerShort(workspace, name, &summary)
		if err != nil {
			return nil, err
		}
		result.Layers = append(result.Layers, summary)
	}
	return result, nil
}

// LayerGet finds a layer by a possibly unqualified name.
func (api *restAPI) LayerGet(ctx *context) (interface{}, error) {
	return api.layerResult(api.Catalog.Layer(ctx.Layer))
}

// WorkspaceLayerGet retrieves a layer within a workspace.
func (api *restAPI) WorkspaceLayerGet(ctx *context) (interface{}, error) {
	return api.layerResult(api.Catalog.WorkspaceLayer(ctx.Workspace, ctx.Layer))
}

// WorkspaceLayerPut applies a partial update to a layer.
func (api *restAPI) WorkspaceLayerPut(ctx *context, in interface{}) (interface{}, error) {
	update, valid := in.(restdata.LayerUpdate)
	if !valid {
		return nil, errUnmarshal
	}
	return nil, api.Catalog.ConfigureLayer(ctx.Workspace, ctx.Layer, update.ToEncoder())
}

// WorkspaceLayerDelete removes a layer.
func (api *restAPI) WorkspaceLayerDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.RemoveLayer(ctx.Workspace, ctx.Layer)
}

// PopulateLayer adds the global layer routes to a router.
func (api *restAPI) PopulateLayer(r *mux.Router) {
	r.Path("/layer").Name("layers").Handler(&resourceHandler{
		Representation: restdata.LayerShort{},
		Context:        api.Context,
		Get:            api.LayerList,
	})
	r.Path("/layer/{layer}").Name("layer").Handler(&resourceHandler{
		Representation: restdata.Layer{},
		Context:        api.Context,
		Get:            api.LayerGet,
	})
}

// PopulateWorkspaceLayer adds per-workspace layer routes to a router.
// r should be rooted at a workspace.
func (api *restAPI) PopulateWorkspaceLayer(r *mux.Router) {
	r.Path("/layer/{layer}").Name("workspaceLayer").Handler(&resourceHandler{
		Representation: restdata.LayerUpdate{},
		Context:        api.Context,
		Get:            api.WorkspaceLayerGet,
		Put:            api.WorkspaceLayerPut,
		Delete:         api.WorkspaceLayerDelete,
	})
}
