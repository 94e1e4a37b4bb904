// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restdata"
	"github.com/gorilla/mux"
)

func (api *restAPI) fillWorkspaceShort(name string, summary *restdata.WorkspaceShort) error {
	summary.Name = name
	return buildURLs(api.Router, "workspace", name).
		URL(&summary.URL, "workspace").
		Error
}

func (api *restAPI) fillWorkspace(name string, result *restdata.Workspace) error {
	err := api.fillWorkspaceShort(name, &result.WorkspaceShort)
	if err == nil {
		err = buildURLs(api.Router, "workspace", name).
			URL(&result.DatastoresURL, "datastores").
			Template(&result.DatastoreURL, "datastore", "store").
			Template(&result.ShapefileURL, "shapefile", "store").
			Template(&result.LayerURL, "workspaceLayer", "layer").
			Error
	}
	return err
}

// WorkspaceList gets a list of all workspaces.
func (api *restAPI) WorkspaceList(ctx *context) (interface{}, error) {
	names, err := api.Catalog.Workspaces()
	if err != nil {
		return nil, err
	}
	result := restdata.WorkspaceList{Workspaces: []restdata.WorkspaceShort{}}
	for _, name := range names {
		summary := restdata.WorkspaceShort{}
		err = api.fillWorkspaceShort(name, &summary)
		if err != nil {
			return nil, err
		}
		result.Workspaces = append(result.Workspaces, summary)
	}
	return result, nil
}

// WorkspacePost creates a new workspace.
func (api *restAPI) WorkspacePost(ctx *context, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.WorkspaceShort)
	if !valid {
		return nil, errUnmarshal
	}
	err := api.Catalog.CreateWorkspace(req.Name)
	if err != nil {
		return nil, err
	}
	result := restdata.Workspace{}
	err = api.fillWorkspace(req.Name, &result)
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: result.URL,
		Body:     result,
	}, nil
}

// WorkspaceGet returns links to the contents of a workspace.
func (api *restAPI) WorkspaceGet(ctx *context) (interface{}, error) {
	exists, err := api.Catalog.ExistsWorkspace(ctx.Workspace)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, catalog.ErrNoSuchWorkspace{Name: ctx.Workspace}
	}
	result := restdata.Workspace{}
	err = api.fillWorkspace(ctx.Workspace, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// WorkspaceDelete removes a workspace.
func (api *restAPI) WorkspaceDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.RemoveWorkspace(ctx.Workspace, ctx.BoolParam("recurse", false))
}

// PopulateWorkspace adds workspace-specific routes to a router.
func (api *restAPI) PopulateWorkspace(r *mux.Router) {
	r.Path("/workspace").Name("workspaces").Handler(&resourceHandler{
		Representation: restdata.WorkspaceShort{},
		Context:        api.Context,
		Get:            api.WorkspaceList,
		Post:           api.WorkspacePost,
	})
	r.Path("/workspace/{workspace}").Name("workspace").Handler(&resourceHandler{
		Representation: restdata.Workspace{},
		Context:        api.Context,
		Get:            api.WorkspaceGet,
		Delete:         api.WorkspaceDelete,
	})
	sr := r.PathPrefix("/workspace/{workspace}").Subrouter()
	api.PopulateDatastore(sr)
	api.PopulateWorkspaceLayer(sr)
}
