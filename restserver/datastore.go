// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restdata"
	"github.com/gorilla/mux"
)

func (api *restAPI) fillDatastoreShort(workspace, name string, summary *restdata.DatastoreShort) error {
	summary.Name = name
	return buildURLs(api.Router, "workspace", workspace, "store", name).
		URL(&summary.URL, "datastore").
		Error
}

func (api *restAPI) fillDatastore(store catalog.Datastore, result *restdata.Datastore) error {
	result.FromDatastore(store)
	err := api.fillDatastoreShort(store.Workspace, store.Name, &result.DatastoreShort)
	if err == nil {
		err = buildURLs(api.Router, "workspace", store.Workspace).
			URL(&result.WorkspaceURL, "workspace").
			Error
	}
	return err
}

// DatastoreList gets a list of the datastores in a workspace.
func (api *restAPI) DatastoreList(ctx *context) (interface{}, error) {
	names, err := api.Catalog.Datastores(ctx.Workspace)
	if err != nil {
		return nil, err
	}
	result := restdata.DatastoreList{Datastores: []restdata.DatastoreShort{}}
	for _, name := range names {
		summary := restdata.DatastoreShort{}
		err = api.fillDatastoreShort(ctx.Workspace, name, &summary)
		if err != nil {
			return nil, err
		}
		result.Datastores = append(result.Datastores, summary)
	}
	return result, nil
}

// DatastoreGet retrieves a datastore.
func (api *restAPI) DatastoreGet(ctx *context) (interface{}, error) {
	store, err := api.Catalog.Datastore(ctx.Workspace, ctx.Datastore)
	if err != nil {
		return nil, err
	}
	result := restdata.Datastore{}
	err = api.fillDatastore(store, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DatastoreDelete removes a datastore.
func (api *restAPI) DatastoreDelete(ctx *context) (interface{}, error) {
	recurse := ctx.BoolParam("recurse", false)
	return nil, api.Catalog.RemoveDatastore(ctx.Workspace, ctx.Datastore, recurse)
}

// ShapefilePost publishes an uploaded shapefile as a new layer,
// creating the datastore if needed.  Returns the new layer.
func (api *restAPI) ShapefilePost(ctx *context, in interface{}) (interface{}, error) {
	upload, valid := in.(restdata.ShapefileUpload)
	if !valid {
		return nil, errUnmarshal
	}
	err := api.Catalog.PublishShp(catalog.Shapefile{
		Workspace:    ctx.Workspace,
		Store:        ctx.Datastore,
		Layer:        upload.Layer,
		Zip:          upload.Zip,
		SRS:          upload.SRS,
		DefaultStyle: upload.DefaultStyle,
	})
	if err != nil {
		return nil, err
	}

	name := upload.Layer
	if name == "" {
		// The catalog accepted the archive, so this will not fail
		info, err := catalog.InspectShapefileZip(upload.Zip)
		if err != nil {
			return nil, err
		}
		name = info.Name
	}
	layer, err := api.Catalog.WorkspaceLayer(ctx.Workspace, name)
	if err != nil {
		return nil, err
	}
	result := restdata.Layer{}
	err = api.fillLayer(layer, &result)
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: result.URL,
		Body:     result,
	}, nil
}

// PopulateDatastore adds datastore-specific routes to a router.  r
// should be rooted at a workspace.
func (api *restAPI) PopulateDatastore(r *mux.Router) {
	r.Path("/datastore").Name("datastores").Handler(&resourceHandler{
		Representation: restdata.DatastoreShort{},
		Context:        api.Context,
		Get:            api.DatastoreList,
	})
	r.Path("/datastore/{store}").Name("datastore").Handler(&resourceHandler{
		Representation: restdata.Datastore{},
		Context:        api.Context,
		Get:            api.DatastoreGet,
		Delete:         api.DatastoreDelete,
	})
	r.Path("/datastore/{store}/shapefile").Name("shapefile").Handler(&resourceHandler{
		Representation: restdata.ShapefileUpload{},
		Context:        api.Context,
		Post:           api.ShapefilePost,
	})
}
