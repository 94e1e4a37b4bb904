// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restdata"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP handler that processes all catalog
// requests.  All catalog resources are under the URL path root, e.g.
// /style/roads.  For more control over this setup, create a
// mux.Router and call PopulateRouter instead.
func NewRouter(c catalog.Catalog) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, c)
	return r
}

// PopulateRouter adds catalog routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the catalog interface under a subpath:
//
//     import "github.com/diffeo/go-geoserver/memory"
//     import "github.com/gorilla/mux"
//     r := mux.NewRouter()
//     s := r.PathPrefix("/rest").Subrouter()
//     c := memory.New()
//     PopulateRouter(s, c)
func PopulateRouter(r *mux.Router, c catalog.Catalog) {
	api := &restAPI{Catalog: c, Router: r}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the catalog REST API.
type restAPI struct {
	Catalog catalog.Catalog
	Router  *mux.Router
}

// PopulateRouter adds all catalog URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.PopulateStyle(r)
	api.PopulateWorkspace(r)
	api.PopulateLayer(r)
	r.Path("/summary").Name("summary").Handler(&resourceHandler{
		Representation: restdata.Summary{},
		Context:        api.Context,
		Get:            api.SummaryGet,
	})
	r.Path("/").Name("root").Handler(&resourceHandler{
		Representation: restdata.RootData{},
		Context:        api.Context,
		Get:            api.RootDocument,
	})
}

func (api *restAPI) RootDocument(ctx *context) (interface{}, error) {
	resp := restdata.RootData{}
	err := buildURLs(api.Router).
		URL(&resp.URL, "root").
		URL(&resp.StylesURL, "styles").
		Template(&resp.StyleURL, "style", "style").
		URL(&resp.WorkspacesURL, "workspaces").
		Template(&resp.WorkspaceURL, "workspace", "workspace").
		URL(&resp.LayersURL, "layers").
		Template(&resp.LayerURL, "layer", "layer").
		URL(&resp.SummaryURL, "summary").
		Error
	return resp, err
}

// SummaryGet counts the objects in the catalog.
func (api *restAPI) SummaryGet(ctx *context) (interface{}, error) {
	summary, err := api.Catalog.Summarize()
	if err != nil {
		return nil, err
	}
	result := restdata.Summary{}
	result.FromSummary(summary)
	return result, nil
}
