// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/diffeo/go-geoserver/restdata"
	"github.com/gorilla/mux"
)

// errUnmarshal is returned if the put/post contract is violated and
// a handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// context holds the names extracted from URL parameters.  Objects are
// not looked up here; handlers let the catalog report missing ones.
type context struct {
	Style       string
	Workspace   string
	Datastore   string
	Layer       string
	QueryParams url.Values
}

// routeVars maps mux route variables to the context field they fill.
var routeVars = []struct {
	Var   string
	Field func(*context) *string
}{
	{"style", func(ctx *context) *string { return &ctx.Style }},
	{"workspace", func(ctx *context) *string { return &ctx.Workspace }},
	{"store", func(ctx *context) *string { return &ctx.Datastore }},
	{"layer", func(ctx *context) *string { return &ctx.Layer }},
}

func (api *restAPI) Context(req *http.Request) (*context, error) {
	ctx := &context{QueryParams: req.URL.Query()}
	vars := mux.Vars(req)
	for _, rv := range routeVars {
		value, present := vars[rv.Var]
		if !present {
			continue
		}
		name, err := restdata.MaybeDecodeName(value)
		if err != nil {
			return nil, restdata.ErrBadRequest{Err: err}
		}
		*rv.Field(ctx) = name
	}
	return ctx, nil
}

// BoolParam looks at ctx.QueryParams for a parameter named name.  If
// it has a normally-truthy value (1, on, false, no, ...) then return
// that value.  Otherwise (empty string, foo, ...) return def.
func (ctx *context) BoolParam(name string, def bool) bool {
	switch strings.ToLower(ctx.QueryParams.Get(name)) {
	case "0", "f", "n", "false", "off", "no":
		return false
	case "1", "t", "y", "true", "on", "yes":
		return true
	default:
		return def
	}
}
