// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains the URL builder used to fill in resource links.

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/diffeo/go-geoserver/restdata"
	"github.com/gorilla/mux"
)

// urlBuilder fills in several route URLs sharing the same route
// variables, remembering the first error.  Typical use is
//
//     err := buildURLs(api.Router, "workspace", name).
//         URL(&result.URL, "workspace").
//         Template(&result.LayerURL, "workspaceLayer", "layer").
//         Error
type urlBuilder struct {
	Router *mux.Router
	Params []string
	Error  error
}

// buildURLs starts a urlBuilder.  params alternate route variable
// names and (unescaped) values.
func buildURLs(router *mux.Router, params ...string) *urlBuilder {
	for i, value := range params {
		if i%2 == 1 {
			params[i] = restdata.MaybeEncodeName(value)
		}
	}
	return &urlBuilder{Router: router, Params: params}
}

// expand builds the URL of a named route from params, unless an
// earlier step failed.
func (u *urlBuilder) expand(route string, params []string) *url.URL {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
		return nil
	}
	built, err := r.URL(params...)
	if err != nil {
		u.Error = err
		return nil
	}
	return built
}

// URL fills in the complete URL of a route.
func (u *urlBuilder) URL(out *string, route string) *urlBuilder {
	if built := u.expand(route, u.Params); built != nil {
		*out = built.String()
	}
	return u
}

// templateMarker stands in for a template variable while mux builds
// the URL.  It cannot survive MaybeEncodeName, so no real name
// produces it.
const templateMarker = "---"

// Template fills in a URI template for a route, with param left as a
// template variable.
func (u *urlBuilder) Template(out *string, route, param string) *urlBuilder {
	params := append([]string{param, templateMarker}, u.Params...)
	if built := u.expand(route, params); built != nil {
		*out = strings.Replace(built.String(), templateMarker, "{"+param+"}", 1)
	}
	return u
}
