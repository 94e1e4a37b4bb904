// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restdata"
	"github.com/gorilla/mux"
)

func (api *restAPI) fillStyleShort(name string, summary *restdata.StyleShort) error {
	summary.Name = name
	return buildURLs(api.Router, "style", name).
		URL(&summary.URL, "style").
		Error
}

func (api *restAPI) fillStyle(style catalog.Style, result *restdata.Style) error {
	result.FromStyle(style)
	err := api.fillStyleShort(style.Name, &result.StyleShort)
	if err == nil {
		err = buildURLs(api.Router, "style", style.Name).
			URL(&result.SLDURL, "styleSLD").
			Error
	}
	return err
}

// StyleList gets a list of all published styles.
func (api *restAPI) StyleList(ctx *context) (interface{}, error) {
	names, err := api.Catalog.Styles()
	if err != nil {
		return nil, err
	}
	result := restdata.StyleList{Styles: []restdata.StyleShort{}}
	for _, name := range names {
		summary := restdata.StyleShort{}
		err = api.fillStyleShort(name, &summary)
		if err != nil {
			return nil, err
		}
		result.Styles = append(result.Styles, summary)
	}
	return result, nil
}

// StylePost publishes a new style.  The body is either a StylePost or
// a bare SLD document, in which case the "name" query parameter may
// name the style.
func (api *restAPI) StylePost(ctx *context, in interface{}) (interface{}, error) {
	var sld, name string
	switch req := in.(type) {
	case restdata.StylePost:
		sld, name = req.SLD, req.Name
	case restdata.SLDBody:
		sld, name = req.SLD, ctx.QueryParams.Get("name")
	default:
		return nil, errUnmarshal
	}
	style, err := api.Catalog.PublishStyle(sld, name)
	if err != nil {
		return nil, err
	}
	result := restdata.Style{}
	err = api.fillStyle(style, &result)
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: result.URL,
		Body:     result,
	}, nil
}

// StyleGet retrieves the description of a style.
func (api *restAPI) StyleGet(ctx *context) (interface{}, error) {
	style, err := api.Catalog.Style(ctx.Style)
	if err != nil {
		return nil, err
	}
	result := restdata.Style{}
	err = api.fillStyle(style, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StylePut replaces the SLD document of a style.
func (api *restAPI) StylePut(ctx *context, in interface{}) (interface{}, error) {
	body, valid := in.(restdata.SLDBody)
	if !valid {
		return nil, errUnmarshal
	}
	return nil, api.Catalog.UpdateStyle(ctx.Style, body.SLD)
}

// StyleDelete removes a style.
func (api *restAPI) StyleDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.RemoveStyle(ctx.Style, ctx.BoolParam("purge", false))
}

// StyleSLDGet retrieves the SLD document of a style.  It is sent bare
// if the client accepts the SLD media type.
func (api *restAPI) StyleSLDGet(ctx *context) (interface{}, error) {
	sld, err := api.Catalog.SLD(ctx.Style)
	if err != nil {
		return nil, err
	}
	return restdata.SLDBody{SLD: sld}, nil
}

// PopulateStyle adds style-specific routes to a router.
func (api *restAPI) PopulateStyle(r *mux.Router) {
	r.Path("/style").Name("styles").Handler(&resourceHandler{
		Representation: restdata.StylePost{},
		Context:        api.Context,
		Get:            api.StyleList,
		Post:           api.StylePost,
	})
	r.Path("/style/{style}").Name("style").Handler(&resourceHandler{
		Representation: restdata.SLDBody{},
		Context:        api.Context,
		Get:            api.StyleGet,
		Put:            api.StylePut,
		Delete:         api.StyleDelete,
	})
	r.Path("/style/{style}/sld").Name("styleSLD").Handler(&resourceHandler{
		Representation: restdata.SLDBody{},
		Context:        api.Context,
		Get:            api.StyleSLDGet,
	})
}
