// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/stretchr/testify/assert"
)

func TestErrorRoundTrip(t *testing.T) {
	for _, err := range []error{
		catalog.ErrBadName,
		catalog.ErrNoStyleName,
		catalog.ErrReservedStyleName,
		catalog.ErrGone,
		catalog.ErrBadSLD{Reason: "unexpected EOF"},
		catalog.ErrBadShapefile{Reason: "no .shp file"},
		catalog.ErrNoSuchStyle{Name: "roads"},
		catalog.ErrStyleExists{Name: "roads"},
		catalog.ErrNoSuchWorkspace{Name: "topp"},
		catalog.ErrWorkspaceExists{Name: "topp"},
		catalog.ErrWorkspaceNotEmpty{Name: "topp"},
		catalog.ErrNoSuchDatastore{Workspace: "topp", Name: "store"},
		catalog.ErrDatastoreNotEmpty{Workspace: "topp", Name: "store"},
		catalog.ErrNoSuchLayer{Workspace: "topp", Name: "roads"},
		catalog.ErrNoSuchLayer{Name: "roads"},
		catalog.ErrLayerExists{Workspace: "topp", Name: "roads"},
	} {
		resp := ErrorResponse{Error: "error", Message: err.Error()}
		resp.FromError(err)
		assert.NotEqual(t, "error", resp.Error, "%v", err)
		assert.Equal(t, err, resp.ToError())

		// wrappers are transparent
		resp = ErrorResponse{Error: "error", Message: err.Error()}
		resp.FromError(ErrNotFound{Err: err})
		assert.Equal(t, err, resp.ToError())
	}
}

func TestErrorUnknown(t *testing.T) {
	resp := ErrorResponse{Error: "error", Message: "something broke"}
	resp.FromError(errors.New("something broke"))
	assert.Equal(t, "error", resp.Error)
	assert.EqualError(t, resp.ToError(), "something broke")
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		Err    error
		Status int
	}{
		{catalog.ErrBadName, http.StatusBadRequest},
		{catalog.ErrBadSLD{}, http.StatusBadRequest},
		{catalog.ErrNoSuchStyle{}, http.StatusNotFound},
		{catalog.ErrNoSuchLayer{}, http.StatusNotFound},
		{catalog.ErrStyleExists{}, http.StatusConflict},
		{catalog.ErrDatastoreNotEmpty{}, http.StatusConflict},
		{catalog.ErrGone, http.StatusGone},
		{ErrUnsupportedMediaType{Type: "x/y"}, http.StatusUnsupportedMediaType},
		{ErrBadRequest{Err: errors.New("x")}, http.StatusBadRequest},
		{ErrConflict{Err: errors.New("x")}, http.StatusConflict},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, test := range tests {
		assert.Equal(t, test.Status, StatusForError(test.Err), "%v", test.Err)
	}
}

func TestFromPanic(t *testing.T) {
	var resp ErrorResponse
	resp.FromPanic("oops")
	assert.Equal(t, "panic", resp.Error)
	assert.Equal(t, "oops", resp.Message)
	assert.NotEmpty(t, resp.Stack)
}

func TestDecodeJSON(t *testing.T) {
	var post StylePost
	err := Decode("application/json; charset=utf-8",
		strings.NewReader(`{"name":"roads","sld":"<x/>"}`), &post)
	if assert.NoError(t, err) {
		assert.Equal(t, StylePost{Name: "roads", SLD: "<x/>"}, post)
	}

	var upload ShapefileUpload
	err = Decode(V1JSONMediaType,
		strings.NewReader(`{"layer":"roads","zip":"UEsFBg=="}`), &upload)
	if assert.NoError(t, err) {
		assert.Equal(t, "roads", upload.Layer)
		assert.Equal(t, []byte("PK\x05\x06"), upload.Zip)
	}
}

func TestDecodeSLD(t *testing.T) {
	var body SLDBody
	err := Decode(SLDMediaType, strings.NewReader("<sld/>"), &body)
	if assert.NoError(t, err) {
		assert.Equal(t, "<sld/>", body.SLD)
	}

	var in interface{} = StylePost{}
	err = Decode("application/xml", strings.NewReader("<sld/>"), &in)
	if assert.NoError(t, err) {
		assert.Equal(t, SLDBody{SLD: "<sld/>"}, in)
	}

	var post StylePost
	err = Decode(SLDMediaType, strings.NewReader("<sld/>"), &post)
	assert.IsType(t, ErrUnsupportedMediaType{}, err)
}

func TestDecodeUnsupported(t *testing.T) {
	var post StylePost
	err := Decode("", strings.NewReader(""), &post)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "application/octet-stream"}, err)

	err = Decode("text/plain", strings.NewReader(""), &post)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "text/plain"}, err)
}

func TestLayerUpdateEncoder(t *testing.T) {
	enc := new(catalog.LayerEncoder).SetTitle("Roads").SetEnabled(false)
	var update LayerUpdate
	update.FromEncoder(*enc)
	assert.Nil(t, update.Styles)
	assert.Equal(t, *enc, update.ToEncoder())

	enc.Styles = []string{}
	update = LayerUpdate{}
	update.FromEncoder(*enc)
	if assert.NotNil(t, update.Styles) {
		assert.Empty(t, *update.Styles)
	}
	back := update.ToEncoder()
	assert.NotNil(t, back.Styles)
	assert.Empty(t, back.Styles)
}
