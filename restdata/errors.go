// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/diffeo/go-geoserver/catalog"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

func (e ErrNotFound) Unwrap() error {
	return e.Err
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

func (e ErrBadRequest) Unwrap() error {
	return e.Err
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// ErrConflict is a wrapper error indicating that the request collides
// with the current state of the catalog, such as creating a duplicate
// object or removing a non-empty one.
type ErrConflict struct {
	Err error
}

func (e ErrConflict) Error() string {
	return e.Err.Error()
}

func (e ErrConflict) Unwrap() error {
	return e.Err
}

// HTTPStatus returns a fixed 409 Conflict HTTP status code.
func (e ErrConflict) HTTPStatus() int {
	return http.StatusConflict
}

// StatusForError picks the HTTP status code for a well-known catalog
// error.  Errors that implement ErrorStatus choose their own.  Returns
// 500 Internal Server Error for anything unrecognized.
func StatusForError(err error) int {
	if errS, hasStatus := err.(ErrorStatus); hasStatus {
		return errS.HTTPStatus()
	}
	switch err {
	case catalog.ErrBadName, catalog.ErrNoStyleName, catalog.ErrReservedStyleName:
		return http.StatusBadRequest
	case catalog.ErrGone:
		return http.StatusGone
	}
	switch err.(type) {
	case catalog.ErrBadSLD, catalog.ErrBadShapefile:
		return http.StatusBadRequest
	case catalog.ErrNoSuchStyle, catalog.ErrNoSuchWorkspace,
		catalog.ErrNoSuchDatastore, catalog.ErrNoSuchLayer:
		return http.StatusNotFound
	case catalog.ErrStyleExists, catalog.ErrWorkspaceExists,
		catalog.ErrLayerExists, catalog.ErrWorkspaceNotEmpty,
		catalog.ErrDatastoreNotEmpty:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// FromError populates an ErrorResponse to fill in its fields based
// on an error value.  This remaps the well-known catalog errors to
// specific e.Error codes.
func (e *ErrorResponse) FromError(err error) {
	switch err {
	case catalog.ErrBadName:
		e.Error = "ErrBadName"
	case catalog.ErrNoStyleName:
		e.Error = "ErrNoStyleName"
	case catalog.ErrReservedStyleName:
		e.Error = "ErrReservedStyleName"
	case catalog.ErrGone:
		e.Error = "ErrGone"
	}
	switch et := err.(type) {
	case catalog.ErrBadSLD:
		e.Error = "ErrBadSLD"
		e.Value = et.Reason
	case catalog.ErrBadShapefile:
		e.Error = "ErrBadShapefile"
		e.Value = et.Reason
	case catalog.ErrNoSuchStyle:
		e.Error = "ErrNoSuchStyle"
		e.Value = et.Name
	case catalog.ErrStyleExists:
		e.Error = "ErrStyleExists"
		e.Value = et.Name
	case catalog.ErrNoSuchWorkspace:
		e.Error = "ErrNoSuchWorkspace"
		e.Value = et.Name
	case catalog.ErrWorkspaceExists:
		e.Error = "ErrWorkspaceExists"
		e.Value = et.Name
	case catalog.ErrWorkspaceNotEmpty:
		e.Error = "ErrWorkspaceNotEmpty"
		e.Value = et.Name
	case catalog.ErrNoSuchDatastore:
		e.Error = "ErrNoSuchDatastore"
		e.Workspace = et.Workspace
		e.Value = et.Name
	case catalog.ErrDatastoreNotEmpty:
		e.Error = "ErrDatastoreNotEmpty"
		e.Workspace = et.Workspace
		e.Value = et.Name
	case catalog.ErrNoSuchLayer:
		e.Error = "ErrNoSuchLayer"
		e.Workspace = et.Workspace
		e.Value = et.Name
	case catalog.ErrLayerExists:
		e.Error = "ErrLayerExists"
		e.Workspace = et.Workspace
		e.Value = et.Name
	case ErrNotFound:
		// Discard this wrapper and return the embedded error
		e.FromError(et.Err)
	case ErrBadRequest:
		e.FromError(et.Err)
	case ErrConflict:
		e.FromError(et.Err)
	}
}

// ToError converts e back to a catalog error, if that is possible.
// If not, returns a plain error with e.Message text.
func (e *ErrorResponse) ToError() error {
	switch e.Error {
	case "ErrBadName":
		return catalog.ErrBadName
	case "ErrNoStyleName":
		return catalog.ErrNoStyleName
	case "ErrReservedStyleName":
		return catalog.ErrReservedStyleName
	case "ErrGone":
		return catalog.ErrGone
	case "ErrBadSLD":
		return catalog.ErrBadSLD{Reason: e.Value}
	case "ErrBadShapefile":
		return catalog.ErrBadShapefile{Reason: e.Value}
	case "ErrNoSuchStyle":
		return catalog.ErrNoSuchStyle{Name: e.Value}
	case "ErrStyleExists":
		return catalog.ErrStyleExists{Name: e.Value}
	case "ErrNoSuchWorkspace":
		return catalog.ErrNoSuchWorkspace{Name: e.Value}
	case "ErrWorkspaceExists":
		return catalog.ErrWorkspaceExists{Name: e.Value}
	case "ErrWorkspaceNotEmpty":
		return catalog.ErrWorkspaceNotEmpty{Name: e.Value}
	case "ErrNoSuchDatastore":
		return catalog.ErrNoSuchDatastore{Workspace: e.Workspace, Name: e.Value}
	case "ErrDatastoreNotEmpty":
		return catalog.ErrDatastoreNotEmpty{Workspace: e.Workspace, Name: e.Value}
	case "ErrNoSuchLayer":
		return catalog.ErrNoSuchLayer{Workspace: e.Workspace, Name: e.Value}
	case "ErrLayerExists":
		return catalog.ErrLayerExists{Workspace: e.Workspace, Name: e.Value}
	default:
		return errors.New(e.Message)
	}
}

// FromPanic populates an error response based on a panic.  Typical use
// is:
//
//     defer func() {
//         if obj := recovered(); obj != nil {
//             resp := restdata.ErrorResponse{}
//             resp.FromPanic(obj)
//             // write resp out as makes sense
//         }
//    }
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Error = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:len])
}
