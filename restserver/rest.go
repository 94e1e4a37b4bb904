// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains the resource handler shared by every route.
//
// A resource is a Representation type plus one function per HTTP
// method.  The handler negotiates the response media type, decodes
// the request body into a fresh Representation, calls the method
// function, and encodes whatever it returns.  Errors become
// restdata.ErrorResponse bodies with a status picked from the error.
//
// Catalog objects are always JSON.  The only other representation is
// a bare SLD document, sent when the client asks for SLDMediaType and
// the handler returned a restdata.SLDBody.

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/diffeo/go-geoserver/restdata"
	"github.com/ugorji/go/codec"
)

// typeMap canonicalizes the media types we can produce.
var typeMap = map[string]string{
	"text/json":              restdata.V1JSONMediaType,
	"application/json":       restdata.V1JSONMediaType,
	restdata.JSONMediaType:   restdata.V1JSONMediaType,
	restdata.V1JSONMediaType: restdata.V1JSONMediaType,
	restdata.SLDMediaType:    restdata.SLDMediaType,
}

var jsonHandle = &codec.JsonHandle{}

// errBadAccept is returned from negotiateResponse() if a quality value
// in the Accept: header is out of range.
var errBadAccept = errors.New("Invalid Accept: header")

// errNotAcceptable is returned from negotiateResponse() if the Accept:
// header does not mention any media types we can actually return.
type errNotAcceptable struct{}

func (e errNotAcceptable) Error() string {
	return "No acceptable representation for response"
}

func (e errNotAcceptable) HTTPStatus() int {
	return http.StatusNotAcceptable
}

// errMethodNotAllowed is returned when a resource has no function for
// the request method.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// responseCreated is returned as a value response from handler
// functions that want to indicate that a new resource was created.
type responseCreated struct {
	// Location holds the canonical URL to the newly created resource.
	Location string

	// Body contains the object sent in the body of the response.
	Body interface{}
}

type resourceHandler struct {
	// Representation is the type request bodies are decoded into.
	// A fresh zero value is passed to Put and Post.
	Representation interface{}

	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*context, error)

	// Get, if non-nil, returns a representation of the object.
	Get func(*context) (interface{}, error)

	// Put, if non-nil, updates the object.  Its parameter has the
	// Representation type.
	Put func(*context, interface{}) (interface{}, error)

	// Post, if non-nil, creates something under this resource,
	// and typically returns responseCreated.
	Post func(*context, interface{}) (interface{}, error)

	// Delete, if non-nil, deletes the object.
	Delete func(*context) (interface{}, error)
}

// result is a fully decided response.
type result struct {
	Status   int
	Location string
	Body     interface{}
}

// errorResult builds the response for err.  fallback is the status
// used when err does not carry a more specific one.
func errorResult(err error, fallback int) result {
	status := restdata.StatusForError(err)
	if status == http.StatusInternalServerError {
		status = fallback
	}
	body := restdata.ErrorResponse{Error: "error", Message: err.Error()}
	body.FromError(err)
	return result{Status: status, Body: body}
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	defer func() {
		if recovered := recover(); recovered != nil {
			body := restdata.ErrorResponse{}
			body.FromPanic(recovered)
			writeResult(resp, restdata.V1JSONMediaType, result{
				Status: http.StatusInternalServerError,
				Body:   body,
			})
		}
	}()

	// The response type is decided first, since it also decides
	// how errors get sent
	responseType, err := negotiateResponse(req)
	if err != nil {
		writeResult(resp, restdata.V1JSONMediaType, errorResult(err, http.StatusBadRequest))
		return
	}
	writeResult(resp, responseType, h.serve(req))
}

// serve runs the request through the resource functions.
func (h *resourceHandler) serve(req *http.Request) result {
	ctx, err := h.Context(req)
	if err != nil {
		return errorResult(err, http.StatusBadRequest)
	}

	var in interface{}
	if req.Method == http.MethodPut || req.Method == http.MethodPost {
		in = reflect.Zero(reflect.TypeOf(h.Representation)).Interface()
		err = restdata.Decode(req.Header.Get("Content-Type"), req.Body, &in)
		if err != nil {
			return errorResult(err, http.StatusBadRequest)
		}
	}

	out, err := h.call(req.Method, ctx, in)
	if err != nil {
		return errorResult(err, http.StatusInternalServerError)
	}

	var r result
	switch value := out.(type) {
	case nil:
		r.Status = http.StatusNoContent
	case responseCreated:
		r = result{Status: http.StatusCreated, Location: value.Location, Body: value.Body}
	default:
		r = result{Status: http.StatusOK, Body: out}
	}
	if req.Method == http.MethodHead {
		r.Body = nil
	}
	return r
}

// call dispatches to the function for method.
func (h *resourceHandler) call(method string, ctx *context, in interface{}) (interface{}, error) {
	switch {
	case (method == http.MethodGet || method == http.MethodHead) && h.Get != nil:
		return h.Get(ctx)
	case method == http.MethodPut && h.Put != nil:
		return h.Put(ctx, in)
	case method == http.MethodPost && h.Post != nil:
		return h.Post(ctx, in)
	case method == http.MethodDelete && h.Delete != nil:
		return h.Delete(ctx)
	}
	return nil, errMethodNotAllowed{Method: method}
}

// writeResult sends r as responseType.  Anything other than an SLD
// body goes out as JSON, even if the client asked for bare SLD.
func writeResult(resp http.ResponseWriter, responseType string, r result) {
	if r.Location != "" {
		resp.Header().Set("Location", r.Location)
	}
	if r.Body == nil {
		resp.WriteHeader(r.Status)
		return
	}

	if sld, isSLD := r.Body.(restdata.SLDBody); isSLD && typeMap[responseType] == restdata.SLDMediaType {
		resp.Header().Set("Content-Type", responseType)
		resp.WriteHeader(r.Status)
		_, _ = io.WriteString(resp, sld.SLD)
		return
	}

	if typeMap[responseType] != restdata.V1JSONMediaType {
		responseType = restdata.V1JSONMediaType
	}
	resp.Header().Set("Content-Type", responseType)
	resp.WriteHeader(r.Status)
	// The status line is already out, so an encoding failure
	// cannot be reported any better than by panicking
	codec.NewEncoder(resp, jsonHandle).MustEncode(r.Body)
}

// mediaRange is one entry of an Accept: header.
type mediaRange struct {
	Type    string
	Quality float64
}

// specificity ranks wildcards below concrete types.
func (m mediaRange) specificity() int {
	switch {
	case m.Type == "*/*":
		return 0
	case strings.HasSuffix(m.Type, "/*"):
		return 1
	default:
		return 2
	}
}

// acceptable reports whether we could answer with this range.
func (m mediaRange) acceptable() bool {
	switch m.Type {
	case "*/*", "text/*", "application/*":
		return m.Quality > 0
	}
	_, known := typeMap[m.Type]
	return known && m.Quality > 0
}

// parseAccept splits an Accept: header into its media ranges, in
// order.  An empty header accepts anything.
func parseAccept(header string) ([]mediaRange, error) {
	if header == "" {
		header = "*/*"
	}
	var ranges []mediaRange
	for _, part := range strings.Split(header, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		m := mediaRange{Type: mediaType, Quality: 1.0}
		if q, present := params["q"]; present {
			m.Quality, err = strconv.ParseFloat(q, 64)
			if err != nil {
				return nil, err
			}
			if m.Quality < 0.0 || m.Quality > 1.0 {
				return nil, errBadAccept
			}
		}
		ranges = append(ranges, m)
	}
	return ranges, nil
}

// negotiateResponse returns a supported MIME type for the response
// body, following RFC 7231 section 5.3.  The highest quality wins;
// among equal qualities a concrete type beats a wildcard, and
// otherwise the first listed wins.  Type parameters are ignored.
func negotiateResponse(req *http.Request) (string, error) {
	ranges, err := parseAccept(req.Header.Get("Accept"))
	if err != nil {
		return "", err
	}
	var best *mediaRange
	for i := range ranges {
		m := &ranges[i]
		if !m.acceptable() {
			continue
		}
		if best == nil || m.Quality > best.Quality ||
			(m.Quality == best.Quality && m.specificity() > best.specificity()) {
			best = m
		}
	}
	if best == nil {
		return "", errNotAcceptable{}
	}
	switch best.Type {
	case "*/*", "application/*":
		return restdata.V1JSONMediaType, nil
	case "text/*":
		return "text/json", nil
	default:
		return best.Type, nil
	}
}
