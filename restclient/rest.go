// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code: expanding the URI
// templates the server advertises, and sending JSON requests to the
// results.

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/diffeo/go-geoserver/restdata"
	"github.com/jtacoma/uritemplates"
	"github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
)

var jsonHandle = &codec.JsonHandle{}

// connection holds the settings shared by every request to one server.
type connection struct {
	HTTPClient *http.Client
	Username   string
	Password   string
	Log        logrus.FieldLogger
}

// resource is any object that has a URL and a representation.
type resource struct {
	URL  *url.URL
	conn *connection
}

// call describes one request against a templated URL.
type call struct {
	Method   string
	Template string
	Vars     map[string]interface{}
	Query    url.Values
	In       interface{}
	Out      interface{}
}

// encodeVars escapes names in template variables the way the server
// expects them in path segments.
func encodeVars(vars map[string]interface{}) map[string]interface{} {
	encoded := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		switch value := v.(type) {
		case string:
			encoded[k] = restdata.MaybeEncodeName(value)
		case []string:
			names := make([]string, len(value))
			for i, s := range value {
				names[i] = restdata.MaybeEncodeName(s)
			}
			encoded[k] = names
		default:
			encoded[k] = v
		}
	}
	return encoded
}

// expand fills in a URI template and resolves it against the
// resource URL.
func (r *resource) expand(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}
	expanded, err := tmpl.Expand(encodeVars(vars))
	if err != nil {
		return nil, err
	}
	return r.URL.Parse(expanded)
}

// send performs c.  An empty template means the resource's own URL.
func (r *resource) send(c call) error {
	target := r.URL
	if c.Template != "" {
		var err error
		target, err = r.expand(c.Template, c.Vars)
		if err != nil {
			return err
		}
	}
	if len(c.Query) > 0 {
		withQuery := *target
		withQuery.RawQuery = c.Query.Encode()
		target = &withQuery
	}
	return r.Do(c.Method, target, c.In, c.Out)
}

// Do performs some HTTP action.  If in is non-nil it is sent as the
// JSON request body.  If out is non-nil, the response body (if any)
// is decoded into it, and it must be of pointer type.
func (r *resource) Do(method string, target *url.URL, in, out interface{}) (err error) {
	var body io.Reader
	if in != nil {
		var buf bytes.Buffer
		if err = codec.NewEncoder(&buf, jsonHandle).Encode(in); err != nil {
			return err
		}
		body = &buf
	}

	req, err := http.NewRequest(method, target.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", restdata.V1JSONMediaType)
	}
	if out != nil {
		req.Header.Set("Accept", restdata.V1JSONMediaType)
	}
	if r.conn.Username != "" {
		req.SetBasicAuth(r.conn.Username, r.conn.Password)
	}

	log := r.conn.Log.WithFields(logrus.Fields{
		"method": method,
		"url":    target.String(),
	})
	start := time.Now()
	resp, err := r.conn.HTTPClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("REST request failed")
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); err == nil {
			err = closeErr
		}
	}()
	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("REST request")

	if err = checkHTTPStatus(resp); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return restdata.Decode(resp.Header.Get("Content-Type"), resp.Body, out)
}

// Get retrieves the resource from its own URL into out.
func (r *resource) Get(out interface{}) error {
	return r.send(call{Method: http.MethodGet, Out: out})
}

// GetFrom retrieves the object at an expanded template into out.
func (r *resource) GetFrom(template string, vars map[string]interface{}, out interface{}) error {
	return r.send(call{Method: http.MethodGet, Template: template, Vars: vars, Out: out})
}

// PutTo sends in to an expanded template, decoding any reply into out.
func (r *resource) PutTo(template string, vars map[string]interface{}, in, out interface{}) error {
	return r.send(call{Method: http.MethodPut, Template: template, Vars: vars, In: in, Out: out})
}

// PostTo submits in to an expanded template, decoding the reply into
// out.
func (r *resource) PostTo(template string, vars map[string]interface{}, in, out interface{}) error {
	return r.send(call{Method: http.MethodPost, Template: template, Vars: vars, In: in, Out: out})
}

// DeleteAt deletes the object at an expanded template.  A non-empty
// flag is sent as a "true" query parameter of that name.
func (r *resource) DeleteAt(template string, vars map[string]interface{}, flag string) error {
	c := call{Method: http.MethodDelete, Template: template, Vars: vars}
	if flag != "" {
		c.Query = url.Values{flag: {"true"}}
	}
	return r.send(c)
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	return e.Response.Status
}

// checkHTTPStatus returns nil for a 2xx response.  Otherwise it
// returns the catalog error the server encoded in the body, or
// ErrorHTTP if the body is not an error document.
func checkHTTPStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	if restdata.Decode(contentType, bytes.NewReader(body), &errResp) == nil && errResp.Error != "" {
		return errResp.ToError()
	}
	return ErrorHTTP{Response: resp, Body: string(body)}
}
