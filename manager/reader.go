// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package manager

import (
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/sirupsen/logrus"
)

// Reader performs read-only catalog queries.  Absent objects come back
// as false, empty or nil rather than as errors.
type Reader struct {
	catalog catalog.Reader
	log     logrus.FieldLogger
}

// failed logs a query error.  Missing objects are expected and only
// logged at debug level.
func (r *Reader) failed(fields logrus.Fields, err error, what string) {
	entry := r.log.WithFields(fields).WithError(err)
	if catalog.IsNotFound(err) {
		entry.Debug(what)
	} else {
		entry.Error(what)
	}
}

func (r *Reader) exists(fields logrus.Fields, exists bool, err error, what string) bool {
	if err != nil {
		r.failed(fields, err, what)
		return false
	}
	return exists
}

// Styles returns the names of all published styles, or an empty list
// on error.
func (r *Reader) Styles() []string {
	styles, err := r.catalog.Styles()
	if err != nil {
		r.failed(nil, err, "List styles")
		return []string{}
	}
	return styles
}

// ExistsStyle determines whether a style exists.
func (r *Reader) ExistsStyle(name string) bool {
	exists, err := r.catalog.ExistsStyle(name)
	return r.exists(logrus.Fields{"style": name}, exists, err, "Check style")
}

// Style retrieves a style descriptor, or nil if it does not exist.
func (r *Reader) Style(name string) *catalog.Style {
	style, err := r.catalog.Style(name)
	if err != nil {
		r.failed(logrus.Fields{"style": name}, err, "Get style")
		return nil
	}
	return &style
}

// SLD retrieves the SLD document of a style, or an empty string if it
// does not exist.
func (r *Reader) SLD(name string) string {
	sld, err := r.catalog.SLD(name)
	if err != nil {
		r.failed(logrus.Fields{"style": name}, err, "Get SLD")
		return ""
	}
	return sld
}

// Workspaces returns the names of all workspaces.
func (r *Reader) Workspaces() []string {
	workspaces, err := r.catalog.Workspaces()
	if err != nil {
		r.failed(nil, err, "List workspaces")
		return []string{}
	}
	return workspaces
}

// ExistsWorkspace determines whether a workspace exists.
func (r *Reader) ExistsWorkspace(name string) bool {
	exists, err := r.catalog.ExistsWorkspace(name)
	return r.exists(logrus.Fields{"workspace": name}, exists, err, "Check workspace")
}

// Datastores returns the names of the datastores in a workspace.
func (r *Reader) Datastores(workspace string) []string {
	stores, err := r.catalog.Datastores(workspace)
	if err != nil {
		r.failed(logrus.Fields{"workspace": workspace}, err, "List datastores")
		return []string{}
	}
	return stores
}

// Datastore retrieves a datastore, or nil if it does not exist.
func (r *Reader) Datastore(workspace, name string) *catalog.Datastore {
	store, err := r.catalog.Datastore(workspace, name)
	if err != nil {
		r.failed(logrus.Fields{"workspace": workspace, "store": name}, err, "Get datastore")
		return nil
	}
	return &store
}

// ExistsDatastore determines whether a datastore exists.
func (r *Reader) ExistsDatastore(workspace, name string) bool {
	exists, err := r.catalog.ExistsDatastore(workspace, name)
	fields := logrus.Fields{"workspace": workspace, "store": name}
	return r.exists(fields, exists, err, "Check datastore")
}

// Layers returns the qualified names of all layers.
func (r *Reader) Layers() []string {
	layers, err := r.catalog.Layers()
	if err != nil {
		r.failed(nil, err, "List layers")
		return []string{}
	}
	return layers
}

// Layer retrieves a layer by (possibly qualified) name, or nil if it
// does not exist.
func (r *Reader) Layer(name string) *catalog.Layer {
	layer, err := r.catalog.Layer(name)
	if err != nil {
		r.failed(logrus.Fields{"layer": name}, err, "Get layer")
		return nil
	}
	return &layer
}

// WorkspaceLayer retrieves a layer in a specific workspace, or nil if
// it does not exist.
func (r *Reader) WorkspaceLayer(workspace, name string) *catalog.Layer {
	layer, err := r.catalog.WorkspaceLayer(workspace, name)
	if err != nil {
		r.failed(logrus.Fields{"workspace": workspace, "layer": name}, err, "Get layer")
		return nil
	}
	return &layer
}

// ExistsLayer determines whether a layer exists in a workspace.
func (r *Reader) ExistsLayer(workspace, name string) bool {
	exists, err := r.catalog.ExistsLayer(workspace, name)
	fields := logrus.Fields{"workspace": workspace, "layer": name}
	return r.exists(fields, exists, err, "Check layer")
}
