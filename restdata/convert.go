// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"github.com/diffeo/go-geoserver/catalog"
)

// FromStyle fills in the data fields of a style representation.  URLs
// are left for the caller.
func (s *Style) FromStyle(style catalog.Style) {
	s.Name = style.Name
	s.Filename = style.Filename
	s.Title = style.Title
	s.DateCreated = style.DateCreated
	s.DateModified = style.DateModified
}

// ToStyle converts a style representation back to a catalog style.
func (s Style) ToStyle() catalog.Style {
	return catalog.Style{
		Name:         s.Name,
		Filename:     s.Filename,
		Title:        s.Title,
		DateCreated:  s.DateCreated,
		DateModified: s.DateModified,
	}
}

// FromDatastore fills in the data fields of a datastore
// representation.
func (d *Datastore) FromDatastore(store catalog.Datastore) {
	d.Name = store.Name
	d.Workspace = store.Workspace
	d.Type = store.Type
	d.Enabled = store.Enabled
	d.FeatureTypes = store.FeatureTypes
	if d.FeatureTypes == nil {
		d.FeatureTypes = []string{}
	}
	d.DateCreated = store.DateCreated
}

// ToDatastore converts a datastore representation back to a catalog
// datastore.
func (d Datastore) ToDatastore() catalog.Datastore {
	featureTypes := d.FeatureTypes
	if featureTypes == nil {
		featureTypes = []string{}
	}
	return catalog.Datastore{
		Workspace:    d.Workspace,
		Name:         d.Name,
		Type:         d.Type,
		Enabled:      d.Enabled,
		FeatureTypes: featureTypes,
		DateCreated:  d.DateCreated,
	}
}

// FromLayer fills in the data fields of a layer representation.
func (l *Layer) FromLayer(layer catalog.Layer) {
	l.Name = layer.Name
	l.Workspace = layer.Workspace
	l.Store = layer.Store
	l.Type = layer.Type
	l.DefaultStyle = layer.DefaultStyle
	l.Styles = layer.Styles
	if l.Styles == nil {
		l.Styles = []string{}
	}
	l.SRS = layer.SRS
	l.GeometryType = string(layer.GeometryType)
	l.Enabled = layer.Enabled
	l.Queryable = layer.Queryable
	l.Title = layer.Title
	l.Abstract = layer.Abstract
	l.DateCreated = layer.DateCreated
	l.DateModified = layer.DateModified
}

// ToLayer converts a layer representation back to a catalog layer.
func (l Layer) ToLayer() catalog.Layer {
	styles := l.Styles
	if styles == nil {
		styles = []string{}
	}
	return catalog.Layer{
		Workspace:    l.Workspace,
		Name:         l.Name,
		Store:        l.Store,
		Type:         l.Type,
		DefaultStyle: l.DefaultStyle,
		Styles:       styles,
		SRS:          l.SRS,
		GeometryType: catalog.GeometryType(l.GeometryType),
		Enabled:      l.Enabled,
		Queryable:    l.Queryable,
		Title:        l.Title,
		Abstract:     l.Abstract,
		DateCreated:  l.DateCreated,
		DateModified: l.DateModified,
	}
}

// FromEncoder builds a layer update from a catalog layer encoder.
func (u *LayerUpdate) FromEncoder(encoder catalog.LayerEncoder) {
	u.DefaultStyle = encoder.DefaultStyle
	if encoder.Styles != nil {
		styles := append([]string{}, encoder.Styles...)
		u.Styles = &styles
	}
	u.Enabled = encoder.Enabled
	u.Queryable = encoder.Queryable
	u.Title = encoder.Title
	u.Abstract = encoder.Abstract
}

// ToEncoder converts a layer update back to a catalog layer encoder.
func (u LayerUpdate) ToEncoder() catalog.LayerEncoder {
	encoder := catalog.LayerEncoder{
		DefaultStyle: u.DefaultStyle,
		Enabled:      u.Enabled,
		Queryable:    u.Queryable,
		Title:        u.Title,
		Abstract:     u.Abstract,
	}
	if u.Styles != nil {
		encoder.Styles = append([]string{}, (*u.Styles)...)
	}
	return encoder
}

// FromSummary copies catalog object counts.
func (s *Summary) FromSummary(summary catalog.Summary) {
	s.Styles = summary.Styles
	s.Workspaces = summary.Workspaces
	s.Datastores = summary.Datastores
	s.Layers = summary.Layers
}

// ToSummary converts back to catalog object counts.
func (s Summary) ToSummary() catalog.Summary {
	return catalog.Summary{
		Styles:     s.Styles,
		Workspaces: s.Workspaces,
		Datastores: s.Datastores,
		Layers:     s.Layers,
	}
}
