// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalog

// This file contains validation and bookkeeping shared by the
// catalog implementations, so that the memory and PostgreSQL backends
// agree on names, defaults and partial updates.

import (
	"sort"
	"strings"
)

// Built-in style names.  These are always available as layer styles
// but are never listed by Reader.Styles and cannot be published.
const (
	DefaultStyleGeneric = "generic"
	DefaultStylePoint   = "point"
	DefaultStyleLine    = "line"
	DefaultStylePolygon = "polygon"
	DefaultStyleRaster  = "raster"
)

var builtinStyles = map[string]struct{}{
	DefaultStyleGeneric: {},
	DefaultStylePoint:   {},
	DefaultStyleLine:    {},
	DefaultStylePolygon: {},
	DefaultStyleRaster:  {},
}

// IsBuiltinStyle determines whether name is one of the built-in styles.
func IsBuiltinStyle(name string) bool {
	_, builtin := builtinStyles[name]
	return builtin
}

// DefaultStyleFor picks the built-in style for a geometry type.
func DefaultStyleFor(geom GeometryType) string {
	switch geom {
	case Point, MultiPoint:
		return DefaultStylePoint
	case LineString:
		return DefaultStyleLine
	case Polygon:
		return DefaultStylePolygon
	default:
		return DefaultStyleGeneric
	}
}

// CheckName validates the name of a new workspace, datastore or layer.
func CheckName(name string) error {
	if name == "" || strings.Contains(name, ":") {
		return ErrBadName
	}
	return nil
}

// QualifyName joins a workspace and an object name as
// "workspace:name".  An empty workspace yields the bare name.
func QualifyName(workspace, name string) string {
	if workspace == "" {
		return name
	}
	return workspace + ":" + name
}

// SplitName splits a possibly qualified "workspace:name" into its
// parts.  An unqualified name returns an empty workspace.
func SplitName(qualified string) (workspace, name string) {
	if i := strings.Index(qualified, ":"); i >= 0 {
		return qualified[:i], qualified[i+1:]
	}
	return "", qualified
}

// PrepareStyle validates an SLD document and builds the descriptor of
// the style it will be published as.  Timestamps are left for the
// caller to fill in.
func PrepareStyle(sld, name string) (Style, error) {
	info, err := ParseSLD(sld)
	if err != nil {
		return Style{}, err
	}
	if name == "" {
		name = info.StyleName()
	}
	if name == "" {
		return Style{}, ErrNoStyleName
	}
	if IsBuiltinStyle(name) {
		return Style{}, ErrReservedStyleName
	}
	if err = CheckName(name); err != nil {
		return Style{}, err
	}
	return Style{
		Name:     name,
		Filename: name + ".sld",
		Title:    info.Title(),
	}, nil
}

// PrepareLayer validates a shapefile upload and builds the layer it
// will create.  styleExists reports whether a non-built-in style name
// has been published.  Timestamps are left for the caller to fill in.
func PrepareLayer(shp Shapefile, styleExists func(string) (bool, error)) (Layer, error) {
	if err := CheckName(shp.Store); err != nil {
		return Layer{}, err
	}
	shpInfo, err := InspectShapefileZip(shp.Zip)
	if err != nil {
		return Layer{}, err
	}
	name := shp.Layer
	if name == "" {
		name = shpInfo.Name
	}
	if err = CheckName(name); err != nil {
		return Layer{}, err
	}
	style := shp.DefaultStyle
	if style == "" {
		style = DefaultStyleFor(shpInfo.GeometryType)
	} else if err = checkStyle(style, styleExists); err != nil {
		return Layer{}, err
	}
	srs := shp.SRS
	if srs == "" {
		srs = DefaultSRS
	}
	return Layer{
		Workspace:    shp.Workspace,
		Name:         name,
		Store:        shp.Store,
		Type:         LayerTypeVector,
		DefaultStyle: style,
		Styles:       []string{},
		SRS:          srs,
		GeometryType: shpInfo.GeometryType,
		Enabled:      true,
		Queryable:    true,
		Title:        name,
	}, nil
}

// CheckEncoder verifies that every style an encoder refers to exists.
func CheckEncoder(encoder LayerEncoder, styleExists func(string) (bool, error)) error {
	if encoder.DefaultStyle != nil {
		if err := checkStyle(*encoder.DefaultStyle, styleExists); err != nil {
			return err
		}
	}
	for _, style := range encoder.Styles {
		if err := checkStyle(style, styleExists); err != nil {
			return err
		}
	}
	return nil
}

func checkStyle(name string, styleExists func(string) (bool, error)) error {
	if IsBuiltinStyle(name) {
		return nil
	}
	exists, err := styleExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNoSuchStyle{Name: name}
	}
	return nil
}

// DropStyle updates a layer for the removal of a style: a matching
// default style becomes DefaultStyleGeneric and the style is removed
// from the alternates.  Returns true if the layer changed.
func DropStyle(layer *Layer, style string) bool {
	changed := false
	if layer.DefaultStyle == style {
		layer.DefaultStyle = DefaultStyleGeneric
		changed = true
	}
	kept := make([]string, 0, len(layer.Styles))
	for _, s := range layer.Styles {
		if s == style {
			changed = true
			continue
		}
		kept = append(kept, s)
	}
	layer.Styles = kept
	return changed
}

// SortedNames returns the keys of a string-keyed map in sorted order.
func SortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
