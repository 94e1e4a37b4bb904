// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalog_test

import (
	"errors"
	"testing"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/catalog/catalogtest"
	"github.com/stretchr/testify/assert"
)

func TestQualifiedNames(t *testing.T) {
	assert.Equal(t, "topp:roads", catalog.QualifyName("topp", "roads"))
	assert.Equal(t, "roads", catalog.QualifyName("", "roads"))

	ws, name := catalog.SplitName("topp:roads")
	assert.Equal(t, "topp", ws)
	assert.Equal(t, "roads", name)

	ws, name = catalog.SplitName("roads")
	assert.Equal(t, "", ws)
	assert.Equal(t, "roads", name)

	layer := catalog.Layer{Workspace: "topp", Name: "roads"}
	assert.Equal(t, "topp:roads", layer.QualifiedName())
}

func TestCheckName(t *testing.T) {
	assert.NoError(t, catalog.CheckName("roads"))
	assert.Equal(t, catalog.ErrBadName, catalog.CheckName(""))
	assert.Equal(t, catalog.ErrBadName, catalog.CheckName("topp:roads"))
}

func TestPrepareStyle(t *testing.T) {
	style, err := catalog.PrepareStyle(catalogtest.StyleSLD, "")
	if assert.NoError(t, err) {
		assert.Equal(t, catalogtest.StyleName, style.Name)
		assert.Equal(t, catalogtest.StyleName+".sld", style.Filename)
		assert.Equal(t, catalogtest.StyleTitle, style.Title)
		assert.True(t, style.DateCreated.IsZero())
	}

	style, err = catalog.PrepareStyle(catalogtest.StyleSLD, "other")
	if assert.NoError(t, err) {
		assert.Equal(t, "other", style.Name)
		assert.Equal(t, "other.sld", style.Filename)
	}

	_, err = catalog.PrepareStyle(catalogtest.StyleSLD, catalog.DefaultStyleRaster)
	assert.Equal(t, catalog.ErrReservedStyleName, err)

	_, err = catalog.PrepareStyle(catalogtest.StyleSLD, "a:b")
	assert.Equal(t, catalog.ErrBadName, err)
}

func TestPrepareLayer(t *testing.T) {
	published := map[string]bool{"blue": true}
	exists := func(name string) (bool, error) { return published[name], nil }
	shp := catalog.Shapefile{
		Workspace: "topp",
		Store:     "store",
		Zip:       catalogtest.ShapefileZip("lakes", catalogtest.ShapePolygon),
	}

	layer, err := catalog.PrepareLayer(shp, exists)
	if assert.NoError(t, err) {
		assert.Equal(t, "lakes", layer.Name)
		assert.Equal(t, catalog.DefaultStylePolygon, layer.DefaultStyle)
		assert.Equal(t, catalog.DefaultSRS, layer.SRS)
		assert.NotNil(t, layer.Styles)
	}

	shp.Layer = "water"
	shp.DefaultStyle = "blue"
	shp.SRS = "EPSG:3857"
	layer, err = catalog.PrepareLayer(shp, exists)
	if assert.NoError(t, err) {
		assert.Equal(t, "water", layer.Name)
		assert.Equal(t, "blue", layer.DefaultStyle)
		assert.Equal(t, "EPSG:3857", layer.SRS)
	}

	shp.DefaultStyle = catalog.DefaultStyleLine
	_, err = catalog.PrepareLayer(shp, exists)
	assert.NoError(t, err)

	shp.DefaultStyle = "red"
	_, err = catalog.PrepareLayer(shp, exists)
	assert.Equal(t, catalog.ErrNoSuchStyle{Name: "red"}, err)

	boom := errors.New("boom")
	_, err = catalog.PrepareLayer(shp, func(string) (bool, error) { return false, boom })
	assert.Equal(t, boom, err)
}

func TestDropStyle(t *testing.T) {
	layer := catalog.Layer{DefaultStyle: "a", Styles: []string{"b", "a", "c"}}
	assert.True(t, catalog.DropStyle(&layer, "a"))
	assert.Equal(t, catalog.DefaultStyleGeneric, layer.DefaultStyle)
	assert.Equal(t, []string{"b", "c"}, layer.Styles)

	assert.False(t, catalog.DropStyle(&layer, "z"))
	assert.Equal(t, []string{"b", "c"}, layer.Styles)
}

func TestDefaultStyleFor(t *testing.T) {
	assert.Equal(t, catalog.DefaultStylePoint, catalog.DefaultStyleFor(catalog.MultiPoint))
	assert.Equal(t, catalog.DefaultStyleGeneric, catalog.DefaultStyleFor(catalog.Unknown))
	assert.True(t, catalog.IsBuiltinStyle(catalog.DefaultStyleGeneric))
	assert.False(t, catalog.IsBuiltinStyle("roads"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, catalog.IsNotFound(catalog.ErrNoSuchStyle{Name: "x"}))
	assert.True(t, catalog.IsNotFound(catalog.ErrNoSuchLayer{Name: "x"}))
	assert.True(t, catalog.IsNotFound(catalog.ErrNoSuchDatastore{Name: "x"}))
	assert.True(t, catalog.IsNotFound(catalog.ErrNoSuchWorkspace{Name: "x"}))
	assert.False(t, catalog.IsNotFound(catalog.ErrStyleExists{Name: "x"}))
	assert.False(t, catalog.IsNotFound(nil))
}

func TestLayerEncoder(t *testing.T) {
	enc := new(catalog.LayerEncoder)
	assert.True(t, enc.IsEmpty())

	enc.SetDefaultStyle("a").AddStyle("b").SetEnabled(false).SetTitle("T")
	assert.False(t, enc.IsEmpty())

	layer := catalog.Layer{
		DefaultStyle: "z",
		Styles:       []string{"y"},
		Enabled:      true,
		Queryable:    true,
		Title:        "old",
		Abstract:     "kept",
	}
	enc.Apply(&layer)
	assert.Equal(t, "a", layer.DefaultStyle)
	assert.Equal(t, []string{"b"}, layer.Styles)
	assert.False(t, layer.Enabled)
	assert.True(t, layer.Queryable)
	assert.Equal(t, "T", layer.Title)
	assert.Equal(t, "kept", layer.Abstract)

	// the layer does not share the encoder's slice
	enc.Styles[0] = "c"
	assert.Equal(t, []string{"b"}, layer.Styles)
}
