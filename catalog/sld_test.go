// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalog_test

import (
	"testing"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/catalog/catalogtest"
	"github.com/stretchr/testify/assert"
)

func TestParseSLDPrefixed(t *testing.T) {
	info, err := catalog.ParseSLD(catalogtest.StyleSLD)
	if assert.NoError(t, err) {
		assert.Equal(t, catalogtest.StyleName, info.StyleName())
		assert.Equal(t, catalogtest.StyleTitle, info.Title())
	}
}

func TestParseSLDDefaultNamespace(t *testing.T) {
	info, err := catalog.ParseSLD(catalogtest.StyleSLD2)
	if assert.NoError(t, err) {
		assert.Equal(t, "cities", info.StyleName())
		assert.Equal(t, "Blue cities", info.Title())
	}
}

func TestParseSLD11(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<StyledLayerDescriptor version="1.1.0"
    xmlns="http://www.opengis.net/sld"
    xmlns:se="http://www.opengis.net/se">
  <NamedLayer>
    <se:Name> roads </se:Name>
    <UserStyle>
      <se:Name>roads_style</se:Name>
      <se:Description><se:Title>Roads</se:Title></se:Description>
    </UserStyle>
  </NamedLayer>
</StyledLayerDescriptor>`
	info, err := catalog.ParseSLD(doc)
	if assert.NoError(t, err) {
		assert.Equal(t, "roads", info.StyleName())
		if assert.Len(t, info.NamedLayers, 1) &&
			assert.Len(t, info.NamedLayers[0].UserStyles, 1) {
			assert.Equal(t, "roads_style", info.NamedLayers[0].UserStyles[0].Name)
		}
	}
}

func TestParseSLDUserStyleName(t *testing.T) {
	doc := `<StyledLayerDescriptor xmlns="http://www.opengis.net/sld">
  <NamedLayer><UserStyle><Name>fallback</Name><Title>T</Title></UserStyle></NamedLayer>
</StyledLayerDescriptor>`
	info, err := catalog.ParseSLD(doc)
	if assert.NoError(t, err) {
		assert.Equal(t, "fallback", info.StyleName())
		assert.Equal(t, "T", info.Title())
	}
}

func TestParseSLDEmptyStructure(t *testing.T) {
	info, err := catalog.ParseSLD(`<StyledLayerDescriptor xmlns="http://www.opengis.net/sld"/>`)
	if assert.NoError(t, err) {
		assert.Equal(t, "", info.StyleName())
		assert.Equal(t, "", info.Title())
	}
}

func TestParseSLDErrors(t *testing.T) {
	for _, doc := range []string{
		"",
		"   ",
		"not xml at all",
		"<StyledLayerDescriptor xmlns=\"http://www.opengis.net/sld\">",
		"<StyledLayerDescriptor/>",
		"<html xmlns=\"http://www.w3.org/1999/xhtml\"/>",
	} {
		_, err := catalog.ParseSLD(doc)
		assert.IsType(t, catalog.ErrBadSLD{}, err, "%q", doc)
	}
}
