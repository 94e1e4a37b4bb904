// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalog_test

import (
	"testing"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/catalog/catalogtest"
	"github.com/stretchr/testify/assert"
)

func TestInspectShapefile(t *testing.T) {
	for shapeType, geom := range map[int32]catalog.GeometryType{
		catalogtest.ShapePoint:      catalog.Point,
		catalogtest.ShapePolyLine:   catalog.LineString,
		catalogtest.ShapePolygon:    catalog.Polygon,
		catalogtest.ShapeMultiPoint: catalog.MultiPoint,
		31:                          catalog.Unknown,
	} {
		info, err := catalog.InspectShapefileZip(catalogtest.ShapefileZip("roads", shapeType))
		if assert.NoError(t, err) {
			assert.Equal(t, "roads", info.Name)
			assert.Equal(t, geom, info.GeometryType, "shape type %v", shapeType)
		}
	}
}

func TestInspectShapefileSubdirectory(t *testing.T) {
	shp := catalogtest.ShapefileZip("x", catalogtest.ShapePoint)
	inner, err := catalog.InspectShapefileZip(shp)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "x", inner.Name)

	header := make([]byte, 100)
	header[2] = 0x27
	header[3] = 0x0a
	header[32] = 5
	data := catalogtest.ZipFiles(map[string][]byte{
		"data/Lakes.SHP": header,
		"data/Lakes.dbf": {},
	})
	info, err := catalog.InspectShapefileZip(data)
	if assert.NoError(t, err) {
		assert.Equal(t, "Lakes", info.Name)
		assert.Equal(t, catalog.Polygon, info.GeometryType)
	}
}

func TestInspectShapefileErrors(t *testing.T) {
	good := make([]byte, 100)
	good[2] = 0x27
	good[3] = 0x0a
	good[32] = 1

	badCode := make([]byte, 100)
	badCode[3] = 1

	for name, data := range map[string][]byte{
		"not a zip": []byte("PK? no"),
		"empty":     catalogtest.ZipFiles(map[string][]byte{}),
		"no shp":    catalogtest.ZipFiles(map[string][]byte{"a.dbf": {}}),
		"two shp": catalogtest.ZipFiles(map[string][]byte{
			"a.shp": good,
			"b.shp": good,
		}),
		"short":    catalogtest.ZipFiles(map[string][]byte{"a.shp": good[:50]}),
		"bad code": catalogtest.ZipFiles(map[string][]byte{"a.shp": badCode}),
	} {
		_, err := catalog.InspectShapefileZip(data)
		assert.IsType(t, catalog.ErrBadShapefile{}, err, name)
	}
}
