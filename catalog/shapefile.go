// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalog

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"path"
	"strings"
)

// GeometryType names the kind of geometry a layer holds.
type GeometryType string

// Geometry types recognized in shapefile headers.
const (
	Unknown    GeometryType = "Unknown"
	Point      GeometryType = "Point"
	MultiPoint GeometryType = "MultiPoint"
	LineString GeometryType = "LineString"
	Polygon    GeometryType = "Polygon"
)

// ShapefileInfo describes the shapefile found in an upload.
type ShapefileInfo struct {
	// Name is the base name of the .shp member, without directory
	// or extension.
	Name string

	GeometryType GeometryType
}

const (
	shpHeaderSize = 100
	shpFileCode   = 9994
)

// shapeTypes maps the ESRI shape type codes to geometry types.  The
// Z and M variants map to the same geometry as the plain ones.
var shapeTypes = map[int32]GeometryType{
	1:  Point,
	3:  LineString,
	5:  Polygon,
	8:  MultiPoint,
	11: Point,
	13: LineString,
	15: Polygon,
	18: MultiPoint,
	21: Point,
	23: LineString,
	25: Polygon,
	28: MultiPoint,
}

// InspectShapefileZip opens a zipped shapefile and reads the header of
// its .shp member.  The archive must contain exactly one .shp file.
func InspectShapefileZip(data []byte) (ShapefileInfo, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ShapefileInfo{}, ErrBadShapefile{Reason: err.Error()}
	}
	var shp *zip.File
	for _, f := range archive.File {
		if !strings.EqualFold(path.Ext(f.Name), ".shp") {
			continue
		}
		if shp != nil {
			return ShapefileInfo{}, ErrBadShapefile{Reason: "more than one .shp file"}
		}
		shp = f
	}
	if shp == nil {
		return ShapefileInfo{}, ErrBadShapefile{Reason: "no .shp file"}
	}

	r, err := shp.Open()
	if err != nil {
		return ShapefileInfo{}, ErrBadShapefile{Reason: err.Error()}
	}
	defer r.Close()
	var header [shpHeaderSize]byte
	if _, err = io.ReadFull(r, header[:]); err != nil {
		return ShapefileInfo{}, ErrBadShapefile{Reason: "short .shp header"}
	}
	if code := binary.BigEndian.Uint32(header[0:4]); code != shpFileCode {
		return ShapefileInfo{}, ErrBadShapefile{Reason: fmt.Sprintf("bad file code %d", code)}
	}
	shapeType := int32(binary.LittleEndian.Uint32(header[32:36]))
	geom, known := shapeTypes[shapeType]
	if !known {
		geom = Unknown
	}

	base := path.Base(shp.Name)
	return ShapefileInfo{
		Name:         strings.TrimSuffix(base, path.Ext(base)),
		GeometryType: geom,
	}, nil
}
