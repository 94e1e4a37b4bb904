// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalogtest

import (
	"archive/zip"
	"bytes"
	_ "embed"
	"encoding/binary"
)

// StyleName is the name declared inside StyleSLD.
const StyleName = "restteststyle"

// StyleTitle is the user style title declared inside StyleSLD.
const StyleTitle = "STYLE FOR TESTING PURPOSES"

// Style2Name is the name StyleSLD2 is published under.  The document
// itself declares "cities", so it must be published with an explicit
// name.
const Style2Name = "restteststyle2"

// DefaultWorkspace is the workspace the layer tests publish into.
const DefaultWorkspace = "geosolutions"

// StyleSLD is an SLD 1.0 document with explicit "sld:" prefixes.
//
//go:embed testdata/restteststyle.sld
var StyleSLD string

// StyleSLD2 is an SLD 1.0 document using the default namespace.
//
//go:embed testdata/restteststyle2.sld
var StyleSLD2 string

// ESRI shape type codes for ShapefileZip.
const (
	ShapePoint      int32 = 1
	ShapePolyLine   int32 = 3
	ShapePolygon    int32 = 5
	ShapeMultiPoint int32 = 8
)

// ShapefileZip builds a zip archive holding a minimal, feature-less
// shapefile named base with the given shape type: the .shp and .shx
// headers, an empty .dbf, and a WGS84 .prj.
func ShapefileZip(base string, shapeType int32) []byte {
	header := make([]byte, 100)
	binary.BigEndian.PutUint32(header[0:4], 9994)
	binary.BigEndian.PutUint32(header[24:28], 50) // length in 16-bit words
	binary.LittleEndian.PutUint32(header[28:32], 1000)
	binary.LittleEndian.PutUint32(header[32:36], uint32(shapeType))

	dbf := make([]byte, 33)
	dbf[0] = 0x03
	binary.LittleEndian.PutUint16(dbf[8:10], 33)
	dbf[32] = 0x0d

	prj := `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]]`

	return ZipFiles(map[string][]byte{
		base + ".shp": header,
		base + ".shx": header,
		base + ".dbf": dbf,
		base + ".prj": []byte(prj),
	})
}

// ZipFiles builds a zip archive in memory from a map of member names
// to contents.  Tests use it to build malformed uploads.
func ZipFiles(files map[string][]byte) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			panic(err)
		}
		if _, err = f.Write(content); err != nil {
			panic(err)
		}
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
