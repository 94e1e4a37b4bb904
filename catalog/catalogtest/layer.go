// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalogtest

import (
	"time"

	"github.com/diffeo/go-geoserver/catalog"
)

// TestUpdateDefaultStyle publishes a shapefile with one style, then
// switches the layer to a second style.
func (s *Suite) TestUpdateDefaultStyle() {
	pub, rdr := s.Manager.Publisher, s.Manager.Reader
	const storeName = "resttestshp"
	const layerName = "cities"

	// styles
	s.True(pub.PublishStyleFile(s.tempFile("restteststyle.sld", []byte(StyleSLD))))
	s.True(pub.PublishStyleFileWithName(s.tempFile("restteststyle2.sld", []byte(StyleSLD2)), Style2Name))
	s.True(rdr.ExistsStyle(StyleName))
	s.True(rdr.ExistsStyle(Style2Name))

	// workspace and shapefile
	s.True(pub.CreateWorkspace(DefaultWorkspace))
	zipFile := s.tempFile("cities.zip", ShapefileZip("cities", ShapePoint))
	s.True(pub.PublishShp(DefaultWorkspace, storeName, layerName, zipFile, "EPSG:4326", StyleName), "publish() failed")

	layer := rdr.WorkspaceLayer(DefaultWorkspace, layerName)
	if s.NotNil(layer) {
		s.Equal(StyleName, layer.DefaultStyle)
	}

	enc := new(catalog.LayerEncoder).SetDefaultStyle(Style2Name)
	s.True(pub.ConfigureLayer(DefaultWorkspace, layerName, enc), "changing style failed")

	layer = rdr.WorkspaceLayer(DefaultWorkspace, layerName)
	if s.NotNil(layer) {
		s.Equal(Style2Name, layer.DefaultStyle)
	}

	// remove everything
	s.True(pub.RemoveDatastore(DefaultWorkspace, storeName, true))
	s.False(rdr.ExistsLayer(DefaultWorkspace, layerName))
	s.False(rdr.ExistsDatastore(DefaultWorkspace, storeName))
	s.True(pub.RemoveStyle(StyleName))
	s.True(pub.RemoveStyle(Style2Name))
	s.True(pub.RemoveWorkspace(DefaultWorkspace, false))
}

// TestPublishShpDefaults publishes a shapefile naming nothing but the
// workspace and store, and checks the defaults the catalog fills in.
func (s *Suite) TestPublishShpDefaults() {
	start := s.Clock.Now()
	s.createWorkspace(DefaultWorkspace)
	err := s.Catalog.PublishShp(catalog.Shapefile{
		Workspace: DefaultWorkspace,
		Store:     "roads",
		Zip:       ShapefileZip("tiger_roads", ShapePolyLine),
	})
	s.Require().NoError(err)

	layer, err := s.Catalog.WorkspaceLayer(DefaultWorkspace, "tiger_roads")
	s.Require().NoError(err)
	s.Equal(DefaultWorkspace, layer.Workspace)
	s.Equal("tiger_roads", layer.Name)
	s.Equal("roads", layer.Store)
	s.Equal(catalog.LayerTypeVector, layer.Type)
	s.Equal(catalog.DefaultStyleLine, layer.DefaultStyle)
	s.Empty(layer.Styles)
	s.Equal(catalog.DefaultSRS, layer.SRS)
	s.Equal(catalog.LineString, layer.GeometryType)
	s.True(layer.Enabled)
	s.True(layer.Queryable)
	s.Equal("tiger_roads", layer.Title)
	s.Equal("", layer.Abstract)
	s.WithinDuration(start, layer.DateCreated, time.Millisecond)
	s.WithinDuration(start, layer.DateModified, time.Millisecond)
	s.Equal(DefaultWorkspace+":tiger_roads", layer.QualifiedName())

	store, err := s.Catalog.Datastore(DefaultWorkspace, "roads")
	s.Require().NoError(err)
	s.Equal(DefaultWorkspace, store.Workspace)
	s.Equal("roads", store.Name)
	s.Equal(catalog.DatastoreTypeShapefile, store.Type)
	s.True(store.Enabled)
	s.Equal([]string{"tiger_roads"}, store.FeatureTypes)
	s.WithinDuration(start, store.DateCreated, time.Millisecond)
}

// TestDefaultStyleByGeometry checks the built-in style chosen for
// each shape type.
func (s *Suite) TestDefaultStyleByGeometry() {
	s.createWorkspace(DefaultWorkspace)
	cases := []struct {
		Name      string
		ShapeType int32
		Geometry  catalog.GeometryType
		Style     string
	}{
		{"pts", ShapePoint, catalog.Point, catalog.DefaultStylePoint},
		{"mpts", ShapeMultiPoint, catalog.MultiPoint, catalog.DefaultStylePoint},
		{"lines", ShapePolyLine, catalog.LineString, catalog.DefaultStyleLine},
		{"polys", ShapePolygon, catalog.Polygon, catalog.DefaultStylePolygon},
	}
	for _, c := range cases {
		err := s.Catalog.PublishShp(catalog.Shapefile{
			Workspace: DefaultWorkspace,
			Store:     "store_" + c.Name,
			Zip:       ShapefileZip(c.Name, c.ShapeType),
		})
		if s.NoError(err, c.Name) {
			layer, err := s.Catalog.WorkspaceLayer(DefaultWorkspace, c.Name)
			if s.NoError(err, c.Name) {
				s.Equal(c.Geometry, layer.GeometryType, c.Name)
				s.Equal(c.Style, layer.DefaultStyle, c.Name)
			}
		}
	}
}

// TestPublishShpErrors checks the typed errors from PublishShp.
func (s *Suite) TestPublishShpErrors() {
	shp := catalog.Shapefile{
		Workspace: DefaultWorkspace,
		Store:     "store",
		Layer:     "cities",
		Zip:       ShapefileZip("cities", ShapePoint),
	}

	err := s.Catalog.PublishShp(shp)
	s.Equal(catalog.ErrNoSuchWorkspace{Name: DefaultWorkspace}, err)

	s.createWorkspace(DefaultWorkspace)

	bad := shp
	bad.Zip = []byte("not a zip file")
	err = s.Catalog.PublishShp(bad)
	s.IsType(catalog.ErrBadShapefile{}, err)

	bad = shp
	bad.Zip = ZipFiles(map[string][]byte{"readme.txt": []byte("hello")})
	err = s.Catalog.PublishShp(bad)
	s.IsType(catalog.ErrBadShapefile{}, err)

	bad = shp
	bad.DefaultStyle = "missing"
	err = s.Catalog.PublishShp(bad)
	s.Equal(catalog.ErrNoSuchStyle{Name: "missing"}, err)

	bad = shp
	bad.Store = ""
	err = s.Catalog.PublishShp(bad)
	s.Equal(catalog.ErrBadName, err)

	// nothing got created by the failures
	exists, err := s.Catalog.ExistsDatastore(DefaultWorkspace, "store")
	s.NoError(err)
	s.False(exists)

	s.Require().NoError(s.Catalog.PublishShp(shp))
	err = s.Catalog.PublishShp(shp)
	s.Equal(catalog.ErrLayerExists{Workspace: DefaultWorkspace, Name: "cities"}, err)

	// a second layer may share the store
	second := shp
	second.Layer = "towns"
	s.NoError(s.Catalog.PublishShp(second))
	store, err := s.Catalog.Datastore(DefaultWorkspace, "store")
	s.NoError(err)
	s.Equal([]string{"cities", "towns"}, store.FeatureTypes)
}

// TestConfigureLayerFields applies partial updates and checks that
// untouched fields stay put.
func (s *Suite) TestConfigureLayerFields() {
	s.publishStyle(StyleSLD, "")
	s.publishStyle(StyleSLD2, Style2Name)
	s.createWorkspace(DefaultWorkspace)
	s.publishCities(DefaultWorkspace, "store", "cities", StyleName)

	s.Clock.Add(time.Minute)
	enc := new(catalog.LayerEncoder).
		AddStyle(Style2Name).
		AddStyle(catalog.DefaultStylePoint).
		SetTitle("Cities").
		SetAbstract("Populated places").
		SetQueryable(false)
	s.Require().NoError(s.Catalog.ConfigureLayer(DefaultWorkspace, "cities", *enc))

	layer, err := s.Catalog.WorkspaceLayer(DefaultWorkspace, "cities")
	s.Require().NoError(err)
	s.Equal(StyleName, layer.DefaultStyle)
	s.Equal([]string{Style2Name, catalog.DefaultStylePoint}, layer.Styles)
	s.Equal("Cities", layer.Title)
	s.Equal("Populated places", layer.Abstract)
	s.True(layer.Enabled)
	s.False(layer.Queryable)
	s.True(layer.DateModified.After(layer.DateCreated))

	enc = new(catalog.LayerEncoder).SetEnabled(false)
	enc.Styles = []string{}
	s.Require().NoError(s.Catalog.ConfigureLayer(DefaultWorkspace, "cities", *enc))

	layer, err = s.Catalog.WorkspaceLayer(DefaultWorkspace, "cities")
	s.Require().NoError(err)
	s.Empty(layer.Styles)
	s.False(layer.Enabled)
	s.Equal("Cities", layer.Title)
}

// TestConfigureLayerErrors checks the typed errors from ConfigureLayer.
func (s *Suite) TestConfigureLayerErrors() {
	enc := new(catalog.LayerEncoder).SetTitle("x")

	err := s.Catalog.ConfigureLayer(DefaultWorkspace, "cities", *enc)
	s.Equal(catalog.ErrNoSuchWorkspace{Name: DefaultWorkspace}, err)

	s.createWorkspace(DefaultWorkspace)
	err = s.Catalog.ConfigureLayer(DefaultWorkspace, "cities", *enc)
	s.Equal(catalog.ErrNoSuchLayer{Workspace: DefaultWorkspace, Name: "cities"}, err)

	s.publishCities(DefaultWorkspace, "store", "cities", "")
	err = s.Catalog.ConfigureLayer(DefaultWorkspace, "cities",
		*new(catalog.LayerEncoder).SetDefaultStyle("missing"))
	s.Equal(catalog.ErrNoSuchStyle{Name: "missing"}, err)

	err = s.Catalog.ConfigureLayer(DefaultWorkspace, "cities",
		*new(catalog.LayerEncoder).AddStyle("missing"))
	s.Equal(catalog.ErrNoSuchStyle{Name: "missing"}, err)

	// a failed update changes nothing
	layer, err := s.Catalog.WorkspaceLayer(DefaultWorkspace, "cities")
	s.Require().NoError(err)
	s.Equal(catalog.DefaultStylePoint, layer.DefaultStyle)
	s.Empty(layer.Styles)

	s.False(s.Manager.Publisher.ConfigureLayer(DefaultWorkspace, "nope", enc))
}

// TestRemoveStyleResetsLayer removes a style that layers refer to.
func (s *Suite) TestRemoveStyleResetsLayer() {
	s.publishStyle(StyleSLD, "")
	s.publishStyle(StyleSLD2, Style2Name)
	s.createWorkspace(DefaultWorkspace)
	s.publishCities(DefaultWorkspace, "store", "cities", StyleName)
	s.Require().NoError(s.Catalog.ConfigureLayer(DefaultWorkspace, "cities",
		*new(catalog.LayerEncoder).AddStyle(Style2Name).AddStyle(StyleName)))

	s.True(s.Manager.Publisher.RemoveStyleWithPurge(StyleName, true))

	layer, err := s.Catalog.WorkspaceLayer(DefaultWorkspace, "cities")
	s.Require().NoError(err)
	s.Equal(catalog.DefaultStyleGeneric, layer.DefaultStyle)
	s.Equal([]string{Style2Name}, layer.Styles)

	s.Require().NoError(s.Catalog.RemoveStyle(Style2Name, false))
	layer, err = s.Catalog.WorkspaceLayer(DefaultWorkspace, "cities")
	s.Require().NoError(err)
	s.Empty(layer.Styles)
}

// TestRemoveLayer removes a layer but keeps its store.
func (s *Suite) TestRemoveLayer() {
	pub, rdr := s.Manager.Publisher, s.Manager.Reader
	s.createWorkspace(DefaultWorkspace)
	s.publishCities(DefaultWorkspace, "store", "cities", "")
	s.True(rdr.ExistsLayer(DefaultWorkspace, "cities"))

	s.True(pub.RemoveLayer(DefaultWorkspace, "cities"))
	s.False(rdr.ExistsLayer(DefaultWorkspace, "cities"))
	s.True(rdr.ExistsDatastore(DefaultWorkspace, "store"))
	s.False(pub.RemoveLayer(DefaultWorkspace, "cities"))

	err := s.Catalog.RemoveLayer(DefaultWorkspace, "cities")
	s.Equal(catalog.ErrNoSuchLayer{Workspace: DefaultWorkspace, Name: "cities"}, err)
	s.Nil(rdr.WorkspaceLayer(DefaultWorkspace, "cities"))

	// the store is empty now, so a plain removal works
	s.True(pub.RemoveDatastore(DefaultWorkspace, "store", false))
}

// TestLayerNames checks Layers and the qualified and unqualified
// lookups.
func (s *Suite) TestLayerNames() {
	s.createWorkspace("beta")
	s.createWorkspace("alpha")
	s.publishCities("beta", "store", "cities", "")
	s.publishCities("beta", "store", "airports", "")
	s.publishCities("alpha", "store", "cities", "")

	names, err := s.Catalog.Layers()
	s.NoError(err)
	s.Equal([]string{"alpha:cities", "beta:airports", "beta:cities"}, names)
	s.Equal(names, s.Manager.Reader.Layers())

	layer, err := s.Catalog.Layer("beta:cities")
	if s.NoError(err) {
		s.Equal("beta", layer.Workspace)
	}

	// unqualified names resolve to the first workspace in name order
	layer, err = s.Catalog.Layer("cities")
	if s.NoError(err) {
		s.Equal("alpha", layer.Workspace)
	}

	layer, err = s.Catalog.Layer("airports")
	if s.NoError(err) {
		s.Equal("beta", layer.Workspace)
	}

	_, err = s.Catalog.Layer("missing")
	s.Equal(catalog.ErrNoSuchLayer{Name: "missing"}, err)

	_, err = s.Catalog.Layer("alpha:airports")
	s.Equal(catalog.ErrNoSuchLayer{Workspace: "alpha", Name: "airports"}, err)

	s.Nil(s.Manager.Reader.Layer("missing"))
	if l := s.Manager.Reader.Layer("beta:airports"); s.NotNil(l) {
		s.Equal("airports", l.Name)
	}
}

// TestLayerSnapshot checks that a returned layer does not alias the
// catalog's copy.
func (s *Suite) TestLayerSnapshot() {
	s.publishStyle(StyleSLD, "")
	s.createWorkspace(DefaultWorkspace)
	s.publishCities(DefaultWorkspace, "store", "cities", "")
	s.Require().NoError(s.Catalog.ConfigureLayer(DefaultWorkspace, "cities",
		*new(catalog.LayerEncoder).AddStyle(StyleName)))

	layer, err := s.Catalog.WorkspaceLayer(DefaultWorkspace, "cities")
	s.Require().NoError(err)
	s.Require().Len(layer.Styles, 1)
	layer.Styles[0] = "scribbled"

	layer, err = s.Catalog.WorkspaceLayer(DefaultWorkspace, "cities")
	s.Require().NoError(err)
	s.Equal([]string{StyleName}, layer.Styles)
}
