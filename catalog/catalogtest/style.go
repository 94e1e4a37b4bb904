// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalogtest

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/diffeo/go-geoserver/catalog"
)

// sldDocument picks the fields the style tests check out of an SLD,
// insisting on the SLD namespace throughout.  Missing elements decode
// as nil pointers.
type sldDocument struct {
	XMLName    xml.Name `xml:"http://www.opengis.net/sld StyledLayerDescriptor"`
	NamedLayer *struct {
		Name      *string `xml:"http://www.opengis.net/sld Name"`
		UserStyle *struct {
			Title *string `xml:"http://www.opengis.net/sld Title"`
		} `xml:"http://www.opengis.net/sld UserStyle"`
	} `xml:"http://www.opengis.net/sld NamedLayer"`
}

// TestStyles publishes a style from a file, checks that republishing
// it fails, and checks the retrieved SLD content.
func (s *Suite) TestStyles() {
	pub, rdr := s.Manager.Publisher, s.Manager.Reader
	s.Len(rdr.Styles(), 0)

	sldFile := s.tempFile("restteststyle.sld", []byte(StyleSLD))

	// insert style
	s.True(pub.PublishStyleFile(sldFile))
	s.True(rdr.ExistsStyle(StyleName))

	s.False(pub.PublishStyleFile(sldFile))
	s.True(rdr.ExistsStyle(StyleName))

	sld := rdr.SLD(StyleName)
	s.Require().NotEmpty(sld)
	s.Equal(StyleSLD, sld)

	var doc sldDocument
	err := xml.Unmarshal([]byte(sld), &doc)
	s.Require().NoError(err)
	if s.NotNil(doc.NamedLayer, "Error in SLD") &&
		s.NotNil(doc.NamedLayer.Name, "Error in SLD") &&
		s.NotNil(doc.NamedLayer.UserStyle, "Error in SLD") &&
		s.NotNil(doc.NamedLayer.UserStyle.Title, "Error in SLD") {
		s.Equal(StyleName, *doc.NamedLayer.Name)
		s.Equal(StyleTitle, *doc.NamedLayer.UserStyle.Title)
	}

	s.Len(rdr.Styles(), 1)
}

// TestPublishDeleteStyleFile publishes a style from a file, taking the
// name from its content, then removes it.
func (s *Suite) TestPublishDeleteStyleFile() {
	pub, rdr := s.Manager.Publisher, s.Manager.Reader
	sldFile := s.tempFile("restteststyle.sld", []byte(StyleSLD))

	s.cleanupTestStyle(StyleName)

	s.True(pub.PublishStyleFile(sldFile), "publish() failed")
	s.True(rdr.ExistsStyle(StyleName))

	s.True(pub.RemoveStyle(StyleName), "Unpublish() failed")
	s.False(rdr.ExistsStyle(StyleName))
}

// TestPublishDeleteStyleString publishes a style from a string, taking
// the name from its content, then removes it.
func (s *Suite) TestPublishDeleteStyleString() {
	pub, rdr := s.Manager.Publisher, s.Manager.Reader

	s.cleanupTestStyle(StyleName)

	s.True(pub.PublishStyle(StyleSLD), "publish() failed")
	s.True(rdr.ExistsStyle(StyleName))

	s.True(pub.RemoveStyle(StyleName), "Unpublish() failed")
	s.False(rdr.ExistsStyle(StyleName))
}

// TestRemoveMissingStyle checks that removing a style that does not
// exist fails, both as a boolean and as a typed error.
func (s *Suite) TestRemoveMissingStyle() {
	s.False(s.Manager.Publisher.RemoveStyle("nonexistent"))

	err := s.Catalog.RemoveStyle("nonexistent", false)
	s.Equal(catalog.ErrNoSuchStyle{Name: "nonexistent"}, err)
}

// TestPublishStyleExplicitName publishes a document under a name other
// than the one it declares.
func (s *Suite) TestPublishStyleExplicitName() {
	style := s.publishStyle(StyleSLD2, Style2Name)
	s.Equal(Style2Name, style.Name)
	s.Equal(Style2Name+".sld", style.Filename)
	s.Equal("Blue cities", style.Title)

	exists, err := s.Catalog.ExistsStyle(Style2Name)
	s.NoError(err)
	s.True(exists)

	exists, err = s.Catalog.ExistsStyle("cities")
	s.NoError(err)
	s.False(exists)

	sld, err := s.Catalog.SLD(Style2Name)
	s.NoError(err)
	s.Equal(StyleSLD2, sld)

	styles, err := s.Catalog.Styles()
	s.NoError(err)
	s.Equal([]string{Style2Name}, styles)
}

// TestPublishStyleErrors checks the typed errors from PublishStyle.
func (s *Suite) TestPublishStyleErrors() {
	s.publishStyle(StyleSLD, "")

	_, err := s.Catalog.PublishStyle(StyleSLD, "")
	s.Equal(catalog.ErrStyleExists{Name: StyleName}, err)

	_, err = s.Catalog.PublishStyle("this is not xml", "junk")
	s.IsType(catalog.ErrBadSLD{}, err)

	_, err = s.Catalog.PublishStyle(`<foo xmlns="http://example.com/"/>`, "junk")
	s.IsType(catalog.ErrBadSLD{}, err)

	noName := `<StyledLayerDescriptor xmlns="http://www.opengis.net/sld"><NamedLayer/></StyledLayerDescriptor>`
	_, err = s.Catalog.PublishStyle(noName, "")
	s.Equal(catalog.ErrNoStyleName, err)

	_, err = s.Catalog.PublishStyle(StyleSLD, catalog.DefaultStylePoint)
	s.Equal(catalog.ErrReservedStyleName, err)

	styles, err := s.Catalog.Styles()
	s.NoError(err)
	s.Equal([]string{StyleName}, styles)
}

// TestStyleNotFound checks the reader side for a missing style.
func (s *Suite) TestStyleNotFound() {
	_, err := s.Catalog.Style("missing")
	s.Equal(catalog.ErrNoSuchStyle{Name: "missing"}, err)

	_, err = s.Catalog.SLD("missing")
	s.Equal(catalog.ErrNoSuchStyle{Name: "missing"}, err)

	s.Empty(s.Manager.Reader.SLD("missing"))
	s.Nil(s.Manager.Reader.Style("missing"))
}

// TestUpdateStyle replaces the body of a style and checks the
// modification time moves while the name stays.
func (s *Suite) TestUpdateStyle() {
	start := s.Clock.Now()
	style := s.publishStyle(StyleSLD, "")
	s.WithinDuration(start, style.DateCreated, time.Millisecond)
	s.WithinDuration(start, style.DateModified, time.Millisecond)

	s.Clock.Add(time.Hour)
	updated := strings.Replace(StyleSLD, StyleTitle, "UPDATED", 1)
	s.Require().NoError(s.Catalog.UpdateStyle(StyleName, updated))

	style, err := s.Catalog.Style(StyleName)
	s.Require().NoError(err)
	s.Equal(StyleName, style.Name)
	s.Equal("UPDATED", style.Title)
	s.WithinDuration(start, style.DateCreated, time.Millisecond)
	s.WithinDuration(start.Add(time.Hour), style.DateModified, time.Millisecond)

	sld, err := s.Catalog.SLD(StyleName)
	s.NoError(err)
	s.Equal(updated, sld)

	err = s.Catalog.UpdateStyle("missing", StyleSLD)
	s.Equal(catalog.ErrNoSuchStyle{Name: "missing"}, err)

	err = s.Catalog.UpdateStyle(StyleName, "not xml")
	s.IsType(catalog.ErrBadSLD{}, err)
}
