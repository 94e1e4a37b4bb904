// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package manager

import (
	"io/ioutil"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/sirupsen/logrus"
)

// Publisher performs mutating catalog operations, reporting success as
// a boolean.
type Publisher struct {
	catalog catalog.Publisher
	log     logrus.FieldLogger
}

// result logs err, if any, and converts it to a success flag.
func (p *Publisher) result(fields logrus.Fields, err error, what string) bool {
	if err != nil {
		p.log.WithFields(fields).WithError(err).Error(what)
		return false
	}
	p.log.WithFields(fields).Debug(what + " succeeded")
	return true
}

// PublishStyle publishes an SLD document, taking the style name from
// the document.  Returns false if a style with that name already
// exists.
func (p *Publisher) PublishStyle(sld string) bool {
	return p.PublishStyleWithName(sld, "")
}

// PublishStyleWithName publishes an SLD document under an explicit
// name.  An empty name means the name in the document.
func (p *Publisher) PublishStyleWithName(sld, name string) bool {
	style, err := p.catalog.PublishStyle(sld, name)
	if err == nil {
		name = style.Name
	} else if name == "" {
		name = styleNameOf(sld)
	}
	return p.result(logrus.Fields{"style": name}, err, "Publish style")
}

// PublishStyleFile publishes the SLD document in a file, taking the
// style name from the document.
func (p *Publisher) PublishStyleFile(path string) bool {
	return p.PublishStyleFileWithName(path, "")
}

// PublishStyleFileWithName publishes the SLD document in a file under
// an explicit name.
func (p *Publisher) PublishStyleFileWithName(path, name string) bool {
	sld, err := ioutil.ReadFile(path)
	if err != nil {
		return p.result(logrus.Fields{"file": path}, err, "Read style file")
	}
	return p.PublishStyleWithName(string(sld), name)
}

// UpdateStyle replaces the SLD document of an existing style.
func (p *Publisher) UpdateStyle(name, sld string) bool {
	err := p.catalog.UpdateStyle(name, sld)
	return p.result(logrus.Fields{"style": name}, err, "Update style")
}

// RemoveStyle removes a style.  Returns false if it does not exist.
func (p *Publisher) RemoveStyle(name string) bool {
	return p.RemoveStyleWithPurge(name, false)
}

// RemoveStyleWithPurge removes a style, optionally asking the server
// to purge the SLD file as well.
func (p *Publisher) RemoveStyleWithPurge(name string, purge bool) bool {
	err := p.catalog.RemoveStyle(name, purge)
	return p.result(logrus.Fields{"style": name, "purge": purge}, err, "Remove style")
}

// CreateWorkspace creates a new workspace.
func (p *Publisher) CreateWorkspace(name string) bool {
	err := p.catalog.CreateWorkspace(name)
	return p.result(logrus.Fields{"workspace": name}, err, "Create workspace")
}

// RemoveWorkspace removes a workspace, and with recurse, everything in
// it.
func (p *Publisher) RemoveWorkspace(name string, recurse bool) bool {
	err := p.catalog.RemoveWorkspace(name, recurse)
	return p.result(logrus.Fields{"workspace": name, "recurse": recurse}, err, "Remove workspace")
}

// PublishShp uploads the zipped shapefile at zipPath into a (possibly
// new) datastore and publishes it as a layer with the given default
// style.
func (p *Publisher) PublishShp(workspace, store, layer, zipPath, srs, defaultStyle string) bool {
	fields := logrus.Fields{"workspace": workspace, "store": store, "layer": layer}
	data, err := ioutil.ReadFile(zipPath)
	if err != nil {
		fields["file"] = zipPath
		return p.result(fields, err, "Read shapefile archive")
	}
	return p.PublishShpData(workspace, store, layer, data, srs, defaultStyle)
}

// PublishShpData is PublishShp with the archive already in memory.
func (p *Publisher) PublishShpData(workspace, store, layer string, zip []byte, srs, defaultStyle string) bool {
	err := p.catalog.PublishShp(catalog.Shapefile{
		Workspace:    workspace,
		Store:        store,
		Layer:        layer,
		Zip:          zip,
		SRS:          srs,
		DefaultStyle: defaultStyle,
	})
	fields := logrus.Fields{"workspace": workspace, "store": store, "layer": layer}
	return p.result(fields, err, "Publish shapefile")
}

// ConfigureLayer applies a partial update to a layer.
func (p *Publisher) ConfigureLayer(workspace, layer string, encoder *catalog.LayerEncoder) bool {
	var enc catalog.LayerEncoder
	if encoder != nil {
		enc = *encoder
	}
	err := p.catalog.ConfigureLayer(workspace, layer, enc)
	return p.result(logrus.Fields{"workspace": workspace, "layer": layer}, err, "Configure layer")
}

// RemoveLayer removes a single layer.
func (p *Publisher) RemoveLayer(workspace, layer string) bool {
	err := p.catalog.RemoveLayer(workspace, layer)
	return p.result(logrus.Fields{"workspace": workspace, "layer": layer}, err, "Remove layer")
}

// RemoveDatastore removes a datastore, and with recurse, its layers.
func (p *Publisher) RemoveDatastore(workspace, store string, recurse bool) bool {
	err := p.catalog.RemoveDatastore(workspace, store, recurse)
	fields := logrus.Fields{"workspace": workspace, "store": store, "recurse": recurse}
	return p.result(fields, err, "Remove datastore")
}

// styleNameOf returns the name a document would be published under,
// or "" if it has none.
func styleNameOf(sld string) string {
	info, err := catalog.ParseSLD(sld)
	if err != nil {
		return ""
	}
	return info.StyleName()
}
