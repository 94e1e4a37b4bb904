// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package manager provides the simple Publisher/Reader view of a map
// server catalog.  Where the catalog package returns typed errors,
// everything here reports plain success or failure: mutations return
// false and queries return an empty or nil value, and the underlying
// error is logged.
//
// A typical use against a remote server is
//
//     c, err := restclient.New("http://localhost:8080/geoserver/rest/")
//     m := manager.New(c, nil)
//     if !m.Publisher.PublishStyleFile("roads.sld") {
//         ...
//     }
//     sld := m.Reader.SLD("roads")
package manager

import (
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/sirupsen/logrus"
)

// Manager bundles a Publisher and a Reader over the same catalog.
type Manager struct {
	Publisher *Publisher
	Reader    *Reader

	catalog catalog.Catalog
	log     logrus.FieldLogger
}

// New creates a Manager.  If log is nil, the logrus standard logger is
// used.
func New(c catalog.Catalog, log logrus.FieldLogger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{
		Publisher: &Publisher{catalog: c, log: log},
		Reader:    &Reader{catalog: c, log: log},
		catalog:   c,
		log:       log,
	}
}

// Catalog returns the underlying catalog.
func (m *Manager) Catalog() catalog.Catalog {
	return m.catalog
}

// DeleteAll removes every workspace, with everything in it, and every
// published style.  This brings a server to a known empty state, and
// is mostly useful for tests.  Returns false if anything could not be
// removed; it keeps going after individual failures.
func (m *Manager) DeleteAll() bool {
	ok := true
	workspaces, err := m.catalog.Workspaces()
	if err != nil {
		m.log.WithError(err).Error("Could not list workspaces")
		return false
	}
	for _, ws := range workspaces {
		ok = m.Publisher.RemoveWorkspace(ws, true) && ok
	}
	styles, err := m.catalog.Styles()
	if err != nil {
		m.log.WithError(err).Error("Could not list styles")
		return false
	}
	for _, style := range styles {
		ok = m.Publisher.RemoveStyleWithPurge(style, true) && ok
	}
	return ok
}
