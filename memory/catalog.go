// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// a map server catalog.  There is no persistence, nor is there any
// automatic sharing.  The entire catalog is behind a single global
// semaphore to protect against concurrent updates.
//
// This is mostly intended as a simple reference implementation that
// can be used for testing, including in-process testing of the REST
// server and client.  It is tuned for correctness, not performance.
package memory

import (
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-geoserver/catalog"
)

// New creates a new catalog that operates purely in memory.
func New() catalog.Catalog {
	return NewWithClock(clock.New())
}

// NewWithClock creates a new in-memory catalog with an explicit time
// source.  Most application code should call New(); this entry point
// is intended for tests that need to inject a mock time source.
func NewWithClock(clk clock.Clock) catalog.Catalog {
	return &memCatalog{
		clock:      clk,
		styles:     make(map[string]*style),
		workspaces: make(map[string]*workspace),
	}
}

type memCatalog struct {
	sem        sync.Mutex
	clock      clock.Clock
	styles     map[string]*style
	workspaces map[string]*workspace
}

// do runs f under the global lock.
func (c *memCatalog) do(f func() error) error {
	c.sem.Lock()
	defer c.sem.Unlock()
	return f()
}

// workspace looks up a workspace.  It expects to run within the
// global lock.
func (c *memCatalog) workspace(name string) (*workspace, error) {
	ws, present := c.workspaces[name]
	if !present {
		return nil, catalog.ErrNoSuchWorkspace{Name: name}
	}
	return ws, nil
}

// styleExists is the callback the shared validation helpers use.  It
// expects to run within the global lock.
func (c *memCatalog) styleExists(name string) (bool, error) {
	_, present := c.styles[name]
	return present, nil
}

func (c *memCatalog) Summarize() (summary catalog.Summary, err error) {
	err = c.do(func() error {
		summary.Styles = len(c.styles)
		summary.Workspaces = len(c.workspaces)
		for _, ws := range c.workspaces {
			summary.Datastores += len(ws.datastores)
			summary.Layers += len(ws.layers)
		}
		return nil
	})
	return
}
