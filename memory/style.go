// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"github.com/diffeo/go-geoserver/catalog"
)

type style struct {
	style catalog.Style
	sld   string
}

func (c *memCatalog) PublishStyle(sld, name string) (result catalog.Style, err error) {
	prepared, err := catalog.PrepareStyle(sld, name)
	if err != nil {
		return catalog.Style{}, err
	}
	err = c.do(func() error {
		if _, present := c.styles[prepared.Name]; present {
			return catalog.ErrStyleExists{Name: prepared.Name}
		}
		now := c.clock.Now()
		prepared.DateCreated = now
		prepared.DateModified = now
		c.styles[prepared.Name] = &style{
			style: prepared,
			sld:   sld,
		}
		result = prepared
		return nil
	})
	return
}

func (c *memCatalog) UpdateStyle(name, sld string) error {
	info, err := catalog.ParseSLD(sld)
	if err != nil {
		return err
	}
	return c.do(func() error {
		s, present := c.styles[name]
		if !present {
			return catalog.ErrNoSuchStyle{Name: name}
		}
		s.sld = sld
		s.style.Title = info.Title()
		s.style.DateModified = c.clock.Now()
		return nil
	})
}

func (c *memCatalog) RemoveStyle(name string, purge bool) error {
	return c.do(func() error {
		if _, present := c.styles[name]; !present {
			return catalog.ErrNoSuchStyle{Name: name}
		}
		delete(c.styles, name)
		now := c.clock.Now()
		for _, ws := range c.workspaces {
			for _, l := range ws.layers {
				if catalog.DropStyle(&l.layer, name) {
					l.layer.DateModified = now
				}
			}
		}
		return nil
	})
}

func (c *memCatalog) Styles() (names []string, err error) {
	err = c.do(func() error {
		names = catalog.SortedNames(c.styles)
		return nil
	})
	return
}

func (c *memCatalog) ExistsStyle(name string) (exists bool, err error) {
	err = c.do(func() error {
		exists, err = c.styleExists(name)
		return err
	})
	return
}

func (c *memCatalog) Style(name string) (result catalog.Style, err error) {
	err = c.do(func() error {
		s, present := c.styles[name]
		if !present {
			return catalog.ErrNoSuchStyle{Name: name}
		}
		result = s.style
		return nil
	})
	return
}

func (c *memCatalog) SLD(name string) (sld string, err error) {
	err = c.do(func() error {
		s, present := c.styles[name]
		if !present {
			return catalog.ErrNoSuchStyle{Name: name}
		}
		sld = s.sld
		return nil
	})
	return
}
