// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/restdata"
)

func styleVars(name string) map[string]interface{} {
	return map[string]interface{}{"style": name}
}

func (c *restCatalog) PublishStyle(sld, name string) (catalog.Style, error) {
	var resp restdata.Style
	req := restdata.StylePost{Name: name, SLD: sld}
	err := c.PostTo(c.Representation.StylesURL, noVars(), req, &resp)
	if err != nil {
		return catalog.Style{}, err
	}
	return resp.ToStyle(), nil
}

func (c *restCatalog) UpdateStyle(name, sld string) error {
	req := restdata.SLDBody{SLD: sld}
	return c.PutTo(c.Representation.StyleURL, styleVars(name), req, nil)
}

func (c *restCatalog) RemoveStyle(name string, purge bool) error {
	flag := ""
	if purge {
		flag = "purge"
	}
	return c.DeleteAt(c.Representation.StyleURL, styleVars(name), flag)
}

func (c *restCatalog) Styles() ([]string, error) {
	var resp restdata.StyleList
	err := c.GetFrom(c.Representation.StylesURL, noVars(), &resp)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(resp.Styles))
	for i, style := range resp.Styles {
		names[i] = style.Name
	}
	return names, nil
}

func (c *restCatalog) style(name string) (restdata.Style, error) {
	var resp restdata.Style
	err := c.GetFrom(c.Representation.StyleURL, styleVars(name), &resp)
	return resp, err
}

func (c *restCatalog) ExistsStyle(name string) (bool, error) {
	_, err := c.style(name)
	return exists(err)
}

func (c *restCatalog) Style(name string) (catalog.Style, error) {
	resp, err := c.style(name)
	if err != nil {
		return catalog.Style{}, err
	}
	return resp.ToStyle(), nil
}

func (c *restCatalog) SLD(name string) (string, error) {
	style, err := c.style(name)
	if err != nil {
		return "", err
	}
	var body restdata.SLDBody
	err = c.GetFrom(style.SLDURL, noVars(), &body)
	if err != nil {
		return "", err
	}
	return body.SLD, nil
}
