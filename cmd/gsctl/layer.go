// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"strings"
	"time"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli"
)

func (g *gsctl) layerCommand() cli.Command {
	return cli.Command{
		Name:  "layer",
		Usage: "manage layers",
		Subcommands: []cli.Command{
			{
				Name:   "list",
				Usage:  "list every layer",
				Action: g.layerList,
			},
			{
				Name:      "show",
				Usage:     "describe one layer",
				ArgsUsage: "[WORKSPACE:]LAYER",
				Action:    g.layerShow,
			},
			{
				Name:      "publish",
				Usage:     "publish a zipped shapefile as a layer",
				ArgsUsage: "WORKSPACE STORE ZIPFILE",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "layer",
						Usage: "layer name (default: the shapefile name)",
					},
					cli.StringFlag{
						Name:  "srs",
						Usage: "spatial reference system",
						Value: catalog.DefaultSRS,
					},
					cli.StringFlag{
						Name:  "style",
						Usage: "default style (default: by geometry)",
					},
				},
				Action: g.layerPublish,
			},
			{
				Name:      "configure",
				Usage:     "change the settings of a layer",
				ArgsUsage: "WORKSPACE LAYER",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "style",
						Usage: "default style",
					},
					cli.StringSliceFlag{
						Name:  "add-style",
						Usage: "alternate style (repeatable; replaces the list)",
					},
					cli.StringFlag{
						Name:  "title",
						Usage: "layer title",
					},
					cli.StringFlag{
						Name:  "abstract",
						Usage: "layer description",
					},
					cli.BoolFlag{
						Name:  "enable",
						Usage: "enable the layer",
					},
					cli.BoolFlag{
						Name:  "disable",
						Usage: "disable the layer",
					},
				},
				Action: g.layerConfigure,
			},
			{
				Name:      "remove",
				Usage:     "remove a layer",
				ArgsUsage: "WORKSPACE LAYER",
				Action:    g.layerRemove,
			},
		},
	}
}

func (g *gsctl) layerList(c *cli.Context) error {
	t := g.newTable("Layer", "Store", "Geometry", "Default style", "SRS")
	for _, name := range g.Manager.Reader.Layers() {
		layer := g.Manager.Reader.Layer(name)
		if layer == nil {
			continue
		}
		t.AppendRow(table.Row{
			layer.QualifiedName(),
			layer.Store,
			layer.GeometryType,
			layer.DefaultStyle,
			layer.SRS,
		})
	}
	t.Render()
	return nil
}

func (g *gsctl) layerShow(c *cli.Context) error {
	if err := needArgs(c, "LAYER"); err != nil {
		return err
	}
	name := c.Args().First()
	layer := g.Manager.Reader.Layer(name)
	if layer == nil {
		return failed("no such layer %s", name)
	}
	t := g.newTable("Field", "Value")
	t.AppendRows([]table.Row{
		{"Name", layer.QualifiedName()},
		{"Store", layer.Store},
		{"Type", layer.Type},
		{"Geometry", layer.GeometryType},
		{"SRS", layer.SRS},
		{"Default style", layer.DefaultStyle},
		{"Styles", strings.Join(layer.Styles, ", ")},
		{"Enabled", layer.Enabled},
		{"Queryable", layer.Queryable},
		{"Title", layer.Title},
		{"Abstract", layer.Abstract},
		{"Created", layer.DateCreated.Format(time.RFC3339)},
		{"Modified", layer.DateModified.Format(time.RFC3339)},
	})
	t.Render()
	return nil
}

func (g *gsctl) layerPublish(c *cli.Context) error {
	if err := needArgs(c, "WORKSPACE", "STORE", "ZIPFILE"); err != nil {
		return err
	}
	workspace, store, zipPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)
	if !g.Manager.Publisher.PublishShp(workspace, store, c.String("layer"),
		zipPath, c.String("srs"), c.String("style")) {
		return failed("could not publish %s", zipPath)
	}
	return nil
}

func (g *gsctl) layerConfigure(c *cli.Context) error {
	if err := needArgs(c, "WORKSPACE", "LAYER"); err != nil {
		return err
	}
	workspace, name := c.Args().Get(0), c.Args().Get(1)
	encoder := &catalog.LayerEncoder{}
	if c.IsSet("style") {
		encoder.SetDefaultStyle(c.String("style"))
	}
	for _, style := range c.StringSlice("add-style") {
		encoder.AddStyle(style)
	}
	if c.IsSet("title") {
		encoder.SetTitle(c.String("title"))
	}
	if c.IsSet("abstract") {
		encoder.SetAbstract(c.String("abstract"))
	}
	if c.Bool("enable") {
		encoder.SetEnabled(true)
	}
	if c.Bool("disable") {
		encoder.SetEnabled(false)
	}
	if encoder.IsEmpty() {
		return failed("nothing to change")
	}
	if !g.Manager.Publisher.ConfigureLayer(workspace, name, encoder) {
		return failed("could not configure layer %s in %s", name, workspace)
	}
	return nil
}

func (g *gsctl) layerRemove(c *cli.Context) error {
	if err := needArgs(c, "WORKSPACE", "LAYER"); err != nil {
		return err
	}
	workspace, name := c.Args().Get(0), c.Args().Get(1)
	if !g.Manager.Publisher.RemoveLayer(workspace, name) {
		return failed("could not remove layer %s in %s", name, workspace)
	}
	return nil
}
