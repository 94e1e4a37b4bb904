// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli"
)

func (g *gsctl) styleCommand() cli.Command {
	return cli.Command{
		Name:  "style",
		Usage: "manage styles",
		Subcommands: []cli.Command{
			{
				Name:   "list",
				Usage:  "list published styles",
				Action: g.styleList,
			},
			{
				Name:      "publish",
				Usage:     "publish an SLD file as a new style",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "name",
						Usage: "style name (default: from the document)",
					},
				},
				Action: g.stylePublish,
			},
			{
				Name:      "update",
				Usage:     "replace the SLD document of a style",
				ArgsUsage: "NAME FILE",
				Action:    g.styleUpdate,
			},
			{
				Name:      "remove",
				Usage:     "remove a style",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					cli.BoolFlag{
						Name:  "purge",
						Usage: "also delete the SLD file",
					},
				},
				Action: g.styleRemove,
			},
			{
				Name:      "sld",
				Usage:     "print the SLD document of a style",
				ArgsUsage: "NAME",
				Action:    g.styleSLD,
			},
		},
	}
}

func (g *gsctl) styleList(c *cli.Context) error {
	t := g.newTable("Name", "Title", "Modified")
	for _, name := range g.Manager.Reader.Styles() {
		style := g.Manager.Reader.Style(name)
		if style == nil {
			continue
		}
		t.AppendRow(table.Row{
			style.Name,
			style.Title,
			style.DateModified.Format(time.RFC3339),
		})
	}
	t.Render()
	return nil
}

func (g *gsctl) stylePublish(c *cli.Context) error {
	if err := needArgs(c, "FILE"); err != nil {
		return err
	}
	path := c.Args().First()
	if !g.Manager.Publisher.PublishStyleFileWithName(path, c.String("name")) {
		return failed("could not publish %s", path)
	}
	return nil
}

func (g *gsctl) styleUpdate(c *cli.Context) error {
	if err := needArgs(c, "NAME", "FILE"); err != nil {
		return err
	}
	name := c.Args().Get(0)
	sld, err := ioutil.ReadFile(c.Args().Get(1))
	if err != nil {
		return err
	}
	if !g.Manager.Publisher.UpdateStyle(name, string(sld)) {
		return failed("could not update style %s", name)
	}
	return nil
}

func (g *gsctl) styleRemove(c *cli.Context) error {
	if err := needArgs(c, "NAME"); err != nil {
		return err
	}
	name := c.Args().First()
	if !g.Manager.Publisher.RemoveStyleWithPurge(name, c.Bool("purge")) {
		return failed("could not remove style %s", name)
	}
	return nil
}

func (g *gsctl) styleSLD(c *cli.Context) error {
	if err := needArgs(c, "NAME"); err != nil {
		return err
	}
	name := c.Args().First()
	sld := g.Manager.Reader.SLD(name)
	if sld == "" {
		return failed("no such style %s", name)
	}
	_, err := fmt.Fprint(g.Out, sld)
	return err
}
