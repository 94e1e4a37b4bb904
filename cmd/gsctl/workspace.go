// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli"
)

func (g *gsctl) workspaceCommand() cli.Command {
	return cli.Command{
		Name:  "workspace",
		Usage: "manage workspaces",
		Subcommands: []cli.Command{
			{
				Name:   "list",
				Usage:  "list workspaces",
				Action: g.workspaceList,
			},
			{
				Name:      "create",
				Usage:     "create an empty workspace",
				ArgsUsage: "NAME",
				Action:    g.workspaceCreate,
			},
			{
				Name:      "remove",
				Usage:     "remove a workspace",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					cli.BoolFlag{
						Name:  "recurse",
						Usage: "also remove its datastores and layers",
					},
				},
				Action: g.workspaceRemove,
			},
		},
	}
}

func (g *gsctl) workspaceList(c *cli.Context) error {
	t := g.newTable("Name", "Datastores")
	for _, name := range g.Manager.Reader.Workspaces() {
		t.AppendRow(table.Row{name, len(g.Manager.Reader.Datastores(name))})
	}
	t.Render()
	return nil
}

func (g *gsctl) workspaceCreate(c *cli.Context) error {
	if err := needArgs(c, "NAME"); err != nil {
		return err
	}
	name := c.Args().First()
	if !g.Manager.Publisher.CreateWorkspace(name) {
		return failed("could not create workspace %s", name)
	}
	return nil
}

func (g *gsctl) workspaceRemove(c *cli.Context) error {
	if err := needArgs(c, "NAME"); err != nil {
		return err
	}
	name := c.Args().First()
	if !g.Manager.Publisher.RemoveWorkspace(name, c.Bool("recurse")) {
		return failed("could not remove workspace %s", name)
	}
	return nil
}

func (g *gsctl) datastoreCommand() cli.Command {
	return cli.Command{
		Name:  "datastore",
		Usage: "manage datastores",
		Subcommands: []cli.Command{
			{
				Name:      "list",
				Usage:     "list the datastores in a workspace",
				ArgsUsage: "WORKSPACE",
				Action:    g.datastoreList,
			},
			{
				Name:      "remove",
				Usage:     "remove a datastore",
				ArgsUsage: "WORKSPACE STORE",
				Flags: []cli.Flag{
					cli.BoolFlag{
						Name:  "recurse",
						Usage: "also remove its layers",
					},
				},
				Action: g.datastoreRemove,
			},
		},
	}
}

func (g *gsctl) datastoreList(c *cli.Context) error {
	if err := needArgs(c, "WORKSPACE"); err != nil {
		return err
	}
	workspace := c.Args().First()
	if !g.Manager.Reader.ExistsWorkspace(workspace) {
		return failed("no such workspace %s", workspace)
	}
	t := g.newTable("Name", "Type", "Enabled", "Layers", "Created")
	for _, name := range g.Manager.Reader.Datastores(workspace) {
		store := g.Manager.Reader.Datastore(workspace, name)
		if store == nil {
			continue
		}
		t.AppendRow(table.Row{
			store.Name,
			store.Type,
			store.Enabled,
			strings.Join(store.FeatureTypes, ", "),
			store.DateCreated.Format(time.RFC3339),
		})
	}
	t.Render()
	return nil
}

func (g *gsctl) datastoreRemove(c *cli.Context) error {
	if err := needArgs(c, "WORKSPACE", "STORE"); err != nil {
		return err
	}
	workspace, store := c.Args().Get(0), c.Args().Get(1)
	if !g.Manager.Publisher.RemoveDatastore(workspace, store, c.Bool("recurse")) {
		return failed("could not remove datastore %s in %s", store, workspace)
	}
	return nil
}
