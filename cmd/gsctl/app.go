// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"io"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/manager"
	"github.com/diffeo/go-geoserver/restclient"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// opener creates the catalog a command works on.
type opener func(c *cli.Context, log logrus.FieldLogger) (catalog.Catalog, error)

// connect is the opener that talks to a REST server.
func connect(c *cli.Context, log logrus.FieldLogger) (catalog.Catalog, error) {
	return restclient.NewWithOptions(c.GlobalString("url"), restclient.Options{
		Username: c.GlobalString("user"),
		Password: c.GlobalString("password"),
		Logger:   log,
	})
}

// gsctl holds the state shared by all commands.
type gsctl struct {
	Out     io.Writer
	Log     *logrus.Logger
	Open    opener
	Manager *manager.Manager
}

// before connects to the catalog ahead of any command.
func (g *gsctl) before(c *cli.Context) error {
	if c.GlobalBool("verbose") {
		g.Log.SetLevel(logrus.DebugLevel)
	}
	cat, err := g.Open(c, g.Log)
	if err != nil {
		return fmt.Errorf("could not connect to %s: %w", c.GlobalString("url"), err)
	}
	g.Manager = manager.New(cat, g.Log)
	return nil
}

// newTable starts a table written to the command output.
func (g *gsctl) newTable(header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(g.Out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))
	return t
}

// failed builds the error for a manager call that returned false.
// The manager has already logged the cause.
func failed(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// needArgs checks the number of positional arguments.
func needArgs(c *cli.Context, names ...string) error {
	if c.NArg() != len(names) {
		return fmt.Errorf("%s: expected arguments %v", c.Command.Name, names)
	}
	return nil
}

func newApp(out, errOut io.Writer, open opener) *cli.App {
	log := logrus.New()
	log.Out = errOut
	g := &gsctl{Out: out, Log: log, Open: open}

	app := cli.NewApp()
	app.Name = "gsctl"
	app.Usage = "manage a map server catalog"
	app.Writer = out
	app.ErrWriter = errOut
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "url",
			Value:  "http://localhost:8080/rest/",
			Usage:  "base URL of the catalog REST interface",
			EnvVar: "GEOSERVER_URL",
		},
		cli.StringFlag{
			Name:   "user",
			Usage:  "HTTP basic authentication user",
			EnvVar: "GEOSERVER_USER",
		},
		cli.StringFlag{
			Name:   "password",
			Usage:  "HTTP basic authentication password",
			EnvVar: "GEOSERVER_PASSWORD",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every request",
		},
	}
	app.Before = g.before
	app.Commands = []cli.Command{
		g.styleCommand(),
		g.workspaceCommand(),
		g.datastoreCommand(),
		g.layerCommand(),
		{
			Name:   "summary",
			Usage:  "count the objects in the catalog",
			Action: g.summary,
		},
		{
			Name:  "reset",
			Usage: "remove every workspace and style",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "force",
					Usage: "really do it",
				},
			},
			Action: g.reset,
		},
	}
	return app
}

func (g *gsctl) summary(c *cli.Context) error {
	summary, err := g.Manager.Catalog().Summarize()
	if err != nil {
		return err
	}
	t := g.newTable("Kind", "Count")
	t.AppendRow(table.Row{"styles", summary.Styles})
	t.AppendRow(table.Row{"workspaces", summary.Workspaces})
	t.AppendRow(table.Row{"datastores", summary.Datastores})
	t.AppendRow(table.Row{"layers", summary.Layers})
	t.Render()
	return nil
}

func (g *gsctl) reset(c *cli.Context) error {
	if !c.Bool("force") {
		return fmt.Errorf("reset deletes the entire catalog; pass --force")
	}
	if !g.Manager.DeleteAll() {
		return failed("could not clear the catalog")
	}
	return nil
}
