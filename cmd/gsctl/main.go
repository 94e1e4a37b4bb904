// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command gsctl manages a map server catalog through its REST
// interface.  The server address and credentials come from the
// --url, --user and --password flags, or from the GEOSERVER_URL,
// GEOSERVER_USER and GEOSERVER_PASSWORD environment variables, which
// may also be set in a .env file in the current directory.
//
//     gsctl workspace create topp
//     gsctl style publish roads.sld
//     gsctl layer publish topp roads tiger_roads.zip --style roads
//     gsctl layer list
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// A missing .env file is fine; a broken one is not
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Fatal("Could not load .env file")
	}

	app := newApp(os.Stdout, os.Stderr, connect)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name, err)
		os.Exit(1)
	}
}
