// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/catalog/catalogtest"
	"github.com/diffeo/go-geoserver/memory"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

// harness runs gsctl commands against one in-memory catalog.
type harness struct {
	t       *testing.T
	Catalog catalog.Catalog
	Dir     string
	Out     bytes.Buffer
	Err     bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	dir, err := ioutil.TempDir("", "gsctl")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return &harness{t: t, Catalog: memory.New(), Dir: dir}
}

func (h *harness) open(c *cli.Context, log logrus.FieldLogger) (catalog.Catalog, error) {
	return h.Catalog, nil
}

// Run executes one command line, resetting the captured output.
func (h *harness) Run(args ...string) error {
	h.Out.Reset()
	h.Err.Reset()
	app := newApp(&h.Out, &h.Err, h.open)
	return app.Run(append([]string{"gsctl"}, args...))
}

// File writes content to a file in the scratch directory.
func (h *harness) File(name string, content []byte) string {
	path := filepath.Join(h.Dir, name)
	require.NoError(h.t, ioutil.WriteFile(path, content, 0644))
	return path
}

func TestStyleCommands(t *testing.T) {
	h := newHarness(t)
	sld := h.File("style.sld", []byte(catalogtest.StyleSLD))

	require.NoError(t, h.Run("style", "publish", sld))
	if assert.NoError(t, h.Run("style", "list")) {
		assert.Contains(t, h.Out.String(), catalogtest.StyleName)
		assert.Contains(t, h.Out.String(), catalogtest.StyleTitle)
	}

	assert.Error(t, h.Run("style", "publish", sld),
		"publishing twice should fail")

	sld2 := h.File("style2.sld", []byte(catalogtest.StyleSLD2))
	require.NoError(t, h.Run("style", "update", catalogtest.StyleName, sld2))
	if assert.NoError(t, h.Run("style", "sld", catalogtest.StyleName)) {
		assert.Equal(t, catalogtest.StyleSLD2, h.Out.String())
	}

	require.NoError(t, h.Run("style", "remove", "--purge", catalogtest.StyleName))
	exists, err := h.Catalog.ExistsStyle(catalogtest.StyleName)
	if assert.NoError(t, err) {
		assert.False(t, exists)
	}
	assert.Error(t, h.Run("style", "sld", catalogtest.StyleName))
}

func TestStylePublishWithName(t *testing.T) {
	h := newHarness(t)
	sld := h.File("cities.sld", []byte(catalogtest.StyleSLD2))

	require.NoError(t, h.Run("style", "publish", "--name", catalogtest.Style2Name, sld))
	exists, err := h.Catalog.ExistsStyle(catalogtest.Style2Name)
	if assert.NoError(t, err) {
		assert.True(t, exists)
	}
}

func TestWorkspaceCommands(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.Run("workspace", "create", "topp"))
	assert.Error(t, h.Run("workspace", "create", "topp"))
	if assert.NoError(t, h.Run("workspace", "list")) {
		assert.Contains(t, h.Out.String(), "topp")
	}

	zip := h.File("roads.zip", catalogtest.ShapefileZip("roads", catalogtest.ShapePolyLine))
	require.NoError(t, h.Run("layer", "publish", "topp", "tiger", zip))
	if assert.NoError(t, h.Run("datastore", "list", "topp")) {
		assert.Contains(t, h.Out.String(), "tiger")
		assert.Contains(t, h.Out.String(), "roads")
	}
	assert.Error(t, h.Run("datastore", "list", "nowhere"))

	assert.Error(t, h.Run("workspace", "remove", "topp"),
		"non-empty workspace needs --recurse")
	require.NoError(t, h.Run("workspace", "remove", "--recurse", "topp"))
	exists, err := h.Catalog.ExistsWorkspace("topp")
	if assert.NoError(t, err) {
		assert.False(t, exists)
	}
}

func TestDatastoreRemove(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.Run("workspace", "create", "topp"))
	zip := h.File("roads.zip", catalogtest.ShapefileZip("roads", catalogtest.ShapePolyLine))
	require.NoError(t, h.Run("layer", "publish", "topp", "tiger", zip))

	assert.Error(t, h.Run("datastore", "remove", "topp", "tiger"))
	require.NoError(t, h.Run("datastore", "remove", "--recurse", "topp", "tiger"))
	exists, err := h.Catalog.ExistsLayer("topp", "roads")
	if assert.NoError(t, err) {
		assert.False(t, exists)
	}
}

func TestLayerCommands(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.Run("workspace", "create", "topp"))
	sld := h.File("style.sld", []byte(catalogtest.StyleSLD))
	require.NoError(t, h.Run("style", "publish", sld))

	zip := h.File("places.zip", catalogtest.ShapefileZip("places", catalogtest.ShapePoint))
	require.NoError(t, h.Run("layer", "publish", "--layer", "cities", "topp", "poi", zip))

	layer, err := h.Catalog.WorkspaceLayer("topp", "cities")
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultStylePoint, layer.DefaultStyle)
	assert.Equal(t, catalog.DefaultSRS, layer.SRS)

	if assert.NoError(t, h.Run("layer", "list")) {
		assert.Contains(t, h.Out.String(), "topp:cities")
	}

	require.NoError(t, h.Run("layer", "configure",
		"--style", catalogtest.StyleName,
		"--title", "Cities",
		"--disable",
		"topp", "cities"))
	layer, err = h.Catalog.WorkspaceLayer("topp", "cities")
	if assert.NoError(t, err) {
		assert.Equal(t, catalogtest.StyleName, layer.DefaultStyle)
		assert.Equal(t, "Cities", layer.Title)
		assert.False(t, layer.Enabled)
	}

	if assert.NoError(t, h.Run("layer", "show", "topp:cities")) {
		assert.Contains(t, h.Out.String(), catalogtest.StyleName)
		assert.Contains(t, h.Out.String(), "Cities")
	}

	assert.Error(t, h.Run("layer", "configure", "topp", "cities"),
		"configure with no changes")
	assert.Error(t, h.Run("layer", "configure", "--style", "missing", "topp", "cities"))

	require.NoError(t, h.Run("layer", "remove", "topp", "cities"))
	assert.Error(t, h.Run("layer", "show", "topp:cities"))
	assert.Error(t, h.Run("layer", "remove", "topp", "cities"))
}

func TestSummaryAndReset(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.Run("workspace", "create", "topp"))
	sld := h.File("style.sld", []byte(catalogtest.StyleSLD))
	require.NoError(t, h.Run("style", "publish", sld))

	if assert.NoError(t, h.Run("summary")) {
		assert.Contains(t, h.Out.String(), "workspaces")
	}

	assert.Error(t, h.Run("reset"))
	require.NoError(t, h.Run("reset", "--force"))
	summary, err := h.Catalog.Summarize()
	if assert.NoError(t, err) {
		assert.Equal(t, catalog.Summary{}, summary)
	}
}

func TestArgumentCount(t *testing.T) {
	h := newHarness(t)
	assert.Error(t, h.Run("workspace", "create"))
	assert.Error(t, h.Run("layer", "remove", "topp"))
}

func TestOpenFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut, func(*cli.Context, logrus.FieldLogger) (catalog.Catalog, error) {
		return nil, errors.New("connection refused")
	})
	err := app.Run([]string{"gsctl", "style", "list"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "connection refused")
	}
}
