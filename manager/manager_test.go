// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package manager_test

import (
	"testing"

	"github.com/diffeo/go-geoserver/catalog"
	"github.com/diffeo/go-geoserver/catalog/catalogtest"
	"github.com/diffeo/go-geoserver/manager"
	"github.com/diffeo/go-geoserver/memory"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureIsLogged(t *testing.T) {
	log, hook := test.NewNullLogger()
	m := manager.New(memory.New(), log)

	require.True(t, m.Publisher.PublishStyle(catalogtest.StyleSLD))
	assert.Empty(t, hook.AllEntries())

	assert.False(t, m.Publisher.PublishStyle(catalogtest.StyleSLD))
	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, catalogtest.StyleName, entry.Data["style"])
		assert.IsType(t, catalog.ErrStyleExists{}, entry.Data[logrus.ErrorKey])
	}
}

func TestMissingObjectsAreQuiet(t *testing.T) {
	log, hook := test.NewNullLogger()
	m := manager.New(memory.New(), log)

	assert.False(t, m.Reader.ExistsStyle("nothing"))
	assert.Equal(t, "", m.Reader.SLD("nothing"))
	assert.Nil(t, m.Reader.Style("nothing"))
	assert.Nil(t, m.Reader.Layer("nothing"))
	assert.Nil(t, m.Reader.WorkspaceLayer("nowhere", "nothing"))
	assert.Nil(t, m.Reader.Datastore("nowhere", "nothing"))
	assert.Empty(t, hook.AllEntries(), "not-found lookups log at debug")
}

func TestRemoveMissingStyle(t *testing.T) {
	log, hook := test.NewNullLogger()
	m := manager.New(memory.New(), log)

	assert.False(t, m.Publisher.RemoveStyle("nothing"))
	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "nothing", entry.Data["style"])
	}
}

func TestMissingStyleFile(t *testing.T) {
	log, hook := test.NewNullLogger()
	m := manager.New(memory.New(), log)

	assert.False(t, m.Publisher.PublishStyleFile("/nonexistent/style.sld"))
	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "/nonexistent/style.sld", entry.Data["file"])
	}
}

func TestDeleteAll(t *testing.T) {
	m := manager.New(memory.New(), nil)
	require.True(t, m.Publisher.PublishStyle(catalogtest.StyleSLD))
	require.True(t, m.Publisher.CreateWorkspace("topp"))
	require.True(t, m.Publisher.PublishShpData("topp", "poi", "",
		catalogtest.ShapefileZip("cities", catalogtest.ShapePoint), "", ""))

	assert.True(t, m.DeleteAll())
	assert.Empty(t, m.Reader.Styles())
	assert.Empty(t, m.Reader.Workspaces())
	assert.Empty(t, m.Reader.Layers())
}
