// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSelect(t *testing.T) {
	params := queryParams{}
	query := buildSelect([]string{
		layerName,
		workspaceName,
	}, []string{
		workspaceTable,
		layerTable,
	}, []string{
		layerInWorkspace,
		layerName + "=" + params.Param("roads"),
	})
	assert.Equal(t, "SELECT layer.name, workspace.name FROM workspace, layer WHERE layer.workspace_id=workspace.id AND layer.name=$1", query)
	assert.Equal(t, queryParams{"roads"}, params)

	query = buildSelect([]string{"COUNT(*)"}, []string{styleTable}, nil)
	assert.Equal(t, "SELECT COUNT(*) FROM style", query)
}

func TestBuildUpdateAndDelete(t *testing.T) {
	params := queryParams{}
	fields := fieldList{}
	fields.Add(&params, "title", "Roads")
	fields.AddDirect("enabled", "TRUE")
	query := buildUpdate(layerTable, fields.UpdateChanges(), []string{
		"id=" + params.Param("id"),
	})
	assert.Equal(t, "UPDATE layer SET title=$1, enabled=TRUE WHERE id=$2", query)
	assert.Equal(t, queryParams{"Roads", "id"}, params)

	query = buildDelete(layerStyleTable, []string{"layer_id=$1"})
	assert.Equal(t, "DELETE FROM layer_style WHERE layer_id=$1", query)
}

func TestInsertStatement(t *testing.T) {
	params := queryParams{}
	fields := fieldList{}
	fields.Add(&params, "id", "x")
	fields.Add(&params, "name", "topp")
	assert.Equal(t, []string{"id", "name"}, fields.Names)
	assert.Equal(t, []string{"$1", "$2"}, fields.Values)
	assert.Equal(t, "INSERT INTO workspace(id, name) VALUES($1, $2)",
		fields.InsertStatement(workspaceTable))
}

func TestIsSQLState(t *testing.T) {
	assert.False(t, isSQLState(nil, uniqueViolation))
	assert.False(t, isSQLState(assert.AnError, uniqueViolation))
}

func TestEmptyClauses(t *testing.T) {
	fields := fieldList{}
	assert.Equal(t, "UPDATE layer", buildUpdate(layerTable, fields.UpdateChanges(), nil))
	assert.Equal(t, "DELETE FROM layer", buildDelete(layerTable, nil))
	assert.Equal(t, "SELECT 1", buildSelect([]string{"1"}, nil, nil))
}
