// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

const (
	// SQL table names:
	workspaceTable  = "workspace"
	styleTable      = "style"
	datastoreTable  = "datastore"
	layerTable      = "layer"
	layerStyleTable = "layer_style"

	// SQL column names:
	workspaceID          = workspaceTable + ".id"
	workspaceName        = workspaceTable + ".name"
	styleName            = styleTable + ".name"
	styleTitle           = styleTable + ".title"
	styleSLD             = styleTable + ".sld"
	styleDateCreated     = styleTable + ".date_created"
	styleDateModified    = styleTable + ".date_modified"
	datastoreID          = datastoreTable + ".id"
	datastoreWorkspace   = datastoreTable + ".workspace_id"
	datastoreName        = datastoreTable + ".name"
	datastoreType        = datastoreTable + ".type"
	datastoreEnabled     = datastoreTable + ".enabled"
	datastoreDateCreated = datastoreTable + ".date_created"
	layerID              = layerTable + ".id"
	layerWorkspace       = layerTable + ".workspace_id"
	layerDatastore       = layerTable + ".datastore_id"
	layerName            = layerTable + ".name"
	layerType            = layerTable + ".type"
	layerDefaultStyle    = layerTable + ".default_style"
	layerSRS             = layerTable + ".srs"
	layerGeometryType    = layerTable + ".geometry_type"
	layerEnabled         = layerTable + ".enabled"
	layerQueryable       = layerTable + ".queryable"
	layerTitle           = layerTable + ".title"
	layerAbstract        = layerTable + ".abstract"
	layerDateCreated     = layerTable + ".date_created"
	layerDateModified    = layerTable + ".date_modified"
	layerStyleLayer      = layerStyleTable + ".layer_id"
	layerStylePosition   = layerStyleTable + ".position"
	layerStyleName       = layerStyleTable + ".style"

	// WHERE clause fragments:
	datastoreInWorkspace = datastoreWorkspace + "=" + workspaceID
	layerInWorkspace     = layerWorkspace + "=" + workspaceID
	layerInDatastore     = layerDatastore + "=" + datastoreID

	// Names sort in byte order, as Go's sort.Strings does, no matter
	// what the database's default collation is.
	byteOrder = ` COLLATE "C"`
)

// layerColumns are the columns scanned by scanLayer, in order.
var layerColumns = []string{
	layerID,
	workspaceName,
	layerName,
	datastoreName,
	layerType,
	layerDefaultStyle,
	layerSRS,
	layerGeometryType,
	layerEnabled,
	layerQueryable,
	layerTitle,
	layerAbstract,
	layerDateCreated,
	layerDateModified,
}

// layerTables joins layers to their workspace and datastore.
var layerTables = []string{
	workspaceTable,
	datastoreTable,
	layerTable,
}

// layerJoins are the conditions that go with layerTables.
var layerJoins = []string{
	layerInWorkspace,
	layerInDatastore,
}
