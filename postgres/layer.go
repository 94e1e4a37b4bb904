// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/diffeo/go-geoserver/catalog"
	uuid "github.com/satori/go.uuid"
)

func (c *pgCatalog) PublishShp(shp catalog.Shapefile) error {
	var name string
	err := withTx(c, false, func(tx *sql.Tx) error {
		wsID, err := workspaceIDOf(tx, shp.Workspace)
		if err != nil {
			return err
		}
		prepared, err := catalog.PrepareLayer(shp, styleExists(tx))
		if err != nil {
			return err
		}
		name = prepared.Name

		var count int
		row := tx.QueryRow("SELECT COUNT(*) FROM layer WHERE workspace_id=$1 AND name=$2",
			wsID, prepared.Name)
		if err = row.Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return catalog.ErrLayerExists{Workspace: shp.Workspace, Name: prepared.Name}
		}

		now := c.clock.Now()
		var storeID string
		row = tx.QueryRow("SELECT id FROM datastore WHERE workspace_id=$1 AND name=$2",
			wsID, shp.Store)
		err = row.Scan(&storeID)
		if err == sql.ErrNoRows {
			storeID = uuid.NewV4().String()
			params := queryParams{}
			fields := fieldList{}
			fields.Add(&params, "id", storeID)
			fields.Add(&params, "workspace_id", wsID)
			fields.Add(&params, "name", shp.Store)
			fields.Add(&params, "type", catalog.DatastoreTypeShapefile)
			fields.AddDirect("enabled", "TRUE")
			fields.Add(&params, "date_created", now)
			_, err = tx.Exec(fields.InsertStatement(datastoreTable), params...)
		}
		if err != nil {
			return err
		}

		params := queryParams{}
		fields := fieldList{}
		fields.Add(&params, "id", uuid.NewV4())
		fields.Add(&params, "workspace_id", wsID)
		fields.Add(&params, "datastore_id", storeID)
		fields.Add(&params, "name", prepared.Name)
		fields.Add(&params, "type", prepared.Type)
		fields.Add(&params, "default_style", prepared.DefaultStyle)
		fields.Add(&params, "srs", prepared.SRS)
		fields.Add(&params, "geometry_type", string(prepared.GeometryType))
		fields.Add(&params, "enabled", prepared.Enabled)
		fields.Add(&params, "queryable", prepared.Queryable)
		fields.Add(&params, "title", prepared.Title)
		fields.Add(&params, "abstract", prepared.Abstract)
		fields.Add(&params, "date_created", now)
		fields.Add(&params, "date_modified", now)
		_, err = tx.Exec(fields.InsertStatement(layerTable), params...)
		return err
	})
	if isSQLState(err, uniqueViolation) {
		err = catalog.ErrLayerExists{Workspace: shp.Workspace, Name: name}
	}
	return err
}

// scanLayer reads one row selected with layerColumns, returning the
// layer ID alongside the layer.  The alternate styles are not
// loaded; see loadStyles.
func scanLayer(row interface{ Scan(...interface{}) error }) (id string, layer catalog.Layer, err error) {
	var geometry string
	err = row.Scan(&id, &layer.Workspace, &layer.Name, &layer.Store,
		&layer.Type, &layer.DefaultStyle, &layer.SRS, &geometry,
		&layer.Enabled, &layer.Queryable, &layer.Title, &layer.Abstract,
		&layer.DateCreated, &layer.DateModified)
	layer.GeometryType = catalog.GeometryType(geometry)
	return
}

// loadStyles fills in the alternate style list of a layer.
func loadStyles(tx *sql.Tx, id string, layer *catalog.Layer) (err error) {
	query := buildSelect([]string{layerStyleName}, []string{layerStyleTable},
		[]string{layerStyleLayer + "=$1"})
	query += " ORDER BY " + layerStylePosition
	layer.Styles, err = scanNames(tx, query, queryParams{id})
	return
}

// findLayer retrieves a complete layer, returning ErrNoSuchWorkspace
// or ErrNoSuchLayer if it cannot be found.
func findLayer(tx *sql.Tx, workspace, name string) (string, catalog.Layer, error) {
	if _, err := workspaceIDOf(tx, workspace); err != nil {
		return "", catalog.Layer{}, err
	}
	params := queryParams{}
	conditions := append([]string{
		workspaceName + "=" + params.Param(workspace),
		layerName + "=" + params.Param(name),
	}, layerJoins...)
	query := buildSelect(layerColumns, layerTables, conditions)
	id, layer, err := scanLayer(tx.QueryRow(query, params...))
	if err == sql.ErrNoRows {
		err = catalog.ErrNoSuchLayer{Workspace: workspace, Name: name}
	}
	if err == nil {
		err = loadStyles(tx, id, &layer)
	}
	return id, layer, err
}

func (c *pgCatalog) ConfigureLayer(workspace, name string, encoder catalog.LayerEncoder) error {
	return withTx(c, false, func(tx *sql.Tx) error {
		id, _, err := findLayer(tx, workspace, name)
		if err != nil {
			return err
		}
		if err = catalog.CheckEncoder(encoder, styleExists(tx)); err != nil {
			return err
		}

		params := queryParams{}
		fields := fieldList{}
		if encoder.DefaultStyle != nil {
			fields.Add(&params, "default_style", *encoder.DefaultStyle)
		}
		if encoder.Enabled != nil {
			fields.Add(&params, "enabled", *encoder.Enabled)
		}
		if encoder.Queryable != nil {
			fields.Add(&params, "queryable", *encoder.Queryable)
		}
		if encoder.Title != nil {
			fields.Add(&params, "title", *encoder.Title)
		}
		if encoder.Abstract != nil {
			fields.Add(&params, "abstract", *encoder.Abstract)
		}
		fields.Add(&params, "date_modified", c.clock.Now())
		query := buildUpdate(layerTable, fields.UpdateChanges(), []string{
			"id=" + params.Param(id),
		})
		if _, err = tx.Exec(query, params...); err != nil {
			return err
		}

		if encoder.Styles == nil {
			return nil
		}
		_, err = tx.Exec(buildDelete(layerStyleTable, []string{"layer_id=$1"}), id)
		if err != nil {
			return err
		}
		for position, style := range encoder.Styles {
			_, err = tx.Exec("INSERT INTO layer_style(layer_id, position, style) VALUES($1, $2, $3)",
				id, position, style)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *pgCatalog) RemoveLayer(workspace, name string) error {
	return withTx(c, false, func(tx *sql.Tx) error {
		id, _, err := findLayer(tx, workspace, name)
		if err != nil {
			return err
		}
		_, err = tx.Exec(buildDelete(layerTable, []string{"id=$1"}), id)
		return err
	})
}

func (c *pgCatalog) Layers() (names []string, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		names = []string{}
		query := buildSelect([]string{
			workspaceName,
			layerName,
		}, []string{
			workspaceTable,
			layerTable,
		}, []string{
			layerInWorkspace,
		})
		query += (" ORDER BY " + workspaceName + byteOrder +
			", " + layerName + byteOrder)
		return queryAndScan(tx, query, nil, func(rows *sql.Rows) error {
			var workspace, name string
			err := rows.Scan(&workspace, &name)
			if err == nil {
				names = append(names, catalog.QualifyName(workspace, name))
			}
			return err
		})
	})
	return
}

func (c *pgCatalog) Layer(name string) (result catalog.Layer, err error) {
	workspace, bare := catalog.SplitName(name)
	if workspace != "" {
		return c.WorkspaceLayer(workspace, bare)
	}
	err = withTx(c, true, func(tx *sql.Tx) error {
		params := queryParams{}
		conditions := append([]string{
			layerName + "=" + params.Param(bare),
		}, layerJoins...)
		query := buildSelect(layerColumns, layerTables, conditions)
		query += " ORDER BY " + workspaceName + byteOrder + " LIMIT 1"
		id, layer, err := scanLayer(tx.QueryRow(query, params...))
		if err == sql.ErrNoRows {
			return catalog.ErrNoSuchLayer{Name: bare}
		}
		if err != nil {
			return err
		}
		if err = loadStyles(tx, id, &layer); err != nil {
			return err
		}
		result = layer
		return nil
	})
	return
}

func (c *pgCatalog) WorkspaceLayer(workspace, name string) (result catalog.Layer, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		_, layer, err := findLayer(tx, workspace, name)
		if err == nil {
			result = layer
		}
		return err
	})
	return
}

func (c *pgCatalog) ExistsLayer(workspace, name string) (exists bool, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		params := queryParams{}
		query := buildSelect([]string{"COUNT(*)"}, []string{
			workspaceTable,
			layerTable,
		}, []string{
			layerInWorkspace,
			workspaceName + "=" + params.Param(workspace),
			layerName + "=" + params.Param(name),
		})
		var count int
		err := tx.QueryRow(query, params...).Scan(&count)
		exists = count > 0
		return err
	})
	return
}
