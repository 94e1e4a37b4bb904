// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/diffeo/go-geoserver/catalog"
	uuid "github.com/satori/go.uuid"
)

func (c *pgCatalog) CreateWorkspace(name string) error {
	if err := catalog.CheckName(name); err != nil {
		return err
	}
	err := withTx(c, false, func(tx *sql.Tx) error {
		_, err := workspaceIDOf(tx, name)
		if err == nil {
			return catalog.ErrWorkspaceExists{Name: name}
		}
		if !catalog.IsNotFound(err) {
			return err
		}
		_, err = tx.Exec("INSERT INTO workspace(id, name) VALUES($1, $2)",
			uuid.NewV4(), name)
		return err
	})
	if isSQLState(err, uniqueViolation) {
		err = catalog.ErrWorkspaceExists{Name: name}
	}
	return err
}

func (c *pgCatalog) RemoveWorkspace(name string, recurse bool) error {
	return withTx(c, false, func(tx *sql.Tx) error {
		id, err := workspaceIDOf(tx, name)
		if err != nil {
			return err
		}
		if !recurse {
			var count int
			row := tx.QueryRow("SELECT COUNT(*) FROM datastore WHERE workspace_id=$1", id)
			if err = row.Scan(&count); err != nil {
				return err
			}
			if count > 0 {
				return catalog.ErrWorkspaceNotEmpty{Name: name}
			}
		}
		// Datastores, layers, and their style lists cascade
		_, err = tx.Exec(buildDelete(workspaceTable, []string{"id=$1"}), id)
		return err
	})
}

func (c *pgCatalog) Workspaces() (names []string, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		query := buildSelect([]string{workspaceName}, []string{workspaceTable}, nil)
		query += " ORDER BY " + workspaceName + byteOrder
		names, err = scanNames(tx, query, nil)
		return err
	})
	return
}

func (c *pgCatalog) ExistsWorkspace(name string) (exists bool, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		_, err := workspaceIDOf(tx, name)
		if err == nil {
			exists = true
			return nil
		}
		if catalog.IsNotFound(err) {
			return nil
		}
		return err
	})
	return
}

// datastoreIDOf looks up the ID of a datastore, returning an
// ErrNoSuchWorkspace or ErrNoSuchDatastore if either does not exist.
func datastoreIDOf(tx *sql.Tx, workspace, name string) (wsID, id string, err error) {
	wsID, err = workspaceIDOf(tx, workspace)
	if err != nil {
		return
	}
	row := tx.QueryRow("SELECT id FROM datastore WHERE workspace_id=$1 AND name=$2",
		wsID, name)
	err = row.Scan(&id)
	if err == sql.ErrNoRows {
		err = catalog.ErrNoSuchDatastore{Workspace: workspace, Name: name}
	}
	return
}

// featureTypes returns the sorted names of the layers in a datastore.
func featureTypes(tx *sql.Tx, storeID string) ([]string, error) {
	query := buildSelect([]string{layerName}, []string{layerTable},
		[]string{layerDatastore + "=$1"})
	query += " ORDER BY " + layerName + byteOrder
	return scanNames(tx, query, queryParams{storeID})
}

func (c *pgCatalog) Datastores(workspace string) (names []string, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		if _, err := workspaceIDOf(tx, workspace); err != nil {
			return err
		}
		params := queryParams{}
		query := buildSelect([]string{
			datastoreName,
		}, []string{
			workspaceTable,
			datastoreTable,
		}, []string{
			datastoreInWorkspace,
			workspaceName + "=" + params.Param(workspace),
		})
		query += " ORDER BY " + datastoreName + byteOrder
		names, err = scanNames(tx, query, params)
		return err
	})
	return
}

func (c *pgCatalog) Datastore(workspace, name string) (result catalog.Datastore, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		_, id, err := datastoreIDOf(tx, workspace, name)
		if err != nil {
			return err
		}
		query := buildSelect([]string{
			datastoreType,
			datastoreEnabled,
			datastoreDateCreated,
		}, []string{datastoreTable}, []string{datastoreID + "=$1"})
		err = tx.QueryRow(query, id).Scan(&result.Type, &result.Enabled,
			&result.DateCreated)
		if err != nil {
			return err
		}
		result.Workspace = workspace
		result.Name = name
		result.FeatureTypes, err = featureTypes(tx, id)
		return err
	})
	return
}

func (c *pgCatalog) ExistsDatastore(workspace, name string) (exists bool, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		_, _, err := datastoreIDOf(tx, workspace, name)
		if err == nil {
			exists = true
			return nil
		}
		if catalog.IsNotFound(err) {
			return nil
		}
		return err
	})
	return
}

func (c *pgCatalog) RemoveDatastore(workspace, name string, recurse bool) error {
	return withTx(c, false, func(tx *sql.Tx) error {
		_, id, err := datastoreIDOf(tx, workspace, name)
		if err != nil {
			return err
		}
		if !recurse {
			owned, err := featureTypes(tx, id)
			if err != nil {
				return err
			}
			if len(owned) > 0 {
				return catalog.ErrDatastoreNotEmpty{Workspace: workspace, Name: name}
			}
		}
		_, err = tx.Exec(buildDelete(datastoreTable, []string{"id=$1"}), id)
		return err
	})
}
