// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/diffeo/go-geoserver/catalog"
	uuid "github.com/satori/go.uuid"
)

func (c *pgCatalog) PublishStyle(sld, name string) (result catalog.Style, err error) {
	prepared, err := catalog.PrepareStyle(sld, name)
	if err != nil {
		return catalog.Style{}, err
	}
	err = withTx(c, false, func(tx *sql.Tx) error {
		exists, err := styleExists(tx)(prepared.Name)
		if err != nil {
			return err
		}
		if exists {
			return catalog.ErrStyleExists{Name: prepared.Name}
		}
		now := c.clock.Now()
		prepared.DateCreated = now
		prepared.DateModified = now

		params := queryParams{}
		fields := fieldList{}
		fields.Add(&params, "id", uuid.NewV4())
		fields.Add(&params, "name", prepared.Name)
		fields.Add(&params, "title", prepared.Title)
		fields.Add(&params, "sld", sld)
		fields.Add(&params, "date_created", now)
		fields.Add(&params, "date_modified", now)
		_, err = tx.Exec(fields.InsertStatement(styleTable), params...)
		return err
	})
	if isSQLState(err, uniqueViolation) {
		err = catalog.ErrStyleExists{Name: prepared.Name}
	}
	if err != nil {
		return catalog.Style{}, err
	}
	return prepared, nil
}

func (c *pgCatalog) UpdateStyle(name, sld string) error {
	info, err := catalog.ParseSLD(sld)
	if err != nil {
		return err
	}
	return withTx(c, false, func(tx *sql.Tx) error {
		params := queryParams{}
		fields := fieldList{}
		fields.Add(&params, "sld", sld)
		fields.Add(&params, "title", info.Title())
		fields.Add(&params, "date_modified", c.clock.Now())
		query := buildUpdate(styleTable, fields.UpdateChanges(), []string{
			"name=" + params.Param(name),
		})
		result, err := tx.Exec(query, params...)
		if err != nil {
			return err
		}
		count, err := result.RowsAffected()
		if err == nil && count == 0 {
			err = catalog.ErrNoSuchStyle{Name: name}
		}
		return err
	})
}

func (c *pgCatalog) RemoveStyle(name string, purge bool) error {
	return withTx(c, false, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM style WHERE name=$1", name)
		if err != nil {
			return err
		}
		count, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if count == 0 {
			return catalog.ErrNoSuchStyle{Name: name}
		}

		// Layers that referred to the style change: first stamp
		// them, then fix up the references
		now := c.clock.Now()
		_, err = tx.Exec("UPDATE layer SET date_modified=$1 "+
			"WHERE default_style=$2 OR id IN "+
			"(SELECT layer_id FROM layer_style WHERE style=$2)",
			now, name)
		if err != nil {
			return err
		}
		_, err = tx.Exec("UPDATE layer SET default_style=$1 WHERE default_style=$2",
			catalog.DefaultStyleGeneric, name)
		if err != nil {
			return err
		}
		_, err = tx.Exec("DELETE FROM layer_style WHERE style=$1", name)
		return err
	})
}

func (c *pgCatalog) Styles() (names []string, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		query := buildSelect([]string{styleName}, []string{styleTable}, nil)
		query += " ORDER BY " + styleName + byteOrder
		names, err = scanNames(tx, query, nil)
		return err
	})
	return
}

func (c *pgCatalog) ExistsStyle(name string) (exists bool, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		exists, err = styleExists(tx)(name)
		return err
	})
	return
}

func (c *pgCatalog) Style(name string) (result catalog.Style, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		query := buildSelect([]string{
			styleName,
			styleTitle,
			styleDateCreated,
			styleDateModified,
		}, []string{styleTable}, []string{styleName + "=$1"})
		row := tx.QueryRow(query, name)
		err := row.Scan(&result.Name, &result.Title,
			&result.DateCreated, &result.DateModified)
		if err == sql.ErrNoRows {
			return catalog.ErrNoSuchStyle{Name: name}
		}
		result.Filename = result.Name + ".sld"
		return err
	})
	return
}

func (c *pgCatalog) SLD(name string) (sld string, err error) {
	err = withTx(c, true, func(tx *sql.Tx) error {
		query := buildSelect([]string{styleSLD}, []string{styleTable},
			[]string{styleName + "=$1"})
		err := tx.QueryRow(query, name).Scan(&sld)
		if err == sql.ErrNoRows {
			return catalog.ErrNoSuchStyle{Name: name}
		}
		return err
	})
	return
}
