// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	migrate "github.com/rubenv/sql-migrate"
)

// This file maintains the database migration code.  See
// https://github.com/rubenv/sql-migrate for details of what goes in
// here.  This runs "outside" the normal catalog flow, either at
// initial startup or from an external tool.

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_catalog",
			Up: []string{
				`CREATE TABLE workspace(
					id UUID PRIMARY KEY,
					name VARCHAR NOT NULL,
					CONSTRAINT workspace_unique_name UNIQUE(name)
				)`,
				`CREATE TABLE style(
					id UUID PRIMARY KEY,
					name VARCHAR NOT NULL,
					title VARCHAR NOT NULL,
					sld TEXT NOT NULL,
					date_created TIMESTAMP WITH TIME ZONE NOT NULL,
					date_modified TIMESTAMP WITH TIME ZONE NOT NULL,
					CONSTRAINT style_unique_name UNIQUE(name)
				)`,
				`CREATE TABLE datastore(
					id UUID PRIMARY KEY,
					workspace_id UUID NOT NULL
						REFERENCES workspace(id) ON DELETE CASCADE,
					name VARCHAR NOT NULL,
					type VARCHAR NOT NULL,
					enabled BOOLEAN NOT NULL,
					date_created TIMESTAMP WITH TIME ZONE NOT NULL,
					CONSTRAINT datastore_unique_name UNIQUE(workspace_id, name)
				)`,
				`CREATE TABLE layer(
					id UUID PRIMARY KEY,
					workspace_id UUID NOT NULL
						REFERENCES workspace(id) ON DELETE CASCADE,
					datastore_id UUID NOT NULL
						REFERENCES datastore(id) ON DELETE CASCADE,
					name VARCHAR NOT NULL,
					type VARCHAR NOT NULL,
					default_style VARCHAR NOT NULL,
					srs VARCHAR NOT NULL,
					geometry_type VARCHAR NOT NULL,
					enabled BOOLEAN NOT NULL,
					queryable BOOLEAN NOT NULL,
					title VARCHAR NOT NULL,
					abstract VARCHAR NOT NULL,
					date_created TIMESTAMP WITH TIME ZONE NOT NULL,
					date_modified TIMESTAMP WITH TIME ZONE NOT NULL,
					CONSTRAINT layer_unique_name UNIQUE(workspace_id, name)
				)`,
				`CREATE INDEX layer_name ON layer(name)`,
				`CREATE INDEX layer_default_style ON layer(default_style)`,
				`CREATE TABLE layer_style(
					layer_id UUID NOT NULL
						REFERENCES layer(id) ON DELETE CASCADE,
					position INTEGER NOT NULL,
					style VARCHAR NOT NULL,
					PRIMARY KEY(layer_id, position)
				)`,
				`CREATE INDEX layer_style_style ON layer_style(style)`,
			},
			Down: []string{
				`DROP TABLE layer_style`,
				`DROP TABLE layer`,
				`DROP TABLE datastore`,
				`DROP TABLE style`,
				`DROP TABLE workspace`,
			},
		},
	},
}

// Upgrade upgrades a database to the latest database schema version.
func Upgrade(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Up)
	return err
}

// Drop clears a database by running all of the migrations in reverse,
// ultimately resulting in dropping all of the tables.
func Drop(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Down)
	return err
}
