// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

// This file contains the database/sql plumbing shared by the catalog
// operations: retried transactions, row iteration, and string-built
// statements with numbered parameters.

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// SQLSTATE codes this package reacts to.
const (
	serializationFailure = "40001"
	uniqueViolation      = "23505"
)

// maxTxAttempts bounds the retries of a transaction that keeps
// hitting serialization failures.
const maxTxAttempts = 10

// withTx runs f in a REPEATABLE READ transaction, committing if it
// returns nil and rolling back otherwise.  Serialization failures,
// from f or from the commit, rerun f in a fresh transaction.
func withTx(c *pgCatalog, readOnly bool, f func(*sql.Tx) error) (err error) {
	level := "REPEATABLE READ"
	if readOnly {
		level += " READ ONLY"
	}
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = runTx(c.db, level, f)
		if !isSQLState(err, serializationFailure) {
			return err
		}
	}
	return fmt.Errorf("transaction retried %d times: %w", maxTxAttempts, err)
}

// runTx makes a single attempt at a transaction.
func runTx(db *sql.DB, level string, f func(*sql.Tx) error) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		// A panic in f also lands here
		if rbErr := tx.Rollback(); err == nil && rbErr != sql.ErrTxDone {
			err = rbErr
		}
	}()

	if _, err = tx.Exec("SET TRANSACTION ISOLATION LEVEL " + level); err != nil {
		return err
	}
	if err = f(tx); err != nil {
		return err
	}
	committed = true
	return tx.Commit()
}

// isSQLState determines whether err is a PostgreSQL error with a
// specific SQLSTATE code.
func isSQLState(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

// queryAndScan runs query on tx and calls f for each result row.  f
// should only Scan the row; iteration and closing happen here.
func queryAndScan(tx *sql.Tx, query string, params queryParams, f func(*sql.Rows) error) (err error) {
	rows, err := tx.Query(query, params...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rows.Close(); err == nil {
			err = closeErr
		}
	}()
	for rows.Next() {
		if err = f(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// scanNames runs a query that selects a single string column and
// returns the results in order.  The result is never nil.
func scanNames(tx *sql.Tx, query string, params queryParams) ([]string, error) {
	names := []string{}
	err := queryAndScan(tx, query, params, func(rows *sql.Rows) error {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		names = append(names, name)
		return nil
	})
	return names, err
}

// clause renders keyword followed by parts joined with sep, or
// nothing if there are no parts.
func clause(keyword, sep string, parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return " " + keyword + " " + strings.Join(parts, sep)
}

// buildSelect constructs a SELECT statement.  The conditions are
// ANDed together.
func buildSelect(outputs, tables, conditions []string) string {
	return "SELECT " + strings.Join(outputs, ", ") +
		clause("FROM", ", ", tables) +
		clause("WHERE", " AND ", conditions)
}

// buildUpdate constructs an UPDATE statement.  The conditions are
// ANDed together.
func buildUpdate(table string, changes, conditions []string) string {
	return "UPDATE " + table +
		clause("SET", ", ", changes) +
		clause("WHERE", " AND ", conditions)
}

// buildDelete constructs a DELETE statement.  The conditions are
// ANDed together.
func buildDelete(table string, conditions []string) string {
	return "DELETE FROM " + table + clause("WHERE", " AND ", conditions)
}

// queryParams wraps a list of query parameters.
type queryParams []interface{}

// Param adds a parameter to the query parameter list, returning its
// position as $1, $2, ...
func (qp *queryParams) Param(param interface{}) string {
	*qp = append(*qp, param)
	return fmt.Sprintf("$%v", len(*qp))
}

// fieldList collects the column names and SQL value expressions of
// an INSERT or UPDATE, in order.
type fieldList struct {
	Names  []string
	Values []string
}

// Add adds a column set from a query parameter.
func (f *fieldList) Add(qp *queryParams, field string, value interface{}) {
	f.AddDirect(field, qp.Param(value))
}

// AddDirect adds a column set from an unquoted SQL expression.
func (f *fieldList) AddDirect(field, value string) {
	f.Names = append(f.Names, field)
	f.Values = append(f.Values, value)
}

// InsertStatement produces a complete INSERT statement.
func (f fieldList) InsertStatement(table string) string {
	return "INSERT INTO " + table +
		"(" + strings.Join(f.Names, ", ") + ")" +
		" VALUES(" + strings.Join(f.Values, ", ") + ")"
}

// UpdateChanges renders the "field=value" list of an UPDATE.
func (f fieldList) UpdateChanges() []string {
	changes := make([]string, len(f.Names))
	for i, name := range f.Names {
		changes[i] = name + "=" + f.Values[i]
	}
	return changes
}
