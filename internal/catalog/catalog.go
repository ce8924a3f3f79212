// Package catalog reads table and column metadata from the Teradata DBC views.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrTableNotFound is returned when the catalog holds no columns for the
// requested database/table pair: the object does not exist, or the connected
// user has no visibility on it.
var ErrTableNotFound = errors.New("table not found")

// Column is one DBC.ColumnsV row: the column name, the native type code
// (CV, CF, I, D, ...) and the declared length. Column order follows ColumnId,
// which is the physical field order the export operator emits.
type Column struct {
	Name     string
	TypeCode string
	Length   int
}

// Name matching is delegated to UPPER() on both sides because DBC object
// names are stored with their original case.
const columnsQuery = `SELECT TRIM(ColumnName), TRIM(ColumnType), ColumnLength FROM DBC.ColumnsV WHERE UPPER(DatabaseName) = UPPER(?) AND UPPER(TableName) = UPPER(?) ORDER BY ColumnId`

const tablesQuery = `SELECT TRIM(TableName) FROM DBC.TablesV WHERE UPPER(DatabaseName) = UPPER(?) AND TableKind IN ('T', 'O') ORDER BY TableName`

// FetchColumns returns the column descriptors of database.table in ColumnId
// order. An empty result maps to ErrTableNotFound.
func FetchColumns(db *sql.DB, database, table string) ([]Column, error) {
	rows, err := db.Query(columnsQuery, database, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var name, typeCode sql.NullString
		var length sql.NullInt64

		if err := rows.Scan(&name, &typeCode, &length); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", table, err)
		}
		if !name.Valid {
			continue // Skip invalid rows
		}

		cols = append(cols, Column{
			Name:     strings.TrimSpace(name.String),
			TypeCode: strings.ToUpper(strings.TrimSpace(typeCode.String)),
			Length:   int(length.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s.%s", ErrTableNotFound, database, table)
	}
	return cols, nil
}

// FetchTables lists the exportable tables of a database (kinds T and O).
func FetchTables(db *sql.DB, database string) ([]string, error) {
	rows, err := db.Query(tablesQuery, database)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, strings.TrimSpace(name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	return names, nil
}
