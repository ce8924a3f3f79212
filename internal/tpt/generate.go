// Package tpt maps Teradata column metadata onto TPT schema types and renders
// complete export job scripts.
package tpt

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"tptgen/internal/catalog"
)

// WriteScript renders the script for the given columns and writes it to
// outPath, overwriting any existing file. Nothing is written when rendering
// fails.
func WriteScript(table string, cols []catalog.Column, ctx Context, outPath string) error {
	script, err := Render(table, cols, ctx)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, []byte(script), 0644); err != nil {
		return fmt.Errorf("failed to write script %s: %w", outPath, err)
	}
	return nil
}

// Generate produces the TPT export script for one table: fetch the column
// metadata, render the script, write it to outPath. It returns the number of
// columns in the schema block. Errors propagate unchanged; there is no retry.
func Generate(db *sql.DB, table, outPath string, ctx Context) (int, error) {
	cols, err := catalog.FetchColumns(db, ctx.Database, table)
	if err != nil {
		return 0, err
	}

	if err := WriteScript(table, cols, ctx, outPath); err != nil {
		return 0, err
	}

	log.Printf("Generated TPT script for %s.%s -> %s (%d columns)", ctx.Database, table, outPath, len(cols))
	return len(cols), nil
}
