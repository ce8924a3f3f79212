package tpt

import (
	"errors"
	"fmt"
	"strings"

	"tptgen/internal/catalog"
)

// ErrNoColumns is returned when a script is requested for an empty column
// list. A schema with no fields is never a valid TPT job.
var ErrNoColumns = errors.New("no columns to export")

// Context carries the connection and formatting values one generation call
// needs. It is built by the caller from the teradata and tpt_settings config
// sections and is not retained after the call.
type Context struct {
	Database          string
	Host              string
	User              string
	Password          string
	LogonMech         string
	RestartWaitPeriod string
	Delimiter         string
}

// The credentials are interpolated literally: TPT reads them from the script
// text, so the rendered file is as sensitive as the config that produced it.
// Interpolated values are not escaped against TPT quoting rules either; a
// single quote in a password or delimiter produces an invalid script.
const scriptTemplate = `DEFINE JOB EXPORT_%[1]s_JOB
DESCRIPTION 'Export %[2]s.%[3]s to a delimited file'
(
    DEFINE SCHEMA %[1]s_SCHEMA
    (
%[4]s
    );

    DEFINE OPERATOR EXPORT_OPERATOR
    TYPE EXPORT
    SCHEMA %[1]s_SCHEMA
    ATTRIBUTES
    (
        VARCHAR TdpId = '%[5]s',
        VARCHAR UserName = '%[6]s',
        VARCHAR UserPassword = '%[7]s',
        VARCHAR LogonMech = '%[8]s',
        INTEGER MaxSessions = 8,
        INTEGER MinSessions = 2,
        INTEGER Tpt_RestartWaitPeriod = %[9]s,
        VARCHAR SelectStmt = 'SELECT * FROM %[2]s.%[3]s;'
    );

    DEFINE OPERATOR FILE_WRITER
    TYPE DATACONNECTOR CONSUMER
    SCHEMA %[1]s_SCHEMA
    ATTRIBUTES
    (
        VARCHAR FileName = '%[10]s',
        VARCHAR Format = 'DELIMITED',
        VARCHAR OpenMode = 'Write',
        VARCHAR TextDelimiter = '%[11]s'
    );

    APPLY TO OPERATOR (FILE_WRITER)
    SELECT * FROM OPERATOR (EXPORT_OPERATOR);
);
`

// SchemaLines renders one schema line per column, in input order. Every line
// but the last ends with a comma. Unrecognized type codes fall back to
// FallbackKeyword and get an inline comment naming the original code.
func SchemaLines(cols []catalog.Column) []string {
	lines := make([]string, len(cols))
	for i, col := range cols {
		kw, known := Keyword(col.TypeCode)

		line := kw + " " + col.Name
		if col.Length > 0 && (carriesLength(col.TypeCode) || !known) {
			line = fmt.Sprintf("%s(%d)", line, col.Length)
		}
		if !known {
			line += fmt.Sprintf(" /* unrecognized type code %s */", col.TypeCode)
		}
		if i < len(cols)-1 {
			line += ","
		}
		lines[i] = line
	}
	return lines
}

// Render assembles the complete TPT export job script for one table. The
// output is deterministic: identical inputs render byte-identical scripts.
func Render(table string, cols []catalog.Column, ctx Context) (string, error) {
	if len(cols) == 0 {
		return "", fmt.Errorf("%w: %s.%s", ErrNoColumns, ctx.Database, table)
	}

	lines := SchemaLines(cols)
	for i, line := range lines {
		lines[i] = "        " + line
	}

	return fmt.Sprintf(scriptTemplate,
		strings.ToUpper(table),
		ctx.Database,
		table,
		strings.Join(lines, "\n"),
		ctx.Host,
		ctx.User,
		ctx.Password,
		ctx.LogonMech,
		ctx.RestartWaitPeriod,
		strings.ToLower(table)+".dat",
		ctx.Delimiter,
	), nil
}
