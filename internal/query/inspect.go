// Package query breaks a SELECT statement down into the tables it references
// and the columns it reads through each of them. It is used to sanity-check
// export statements before a TPT job is built around them.
package query

import (
	"sort"

	"github.com/xwb1989/sqlparser"
)

// TableRef describes one table (or derived table) referenced by a statement,
// with the columns the statement reads through its alias, de-duplicated and
// sorted.
type TableRef struct {
	Alias   string
	Table   string
	Columns []string
}

// SubqueryTable is the placeholder table name reported for derived tables.
const SubqueryTable = "(subquery)"

// Inspect parses a SELECT statement and reports every referenced table in
// first-seen order. Qualified columns are attributed to their alias;
// unqualified columns are attributed to the table only when the statement
// references exactly one.
func Inspect(stmt string) ([]TableRef, error) {
	parsed, err := sqlparser.Parse(stmt)
	if err != nil {
		return nil, err
	}

	refs := make(map[string]*TableRef)
	var order []string

	add := func(alias, table string) *TableRef {
		if r, ok := refs[alias]; ok {
			return r
		}
		r := &TableRef{Alias: alias, Table: table}
		refs[alias] = r
		order = append(order, alias)
		return r
	}

	// Pass 1: physical tables and derived-table aliases from FROM/JOIN.
	sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		if aliased, ok := node.(*sqlparser.AliasedTableExpr); ok {
			switch expr := aliased.Expr.(type) {
			case sqlparser.TableName:
				alias := aliased.As.String()
				if alias == "" {
					alias = expr.Name.String()
				}
				add(alias, expr.Name.String())
			case *sqlparser.Subquery:
				if alias := aliased.As.String(); alias != "" {
					add(alias, SubqueryTable)
				}
			}
		}
		return true, nil
	}, parsed)

	// Pass 2: column references. An alias seen only through a column
	// qualifier still gets an entry, with the qualifier as its table name.
	var unqualified []string
	sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		if col, ok := node.(*sqlparser.ColName); ok {
			if q := col.Qualifier.Name.String(); q != "" {
				r := add(q, q)
				r.Columns = append(r.Columns, col.Name.String())
			} else {
				unqualified = append(unqualified, col.Name.String())
			}
		}
		return true, nil
	}, parsed)

	if len(order) == 1 {
		r := refs[order[0]]
		r.Columns = append(r.Columns, unqualified...)
	}

	out := make([]TableRef, 0, len(order))
	for _, alias := range order {
		r := refs[alias]
		r.Columns = dedupe(r.Columns)
		out = append(out, *r)
	}
	return out, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
