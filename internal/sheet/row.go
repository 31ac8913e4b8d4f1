// Package sheet supplies menu rows from a spreadsheet tab.
// Row 1 of the tab carries the column names; every following row becomes one
// Row mapping column name to the raw cell value.
package sheet

import (
	"context"
	"fmt"
	"strings"

	"menuexport/internal/errors"
)

// RequiredColumns is the header contract a menu tab must satisfy.
var RequiredColumns = []string{"category", "item", "price", "description", "available", "sort", "image_url"}

// Row is one record from the tabular source, keyed by column header.
// Cell values arrive as strings, numbers, or booleans depending on the source.
type Row map[string]interface{}

// Has reports whether the row carries the given column at all.
func (r Row) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Value returns the raw cell value, or nil when the column is absent.
func (r Row) Value(key string) interface{} {
	return r[key]
}

// String renders a cell as a trimmed string. Absent or nil cells render as "".
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

// Source supplies an ordered sequence of rows for one spreadsheet tab.
type Source interface {
	Rows(ctx context.Context, spreadsheetID, tab string) ([]Row, error)
}

// ValidateHeaders checks the required column contract against the key set of
// the first row. An empty row sequence skips validation entirely; the header
// row itself is consumed by the source, so the first data row is all we have.
func ValidateHeaders(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !rows[0].Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errors.New(errors.SchemaMismatch,
			fmt.Sprintf("sheet is missing columns: %v (expected headers: %v)", missing, RequiredColumns),
			nil).WithDetails(map[string]interface{}{
			"missing":  missing,
			"expected": RequiredColumns,
		})
	}
	return nil
}
