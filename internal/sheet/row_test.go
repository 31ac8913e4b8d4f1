package sheet

import (
	"strings"
	"testing"

	"menuexport/internal/errors"
)

func TestRowString(t *testing.T) {
	row := Row{
		"padded": "  hello  ",
		"number": 3.5,
		"whole":  12,
		"flag":   true,
		"empty":  nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{key: "padded", want: "hello"},
		{key: "number", want: "3.5"},
		{key: "whole", want: "12"},
		{key: "flag", want: "true"},
		{key: "empty", want: ""},
		{key: "missing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := row.String(tt.key); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func completeRow() Row {
	row := make(Row, len(RequiredColumns))
	for _, col := range RequiredColumns {
		row[col] = ""
	}
	return row
}

func TestValidateHeaders(t *testing.T) {
	t.Run("empty sequence skips validation", func(t *testing.T) {
		if err := ValidateHeaders(nil); err != nil {
			t.Errorf("ValidateHeaders(nil) = %v, want nil", err)
		}
	})

	t.Run("complete headers pass", func(t *testing.T) {
		if err := ValidateHeaders([]Row{completeRow()}); err != nil {
			t.Errorf("ValidateHeaders() = %v, want nil", err)
		}
	})

	t.Run("missing columns listed", func(t *testing.T) {
		row := completeRow()
		delete(row, "price")
		delete(row, "image_url")

		err := ValidateHeaders([]Row{row})
		if err == nil {
			t.Fatal("expected schema error")
		}
		if !errors.IsCode(err, errors.SchemaMismatch) {
			t.Errorf("error code = %v, want SCHEMA_MISMATCH", errors.CodeOf(err))
		}
		for _, col := range []string{"price", "image_url"} {
			if !strings.Contains(err.Error(), col) {
				t.Errorf("error %q should list %q", err.Error(), col)
			}
		}
		// Expected set is included for operators fixing the sheet
		if !strings.Contains(err.Error(), "expected headers") {
			t.Errorf("error %q should include the expected header set", err.Error())
		}
	})

	t.Run("only first row is checked", func(t *testing.T) {
		broken := completeRow()
		delete(broken, "sort")
		rows := []Row{completeRow(), broken}
		if err := ValidateHeaders(rows); err != nil {
			t.Errorf("ValidateHeaders() = %v, want nil (later rows unchecked)", err)
		}
	})
}

func TestGridToRows(t *testing.T) {
	grid := [][]interface{}{
		{"category", "item", "price", ""},
		{"Mains", "Burger", 12.5, "extra"},
		{"Drinks", "Cola"},
	}

	rows := GridToRows(grid)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].String("category") != "Mains" || rows[0].String("price") != "12.5" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	// Blank header cells are dropped entirely
	if rows[0].Has("") {
		t.Error("blank header should not become a column")
	}
	// Short data rows are padded with empty strings
	if !rows[1].Has("price") || rows[1].String("price") != "" {
		t.Errorf("short row should pad price with empty string: %+v", rows[1])
	}
}

func TestGridToRowsHeaderOnly(t *testing.T) {
	if rows := GridToRows([][]interface{}{{"category", "item"}}); rows != nil {
		t.Errorf("header-only grid should yield no rows, got %v", rows)
	}
	if rows := GridToRows(nil); rows != nil {
		t.Errorf("empty grid should yield no rows, got %v", rows)
	}
}
