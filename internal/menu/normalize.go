package menu

import (
	"fmt"
	"strconv"
	"strings"

	"menuexport/internal/sheet"
)

// truthyTokens are the only non-blank values that normalize to true.
// Any other non-blank token is false.
var truthyTokens = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
	"y":    true,
	"t":    true,
}

// NormalizeBool interprets a raw cell as an availability flag.
// Absent and blank cells keep def; booleans pass through.
func NormalizeBool(raw interface{}, def bool) bool {
	if raw == nil {
		return def
	}
	if b, ok := raw.(bool); ok {
		return b
	}
	s := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", raw)))
	if s == "" {
		return def
	}
	return truthyTokens[s]
}

// NormalizeSort parses a raw cell as a sort weight.
// Absent, blank, and unparseable cells keep def; never an error.
func NormalizeSort(raw interface{}, def float64) float64 {
	switch n := raw.(type) {
	case nil:
		return def
	case float64:
		return n
	case int:
		return float64(n)
	}

	s := strings.TrimSpace(fmt.Sprintf("%v", raw))
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// ToMenuItem converts one row into a menu item. The second return is false
// for rows the menu excludes: blank category or item name after trimming, or
// availability normalizing to false.
func ToMenuItem(row sheet.Row) (MenuItem, bool) {
	category := row.String("category")
	name := row.String("item")
	if category == "" || name == "" {
		return MenuItem{}, false
	}

	if !NormalizeBool(row.Value("available"), true) {
		return MenuItem{}, false
	}

	return MenuItem{
		Name:         name,
		Description:  row.String("description"),
		PriceDisplay: row.String("price"),
		ImageURL:     row.String("image_url"),
		Sort:         NormalizeSort(row.Value("sort"), 0),
		Category:     category,
	}, true
}
