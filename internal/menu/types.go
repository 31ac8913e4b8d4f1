// Package menu normalizes raw sheet rows into the exported menu document:
// typed items, grouped and sorted categories, and the content fingerprint.
package menu

// MenuItem is a normalized, displayable product entry. Price is an opaque
// display string, never parsed. Category is carried for grouping only and
// does not appear on the serialized item.
type MenuItem struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PriceDisplay string  `json:"price_display"`
	ImageURL     string  `json:"image_url"`
	Sort         float64 `json:"sort"`

	Category string `json:"-"`
}

// Category is a named group of items. Sort is the minimum sort among its
// items; Items are ordered by (sort asc, lowercase name asc).
type Category struct {
	Name  string     `json:"name"`
	Sort  float64    `json:"sort"`
	Items []MenuItem `json:"items"`
}

// MenuDocument is the full exported artifact. It is built fresh on every
// invocation and never mutated after construction.
type MenuDocument struct {
	GeneratedAt string     `json:"generated_at"`
	Categories  []Category `json:"categories"`
	Hash        string     `json:"hash"`
}
