package menu

import (
	"sort"
	"strings"
	"time"

	"menuexport/internal/sheet"
)

// BuildDocument runs header validation, normalization, and aggregation over
// raw rows. The returned document is complete: generated_at is set from now
// (UTC) and the fingerprint is attached.
func BuildDocument(rows []sheet.Row, now time.Time) (*MenuDocument, error) {
	if err := sheet.ValidateHeaders(rows); err != nil {
		return nil, err
	}

	var items []MenuItem
	for _, row := range rows {
		if item, ok := ToMenuItem(row); ok {
			items = append(items, item)
		}
	}

	doc := &MenuDocument{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Categories:  groupItems(items),
	}

	hash, err := Fingerprint(doc)
	if err != nil {
		return nil, err
	}
	doc.Hash = hash
	return doc, nil
}

// groupItems groups items by exact category string (case-sensitive), keeping
// first-seen category order before the final stable sort, so ties on the
// composite key preserve their prior relative order.
func groupItems(items []MenuItem) []Category {
	grouped := make(map[string][]MenuItem)
	var order []string
	for _, item := range items {
		if _, seen := grouped[item.Category]; !seen {
			order = append(order, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	categories := make([]Category, 0, len(order))
	for _, name := range order {
		group := grouped[name]
		sort.SliceStable(group, func(i, j int) bool {
			return lessBySortThenName(group[i].Sort, group[i].Name, group[j].Sort, group[j].Name)
		})
		categories = append(categories, Category{
			Name: name,
			// groups are never empty, so the first item after sorting holds the minimum
			Sort:  group[0].Sort,
			Items: group,
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return lessBySortThenName(categories[i].Sort, categories[i].Name, categories[j].Sort, categories[j].Name)
	})
	return categories
}

// lessBySortThenName is the composite ordering key shared by items and
// categories: sort ascending, then lowercase name ascending.
func lessBySortThenName(aSort float64, aName string, bSort float64, bName string) bool {
	if aSort != bSort {
		return aSort < bSort
	}
	return strings.ToLower(aName) < strings.ToLower(bName)
}
