package realincome

import (
	"sort"
	"strings"
)

// Item is a selectable code with its human-readable label, typically a
// country or area entry from a codelist. The sources do not guarantee code
// uniqueness; the first occurrence wins when a code must resolve to a name,
// since later duplicates are usually re-statements with missing
// translations.
type Item struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (i Item) String() string { return i.Name + " - " + i.Code }

// SortItems orders items by case-insensitive name, the order the original
// sources present their lists in.
func SortItems(items []Item) {
	sort.SliceStable(items, func(a, b int) bool {
		return strings.ToLower(items[a].Name) < strings.ToLower(items[b].Name)
	})
}

// FindItem returns the first item with the given code.
func FindItem(items []Item, code string) (Item, bool) {
	for _, it := range items {
		if it.Code == code {
			return it, true
		}
	}
	return Item{}, false
}
