package catalog

import (
	"strings"

	"pratofit/internal/pkg/errs"
)

// Catalog is the read-only collection of kits and menu items loaded once at
// process start. It offers id lookups, category grouping in menu order and
// a title/tag search used by the presentation layer.
type Catalog struct {
	kits  []Kit
	items []MenuItem
}

// Category groups menu items under their shared grouping key, preserving
// menu order.
type Category struct {
	Name  string
	Items []MenuItem
}

// NewCatalog builds a catalog from validated kits and items. Duplicate kit
// or item identifiers are rejected.
func NewCatalog(kits []Kit, items []MenuItem) (*Catalog, error) {
	seenKits := make(map[string]struct{}, len(kits))
	for _, kit := range kits {
		if err := kit.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenKits[kit.ID()]; ok {
			return nil, errs.NewValueIsInvalidError("duplicate kit id: " + kit.ID())
		}
		seenKits[kit.ID()] = struct{}{}
	}

	seenItems := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenItems[item.ID()]; ok {
			return nil, errs.NewValueIsInvalidError("duplicate item id: " + item.ID())
		}
		seenItems[item.ID()] = struct{}{}
	}

	return &Catalog{
		kits:  append([]Kit(nil), kits...),
		items: append([]MenuItem(nil), items...),
	}, nil
}

// Kits returns all kits in configuration order.
func (c *Catalog) Kits() []Kit {
	return append([]Kit(nil), c.kits...)
}

// Items returns all menu items in configuration order.
func (c *Catalog) Items() []MenuItem {
	return append([]MenuItem(nil), c.items...)
}

// KitByID returns the kit with the given identifier.
func (c *Catalog) KitByID(id string) (Kit, error) {
	for _, kit := range c.kits {
		if kit.ID() == id {
			return kit, nil
		}
	}
	return Kit{}, errs.NewObjectNotFoundError("kitId", id)
}

// ItemByID returns the menu item with the given identifier.
func (c *Catalog) ItemByID(id string) (MenuItem, error) {
	for _, item := range c.items {
		if item.ID() == id {
			return item, nil
		}
	}
	return MenuItem{}, errs.NewObjectNotFoundError("itemId", id)
}

// Categories groups the items matching query by category, in menu order.
// An empty query matches everything; otherwise the query is matched
// case-insensitively against item titles and tags.
func (c *Catalog) Categories(query string) []Category {
	query = strings.ToLower(strings.TrimSpace(query))

	var categories []Category
	index := make(map[string]int)

	for _, item := range c.items {
		if !matchesQuery(item, query) {
			continue
		}
		i, ok := index[item.Category()]
		if !ok {
			i = len(categories)
			index[item.Category()] = i
			categories = append(categories, Category{Name: item.Category()})
		}
		categories[i].Items = append(categories[i].Items, item)
	}

	return categories
}

func matchesQuery(item MenuItem, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Title()), query) {
		return true
	}
	for _, tag := range item.Tags() {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
