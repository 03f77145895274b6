package model

import (
	"github.com/pkg/errors"
)

var (
	ErrCatalogItemNotFound  = errors.New("catalog item not found")
	ErrDuplicateCatalogItem = errors.New("catalog item id is already used")
	ErrNegativePrice        = errors.New("item price cannot be negative")
)

type CatalogItem struct {
	ID         int
	Name       string
	PriceCents int64
	Image      string
}

// Catalog is the ordered, read-only menu the service was started with.
type Catalog struct {
	items []CatalogItem
	index map[int]int
}

func NewCatalog(items []CatalogItem) (*Catalog, error) {
	catalog := &Catalog{
		items: make([]CatalogItem, 0, len(items)),
		index: make(map[int]int, len(items)),
	}
	for _, item := range items {
		if item.PriceCents < 0 {
			return nil, errors.Wrapf(ErrNegativePrice, "item %d", item.ID)
		}
		if _, exists := catalog.index[item.ID]; exists {
			return nil, errors.Wrapf(ErrDuplicateCatalogItem, "item %d", item.ID)
		}
		catalog.index[item.ID] = len(catalog.items)
		catalog.items = append(catalog.items, item)
	}
	return catalog, nil
}

func (c *Catalog) Find(id int) (CatalogItem, error) {
	i, ok := c.index[id]
	if !ok {
		return CatalogItem{}, ErrCatalogItemNotFound
	}
	return c.items[i], nil
}

// Items returns a copy of the menu in declaration order.
func (c *Catalog) Items() []CatalogItem {
	items := make([]CatalogItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Catalog) Len() int {
	return len(c.items)
}
