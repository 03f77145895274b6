package model

// Cart keeps the selected items in the order they were added.
// The same item added twice stays as two separate lines.
type Cart struct {
	lines []CatalogItem
}

func (c *Cart) Add(item CatalogItem) {
	c.lines = append(c.lines, item)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Total is recomputed from the current lines on every call.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.lines {
		total += item.PriceCents
	}
	return total
}

func (c *Cart) Lines() []CatalogItem {
	lines := make([]CatalogItem, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
