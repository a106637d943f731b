package catalog

import "slices"

// Catalog is an immutable, ordered snapshot of the records found under one root.
// Order follows directory traversal and is never changed afterwards.
type Catalog struct {
	root    string
	records []*Record
}

// New builds a catalog from records in the given order.
func New(root string, records ...*Record) *Catalog {
	return &Catalog{
		root:    root,
		records: slices.Clone(records),
	}
}

// Root is the directory the catalog was scanned from.
func (c *Catalog) Root() string {
	if c == nil {
		return ""
	}
	return c.root
}

// Len returns the number of records. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Records returns the records in traversal order. The slice is a copy; the records are shared
// and must be treated as read-only.
func (c *Catalog) Records() []*Record {
	if c == nil {
		return nil
	}
	return slices.Clone(c.records)
}

// All iterates over the records without copying the backing slice.
func (c *Catalog) All(yield func(int, *Record) bool) {
	if c == nil {
		return
	}
	for i, r := range c.records {
		if !yield(i, r) {
			return
		}
	}
}
