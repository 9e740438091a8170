package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/polkiloo/salesorders/internal/domain/model"
)

var requiredColumns = []string{"Type", "Material", "Size", "Length", "Coating", "Thread Type", "Description"}

// Catalog is an in-memory, read-only product catalog.
type Catalog struct {
	items []model.CatalogItem
	byKey map[string]int
}

// Load reads a catalog CSV file. An empty path yields an empty catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return &Catalog{byKey: map[string]int{}}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads catalog rows from CSV with a header line.
func Parse(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog is empty")
		}
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("catalog column %q is missing", col)
		}
	}

	c := &Catalog{byKey: map[string]int{}}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		field := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		item := model.CatalogItem{
			Type:        field("Type"),
			Material:    field("Material"),
			Size:        field("Size"),
			Length:      field("Length"),
			Coating:     field("Coating"),
			ThreadType:  field("Thread Type"),
			Description: field("Description"),
		}
		parts := []string{item.Type, item.Material, item.Size, item.Length, item.Coating, item.ThreadType}
		item.ID = strings.Join(parts, "_")
		item.Name = strings.Join(parts, " ")

		if _, dup := c.byKey[item.ID]; dup {
			continue
		}
		c.byKey[item.ID] = len(c.items)
		if _, taken := c.byKey[item.Name]; !taken {
			c.byKey[item.Name] = len(c.items)
		}
		c.items = append(c.items, item)
	}
	return c, nil
}

// Items returns all catalog entries in file order.
func (c *Catalog) Items() []model.CatalogItem {
	out := make([]model.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds an entry by its id or its display name.
func (c *Catalog) Lookup(key string) (model.CatalogItem, bool) {
	i, ok := c.byKey[strings.TrimSpace(key)]
	if !ok {
		return model.CatalogItem{}, false
	}
	return c.items[i], true
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.items)
}
