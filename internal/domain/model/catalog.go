package model

// CatalogMatch is the catalog entry frozen into a line item at match time.
type CatalogMatch struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CatalogItem is a product known to the catalog.
type CatalogItem struct {
	ID          string
	Name        string
	Type        string
	Material    string
	Size        string
	Length      string
	Coating     string
	ThreadType  string
	Description string
}

// Snapshot copies the fields stored alongside a matched line item.
func (c CatalogItem) Snapshot() CatalogMatch {
	return CatalogMatch{ID: c.ID, Name: c.Name, Description: c.Description}
}
