package dto

// CatalogItemResponse describes a catalog entry.
type CatalogItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Material    string `json:"material"`
	Size        string `json:"size"`
	Length      string `json:"length"`
	Coating     string `json:"coating"`
	ThreadType  string `json:"thread_type"`
	Description string `json:"description"`
}
