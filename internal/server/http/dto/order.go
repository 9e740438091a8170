package dto

import (
	"encoding/json"
	"time"
)

// OrderResponse is an order summary.
type OrderResponse struct {
	ID               int64     `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// OrderDetailsResponse is an order with its line items.
type OrderDetailsResponse struct {
	Order     OrderResponse      `json:"order"`
	LineItems []LineItemResponse `json:"line_items"`
	Total     json.Number        `json:"total"`
	Warning   string             `json:"warning,omitempty"`
}

// UploadResponse describes a freshly ingested order.
type UploadResponse struct {
	OrderResponse
	LineItems []LineItemResponse `json:"line_items"`
	Total     json.Number        `json:"total"`
}
