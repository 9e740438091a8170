// Package export renders orders for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/polkiloo/salesorders/internal/domain/model"
)

// ContentType of the encoded document.
const ContentType = "text/csv"

// Header lists the exported columns in order.
var Header = []string{"Description", "Quantity", "Unit Price", "Total Price", "Catalog Match", "Confidence"}

// Encode writes one CSV row per item in the given order.
func Encode(items []model.LineItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := w.Write(row(item)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename returns the download name for the order.
func Filename(orderID int64) string {
	return fmt.Sprintf("order_%d.csv", orderID)
}

func row(item model.LineItem) []string {
	match := ""
	if item.Matched() && item.CatalogMatch != nil {
		match = item.CatalogMatch.Name
	}
	return []string{
		item.Description,
		item.Quantity.String(),
		item.UnitPrice.StringFixed(2),
		item.TotalPrice.StringFixed(2),
		match,
		strconv.FormatFloat(item.Confidence, 'f', 2, 64),
	}
}
