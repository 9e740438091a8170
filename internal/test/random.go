package test

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/salesorders/internal/domain/model"
)

const filenameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789_-"

// RandomFilename returns an upload name like "po_x3k9a.pdf" with a stem of 6 to 12 characters.
func RandomFilename() string {
	buf := make([]byte, 6+rand.IntN(7))
	for i := range buf {
		buf[i] = filenameAlphabet[rand.IntN(len(filenameAlphabet))]
	}
	return "po_" + string(buf) + ".pdf"
}

// RandomLineItems builds n unsaved items with cent-precision prices.
func RandomLineItems(n int) []model.LineItem {
	items := make([]model.LineItem, n)
	for i := range items {
		items[i] = model.LineItem{
			Description: fmt.Sprintf("Part %d-%d", i+1, rand.IntN(1000)),
			Quantity:    decimal.NewFromInt(int64(1 + rand.IntN(100))),
			UnitPrice:   decimal.New(int64(rand.IntN(100000)), -2),
		}
	}
	return items
}
