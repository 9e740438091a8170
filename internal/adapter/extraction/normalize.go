package extraction

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/salesorders/internal/domain/model"
)

// Column aliases used by different document layouts, in priority order.
var (
	descriptionColumns = []string{"Request Item", "Item Description", "Description", "Product", "Part Description"}
	quantityColumns    = []string{"Quantity", "Amount", "Qty", "Order Qty"}
	unitPriceColumns   = []string{"Unit Price", "Price", "Unit Cost", "Price/Unit"}
)

// Normalize maps raw extracted rows onto line items. Rows without a
// description or quantity are skipped; unreadable numbers become zero.
func Normalize(rows []map[string]any, logger *slog.Logger) []model.ExtractedItem {
	items := make([]model.ExtractedItem, 0, len(rows))
	for i, row := range rows {
		desc, ok := firstValue(row, descriptionColumns)
		if !ok || strings.TrimSpace(fmt.Sprint(desc)) == "" {
			logger.Warn("skipping extracted row without description", slog.Int("row", i))
			continue
		}
		rawQty, ok := firstValue(row, quantityColumns)
		if !ok {
			logger.Warn("skipping extracted row without quantity", slog.Int("row", i))
			continue
		}

		item := model.ExtractedItem{
			Description: strings.TrimSpace(fmt.Sprint(desc)),
			Quantity:    parseAmount(rawQty, logger, i, "quantity"),
			UnitPrice:   decimal.Zero,
		}
		if rawPrice, ok := firstValue(row, unitPriceColumns); ok {
			item.UnitPrice = parseAmount(rawPrice, logger, i, "unit_price")
		}
		items = append(items, item)
	}
	return items
}

func firstValue(row map[string]any, columns []string) (any, bool) {
	for _, col := range columns {
		if v, ok := row[col]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func parseAmount(raw any, logger *slog.Logger, row int, field string) decimal.Decimal {
	var (
		d   decimal.Decimal
		err error
	)
	switch v := raw.(type) {
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(v))
		d, err = decimal.NewFromString(cleaned)
	default:
		err = fmt.Errorf("unsupported type %T", raw)
	}
	if err != nil || d.IsNegative() {
		logger.Warn("unreadable amount replaced with zero",
			slog.Int("row", row), slog.String("field", field), slog.Any("value", raw))
		return decimal.Zero
	}
	return d
}
