package model

import "github.com/shopspring/decimal"

// ExtractedItem is a raw line item produced by the extraction service.
type ExtractedItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// MatchCandidate is a catalog entry proposed by the matching service.
type MatchCandidate struct {
	Match string
	Score float64
}
