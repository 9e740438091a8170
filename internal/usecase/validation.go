package usecase

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
)

const (
	pdfMIME       = "application/pdf"
	pdfTrailerWin = 1024
)

var pdfTrailer = []byte("%%EOF")

// ValidatePDF checks the PDF signature and the end-of-file marker.
func ValidatePDF(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty upload", domainErrors.ErrUnsupportedFormat)
	}
	if mt := mimetype.Detect(data); !mt.Is(pdfMIME) {
		return fmt.Errorf("%w: expected %s, got %s", domainErrors.ErrUnsupportedFormat, pdfMIME, mt.String())
	}
	tail := data
	if len(tail) > pdfTrailerWin {
		tail = tail[len(tail)-pdfTrailerWin:]
	}
	if !bytes.Contains(tail, pdfTrailer) {
		return fmt.Errorf("%w: truncated pdf", domainErrors.ErrUnsupportedFormat)
	}
	return nil
}

func validateAmounts(quantity, unitPrice decimal.Decimal) error {
	if quantity.IsNegative() {
		return fmt.Errorf("%w: quantity must not be negative", domainErrors.ErrValidation)
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price must not be negative", domainErrors.ErrValidation)
	}
	return nil
}

func validateConfidence(confidence float64) error {
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return fmt.Errorf("%w: confidence must be within [0, 1]", domainErrors.ErrValidation)
	}
	return nil
}
