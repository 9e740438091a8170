package errors

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrIngestion         = errors.New("ingestion failed")
	ErrMatchUnavailable  = errors.New("match unavailable")
	ErrConflict          = errors.New("concurrent modification")
)
