package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service availability.
type HealthResponse struct {
	Status string `json:"status"`
}
