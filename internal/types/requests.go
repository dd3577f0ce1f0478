package types

// Violation is one field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 body for rejected request payloads.
type ValidationErrorResponse struct {
	Error      string      `json:"error"`
	Violations []Violation `json:"violations"`
}

// HealthCheckResponse is the liveness payload.
type HealthCheckResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp int64  `json:"timestamp"`
}
