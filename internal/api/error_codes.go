// internal/api/error_codes.go
package api

// API error code constants
const (
	// Generic errors
	ErrorBadRequest    = "BAD_REQUEST"
	ErrorNotFound      = "NOT_FOUND"
	ErrorInternalError = "INTERNAL_ERROR"

	// Script generation errors
	ErrorInvalidPrompt    = "INVALID_PROMPT"
	ErrorGenerationFailed = "GENERATION_FAILED"

	// Service wiring errors
	ErrorServiceUnavailable = "SERVICE_UNAVAILABLE"

	// Configuration errors
	ErrorConfigInvalid = "CONFIG_INVALID"

	// Rate limiting
	ErrorRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)
