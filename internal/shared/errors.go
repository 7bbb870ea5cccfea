package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrNotAuthenticated = fmt.Errorf("not authenticated")

	// API and service errors
	ErrAPIRequest       = fmt.Errorf("API request failed")
	ErrUpstreamRejected = fmt.Errorf("upstream rejected request")

	// Input validation errors
	ErrInvalidInput = fmt.Errorf("invalid input")
)
