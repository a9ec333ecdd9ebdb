package engine

import "github.com/google/uuid"

// generateID creates a request id for the X-Request-ID header.
func generateID() string {
	return uuid.NewString()
}
