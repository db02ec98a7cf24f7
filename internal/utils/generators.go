package utils

import "github.com/google/uuid"

// GenerateOrderID returns the opaque identifier handed back to customers.
func GenerateOrderID() string {
	return uuid.NewString()
}
