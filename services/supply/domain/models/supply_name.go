package models

import "fmt"

// SupplyName is a value object representing a valid supply display name.
// Encapsulates validation rules: 1 <= len(name) <= 255.
type SupplyName string

const (
	minSupplyNameLength = 1
	maxSupplyNameLength = 255
)

// NewSupplyName constructs a valid SupplyName or returns an error if constraints are violated.
func NewSupplyName(s string) (SupplyName, error) {
	if len(s) < minSupplyNameLength {
		return "", fmt.Errorf("supply name must be at least %d character", minSupplyNameLength)
	}
	if len(s) > maxSupplyNameLength {
		return "", fmt.Errorf("supply name must not exceed %d characters", maxSupplyNameLength)
	}
	return SupplyName(s), nil
}

// String returns the underlying string value.
func (n SupplyName) String() string {
	return string(n)
}
