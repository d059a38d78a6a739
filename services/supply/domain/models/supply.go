package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// supplyIDPrefix marks external supply identifiers, e.g. "ms_a1b2c3d4".
const supplyIDPrefix = "ms_"

// Supply is the core aggregate for this bounded context: one stocked medical
// supply in the clinic inventory.
type Supply struct {
	ID           string // external identifier, ms_-prefixed
	Name         SupplyName
	CurrentStock int
	MinimumStock int // restock alert threshold
	SupplierName string
	CreatedAt    time.Time
}

// NewSupply constructs a valid Supply aggregate with a generated identifier
// and current timestamp.
func NewSupply(name SupplyName, currentStock, minimumStock int, supplierName string) (*Supply, error) {
	if currentStock < 0 {
		return nil, fmt.Errorf("current stock must not be negative, got %d", currentStock)
	}
	if minimumStock < 0 {
		return nil, fmt.Errorf("minimum stock must not be negative, got %d", minimumStock)
	}
	return &Supply{
		ID:           NewSupplyID(),
		Name:         name,
		CurrentStock: currentStock,
		MinimumStock: minimumStock,
		SupplierName: supplierName,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// NewSupplyID generates an external supply identifier.
func NewSupplyID() string {
	return supplyIDPrefix + uuid.NewString()[:8]
}

// LowStock reports whether the supply is at or below its restock threshold.
func (s *Supply) LowStock() bool {
	return s.CurrentStock <= s.MinimumStock
}
