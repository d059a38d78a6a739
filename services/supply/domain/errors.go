package domain

import "errors"

// Sentinel errors for the supply domain. Use errors.Is() to check these.
var (
	// ErrSupplyNotFound indicates the requested supply does not exist.
	ErrSupplyNotFound = errors.New("supply not found")

	// ErrSupplyAlreadyExists indicates a supply with the same identifier already exists.
	ErrSupplyAlreadyExists = errors.New("supply already exists")

	// ErrInvalidSupplyName indicates the supply name violates domain constraints.
	ErrInvalidSupplyName = errors.New("invalid supply name")

	// ErrInvalidStock indicates a negative stock level or threshold.
	ErrInvalidStock = errors.New("invalid stock level")
)
