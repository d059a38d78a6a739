// Package services contains stateless domain services for the supply bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/cims/services/supply/domain/models"
)

// ValidateName enforces business rules for SupplyName beyond the structural
// constraints enforced by the SupplyName constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(name models.SupplyName) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("supply name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("supply name must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("supply name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("supply name must not contain consecutive spaces")
	}

	return nil
}

// ValidateSupplyForCreation performs cross-field validation on a
// fully-constructed Supply aggregate before it is persisted. It assumes the
// Supply was built via models.NewSupply and adds business-level checks that
// span multiple fields.
func ValidateSupplyForCreation(supply *models.Supply) error {
	if supply == nil {
		return fmt.Errorf("supply cannot be nil")
	}

	if err := ValidateName(supply.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if supply.ID == "" {
		return fmt.Errorf("id must be set")
	}

	if supply.CurrentStock < 0 || supply.MinimumStock < 0 {
		return fmt.Errorf("stock levels must not be negative")
	}

	return nil
}
