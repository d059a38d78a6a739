package repositories

import (
	"context"

	"github.com/ghuser/cims/services/supply/domain/models"
)

// SupplyRepository is the persistence interface for the Supply aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// List returns supplies in insertion order (created_at, then id). The RFID
// reconciler processes items in exactly this order; the ordering is a
// simplification, not an API contract.
type SupplyRepository interface {
	Save(ctx context.Context, supply *models.Supply) error
	GetByID(ctx context.Context, id string) (*models.Supply, error)
	List(ctx context.Context) ([]*models.Supply, error)

	// ListLowStock retrieves supplies at or below their restock threshold.
	ListLowStock(ctx context.Context) ([]*models.Supply, error)

	// Update persists changes to an existing Supply.
	Update(ctx context.Context, supply *models.Supply) error

	// Delete removes a supply by ID.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a supply with the given ID exists.
	Exists(ctx context.Context, id string) (bool, error)
}
