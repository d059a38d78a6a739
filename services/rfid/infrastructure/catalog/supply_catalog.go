// Package catalog adapts the supply bounded context to the reconciler's
// SupplyCatalog port. The reconciler only ever reads the catalog; all
// mutation stays on the supply side.
package catalog

import (
	"context"
	"fmt"

	rfiddomain "github.com/ghuser/cims/services/rfid/domain"
	supplyrepos "github.com/ghuser/cims/services/supply/domain/repositories"
)

// SupplyCatalogAdapter implements rfiddomain.SupplyCatalog over the supply
// repository. Item order is the repository's insertion order.
type SupplyCatalogAdapter struct {
	repo supplyrepos.SupplyRepository
}

// NewSupplyCatalogAdapter returns an adapter over the given repository.
func NewSupplyCatalogAdapter(repo supplyrepos.SupplyRepository) *SupplyCatalogAdapter {
	return &SupplyCatalogAdapter{repo: repo}
}

// ListSupplies returns the current catalog as the reconciler's read view.
func (a *SupplyCatalogAdapter) ListSupplies(ctx context.Context) ([]rfiddomain.CatalogItem, error) {
	supplies, err := a.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}

	items := make([]rfiddomain.CatalogItem, len(supplies))
	for i, s := range supplies {
		items[i] = rfiddomain.CatalogItem{
			ID:           s.ID,
			Name:         s.Name.String(),
			CurrentStock: s.CurrentStock,
			SupplierName: s.SupplierName,
		}
	}
	return items, nil
}
