package domain

import "context"

// CatalogItem is the read-only view of a medical supply that the reconciler
// needs: identity, display name, stock level, supplier.
type CatalogItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
	SupplierName string `json:"supplier"`
}

// SupplyCatalog is the port to the inventory subsystem. Item order is
// whatever the catalog returns; the reconciler applies no re-ordering and
// callers must not rely on it.
type SupplyCatalog interface {
	ListSupplies(ctx context.Context) ([]CatalogItem, error)
}
