package services

import (
	"context"
	"fmt"

	pkgcache "github.com/ghuser/cims/pkg/cache"
	"github.com/ghuser/cims/pkg/logger"
	supplydomain "github.com/ghuser/cims/services/supply/domain"
	"github.com/ghuser/cims/services/supply/domain/models"
	"github.com/ghuser/cims/services/supply/domain/repositories"
	domainsvcs "github.com/ghuser/cims/services/supply/domain/services"
)

// TagReadModel is the slice of the tag cache the supply service reads and
// evicts. Implemented by pkgcache.TagCache; nil disables decoration.
type TagReadModel interface {
	Get(ctx context.Context, itemID string) (*pkgcache.CachedTag, error)
	Delete(ctx context.Context, itemID string) error
}

// SupplyService orchestrates creation and retrieval of supplies.
// Event publishing is handled by the repository layer.
// Listings are decorated with the Redis tag read model when available.
type SupplyService struct {
	repo  repositories.SupplyRepository
	cache TagReadModel
	log   logger.Logger
}

// NewSupplyService returns a SupplyService wired with the given repository and tag cache.
func NewSupplyService(repo repositories.SupplyRepository, tagCache TagReadModel, log logger.Logger) *SupplyService {
	return &SupplyService{repo: repo, cache: tagCache, log: log}
}

// SupplyWithTag pairs a supply with its cached RFID tag, when one is known.
// Tag is nil when the item is untagged or the cache has no entry.
type SupplyWithTag struct {
	Supply *models.Supply
	Tag    *pkgcache.CachedTag
}

// Create validates and persists a Supply. The repository publishes SupplyCreatedEvent.
func (s *SupplyService) Create(ctx context.Context, name string, currentStock, minimumStock int, supplierName string) (*models.Supply, error) {
	supplyName, err := models.NewSupplyName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", supplydomain.ErrInvalidSupplyName, err)
	}

	supply, err := models.NewSupply(supplyName, currentStock, minimumStock, supplierName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", supplydomain.ErrInvalidStock, err)
	}

	if err := domainsvcs.ValidateSupplyForCreation(supply); err != nil {
		return nil, fmt.Errorf("%w: %w", supplydomain.ErrInvalidSupplyName, err)
	}

	if err := s.repo.Save(ctx, supply); err != nil {
		return nil, fmt.Errorf("save supply: %w", err)
	}

	return supply, nil
}

// GetByID retrieves a Supply by its external identifier.
func (s *SupplyService) GetByID(ctx context.Context, id string) (*models.Supply, error) {
	supply, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get supply: %w", err)
	}
	return supply, nil
}

// List returns all supplies in catalog order, each decorated with its cached
// RFID tag when the read model has one. Cache errors never fail the listing.
func (s *SupplyService) List(ctx context.Context) ([]SupplyWithTag, error) {
	supplies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}

	out := make([]SupplyWithTag, len(supplies))
	for i, supply := range supplies {
		out[i] = SupplyWithTag{Supply: supply}
		if s.cache == nil {
			continue
		}
		tag, err := s.cache.Get(ctx, supply.ID)
		if err != nil {
			// redis.Nil is an untagged item; anything else is a cache
			// problem and decoration is best-effort either way.
			continue
		}
		out[i].Tag = tag
	}
	return out, nil
}

// LowStock returns supplies at or below their restock threshold.
func (s *SupplyService) LowStock(ctx context.Context) ([]*models.Supply, error) {
	supplies, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("list low stock supplies: %w", err)
	}
	return supplies, nil
}

// Delete removes a supply by ID.
// Returns ErrSupplyNotFound if no matching supply exists.
func (s *SupplyService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check supply: %w", err)
	}
	if !exists {
		return supplydomain.ErrSupplyNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete supply: %w", err)
	}
	if s.cache != nil {
		// Eviction is best-effort: the supply is gone either way, a stale
		// cache entry just lingers until the next warm.
		if err := s.cache.Delete(ctx, id); err != nil {
			s.log.WarnContext(ctx, "tag cache eviction failed", "supply_id", id, "error", err)
		}
	}
	return nil
}
