package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicSupplyCreated is the Watermill topic published when a Supply is created.
const TopicSupplyCreated = "supply.created"

// SupplyCreatedEvent is published after a new Supply is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicSupplyCreated).
type SupplyCreatedEvent struct {
	EventID      uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version      int       `json:"version"`  // Schema version; increment on breaking changes
	SupplyID     string    `json:"supply_id"`
	Name         string    `json:"name"`
	CurrentStock int       `json:"current_stock"`
	SupplierName string    `json:"supplier_name"`
	OccurredAt   time.Time `json:"occurred_at"`
}
