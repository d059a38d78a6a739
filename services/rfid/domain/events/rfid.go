package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicTagAssigned is the Watermill topic published after an assignment pass
// durably persists new tags. One event per assigned tag.
const TopicTagAssigned = "rfid.tag.assigned"

// TagAssignedEvent is published after a new Tag is persisted to the store.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicTagAssigned).
type TagAssignedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	TagID      string    `json:"tag_id"`
	ItemID     string    `json:"item_id"`
	ItemName   string    `json:"item_name"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
