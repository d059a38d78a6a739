package models

import (
	"fmt"
	"time"
)

// TagStatus is the lifecycle state of a physical RFID tag.
// The reconciler only ever sets StatusActive at creation; every other
// transition is an external operator action recorded as a field update.
type TagStatus string

const (
	StatusActive   TagStatus = "active"
	StatusInactive TagStatus = "inactive"
	StatusLost     TagStatus = "lost"
	StatusDamaged  TagStatus = "damaged"
)

// Valid reports whether s is one of the known statuses.
func (s TagStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusLost, StatusDamaged:
		return true
	}
	return false
}

// Tag binds one generated RFID identifier to one inventory item.
// The JSON keys are the persisted file layout and must round-trip losslessly;
// do not rename them.
type Tag struct {
	TagID       string    `json:"tag_id"`
	ItemID      string    `json:"item_id"`
	ItemName    string    `json:"item_name"` // snapshot at generation time, may drift from the catalog
	GeneratedAt time.Time `json:"generated_at"`
	Checksum    string    `json:"checksum"`
	Status      TagStatus `json:"status"`
}

// Validate checks structural integrity of a tag record loaded from storage.
// Checksum correctness is the validator's concern, not Validate's.
func (t *Tag) Validate() error {
	if t.TagID == "" {
		return fmt.Errorf("tag_id must not be empty")
	}
	if t.ItemID == "" {
		return fmt.Errorf("item_id must not be empty")
	}
	if !t.Status.Valid() {
		return fmt.Errorf("unknown status %q", t.Status)
	}
	if t.GeneratedAt.IsZero() {
		return fmt.Errorf("generated_at must be set")
	}
	return nil
}

// Active reports whether the tag currently covers its item.
func (t *Tag) Active() bool {
	return t.Status == StatusActive
}
