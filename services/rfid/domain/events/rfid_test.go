package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/cims/services/rfid/domain/events"
)

func TestTagAssignedEvent_JSONFieldNames(t *testing.T) {
	evt := events.TagAssignedEvent{
		EventID:    uuid.New(),
		Version:    1,
		TagID:      "RFID-ms_001-20241201T143022Z-a1b2c3d4",
		ItemID:     "ms_001",
		ItemName:   "Surgical Gloves",
		Status:     "active",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "tag_id", "item_id", "item_name", "status", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopicTagAssigned_Value(t *testing.T) {
	if events.TopicTagAssigned != "rfid.tag.assigned" {
		t.Errorf("expected %q, got %q", "rfid.tag.assigned", events.TopicTagAssigned)
	}
}
