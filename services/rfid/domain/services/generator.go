// Package services contains stateless domain services for the rfid bounded
// context. They operate purely on domain types with zero external
// dependencies beyond stdlib and the domain layer.
package services

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/cims/services/rfid/domain/models"
)

// tagTimestampLayout renders the generation instant at second precision,
// e.g. 20241201T143022Z. Part of the tag id wire format.
const tagTimestampLayout = "20060102T150405Z"

// Checksum returns the 8-character integrity digest for a tag id.
// It is a pure function of the tag id alone (no salt, no secret) so any
// independent validator can recompute it. MD5 is used for corruption
// detection, not security.
func Checksum(tagID string) string {
	sum := md5.Sum([]byte(tagID))
	return hex.EncodeToString(sum[:])[:8]
}

// Generator builds RFID tags. The clock and suffix source are injectable so
// tests can produce deterministic ids; production callers use NewGenerator.
type Generator struct {
	now    func() time.Time
	suffix func() string
}

// NewGenerator returns a Generator backed by the system clock and random
// UUID suffixes.
func NewGenerator() *Generator {
	return &Generator{
		now:    func() time.Time { return time.Now().UTC() },
		suffix: func() string { return uuid.NewString()[:8] },
	}
}

// NewGeneratorWithClock returns a Generator with a fixed clock and suffix
// source. Test constructor.
func NewGeneratorWithClock(now func() time.Time, suffix func() string) *Generator {
	return &Generator{now: now, suffix: suffix}
}

// Generate builds a tag for the given item with a globally unique id of the
// form RFID-{itemID}-{timestampUTC}-{suffix}, an integrity checksum, and
// status active. The random suffix makes identical-item, identical-second
// collisions a non-issue.
func (g *Generator) Generate(itemID, itemName string) models.Tag {
	now := g.now().UTC()
	tagID := "RFID-" + itemID + "-" + now.Format(tagTimestampLayout) + "-" + g.suffix()
	return models.Tag{
		TagID:       tagID,
		ItemID:      itemID,
		ItemName:    itemName,
		GeneratedAt: now,
		Checksum:    Checksum(tagID),
		Status:      models.StatusActive,
	}
}
