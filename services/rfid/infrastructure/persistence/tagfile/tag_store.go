// Package tagfile persists the RFID tag collection as a flat JSON file.
// The whole collection is read at startup and rewritten in full on every
// successful assignment pass; there is no incremental append. The host is
// responsible for serializing writers — the store assumes a single writer
// at a time.
package tagfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	rfiddomain "github.com/ghuser/cims/services/rfid/domain"
	"github.com/ghuser/cims/services/rfid/domain/models"
)

// Store reads and writes the tag collection at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path. The file does not
// need to exist yet; Load treats a missing file as an empty collection.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Ping verifies the store's directory is accessible, so health checks can
// surface a misconfigured or unmounted tag store path before an assignment
// pass fails on it. The file itself may legitimately not exist yet.
func (s *Store) Ping(_ context.Context) error {
	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return fmt.Errorf("tag store directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("tag store parent %s is not a directory", filepath.Dir(s.path))
	}
	return nil
}

// Load reads the persisted tag collection keyed by tag id.
//
// A missing file is an empty collection, not an error. An unreadable or
// unparseable file returns an empty usable collection together with an error
// wrapping rfiddomain.ErrCorruptStore so the host can decide whether to
// proceed empty or abort. Load never mutates the file and is idempotent.
func (s *Store) Load() (map[string]models.Tag, error) {
	tags := make(map[string]models.Tag)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tags, nil
		}
		return tags, fmt.Errorf("%w: read %s: %w", rfiddomain.ErrCorruptStore, s.path, err)
	}

	var records []models.Tag
	if err := json.Unmarshal(data, &records); err != nil {
		return tags, fmt.Errorf("%w: parse %s: %w", rfiddomain.ErrCorruptStore, s.path, err)
	}

	for _, t := range records {
		if err := t.Validate(); err != nil {
			return make(map[string]models.Tag), fmt.Errorf("%w: record %q: %w", rfiddomain.ErrCorruptStore, t.TagID, err)
		}
		tags[t.TagID] = t
	}
	return tags, nil
}

// Save serializes the full collection and replaces the backing file.
// The write goes to a temp file first and is renamed into place so a failed
// save never leaves a half-written store behind. Failures propagate wrapped
// in rfiddomain.ErrStoreSave — silent loss of tag records is unacceptable.
func (s *Store) Save(tags map[string]models.Tag) error {
	records := sortedRecords(tags)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %w", rfiddomain.ErrStoreSave, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %s: %w", rfiddomain.ErrStoreSave, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", rfiddomain.ErrStoreSave, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %w", rfiddomain.ErrStoreSave, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: rename to %s: %w", rfiddomain.ErrStoreSave, s.path, err)
	}
	return nil
}

// sortedRecords flattens the collection into a slice ordered by generation
// time then tag id, so the persisted file is deterministic.
func sortedRecords(tags map[string]models.Tag) []models.Tag {
	records := make([]models.Tag, 0, len(tags))
	for _, t := range tags {
		records = append(records, t)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].GeneratedAt.Equal(records[j].GeneratedAt) {
			return records[i].GeneratedAt.Before(records[j].GeneratedAt)
		}
		return records[i].TagID < records[j].TagID
	})
	return records
}
