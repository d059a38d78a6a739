package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/cims/pkg/logger"
	"github.com/ghuser/cims/pkg/telemetry"
	rfiddomain "github.com/ghuser/cims/services/rfid/domain"
	domainevents "github.com/ghuser/cims/services/rfid/domain/events"
	"github.com/ghuser/cims/services/rfid/domain/models"
	domainsvcs "github.com/ghuser/cims/services/rfid/domain/services"
)

// TagStore is the persistence contract the reconciler writes through.
// Implemented by tagfile.Store.
type TagStore interface {
	Load() (map[string]models.Tag, error)
	Save(tags map[string]models.Tag) error
}

// EventPublisher publishes domain events after durable writes. Satisfied by
// events.EventBus; nil disables publishing (the one-shot CLI runs without a bus).
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// AssignedTag is one successful assignment in an AssignmentResult.
type AssignedTag struct {
	ItemID     string    `json:"item_id"`
	ItemName   string    `json:"item_name"`
	RFIDTag    string    `json:"rfid_tag"`
	AssignedAt time.Time `json:"assigned_at"`
}

// FailedAssignment records one item the pass could not tag.
type FailedAssignment struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Error    string `json:"error"`
}

// AssignmentResult is the structured outcome of one assignment pass.
type AssignmentResult struct {
	Status              string             `json:"status"` // "success" or "error"
	Message             string             `json:"message"`
	AssignedCount       int                `json:"assigned_count"`
	FailedCount         int                `json:"failed_count"`
	TotalSupplies       int                `json:"total_supplies"`
	SuppliesWithoutRFID int                `json:"supplies_without_rfid"` // untagged count at call time
	AssignedTags        []AssignedTag      `json:"assigned_tags"`
	FailedAssignments   []FailedAssignment `json:"failed_assignments"`
	DryRun              bool               `json:"dry_run"`
}

// Stats is the read-only coverage summary over the tag collection and a
// fresh catalog count.
type Stats struct {
	TotalSupplies          int     `json:"total_supplies"`
	SuppliesWithRFID       int     `json:"supplies_with_rfid"`
	SuppliesWithoutRFID    int     `json:"supplies_without_rfid"`
	RFIDCoveragePercentage float64 `json:"rfid_coverage_percentage"`
	TotalRFIDTags          int     `json:"total_rfid_tags"`
	ActiveRFIDTags         int     `json:"active_rfid_tags"`
	InactiveRFIDTags       int     `json:"inactive_rfid_tags"`
}

// ValidationError describes one tag that failed integrity validation.
type ValidationError struct {
	TagID    string `json:"tag_id"`
	Error    string `json:"error"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

// ValidationResult classifies every stored tag as valid or invalid.
type ValidationResult struct {
	TotalTags   int               `json:"total_tags"`
	ValidTags   int               `json:"valid_tags"`
	InvalidTags int               `json:"invalid_tags"`
	Errors      []ValidationError `json:"errors"`
}

// Report is the exported document combining statistics, validation, the full
// tag listing, and the currently-untagged supplies.
type Report struct {
	GeneratedAt         time.Time                `json:"generated_at"`
	Statistics          *Stats                   `json:"statistics"`
	Validation          *ValidationResult        `json:"validation"`
	RFIDTags            []models.Tag             `json:"rfid_tags"`
	SuppliesWithoutRFID []rfiddomain.CatalogItem `json:"supplies_without_rfid"`
}

// Reconciler owns the in-memory tag collection and brings it into agreement
// with the supply catalog: exactly one tag per untagged item. It has no
// persistent internal state machine — each operation is a synchronous pass
// returning a terminal result.
//
// A mutex serializes passes within this process. The store itself assumes a
// single writer, so embedding hosts must not run two reconcilers against the
// same file.
type Reconciler struct {
	catalog rfiddomain.SupplyCatalog
	store   TagStore
	gen     *domainsvcs.Generator
	bus     EventPublisher
	log     logger.Logger
	metrics *telemetry.RFIDMetrics

	mu   sync.Mutex
	tags map[string]models.Tag
}

// NewReconciler wires a Reconciler over an explicitly owned tag collection,
// typically the result of store.Load(). The caller controls the collection's
// lifetime; the reconciler mutates it during assignment passes and persists
// it through the store. bus may be nil.
func NewReconciler(
	catalog rfiddomain.SupplyCatalog,
	store TagStore,
	tags map[string]models.Tag,
	gen *domainsvcs.Generator,
	bus EventPublisher,
	log logger.Logger,
) *Reconciler {
	if tags == nil {
		tags = make(map[string]models.Tag)
	}
	return &Reconciler{
		catalog: catalog,
		store:   store,
		gen:     gen,
		bus:     bus,
		log:     log,
		tags:    tags,
	}
}

// WithMetrics attaches assignment pass instruments. Optional; passes run
// unrecorded without it.
func (r *Reconciler) WithMetrics(m *telemetry.RFIDMetrics) *Reconciler {
	r.metrics = m
	return r
}

// Assign runs one assignment pass: fetch the catalog, create one tag per
// untagged item, and persist the collection unless dryRun.
//
// Failure semantics:
//   - catalog unreachable: returns a status "error" result and a nil error —
//     an expected collaborator failure, not a crash.
//   - per-item generation failure: recorded in FailedAssignments; the rest
//     of the batch still runs.
//   - store save failure: the pass failed even though generations succeeded;
//     the generated tags are removed from the collection again, and the error
//     (wrapping ErrStoreSave) is returned alongside an "error" result so
//     callers cannot mistake it for a durable success. A retried pass in the
//     same process re-tags the items and re-attempts the save.
//
// In dry-run mode generated tags are materialized in memory so counts and a
// following Statistics call reflect them, but the store is never written and
// they do not survive a restart.
func (r *Reconciler) Assign(ctx context.Context, dryRun bool) (*AssignmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	supplies, err := r.catalog.ListSupplies(ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "assignment pass aborted: catalog read failed", "error", err)
		return &AssignmentResult{
			Status:  "error",
			Message: fmt.Sprintf("%v: %v", rfiddomain.ErrCatalogUnavailable, err),
			DryRun:  dryRun,
		}, nil
	}

	needsTag := r.untagged(supplies)
	if len(needsTag) == 0 {
		return &AssignmentResult{
			Status:        "success",
			Message:       "all medical supplies already have RFID tags",
			TotalSupplies: len(supplies),
			DryRun:        dryRun,
		}, nil
	}

	r.log.InfoContext(ctx, "assignment pass started",
		"untagged", len(needsTag),
		"total_supplies", len(supplies),
		"dry_run", dryRun,
	)

	var assigned []AssignedTag
	var failed []FailedAssignment
	// Item order follows the catalog; no prioritization is applied.
	for _, item := range needsTag {
		tag, err := r.insertNewTag(item)
		if err != nil {
			r.log.ErrorContext(ctx, "tag generation failed",
				"item_id", item.ID, "item_name", item.Name, "error", err)
			failed = append(failed, FailedAssignment{
				ItemID:   item.ID,
				ItemName: item.Name,
				Error:    err.Error(),
			})
			continue
		}
		assigned = append(assigned, AssignedTag{
			ItemID:     item.ID,
			ItemName:   item.Name,
			RFIDTag:    tag.TagID,
			AssignedAt: tag.GeneratedAt,
		})
	}

	result := &AssignmentResult{
		Status:              "success",
		Message:             "RFID assignment completed",
		AssignedCount:       len(assigned),
		FailedCount:         len(failed),
		TotalSupplies:       len(supplies),
		SuppliesWithoutRFID: len(needsTag),
		AssignedTags:        assigned,
		FailedAssignments:   failed,
		DryRun:              dryRun,
	}

	if !dryRun && len(assigned) > 0 {
		if err := r.store.Save(r.tags); err != nil {
			// The caller's contract is "assigned tags are durable", and it
			// was broken: report failure even though generation succeeded.
			// Roll the pass back so a retry sees these items as untagged and
			// attempts the save again rather than reporting stale coverage.
			for _, a := range assigned {
				delete(r.tags, a.RFIDTag)
			}
			result.Status = "error"
			result.Message = fmt.Sprintf("tags generated but not persisted: %v", err)
			return result, err
		}
		r.publishAssigned(ctx, assigned)
	}

	if r.metrics != nil {
		r.metrics.Passes.Add(ctx, 1)
		if !dryRun {
			r.metrics.AssignedTags.Add(ctx, int64(len(assigned)))
			r.metrics.FailedAssignments.Add(ctx, int64(len(failed)))
		}
	}

	r.log.InfoContext(ctx, "assignment pass finished",
		"assigned", len(assigned), "failed", len(failed), "dry_run", dryRun)
	return result, nil
}

// Statistics computes coverage over the in-memory collection and a fresh
// catalog count. Read-only; no side effects.
func (r *Reconciler) Statistics(ctx context.Context) (*Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	supplies, err := r.catalog.ListSupplies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rfiddomain.ErrCatalogUnavailable, err)
	}
	return r.statsLocked(supplies), nil
}

func (r *Reconciler) statsLocked(supplies []rfiddomain.CatalogItem) *Stats {
	active := 0
	for _, t := range r.tags {
		if t.Active() {
			active++
		}
	}

	total := len(supplies)
	coverage := 0.0
	if total > 0 {
		coverage = float64(active) / float64(total) * 100
	}

	return &Stats{
		TotalSupplies:          total,
		SuppliesWithRFID:       active,
		SuppliesWithoutRFID:    total - active,
		RFIDCoveragePercentage: coverage,
		TotalRFIDTags:          len(r.tags),
		ActiveRFIDTags:         active,
		InactiveRFIDTags:       len(r.tags) - active,
	}
}

// Validate recomputes every stored tag's checksum and classifies it.
// Diagnostic only: mismatches are reported with expected vs. actual values,
// never repaired.
func (r *Reconciler) Validate() *ValidationResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.validateLocked()
}

func (r *Reconciler) validateLocked() *ValidationResult {
	result := &ValidationResult{
		TotalTags: len(r.tags),
		Errors:    []ValidationError{},
	}

	for _, t := range SortedTags(r.tags) {
		expected := domainsvcs.Checksum(t.TagID)
		if t.Checksum != expected {
			result.InvalidTags++
			result.Errors = append(result.Errors, ValidationError{
				TagID:    t.TagID,
				Error:    "checksum mismatch",
				Expected: expected,
				Actual:   t.Checksum,
			})
			continue
		}
		result.ValidTags++
	}
	return result
}

// BuildReport composes statistics, validation, the full tag listing, and the
// currently-untagged supplies into one report document.
func (r *Reconciler) BuildReport(ctx context.Context) (*Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	supplies, err := r.catalog.ListSupplies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rfiddomain.ErrCatalogUnavailable, err)
	}

	untagged := r.untagged(supplies)
	if untagged == nil {
		untagged = []rfiddomain.CatalogItem{}
	}

	return &Report{
		GeneratedAt:         time.Now().UTC(),
		Statistics:          r.statsLocked(supplies),
		Validation:          r.validateLocked(),
		RFIDTags:            SortedTags(r.tags),
		SuppliesWithoutRFID: untagged,
	}, nil
}

// Tags returns a point-in-time copy of the collection ordered by generation
// time. The copy is safe to hold across later passes.
func (r *Reconciler) Tags() []models.Tag {
	r.mu.Lock()
	defer r.mu.Unlock()
	return SortedTags(r.tags)
}

// untagged partitions supplies down to those with no tag record for their
// item id — any status counts as covered at assignment time; the reconciler
// does not deduplicate or re-tag retroactively.
func (r *Reconciler) untagged(supplies []rfiddomain.CatalogItem) []rfiddomain.CatalogItem {
	tagged := make(map[string]struct{}, len(r.tags))
	for _, t := range r.tags {
		tagged[t.ItemID] = struct{}{}
	}

	var out []rfiddomain.CatalogItem
	for _, s := range supplies {
		if _, ok := tagged[s.ID]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// insertNewTag generates a tag for item and inserts it into the collection.
// On the astronomically-unlikely id collision it regenerates once, then
// fails the item with ErrDuplicateTag.
func (r *Reconciler) insertNewTag(item rfiddomain.CatalogItem) (models.Tag, error) {
	tag := r.gen.Generate(item.ID, item.Name)
	if _, exists := r.tags[tag.TagID]; exists {
		tag = r.gen.Generate(item.ID, item.Name)
		if _, exists := r.tags[tag.TagID]; exists {
			return models.Tag{}, fmt.Errorf("%w: %s", rfiddomain.ErrDuplicateTag, tag.TagID)
		}
	}
	r.tags[tag.TagID] = tag
	return tag, nil
}

// publishAssigned emits one TagAssignedEvent per durable assignment.
// Best-effort: the file is the durability contract, so publish failures are
// logged and do not fail the pass.
func (r *Reconciler) publishAssigned(ctx context.Context, assigned []AssignedTag) {
	if r.bus == nil {
		return
	}
	for _, a := range assigned {
		evt := domainevents.TagAssignedEvent{
			EventID:    uuid.New(),
			Version:    1,
			TagID:      a.RFIDTag,
			ItemID:     a.ItemID,
			ItemName:   a.ItemName,
			Status:     string(models.StatusActive),
			OccurredAt: a.AssignedAt,
		}
		payload, err := json.Marshal(evt)
		if err != nil {
			r.log.ErrorContext(ctx, "marshal tag assigned event", "tag_id", a.RFIDTag, "error", err)
			continue
		}
		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := r.bus.Publish(ctx, domainevents.TopicTagAssigned, msg); err != nil {
			r.log.ErrorContext(ctx, "publish tag assigned event", "tag_id", a.RFIDTag, "error", err)
		}
	}
}

// SortedTags orders a tag collection by generation time then tag id so
// results and reports are deterministic.
func SortedTags(tags map[string]models.Tag) []models.Tag {
	out := make([]models.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].GeneratedAt.Equal(out[j].GeneratedAt) {
			return out[i].GeneratedAt.Before(out[j].GeneratedAt)
		}
		return out[i].TagID < out[j].TagID
	})
	return out
}
