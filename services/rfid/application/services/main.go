package services

import (
	"errors"

	"github.com/ghuser/cims/pkg/app"
	"github.com/ghuser/cims/pkg/telemetry"
	rfiddomain "github.com/ghuser/cims/services/rfid/domain"
	domainsvcs "github.com/ghuser/cims/services/rfid/domain/services"
	"github.com/ghuser/cims/services/rfid/infrastructure/catalog"
	"github.com/ghuser/cims/services/rfid/infrastructure/persistence/tagfile"
	supplypg "github.com/ghuser/cims/services/supply/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the rfid bounded context.
type Services struct {
	Reconciler *Reconciler
}

// New wires the reconciler with infrastructure from the Application container:
// the Postgres-backed supply catalog, the flat-file tag store at
// cfg.TagStorePath, and the event bus.
//
// A corrupt tag store is logged loudly and the reconciler starts with an
// empty collection — the original operator behavior. Hosts needing to abort
// instead should construct the store and reconciler themselves.
func New(a *app.Application) (*Services, error) {
	store := tagfile.NewStore(a.Cfg.TagStorePath)
	tags, err := store.Load()
	if err != nil {
		if !errors.Is(err, rfiddomain.ErrCorruptStore) {
			return nil, err
		}
		a.Logger.Warn("rfid tag store unreadable, starting with empty collection",
			"path", store.Path(), "error", err)
	}
	a.Logger.Info("rfid tag store loaded", "path", store.Path(), "tags", len(tags))

	supplyCatalog := catalog.NewSupplyCatalogAdapter(supplypg.NewSupplyRepository(a.Db, nil))

	// Typed-nil guard: a nil *EventBus must stay a nil interface inside the
	// reconciler so its bus == nil check works.
	var bus EventPublisher
	if a.EventBus != nil {
		bus = a.EventBus
	}

	rec := NewReconciler(
		supplyCatalog,
		store,
		tags,
		domainsvcs.NewGenerator(),
		bus,
		a.Logger,
	)

	if metrics, err := telemetry.NewRFIDMetrics(); err != nil {
		a.Logger.Warn("rfid metrics disabled", "error", err)
	} else {
		rec = rec.WithMetrics(metrics)
	}

	return &Services{Reconciler: rec}, nil
}
