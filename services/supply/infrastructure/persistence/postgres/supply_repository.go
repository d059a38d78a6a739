package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/cims/pkg/database"
	"github.com/ghuser/cims/pkg/events"
	supplydomain "github.com/ghuser/cims/services/supply/domain"
	domainevents "github.com/ghuser/cims/services/supply/domain/events"
	"github.com/ghuser/cims/services/supply/domain/models"
)

// SupplyRepository implements repositories.SupplyRepository against PostgreSQL.
type SupplyRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewSupplyRepository returns a SupplyRepository backed by the given pool and
// event bus. The bus is used to publish SupplyCreatedEvents after a
// successful save; nil disables publishing.
func NewSupplyRepository(db *database.Database, bus *events.EventBus) *SupplyRepository {
	return &SupplyRepository{db: db, bus: bus}
}

const supplyColumns = "id, name, current_stock, minimum_stock, supplier_name, created_at"

// Save persists a new Supply and publishes a SupplyCreatedEvent.
// Returns ErrSupplyAlreadyExists on unique constraint violations.
func (r *SupplyRepository) Save(ctx context.Context, supply *models.Supply) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO supplies (id, name, current_stock, minimum_stock, supplier_name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		supply.ID, supply.Name.String(), supply.CurrentStock, supply.MinimumStock,
		supply.SupplierName, supply.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return supplydomain.ErrSupplyAlreadyExists
		}
		return fmt.Errorf("insert supply: %w", err)
	}

	if r.bus != nil {
		if err := r.publishCreated(ctx, supply); err != nil {
			return fmt.Errorf("publish supply created: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a Supply by ID. Returns ErrSupplyNotFound if not found.
func (r *SupplyRepository) GetByID(ctx context.Context, id string) (*models.Supply, error) {
	row := r.db.Pool().QueryRow(ctx,
		`SELECT `+supplyColumns+` FROM supplies WHERE id = $1`, id)

	supply, err := scanSupply(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplydomain.ErrSupplyNotFound
		}
		return nil, fmt.Errorf("query supply: %w", err)
	}
	return supply, nil
}

// List retrieves all supplies in insertion order.
func (r *SupplyRepository) List(ctx context.Context) ([]*models.Supply, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT `+supplyColumns+` FROM supplies ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query supplies: %w", err)
	}
	defer rows.Close()
	return collectSupplies(rows)
}

// ListLowStock retrieves supplies at or below their restock threshold, most
// depleted first.
func (r *SupplyRepository) ListLowStock(ctx context.Context) ([]*models.Supply, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT `+supplyColumns+` FROM supplies
		 WHERE current_stock <= minimum_stock
		 ORDER BY current_stock - minimum_stock, id`)
	if err != nil {
		return nil, fmt.Errorf("query low stock supplies: %w", err)
	}
	defer rows.Close()
	return collectSupplies(rows)
}

// Update persists stock and supplier changes to an existing Supply.
func (r *SupplyRepository) Update(ctx context.Context, supply *models.Supply) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE supplies
		 SET name = $2, current_stock = $3, minimum_stock = $4, supplier_name = $5
		 WHERE id = $1`,
		supply.ID, supply.Name.String(), supply.CurrentStock, supply.MinimumStock,
		supply.SupplierName,
	)
	if err != nil {
		return fmt.Errorf("update supply: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return supplydomain.ErrSupplyNotFound
	}
	return nil
}

// Delete removes a supply by ID.
func (r *SupplyRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Pool().Exec(ctx, `DELETE FROM supplies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete supply: %w", err)
	}
	return nil
}

// Exists reports whether a supply with the given ID exists.
func (r *SupplyRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM supplies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check supply: %w", err)
	}
	return exists, nil
}

func (r *SupplyRepository) publishCreated(ctx context.Context, supply *models.Supply) error {
	evt := domainevents.SupplyCreatedEvent{
		EventID:      uuid.New(),
		Version:      1,
		SupplyID:     supply.ID,
		Name:         supply.Name.String(),
		CurrentStock: supply.CurrentStock,
		SupplierName: supply.SupplierName,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return r.bus.Publish(ctx, domainevents.TopicSupplyCreated, message.NewMessage(watermill.NewUUID(), payload))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSupply(row rowScanner) (*models.Supply, error) {
	var (
		s    models.Supply
		name string
	)
	if err := row.Scan(&s.ID, &name, &s.CurrentStock, &s.MinimumStock, &s.SupplierName, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Name = models.SupplyName(name)
	return &s, nil
}

func collectSupplies(rows pgx.Rows) ([]*models.Supply, error) {
	var supplies []*models.Supply
	for rows.Next() {
		s, err := scanSupply(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supply: %w", err)
		}
		supplies = append(supplies, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate supplies: %w", err)
	}
	return supplies, nil
}
