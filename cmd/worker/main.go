package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/cims/pkg/app"
	"github.com/ghuser/cims/pkg/cache"
	"github.com/ghuser/cims/pkg/config"
	"github.com/ghuser/cims/pkg/database"
	"github.com/ghuser/cims/pkg/events"
	"github.com/ghuser/cims/pkg/logger"
	"github.com/ghuser/cims/pkg/telemetry"
	rfidEvents "github.com/ghuser/cims/services/rfid/domain/events"
	supplyEvents "github.com/ghuser/cims/services/supply/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Cfg:      cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		rfidEvents.TopicTagAssigned:     handleTagAssigned(a),
		supplyEvents.TopicSupplyCreated: handleSupplyCreated(a),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}()
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{rfidEvents.TopicTagAssigned, supplyEvents.TopicSupplyCreated})
	return nil
}

// handleTagAssigned returns a handler for rfid.tag.assigned events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis tag read model so supply listings show the new tag without
// touching the tag file.
func handleTagAssigned(a *app.Application) func(context.Context, *message.Message) error {
	tagCache := cache.NewTagCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt rfidEvents.TagAssignedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := tagCache.Set(ctx, &cache.CachedTag{
			TagID:       evt.TagID,
			ItemID:      evt.ItemID,
			ItemName:    evt.ItemName,
			Status:      evt.Status,
			GeneratedAt: evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for rfid.tag.assigned",
				"tag_id", evt.TagID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "tag cache warmed",
				"tag_id", evt.TagID, "item_id", evt.ItemID)
		}

		return nil
	}
}

// handleSupplyCreated returns a handler for supply.created events.
// Audit log only for now; the next consumer is the restock forecaster.
func handleSupplyCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt supplyEvents.SupplyCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "supply created",
			"supply_id", evt.SupplyID,
			"name", evt.Name,
			"current_stock", evt.CurrentStock,
			"supplier", evt.SupplierName,
		)
		return nil
	}
}
