package app

import (
	"github.com/ghuser/cims/pkg/cache"
	"github.com/ghuser/cims/pkg/config"
	"github.com/ghuser/cims/pkg/database"
	"github.com/ghuser/cims/pkg/events"
	"github.com/ghuser/cims/pkg/logger"
	"github.com/ghuser/cims/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "assignment pass finished", "assigned", n)
//	app.Logger.ErrorContext(ctx, "failed to save tag store", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Cfg            *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
}
