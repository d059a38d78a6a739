package services

import (
	"github.com/ghuser/cims/pkg/app"
	"github.com/ghuser/cims/pkg/cache"
	"github.com/ghuser/cims/services/supply/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Supply *SupplyService
}

// New wires all supply application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewSupplyRepository(a.Db, a.EventBus)
	tagCache := cache.NewTagCache(a.Redis)
	return &Services{
		Supply: NewSupplyService(repo, tagCache, a.Logger),
	}
}
