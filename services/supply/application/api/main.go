package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cims/pkg/app"
	"github.com/ghuser/cims/services/supply/application/handlers"
	appsvcs "github.com/ghuser/cims/services/supply/application/services"
)

// SupplyRoutes registers supply catalog endpoints on the provided chi router.
func SupplyRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	supplies := handlers.NewGetSuppliesHandler(svcs)
	r.Group(func(r chi.Router) {
		r.Route("/supplies", func(r chi.Router) {
			r.Post("/", handlers.NewPostSupplyHandler(svcs).Execute)
			r.Get("/", supplies.List)
			r.Get("/alerts", handlers.NewGetAlertsHandler(svcs).Execute)
			r.Get("/{id}", supplies.Get)
			r.Delete("/{id}", supplies.Delete)
		})
	})
}
