package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cims/pkg/app"
	"github.com/ghuser/cims/services/rfid/application/handlers"
	appsvcs "github.com/ghuser/cims/services/rfid/application/services"
)

// RFIDRoutes registers reconciler endpoints on the provided chi router.
// Returns an error when the tag store cannot be opened at all.
func RFIDRoutes(r chi.Router, a *app.Application) error {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return err
	}
	r.Group(func(r chi.Router) {
		r.Route("/rfid", func(r chi.Router) {
			r.Post("/assignments", handlers.NewPostAssignmentHandler(svcs).Execute)
			r.Get("/statistics", handlers.NewGetStatisticsHandler(svcs).Execute)
			r.Get("/validation", handlers.NewGetValidationHandler(svcs).Execute)
			r.Post("/reports", handlers.NewPostReportHandler(svcs, a.Cfg.ReportDir).Execute)
		})
	})
	return nil
}
