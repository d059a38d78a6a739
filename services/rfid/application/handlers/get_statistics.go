package handlers

import (
	"net/http"

	"github.com/ghuser/cims/pkg/errhttp"
	"github.com/ghuser/cims/pkg/httpx"
	appsvcs "github.com/ghuser/cims/services/rfid/application/services"
)

// GetStatisticsHandler handles GET /rfid/statistics requests.
type GetStatisticsHandler struct {
	svc *appsvcs.Services
}

// NewGetStatisticsHandler returns a GetStatisticsHandler backed by the given services.
func NewGetStatisticsHandler(svc *appsvcs.Services) *GetStatisticsHandler {
	return &GetStatisticsHandler{svc: svc}
}

// Execute reports tag coverage over the current catalog. Read-only.
//
//	@Summary		RFID coverage statistics
//	@Tags			rfid
//	@Produce		json
//	@Success		200	{object}	services.Stats
//	@Failure		502	{object}	ErrorResponse
//	@Router			/rfid/statistics [get]
func (h *GetStatisticsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Reconciler.Statistics(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
