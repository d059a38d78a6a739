package handlers

import (
	"net/http"

	"github.com/ghuser/cims/pkg/errhttp"
	"github.com/ghuser/cims/pkg/httpx"
	appsvcs "github.com/ghuser/cims/services/supply/application/services"
)

// StockAlert is one low-stock warning in a ListAlertsResponse.
type StockAlert struct {
	SupplyID     string `json:"supply_id"     example:"ms_a1b2c3d4"`
	Name         string `json:"name"          example:"Sterile Gauze Pads"`
	CurrentStock int    `json:"current_stock" example:"8"`
	MinimumStock int    `json:"minimum_stock" example:"25"`
	SupplierName string `json:"supplier_name" example:"MedSource Inc"`
} // @name StockAlert

// ListAlertsResponse is returned by GET /supplies/alerts.
type ListAlertsResponse struct {
	Alerts []StockAlert `json:"alerts"`
	Total  int          `json:"total" example:"2"`
} // @name ListAlertsResponse

// GetAlertsHandler handles GET /supplies/alerts.
type GetAlertsHandler struct {
	svc *appsvcs.Services
}

// NewGetAlertsHandler returns a GetAlertsHandler backed by the given services.
func NewGetAlertsHandler(svc *appsvcs.Services) *GetAlertsHandler {
	return &GetAlertsHandler{svc: svc}
}

// Execute lists supplies at or below their restock threshold.
//
//	@Summary		Low-stock alerts
//	@Description	Lists supplies at or below their restock threshold, most depleted first
//	@Tags			supplies
//	@Produce		json
//	@Success		200	{object}	ListAlertsResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/supplies/alerts [get]
func (h *GetAlertsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	supplies, err := h.svc.Supply.LowStock(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	alerts := make([]StockAlert, len(supplies))
	for i, s := range supplies {
		alerts[i] = StockAlert{
			SupplyID:     s.ID,
			Name:         s.Name.String(),
			CurrentStock: s.CurrentStock,
			MinimumStock: s.MinimumStock,
			SupplierName: s.SupplierName,
		}
	}

	httpx.JSON(w, http.StatusOK, ListAlertsResponse{Alerts: alerts, Total: len(alerts)})
}
