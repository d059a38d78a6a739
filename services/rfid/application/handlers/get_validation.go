package handlers

import (
	"net/http"

	"github.com/ghuser/cims/pkg/httpx"
	appsvcs "github.com/ghuser/cims/services/rfid/application/services"
)

// GetValidationHandler handles GET /rfid/validation requests.
type GetValidationHandler struct {
	svc *appsvcs.Services
}

// NewGetValidationHandler returns a GetValidationHandler backed by the given services.
func NewGetValidationHandler(svc *appsvcs.Services) *GetValidationHandler {
	return &GetValidationHandler{svc: svc}
}

// Execute recomputes every stored tag's checksum and reports mismatches.
// Diagnostic only; nothing is repaired.
//
//	@Summary		Validate stored RFID tags
//	@Tags			rfid
//	@Produce		json
//	@Success		200	{object}	services.ValidationResult
//	@Router			/rfid/validation [get]
func (h *GetValidationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.Reconciler.Validate())
}
