package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/cims/pkg/errhttp"
	"github.com/ghuser/cims/pkg/httpx"
	pkgvalidator "github.com/ghuser/cims/pkg/validator"
	appsvcs "github.com/ghuser/cims/services/supply/application/services"
)

// CreateSupplyRequest is the request body for POST /supplies.
type CreateSupplyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255" example:"Sterile Gauze Pads"`
	CurrentStock int    `json:"current_stock" validate:"gte=0" example:"120"`
	MinimumStock int    `json:"minimum_stock" validate:"gte=0" example:"25"`
	SupplierName string `json:"supplier_name" validate:"required,min=1,max=255" example:"MedSource Inc"`
} // @name CreateSupplyRequest

// SupplyResponse is the supply representation returned by this API.
type SupplyResponse struct {
	ID           string    `json:"id"            example:"ms_a1b2c3d4"`
	Name         string    `json:"name"          example:"Sterile Gauze Pads"`
	CurrentStock int       `json:"current_stock" example:"120"`
	MinimumStock int       `json:"minimum_stock" example:"25"`
	SupplierName string    `json:"supplier_name" example:"MedSource Inc"`
	CreatedAt    time.Time `json:"created_at"    example:"2024-12-01T10:30:00Z"`
} // @name SupplyResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"supply not found"`
} // @name ErrorResponse

// PostSupplyHandler handles POST /supplies requests.
type PostSupplyHandler struct {
	svc *appsvcs.Services
}

// NewPostSupplyHandler returns a PostSupplyHandler backed by the given services.
func NewPostSupplyHandler(svc *appsvcs.Services) *PostSupplyHandler {
	return &PostSupplyHandler{svc: svc}
}

// Execute creates a new supply.
//
//	@Summary		Create supply
//	@Description	Registers a new medical supply in the catalog
//	@Tags			supplies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSupplyRequest	true	"Supply creation request"
//	@Success		201		{object}	SupplyResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/supplies [post]
func (h *PostSupplyHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateSupplyRequest](w, r)
	if !ok {
		return
	}

	supply, err := h.svc.Supply.Create(r.Context(), req.Name, req.CurrentStock, req.MinimumStock, req.SupplierName)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, SupplyResponse{
		ID:           supply.ID,
		Name:         supply.Name.String(),
		CurrentStock: supply.CurrentStock,
		MinimumStock: supply.MinimumStock,
		SupplierName: supply.SupplierName,
		CreatedAt:    supply.CreatedAt,
	})
}
