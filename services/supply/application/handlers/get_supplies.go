package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cims/pkg/errhttp"
	"github.com/ghuser/cims/pkg/httpx"
	appsvcs "github.com/ghuser/cims/services/supply/application/services"
	"github.com/ghuser/cims/services/supply/domain/models"
)

// TaggedSupplyResponse is a supply decorated with its RFID tag, when the
// read model knows one.
type TaggedSupplyResponse struct {
	SupplyResponse
	RFIDTag       string     `json:"rfid_tag,omitempty"        example:"RFID-ms_a1b2c3d4-20241201T143022Z-a1b2c3d4"`
	RFIDStatus    string     `json:"rfid_status,omitempty"     example:"active"`
	RFIDTaggedAt  *time.Time `json:"rfid_tagged_at,omitempty"  example:"2024-12-01T14:30:22Z"`
} // @name TaggedSupplyResponse

// ListSuppliesResponse is returned by GET /supplies.
type ListSuppliesResponse struct {
	Supplies []TaggedSupplyResponse `json:"supplies"`
	Total    int                    `json:"total" example:"12"`
} // @name ListSuppliesResponse

// GetSuppliesHandler handles GET /supplies and GET /supplies/{id}.
type GetSuppliesHandler struct {
	svc *appsvcs.Services
}

// NewGetSuppliesHandler returns a GetSuppliesHandler backed by the given services.
func NewGetSuppliesHandler(svc *appsvcs.Services) *GetSuppliesHandler {
	return &GetSuppliesHandler{svc: svc}
}

// List returns all supplies in catalog order.
//
//	@Summary		List supplies
//	@Description	Lists the full supply catalog, each item decorated with its RFID tag when known
//	@Tags			supplies
//	@Produce		json
//	@Success		200	{object}	ListSuppliesResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/supplies [get]
func (h *GetSuppliesHandler) List(w http.ResponseWriter, r *http.Request) {
	supplies, err := h.svc.Supply.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]TaggedSupplyResponse, len(supplies))
	for i, s := range supplies {
		out[i] = TaggedSupplyResponse{SupplyResponse: toSupplyResponse(s.Supply)}
		if s.Tag != nil {
			taggedAt := s.Tag.GeneratedAt
			out[i].RFIDTag = s.Tag.TagID
			out[i].RFIDStatus = s.Tag.Status
			out[i].RFIDTaggedAt = &taggedAt
		}
	}

	httpx.JSON(w, http.StatusOK, ListSuppliesResponse{Supplies: out, Total: len(out)})
}

// Get returns one supply by ID.
//
//	@Summary		Get supply
//	@Tags			supplies
//	@Produce		json
//	@Param			id	path		string	true	"Supply ID"
//	@Success		200	{object}	SupplyResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/supplies/{id} [get]
func (h *GetSuppliesHandler) Get(w http.ResponseWriter, r *http.Request) {
	supply, err := h.svc.Supply.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSupplyResponse(supply))
}

// Delete removes one supply by ID.
//
//	@Summary		Delete supply
//	@Tags			supplies
//	@Param			id	path	string	true	"Supply ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/supplies/{id} [delete]
func (h *GetSuppliesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Supply.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toSupplyResponse(s *models.Supply) SupplyResponse {
	return SupplyResponse{
		ID:           s.ID,
		Name:         s.Name.String(),
		CurrentStock: s.CurrentStock,
		MinimumStock: s.MinimumStock,
		SupplierName: s.SupplierName,
		CreatedAt:    s.CreatedAt,
	}
}
