package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ghuser/cims/pkg/errhttp"
	"github.com/ghuser/cims/pkg/httpx"
	appsvcs "github.com/ghuser/cims/services/rfid/application/services"
)

// AssignRequest is the request body for POST /rfid/assignments.
// An empty body is a live (non-dry-run) pass.
type AssignRequest struct {
	DryRun bool `json:"dry_run" example:"false"`
} // @name AssignRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"supply catalog unavailable"`
} // @name ErrorResponse

// PostAssignmentHandler handles POST /rfid/assignments requests.
type PostAssignmentHandler struct {
	svc *appsvcs.Services
}

// NewPostAssignmentHandler returns a PostAssignmentHandler backed by the given services.
func NewPostAssignmentHandler(svc *appsvcs.Services) *PostAssignmentHandler {
	return &PostAssignmentHandler{svc: svc}
}

// Execute runs one assignment pass: one new tag per untagged supply.
// Item processing order follows the catalog; it is not an API contract.
//
//	@Summary		Run RFID assignment pass
//	@Description	Creates one RFID tag per untagged supply and persists the tag store unless dry_run
//	@Tags			rfid
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AssignRequest	false	"Assignment options"
//	@Success		200		{object}	services.AssignmentResult
//	@Failure		502		{object}	services.AssignmentResult
//	@Failure		500		{object}	ErrorResponse
//	@Router			/rfid/assignments [post]
func (h *PostAssignmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	result, err := h.svc.Reconciler.Assign(r.Context(), req.DryRun)
	if err != nil {
		// Tags may have been generated in memory, but the durable contract
		// was broken; the structured result says so, the status code says so.
		errhttp.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if result.Status == "error" {
		// Catalog unreachable: expected collaborator failure, structured result.
		status = http.StatusBadGateway
	}
	httpx.JSON(w, status, result)
}
