package handlers

import (
	"net/http"

	"github.com/ghuser/cims/pkg/errhttp"
	"github.com/ghuser/cims/pkg/httpx"
	pkgvalidator "github.com/ghuser/cims/pkg/validator"
	appsvcs "github.com/ghuser/cims/services/rfid/application/services"
)

// ExportReportRequest is the request body for POST /rfid/reports.
// Filename must be a bare name; it is resolved under the configured report
// directory.
type ExportReportRequest struct {
	Filename string `json:"filename" validate:"required,min=1,max=255" example:"rfid_report.json"`
} // @name ExportReportRequest

// ExportReportResponse is returned after a report is written.
type ExportReportResponse struct {
	Path string `json:"path" example:"/var/lib/cims/reports/rfid_report.json"`
} // @name ExportReportResponse

// PostReportHandler handles POST /rfid/reports requests.
type PostReportHandler struct {
	svc       *appsvcs.Services
	reportDir string
}

// NewPostReportHandler returns a PostReportHandler writing under reportDir.
func NewPostReportHandler(svc *appsvcs.Services, reportDir string) *PostReportHandler {
	return &PostReportHandler{svc: svc, reportDir: reportDir}
}

// Execute writes the full RFID report document, overwriting any existing
// file with the same name.
//
//	@Summary		Export RFID report
//	@Description	Writes statistics, validation, the tag listing, and untagged supplies to a JSON file
//	@Tags			rfid
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ExportReportRequest	true	"Report options"
//	@Success		201		{object}	ExportReportResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/rfid/reports [post]
func (h *PostReportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ExportReportRequest](w, r)
	if !ok {
		return
	}

	path, err := appsvcs.ReportPath(h.reportDir, req.Filename)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	written, err := h.svc.Reconciler.ExportReport(r.Context(), path)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ExportReportResponse{Path: written})
}
