package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ghuser/cims/pkg/config"
	"github.com/ghuser/cims/pkg/logger"
	rfiddomain "github.com/ghuser/cims/services/rfid/domain"
	"github.com/ghuser/cims/services/rfid/domain/models"
	domainsvcs "github.com/ghuser/cims/services/rfid/domain/services"

	appsvcs "github.com/ghuser/cims/services/rfid/application/services"
)

type stubCatalog struct {
	items []rfiddomain.CatalogItem
	err   error
}

func (s *stubCatalog) ListSupplies(_ context.Context) ([]rfiddomain.CatalogItem, error) {
	return s.items, s.err
}

type stubStore struct{}

func (stubStore) Load() (map[string]models.Tag, error) { return map[string]models.Tag{}, nil }
func (stubStore) Save(map[string]models.Tag) error     { return nil }

func testServices(catalog *stubCatalog, tags map[string]models.Tag) *appsvcs.Services {
	rec := appsvcs.NewReconciler(
		catalog,
		stubStore{},
		tags,
		domainsvcs.NewGenerator(),
		nil,
		logger.New(&config.Config{LogLevel: "error"}),
	)
	return &appsvcs.Services{Reconciler: rec}
}

func oneSupply() *stubCatalog {
	return &stubCatalog{items: []rfiddomain.CatalogItem{
		{ID: "ms_001", Name: "Surgical Gloves", CurrentStock: 120, SupplierName: "MedLine"},
	}}
}

func TestPostAssignment_EmptyBodyIsLivePass(t *testing.T) {
	h := NewPostAssignmentHandler(testServices(oneSupply(), nil))
	req := httptest.NewRequest(http.MethodPost, "/rfid/assignments", nil)
	rr := httptest.NewRecorder()

	h.Execute(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rr.Code, rr.Body)
	}
	var result struct {
		Status        string `json:"status"`
		AssignedCount int    `json:"assigned_count"`
		DryRun        bool   `json:"dry_run"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Status != "success" || result.AssignedCount != 1 {
		t.Errorf("result = %+v", result)
	}
	if result.DryRun {
		t.Error("empty body should run a live pass")
	}
}

func TestPostAssignment_DryRunFlag(t *testing.T) {
	h := NewPostAssignmentHandler(testServices(oneSupply(), nil))
	req := httptest.NewRequest(http.MethodPost, "/rfid/assignments", strings.NewReader(`{"dry_run":true}`))
	rr := httptest.NewRecorder()

	h.Execute(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var result struct {
		DryRun bool `json:"dry_run"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if !result.DryRun {
		t.Error("dry_run flag not honored")
	}
}

func TestPostAssignment_InvalidJSON(t *testing.T) {
	h := NewPostAssignmentHandler(testServices(oneSupply(), nil))
	req := httptest.NewRequest(http.MethodPost, "/rfid/assignments", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.Execute(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestPostAssignment_CatalogDownIsBadGateway(t *testing.T) {
	h := NewPostAssignmentHandler(testServices(&stubCatalog{err: context.DeadlineExceeded}, nil))
	req := httptest.NewRequest(http.MethodPost, "/rfid/assignments", nil)
	rr := httptest.NewRecorder()

	h.Execute(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
	var result struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Status != "error" {
		t.Errorf("structured status = %q, want error", result.Status)
	}
}

func TestGetStatistics(t *testing.T) {
	gen := domainsvcs.NewGenerator()
	tag := gen.Generate("ms_001", "Surgical Gloves")
	h := NewGetStatisticsHandler(testServices(oneSupply(), map[string]models.Tag{tag.TagID: tag}))
	req := httptest.NewRequest(http.MethodGet, "/rfid/statistics", nil)
	rr := httptest.NewRecorder()

	h.Execute(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var stats struct {
		TotalSupplies int     `json:"total_supplies"`
		Coverage      float64 `json:"rfid_coverage_percentage"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalSupplies != 1 || stats.Coverage != 100 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestGetValidation(t *testing.T) {
	gen := domainsvcs.NewGenerator()
	bad := gen.Generate("ms_001", "Surgical Gloves")
	bad.Checksum = "deadbeef"
	h := NewGetValidationHandler(testServices(oneSupply(), map[string]models.Tag{bad.TagID: bad}))
	req := httptest.NewRequest(http.MethodGet, "/rfid/validation", nil)
	rr := httptest.NewRecorder()

	h.Execute(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var result struct {
		InvalidTags int `json:"invalid_tags"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.InvalidTags != 1 {
		t.Errorf("invalid_tags = %d, want 1", result.InvalidTags)
	}
}

func TestPostReport_WritesFile(t *testing.T) {
	dir := t.TempDir()
	h := NewPostReportHandler(testServices(oneSupply(), nil), dir)
	req := httptest.NewRequest(http.MethodPost, "/rfid/reports", strings.NewReader(`{"filename":"out.json"}`))
	rr := httptest.NewRecorder()

	h.Execute(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rr.Code, rr.Body)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.json")); err != nil {
		t.Errorf("report file not written: %v", err)
	}
}

func TestPostReport_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	h := NewPostReportHandler(testServices(oneSupply(), nil), dir)
	req := httptest.NewRequest(http.MethodPost, "/rfid/reports", strings.NewReader(`{"filename":"../escape.json"}`))
	rr := httptest.NewRecorder()

	h.Execute(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rr.Code)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.json")); err == nil {
		t.Error("traversal filename escaped the report directory")
	}
}
