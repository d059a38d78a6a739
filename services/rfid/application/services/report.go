package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rfiddomain "github.com/ghuser/cims/services/rfid/domain"
)

// ExportReport composes the full report document and writes it to path,
// overwriting any existing file. Returns the path written.
func (r *Reconciler) ExportReport(ctx context.Context, path string) (string, error) {
	report, err := r.BuildReport(ctx)
	if err != nil {
		return "", fmt.Errorf("build report: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	r.log.InfoContext(ctx, "rfid report exported", "path", path,
		"total_tags", report.Statistics.TotalRFIDTags)
	return path, nil
}

// ReportPath resolves a bare report filename against dir, rejecting names
// that would escape it. Hosts exposing report export to callers (the HTTP
// API) must route filenames through this.
func ReportPath(dir, filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("%w: %q", rfiddomain.ErrInvalidReportName, filename)
	}
	return filepath.Join(dir, filename), nil
}
