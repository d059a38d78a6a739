package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// RFIDMetrics holds the instruments recorded by assignment passes.
// Exported through both the Prometheus /metrics endpoint and OTLP when
// configured (see Setup).
type RFIDMetrics struct {
	Passes            metric.Int64Counter
	AssignedTags      metric.Int64Counter
	FailedAssignments metric.Int64Counter
}

// NewRFIDMetrics registers the reconciler's instruments on the global meter
// provider. Call after Setup.
func NewRFIDMetrics() (*RFIDMetrics, error) {
	meter := otel.Meter("cims.rfid")

	passes, err := meter.Int64Counter("rfid_assignment_passes_total",
		metric.WithDescription("Completed RFID assignment passes, including dry runs"))
	if err != nil {
		return nil, fmt.Errorf("register passes counter: %w", err)
	}
	assigned, err := meter.Int64Counter("rfid_tags_assigned_total",
		metric.WithDescription("RFID tags assigned to supplies"))
	if err != nil {
		return nil, fmt.Errorf("register assigned counter: %w", err)
	}
	failed, err := meter.Int64Counter("rfid_assignment_failures_total",
		metric.WithDescription("Supplies an assignment pass failed to tag"))
	if err != nil {
		return nil, fmt.Errorf("register failures counter: %w", err)
	}

	return &RFIDMetrics{
		Passes:            passes,
		AssignedTags:      assigned,
		FailedAssignments: failed,
	}, nil
}
