package metrics

import (
	"testing"
)

// TestMetricsInitialization tests that all metrics are properly initialized
func TestMetricsInitialization(t *testing.T) {
	m := getTestMetrics()

	// Test that all metrics are non-nil
	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal should not be nil")
	}
	if m.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration should not be nil")
	}
	if m.DBConnectionsOpen == nil {
		t.Error("DBConnectionsOpen should not be nil")
	}
	if m.DBConnectionsInUse == nil {
		t.Error("DBConnectionsInUse should not be nil")
	}
	if m.DBConnectionsIdle == nil {
		t.Error("DBConnectionsIdle should not be nil")
	}
	if m.DBConnectionsMax == nil {
		t.Error("DBConnectionsMax should not be nil")
	}
	if m.DBConnectionWaitTotal == nil {
		t.Error("DBConnectionWaitTotal should not be nil")
	}
	if m.DBConnectionWaitDuration == nil {
		t.Error("DBConnectionWaitDuration should not be nil")
	}
	if m.DBQueryDuration == nil {
		t.Error("DBQueryDuration should not be nil")
	}
	if m.DBQueryErrors == nil {
		t.Error("DBQueryErrors should not be nil")
	}
	if m.ExternalAPIRequestDuration == nil {
		t.Error("ExternalAPIRequestDuration should not be nil")
	}
	if m.ExternalAPIRequestsTotal == nil {
		t.Error("ExternalAPIRequestsTotal should not be nil")
	}
	if m.ExternalAPIErrors == nil {
		t.Error("ExternalAPIErrors should not be nil")
	}
	if m.HangoutsTotal == nil {
		t.Error("HangoutsTotal should not be nil")
	}
	if m.HangoutCreatedTotal == nil {
		t.Error("HangoutCreatedTotal should not be nil")
	}
	if m.VotesCastTotal == nil {
		t.Error("VotesCastTotal should not be nil")
	}
	if m.ConsensusReachedTotal == nil {
		t.Error("ConsensusReachedTotal should not be nil")
	}
	if m.RSVPResponsesTotal == nil {
		t.Error("RSVPResponsesTotal should not be nil")
	}
}
