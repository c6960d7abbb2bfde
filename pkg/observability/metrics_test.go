package observability

import (
	"net/http/httptest"
	"testing"
)

func TestMetricNamespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "finance-engine", expected: "finance_engine"},
		{input: "already_valid", expected: "already_valid"},
		{input: "svc.v2", expected: "svc_v2"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		if got := metricNamespace(tt.input); got != tt.expected {
			t.Errorf("metricNamespace(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestInitMetricsServesScrapes(t *testing.T) {
	provider, handler, err := InitMetrics(MetricsConfig{ServiceName: "finance-engine"})
	if err != nil {
		t.Fatalf("InitMetrics() error = %v", err)
	}
	if provider == nil {
		t.Fatal("InitMetrics() returned nil provider")
	}
	if handler == nil {
		t.Fatal("InitMetrics() returned nil handler")
	}

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Errorf("scrape status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("scrape returned an empty body")
	}
}
