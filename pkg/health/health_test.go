package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckerRun(t *testing.T) {
	c := NewChecker()
	c.Register("ok", func(context.Context) error { return nil })

	report := c.Run(context.Background())
	if !report.Healthy {
		t.Errorf("expected healthy, got %+v", report)
	}
	if report.Details["ok"] != "ok" {
		t.Errorf("unexpected detail: %q", report.Details["ok"])
	}

	c.Register("broken", func(context.Context) error { return errors.New("gateway down") })
	report = c.Run(context.Background())
	if report.Healthy {
		t.Errorf("expected unhealthy, got %+v", report)
	}
	if report.Details["broken"] != "gateway down" {
		t.Errorf("unexpected detail: %q", report.Details["broken"])
	}
}

func TestLivenessHandler(t *testing.T) {
	c := NewChecker()
	c.Register("broken", func(context.Context) error { return errors.New("down") })

	rec := httptest.NewRecorder()
	c.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// Liveness ignores check results.
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestReadinessHandler(t *testing.T) {
	c := NewChecker()
	c.Register("gateway", func(context.Context) error { return nil })

	rec := httptest.NewRecorder()
	c.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	c.Register("gateway", func(context.Context) error { return errors.New("heartbeat lost") })
	rec = httptest.NewRecorder()
	c.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var report Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Healthy || report.Details["gateway"] != "heartbeat lost" {
		t.Errorf("unexpected report: %+v", report)
	}
}
