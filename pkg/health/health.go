package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
)

// Check probes one dependency. A nil error means healthy.
type Check func(ctx context.Context) error

// Checker aggregates named dependency checks for readiness reporting.
type Checker struct {
	mu     sync.RWMutex
	checks map[string]Check
}

func NewChecker() *Checker {
	return &Checker{checks: make(map[string]Check)}
}

func (c *Checker) Register(name string, check Check) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Report is the outcome of running every registered check.
type Report struct {
	Healthy bool              `json:"healthy"`
	Details map[string]string `json:"details,omitempty"`
}

func (c *Checker) Run(ctx context.Context) Report {
	c.mu.RLock()
	defer c.mu.RUnlock()

	report := Report{Healthy: true, Details: make(map[string]string, len(c.checks))}
	for name, check := range c.checks {
		if err := check(ctx); err != nil {
			report.Healthy = false
			report.Details[name] = err.Error()
		} else {
			report.Details[name] = "ok"
		}
	}
	return report
}

// LivenessHandler always reports alive; it answers "is the process up".
func (c *Checker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
	}
}

// ReadinessHandler runs the registered checks and reports 503 when any fail.
func (c *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := c.Run(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if report.Healthy {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(report)
	}
}
