// ABOUTME: This file defines the health report model for the admin API
// ABOUTME: Aggregates named probe results with worst-check-wins semantics

package models

import "time"

// HealthState is the aggregate health of the engine.
type HealthState string

const (
	HealthHealthy   HealthState = "healthy"
	HealthDegraded  HealthState = "degraded"
	HealthUnhealthy HealthState = "unhealthy"
)

// Severity orders health states for aggregation and the health gauge:
// healthy 0, degraded 1, unhealthy 2.
func (s HealthState) Severity() int {
	switch s {
	case HealthDegraded:
		return 1
	case HealthUnhealthy:
		return 2
	default:
		return 0
	}
}

// HealthCheck is one named probe result.
type HealthCheck struct {
	Name   string      `json:"name"`
	Status HealthState `json:"status"`
	Detail string      `json:"detail"`
}

// HealthReport is the aggregate of all probes. Status is the worst
// individual check.
type HealthReport struct {
	Status      HealthState   `json:"status"`
	Checks      []HealthCheck `json:"checks"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Add appends a check and raises the aggregate status if the check is worse.
func (r *HealthReport) Add(check HealthCheck) {
	r.Checks = append(r.Checks, check)
	if check.Status.Severity() > r.Status.Severity() {
		r.Status = check.Status
	}
}
