// Package health contiene DTOs de health checks.
package health

import "time"

// Status describe el estado de un componente individual.
type Status struct {
	Status  string `json:"status"` // ok | error | disabled
	Message string `json:"message,omitempty"`
}

// Response es el reporte completo de salud del servicio.
type Response struct {
	Status     string            `json:"status"` // ready | degraded | unavailable
	Version    string            `json:"version,omitempty"`
	Commit     string            `json:"commit,omitempty"`
	Components map[string]Status `json:"components"`
	Timestamp  time.Time         `json:"timestamp"`
}
