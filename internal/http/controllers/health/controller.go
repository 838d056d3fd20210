// Package health contiene los controllers de health check.
package health

import (
	"net/http"

	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/health"
)

// Controller maneja los endpoints de salud.
type Controller struct {
	service svc.Service
}

// New crea el controller de health.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Liveness maneja GET /healthz: el proceso está vivo, nada más.
func (c *Controller) Liveness(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness maneja GET /readyz: reporte completo de dependencias.
func (c *Controller) Readiness(w http.ResponseWriter, r *http.Request) {
	report := c.service.Check(r.Context())

	status := http.StatusOK
	if report.Status == "unavailable" {
		status = http.StatusServiceUnavailable
	}
	helpers.WriteJSON(w, status, report)
}
