// Package health contiene el service para health checks.
package health

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	dto "github.com/storesight/storesight/internal/http/dto/health"
	"github.com/storesight/storesight/internal/observability/logger"
)

// Service define las operaciones de health check.
type Service interface {
	// Check arma el reporte completo (para /readyz).
	Check(ctx context.Context) dto.Response
}

// Deps contiene las dependencias inyectables para el health service.
type Deps struct {
	// DBCheck pinguea la base hosteada. Crítico: sin DB no hay servicio.
	DBCheck func(ctx context.Context) error
	// IdentityBaseURL permite chequear alcance del identity provider.
	IdentityBaseURL string
	// CacheCheck es nil con cache en memoria.
	CacheCheck func(ctx context.Context) error
}

type service struct {
	deps Deps
	http *http.Client
}

// New crea un nuevo service de health check.
func New(deps Deps) Service {
	return &service{
		deps: deps,
		http: &http.Client{Timeout: 3 * time.Second},
	}
}

const componentHealth = "health"

func (s *service) Check(ctx context.Context) dto.Response {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentHealth),
		logger.Op("Check"),
	)

	response := dto.Response{
		Components: make(map[string]dto.Status),
		Timestamp:  time.Now().UTC(),
	}
	if v := os.Getenv("SERVICE_VERSION"); v != "" {
		response.Version = v
	}
	if git := os.Getenv("SERVICE_COMMIT"); git != "" {
		response.Commit = git
	}

	hasErrors := false
	hasCriticalErrors := false

	// 1) Base hosteada (crítico)
	if s.deps.DBCheck != nil {
		if err := s.deps.DBCheck(ctx); err != nil {
			response.Components["db"] = dto.Status{
				Status:  "error",
				Message: fmt.Sprintf("unavailable: %v", err),
			}
			hasCriticalErrors = true
			log.Error("db unavailable", logger.Err(err))
		} else {
			response.Components["db"] = dto.Status{Status: "ok"}
		}
	} else {
		response.Components["db"] = dto.Status{Status: "error", Message: "not initialized"}
		hasCriticalErrors = true
	}

	// 2) Identity provider (crítico: sin provider no hay login ni altas)
	if s.deps.IdentityBaseURL != "" {
		if err := s.pingIdentity(ctx); err != nil {
			response.Components["identity"] = dto.Status{
				Status:  "error",
				Message: fmt.Sprintf("unreachable: %v", err),
			}
			hasCriticalErrors = true
			log.Error("identity provider unreachable", logger.Err(err))
		} else {
			response.Components["identity"] = dto.Status{Status: "ok"}
		}
	} else {
		response.Components["identity"] = dto.Status{Status: "error", Message: "not configured"}
		hasCriticalErrors = true
	}

	// 3) Cache (no crítico)
	if s.deps.CacheCheck != nil {
		if err := s.deps.CacheCheck(ctx); err != nil {
			response.Components["cache"] = dto.Status{
				Status:  "error",
				Message: fmt.Sprintf("unavailable: %v", err),
			}
			hasErrors = true
			log.Error("cache unavailable", logger.Err(err))
		} else {
			response.Components["cache"] = dto.Status{Status: "ok"}
		}
	} else {
		response.Components["cache"] = dto.Status{Status: "disabled", Message: "memory cache only"}
	}

	switch {
	case hasCriticalErrors:
		response.Status = "unavailable"
	case hasErrors:
		response.Status = "degraded"
	default:
		response.Status = "ready"
	}

	return response
}

// pingIdentity chequea el health endpoint público del provider.
func (s *service) pingIdentity(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.deps.IdentityBaseURL+"/auth/v1/health", nil)
	if err != nil {
		return err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
