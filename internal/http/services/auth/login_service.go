package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/storesight/storesight/internal/cache"
	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/auth"
	"github.com/storesight/storesight/internal/identity"
	"github.com/storesight/storesight/internal/metrics"
	"github.com/storesight/storesight/internal/observability/logger"
)

// LoginDeps contiene las dependencias para el login service.
type LoginDeps struct {
	Organizations repository.OrganizationRepository
	Profiles      repository.ProfileRepository
	Identity      IdentityExchanger
	Cache         cache.Cache // nil = sin cache
	OrgCacheTTL   time.Duration
}

// IdentityExchanger es el subconjunto del identity client que usa el login.
type IdentityExchanger interface {
	PasswordGrant(ctx context.Context, email, password string) (json.RawMessage, error)
}

type loginService struct {
	deps LoginDeps
}

// NewLoginService crea un nuevo servicio de login.
func NewLoginService(deps LoginDeps) LoginService {
	if deps.OrgCacheTTL <= 0 {
		deps.OrgCacheTTL = 2 * time.Minute
	}
	return &loginService{deps: deps}
}

// Errores de login
var (
	ErrMissingFields = fmt.Errorf("missing required fields")
	// ErrInvalidCredentials cubre org inexistente, usuario inexistente y
	// password incorrecto por igual: el caller no puede enumerar tenants
	// ni usuarios a partir del mensaje.
	ErrInvalidCredentials  = fmt.Errorf("invalid credentials")
	ErrProviderUnavailable = fmt.Errorf("identity provider unavailable")
)

func (s *loginService) LoginPassword(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.login"),
		logger.Op("LoginPassword"),
	)

	// Paso 0: Normalización. Solo trim: el match de displayid y username
	// es exacto y case-sensitive.
	in.OrgDisplayID = strings.TrimSpace(in.OrgDisplayID)
	in.Username = strings.TrimSpace(in.Username)

	if in.OrgDisplayID == "" || in.Username == "" || in.Password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		return nil, ErrMissingFields
	}

	log = log.With(logger.OrgDisplayID(in.OrgDisplayID), logger.Username(in.Username))

	// Paso 1: Resolver organización por display id. Not-found y error de
	// storage responden lo mismo: el caller no distingue "no existe" de
	// "no pude mirar". El detalle queda solo en log y métricas.
	org, err := s.orgByDisplayID(ctx, in.OrgDisplayID)
	if err != nil {
		if repository.IsNotFound(err) {
			log.Debug("organization not found")
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		} else {
			log.Error("organization lookup failed", logger.Err(err))
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return nil, ErrInvalidCredentials
	}

	// Paso 2: Resolver perfil por (org, username)
	profile, err := s.deps.Profiles.GetByOrgAndUsername(ctx, org.ID, in.Username)
	if err != nil {
		if repository.IsNotFound(err) {
			log.Debug("profile not found")
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			return nil, ErrInvalidCredentials
		}
		log.Error("profile lookup failed", logger.Err(err))
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	log = log.With(logger.ProfileID(profile.ID))

	// Paso 3: Intercambiar credenciales contra el identity provider.
	// El password nunca se verifica acá: el provider es el dueño.
	token, err := s.deps.Identity.PasswordGrant(ctx, profile.Email, in.Password)
	if err != nil {
		var perr *identity.ProviderError
		if errors.As(err, &perr) && perr.StatusCode >= 400 && perr.StatusCode < 500 {
			log.Debug("password grant rejected", logger.Status(perr.StatusCode))
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			return nil, ErrInvalidCredentials
		}
		log.Error("password grant failed", logger.Err(err))
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, ErrProviderUnavailable
	}

	// Paso 4: Passthrough del payload del provider, verbatim
	log.Info("login successful")
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		Profile: *profile,
	}, nil
}

// orgByDisplayID resuelve la organización, con cache de lectura caliente.
func (s *loginService) orgByDisplayID(ctx context.Context, displayID string) (*repository.Organization, error) {
	key := cache.OrgDisplayIDKey(displayID)

	if s.deps.Cache != nil {
		if b, ok := s.deps.Cache.Get(key); ok {
			var org repository.Organization
			if err := json.Unmarshal(b, &org); err == nil {
				return &org, nil
			}
			// entrada corrupta: descartarla y seguir a DB
			s.deps.Cache.Delete(key)
		}
	}

	org, err := s.deps.Organizations.GetByDisplayID(ctx, displayID)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		if b, err := json.Marshal(org); err == nil {
			s.deps.Cache.Set(key, b, s.deps.OrgCacheTTL)
		}
	}
	return org, nil
}
