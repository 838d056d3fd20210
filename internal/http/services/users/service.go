package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/users"
	"github.com/storesight/storesight/internal/identity"
	"github.com/storesight/storesight/internal/observability/logger"
	"github.com/storesight/storesight/internal/validation"
)

// Deps contiene las dependencias del servicio de usuarios.
type Deps struct {
	Profiles      repository.ProfileRepository
	Organizations repository.OrganizationRepository
	Features      repository.FeatureRepository
	Identity      AccountAdmin
}

type service struct {
	deps Deps
}

// New crea el servicio de usuarios.
func New(deps Deps) Service {
	return &service{deps: deps}
}

// Errores del servicio de usuarios
var (
	ErrMissingFields   = fmt.Errorf("missing required fields")
	ErrInvalidEmail    = fmt.Errorf("invalid email")
	ErrInvalidUsername = fmt.Errorf("invalid username")
	ErrOrgNotFound     = fmt.Errorf("organization not found")
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrDuplicateUser   = fmt.Errorf("username already taken in organization")
	ErrAccountCreate   = fmt.Errorf("account creation failed")
)

const defaultRole = "member"

func (s *service) Create(ctx context.Context, in dto.CreateRequest) (*dto.CreateResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("users"),
		logger.Op("Create"),
	)

	// Paso 0: Normalización y validación
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.OrganizationID = strings.TrimSpace(in.OrganizationID)

	if in.OrganizationID == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	if !validation.ValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if !validation.ValidUsername(in.Username) {
		return nil, ErrInvalidUsername
	}
	if in.Role == "" {
		in.Role = defaultRole
	}

	log = log.With(logger.OrgID(in.OrganizationID), logger.Username(in.Username))

	// Paso 1: La organización tiene que existir antes de tocar el provider
	if _, err := s.deps.Organizations.GetByID(ctx, in.OrganizationID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}

	// Paso 2: Username libre dentro de la organización. Chequeo temprano:
	// evita crear cuentas en el provider que habría que compensar.
	if _, err := s.deps.Profiles.GetByOrgAndUsername(ctx, in.OrganizationID, in.Username); err == nil {
		return nil, ErrDuplicateUser
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	// Paso 3: Crear la cuenta en el identity provider
	account, err := s.deps.Identity.CreateAccount(ctx, in.Email, in.Password)
	if err != nil {
		var perr *identity.ProviderError
		if errors.As(err, &perr) {
			log.Warn("provider rejected account", logger.Status(perr.StatusCode), logger.Err(err))
			return nil, fmt.Errorf("%w: %s", ErrAccountCreate, perr.Message)
		}
		log.Error("account creation failed", logger.Err(err))
		return nil, ErrAccountCreate
	}

	log = log.With(logger.ProfileID(account.ID))

	// Paso 4: Insertar el perfil con el id de cuenta del provider.
	// Si falla, compensar eliminando la cuenta recién creada.
	profile, err := s.deps.Profiles.Create(ctx, repository.CreateProfileInput{
		ID:             account.ID,
		OrganizationID: in.OrganizationID,
		Username:       in.Username,
		Email:          in.Email,
		Role:           in.Role,
		FullName:       in.FullName,
	})
	if err != nil {
		log.Error("profile insert failed, compensating account", logger.Err(err))
		if delErr := s.deps.Identity.DeleteAccount(ctx, account.ID); delErr != nil {
			// La compensación falló: queda una cuenta huérfana en el
			// provider. Se loguea con el id para limpieza manual.
			log.Error("compensation failed, orphan account left in provider",
				logger.ID(account.ID), logger.Err(delErr))
		}
		if repository.IsConflict(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	// Paso 5: Asignar features. A esta altura cuenta y perfil ya existen:
	// una feature fallida se reporta, no revierte el alta.
	assigned := make([]string, 0, len(in.Features))
	for _, f := range in.Features {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, err := s.deps.Features.Assign(ctx, profile.ID, f); err != nil {
			log.Warn("feature assignment failed", logger.Key(f), logger.Err(err))
			continue
		}
		assigned = append(assigned, f)
	}

	log.Info("user created")

	return &dto.CreateResponse{
		Message:  "User created successfully",
		User:     *profile,
		Features: assigned,
	}, nil
}

func (s *service) Update(ctx context.Context, in dto.UpdateRequest) (*dto.Response, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("users"),
		logger.Op("Update"),
	)

	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return nil, ErrMissingFields
	}
	if in.Username != nil && !validation.ValidUsername(strings.TrimSpace(*in.Username)) {
		return nil, ErrInvalidUsername
	}

	profile, err := s.deps.Profiles.Update(ctx, in.ID, repository.UpdateProfileInput{
		Username: in.Username,
		Role:     in.Role,
		FullName: in.FullName,
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		if repository.IsConflict(err) {
			return nil, ErrDuplicateUser
		}
		log.Error("profile update failed", logger.ProfileID(in.ID), logger.Err(err))
		return nil, err
	}

	log.Info("user updated", logger.ProfileID(profile.ID))
	return &dto.Response{User: *profile}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("users"),
		logger.Op("Delete"),
		logger.ProfileID(id),
	)

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingFields
	}

	// Primero el perfil: si no existe no hay nada que borrar del provider.
	if err := s.deps.Profiles.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		log.Error("profile delete failed", logger.Err(err))
		return err
	}

	// La cuenta del provider comparte id con el perfil. Si el provider
	// falla acá la cuenta queda huérfana pero sin perfil no puede loguear.
	if err := s.deps.Identity.DeleteAccount(ctx, id); err != nil {
		log.Error("provider account delete failed, orphan account left", logger.Err(err))
	}

	log.Info("user deleted")
	return nil
}

func (s *service) ListByOrg(ctx context.Context, orgID string) (*dto.ListResponse, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return nil, ErrMissingFields
	}

	list, err := s.deps.Profiles.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []repository.Profile{}
	}
	return &dto.ListResponse{Users: list}, nil
}
