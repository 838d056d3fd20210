// Package organizations implementa el CRUD de organizaciones (tenants).
package organizations

import (
	"context"
	"fmt"
	"strings"

	"github.com/storesight/storesight/internal/cache"
	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/organizations"
	"github.com/storesight/storesight/internal/observability/logger"
	"github.com/storesight/storesight/internal/validation"
)

// Service define las operaciones sobre organizaciones.
type Service interface {
	Create(ctx context.Context, in dto.CreateRequest) (*dto.Response, error)
	Update(ctx context.Context, in dto.UpdateRequest) (*dto.Response, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) (*dto.ListResponse, error)
}

// Deps contiene las dependencias del servicio.
type Deps struct {
	Organizations repository.OrganizationRepository
	Cache         cache.Cache // nil = sin cache
}

type service struct {
	deps Deps
}

// New crea el servicio de organizaciones.
func New(deps Deps) Service {
	return &service{deps: deps}
}

// Errores del servicio de organizaciones
var (
	ErrMissingFields    = fmt.Errorf("missing required fields")
	ErrInvalidName      = fmt.Errorf("organization name must have at least 2 characters")
	ErrInvalidDisplayID = fmt.Errorf("invalid display id")
	ErrNotFound         = fmt.Errorf("organization not found")
	// ErrDuplicateName se expone con el mensaje exacto que el panel muestra.
	ErrDuplicateName = fmt.Errorf("an organization with this name already exists")
)

func (s *service) Create(ctx context.Context, in dto.CreateRequest) (*dto.Response, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("organizations"),
		logger.Op("Create"),
	)

	in.Name = strings.TrimSpace(in.Name)
	in.DisplayID = strings.TrimSpace(in.DisplayID)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)

	if !validation.ValidOrgName(in.Name) {
		return nil, ErrInvalidName
	}
	if !validation.ValidDisplayID(in.DisplayID) {
		return nil, ErrInvalidDisplayID
	}
	if in.ContactEmail != "" && !validation.ValidEmail(in.ContactEmail) {
		return nil, ErrMissingFields
	}

	org, err := s.deps.Organizations.Create(ctx, repository.CreateOrganizationInput{
		DisplayID:    in.DisplayID,
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
	})
	if err != nil {
		if repository.IsConflict(err) {
			log.Debug("duplicate organization", logger.OrgDisplayID(in.DisplayID))
			return nil, ErrDuplicateName
		}
		log.Error("organization insert failed", logger.Err(err))
		return nil, err
	}

	log.Info("organization created", logger.OrgID(org.ID), logger.OrgDisplayID(org.DisplayID))
	return &dto.Response{Organization: *org}, nil
}

func (s *service) Update(ctx context.Context, in dto.UpdateRequest) (*dto.Response, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("organizations"),
		logger.Op("Update"),
	)

	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return nil, ErrMissingFields
	}
	if in.Name != nil && !validation.ValidOrgName(*in.Name) {
		return nil, ErrInvalidName
	}
	if in.DisplayID != nil && !validation.ValidDisplayID(strings.TrimSpace(*in.DisplayID)) {
		return nil, ErrInvalidDisplayID
	}

	// Se necesita la organización previa para invalidar la cache bajo el
	// display id viejo si este cambia.
	prev, err := s.deps.Organizations.GetByID(ctx, in.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	org, err := s.deps.Organizations.Update(ctx, in.ID, repository.UpdateOrganizationInput{
		DisplayID:    in.DisplayID,
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if repository.IsConflict(err) {
			return nil, ErrDuplicateName
		}
		log.Error("organization update failed", logger.OrgID(in.ID), logger.Err(err))
		return nil, err
	}

	s.invalidate(prev.DisplayID)
	if org.DisplayID != prev.DisplayID {
		s.invalidate(org.DisplayID)
	}

	log.Info("organization updated", logger.OrgID(org.ID))
	return &dto.Response{Organization: *org}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("organizations"),
		logger.Op("Delete"),
		logger.OrgID(id),
	)

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingFields
	}

	prev, err := s.deps.Organizations.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	// El borrado de perfiles, cámaras y productos dependientes cae por
	// cascada de FK en el storage.
	if err := s.deps.Organizations.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		log.Error("organization delete failed", logger.Err(err))
		return err
	}

	s.invalidate(prev.DisplayID)

	log.Info("organization deleted")
	return nil
}

func (s *service) List(ctx context.Context) (*dto.ListResponse, error) {
	list, err := s.deps.Organizations.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []repository.Organization{}
	}
	return &dto.ListResponse{Organizations: list}, nil
}

func (s *service) invalidate(displayID string) {
	if s.deps.Cache == nil || displayID == "" {
		return
	}
	s.deps.Cache.Delete(cache.OrgDisplayIDKey(displayID))
}
