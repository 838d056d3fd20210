// Package cameras implementa el CRUD de cámaras de una organización.
package cameras

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/cameras"
	"github.com/storesight/storesight/internal/observability/logger"
)

// Service define las operaciones sobre cámaras.
type Service interface {
	Create(ctx context.Context, in dto.CreateRequest) (*dto.Response, error)
	Update(ctx context.Context, in dto.UpdateRequest) (*dto.Response, error)
	Delete(ctx context.Context, id string) error
	ListByOrg(ctx context.Context, orgID string) (*dto.ListResponse, error)
}

// Deps contiene las dependencias del servicio.
type Deps struct {
	Cameras       repository.CameraRepository
	Organizations repository.OrganizationRepository
}

type service struct {
	deps Deps
}

// New crea el servicio de cámaras.
func New(deps Deps) Service {
	return &service{deps: deps}
}

// Errores del servicio de cámaras
var (
	ErrMissingFields = fmt.Errorf("missing required fields")
	ErrNotFound      = fmt.Errorf("camera not found")
	ErrOrgNotFound   = fmt.Errorf("organization not found")
)

func (s *service) Create(ctx context.Context, in dto.CreateRequest) (*dto.Response, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("cameras"),
		logger.Op("Create"),
	)

	in.OrganizationID = strings.TrimSpace(in.OrganizationID)
	in.Name = strings.TrimSpace(in.Name)
	if in.OrganizationID == "" || in.Name == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.deps.Organizations.GetByID(ctx, in.OrganizationID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	cam, err := s.deps.Cameras.Create(ctx, repository.CreateCameraInput{
		OrganizationID: in.OrganizationID,
		Name:           in.Name,
		Location:       strings.TrimSpace(in.Location),
		StreamURL:      strings.TrimSpace(in.StreamURL),
		Enabled:        enabled,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) || repository.IsNotFound(err) {
			return nil, ErrOrgNotFound
		}
		log.Error("camera insert failed", logger.OrgID(in.OrganizationID), logger.Err(err))
		return nil, err
	}

	log.Info("camera created", logger.CameraID(cam.ID), logger.OrgID(cam.OrganizationID))
	return &dto.Response{Camera: *cam}, nil
}

func (s *service) Update(ctx context.Context, in dto.UpdateRequest) (*dto.Response, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("cameras"),
		logger.Op("Update"),
	)

	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return nil, ErrMissingFields
	}

	cam, err := s.deps.Cameras.Update(ctx, in.ID, repository.UpdateCameraInput{
		Name:      in.Name,
		Location:  in.Location,
		StreamURL: in.StreamURL,
		Enabled:   in.Enabled,
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		log.Error("camera update failed", logger.CameraID(in.ID), logger.Err(err))
		return nil, err
	}

	log.Info("camera updated", logger.CameraID(cam.ID))
	return &dto.Response{Camera: *cam}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingFields
	}

	if err := s.deps.Cameras.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	logger.From(ctx).Info("camera deleted",
		logger.Layer("service"), logger.Component("cameras"), logger.CameraID(id))
	return nil
}

func (s *service) ListByOrg(ctx context.Context, orgID string) (*dto.ListResponse, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return nil, ErrMissingFields
	}

	list, err := s.deps.Cameras.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []repository.Camera{}
	}
	return &dto.ListResponse{Cameras: list}, nil
}
