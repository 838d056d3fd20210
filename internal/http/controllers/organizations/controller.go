// Package organizations contiene los controllers del CRUD de organizaciones.
package organizations

import (
	"errors"
	"net/http"

	dto "github.com/storesight/storesight/internal/http/dto/organizations"
	httperrors "github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/organizations"
	"github.com/storesight/storesight/internal/observability/logger"
)

// Controller maneja los endpoints de organizaciones.
type Controller struct {
	service svc.Service
}

// New crea el controller de organizaciones.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Create maneja POST /organizations/create
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Organizations.Create"))

	var req dto.CreateRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Create(ctx, req)
	if err != nil {
		log.Debug("organization create failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, result)
}

// Update maneja POST /organizations/update
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Organizations.Update"))

	var req dto.UpdateRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Update(ctx, req)
	if err != nil {
		log.Debug("organization update failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

// Delete maneja POST /organizations/delete
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Organizations.Delete"))

	var req dto.DeleteRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	if err := c.service.Delete(ctx, req.ID); err != nil {
		log.Debug("organization delete failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Organization deleted"})
}

// Fetch maneja GET /organizations/fetch
func (c *Controller) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := c.service.List(ctx)
	if err != nil {
		logger.From(ctx).Error("organization list failed",
			logger.Layer("controller"), logger.Op("Organizations.Fetch"), logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrMissingFields):
		httperrors.WriteError(w, httperrors.ErrMissingFields)

	case errors.Is(err, svc.ErrInvalidName):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("el nombre debe tener al menos 2 caracteres"))

	case errors.Is(err, svc.ErrInvalidDisplayID):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("display id inválido"))

	case errors.Is(err, svc.ErrNotFound):
		httperrors.WriteError(w, httperrors.ErrNotFound.WithMessage("la organización no existe"))

	case errors.Is(err, svc.ErrDuplicateName):
		httperrors.WriteError(w, httperrors.ErrConflict.WithMessage("An organization with this name already exists"))

	default:
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
	}
}
