// Package cameras contiene los controllers del CRUD de cámaras.
package cameras

import (
	"errors"
	"net/http"

	dto "github.com/storesight/storesight/internal/http/dto/cameras"
	httperrors "github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/cameras"
	"github.com/storesight/storesight/internal/observability/logger"
)

// Controller maneja los endpoints de cámaras.
type Controller struct {
	service svc.Service
}

// New crea el controller de cámaras.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Create maneja POST /camera/create
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Cameras.Create"))

	var req dto.CreateRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Create(ctx, req)
	if err != nil {
		log.Debug("camera create failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, result)
}

// Update maneja PUT /camera/update
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Cameras.Update"))

	var req dto.UpdateRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Update(ctx, req)
	if err != nil {
		log.Debug("camera update failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

// Delete maneja DELETE /camera/delete?id=... (o body {"id":...})
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Cameras.Delete"))

	id := r.URL.Query().Get("id")
	if id == "" {
		var req dto.DeleteRequest
		if !helpers.ReadJSON(w, r, &req) {
			return
		}
		id = req.ID
	}

	if err := c.service.Delete(ctx, id); err != nil {
		log.Debug("camera delete failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Camera deleted"})
}

// Fetch maneja GET /camera/fetch?organization_id=...
func (c *Controller) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := c.service.ListByOrg(ctx, r.URL.Query().Get("organization_id"))
	if err != nil {
		logger.From(ctx).Debug("camera list failed",
			logger.Layer("controller"), logger.Op("Cameras.Fetch"), logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrMissingFields):
		httperrors.WriteError(w, httperrors.ErrMissingFields)

	case errors.Is(err, svc.ErrOrgNotFound):
		httperrors.WriteError(w, httperrors.ErrNotFound.WithMessage("la organización no existe"))

	case errors.Is(err, svc.ErrNotFound):
		httperrors.WriteError(w, httperrors.ErrNotFound.WithMessage("la cámara no existe"))

	default:
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
	}
}
