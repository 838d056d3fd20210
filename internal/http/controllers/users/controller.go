// Package users contiene los controllers de gestión de usuarios.
package users

import (
	"errors"
	"net/http"

	dto "github.com/storesight/storesight/internal/http/dto/users"
	httperrors "github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/users"
	"github.com/storesight/storesight/internal/observability/logger"
)

// Controller maneja los endpoints de usuarios.
type Controller struct {
	service svc.Service
}

// New crea el controller de usuarios.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Create maneja POST /users/create
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Users.Create"))

	var req dto.CreateRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Create(ctx, req)
	if err != nil {
		log.Debug("user create failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, result)
}

// Update maneja POST /users/update
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Users.Update"))

	var req dto.UpdateRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Update(ctx, req)
	if err != nil {
		log.Debug("user update failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

// Delete maneja POST /users/delete
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Users.Delete"))

	var req dto.DeleteRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	if err := c.service.Delete(ctx, req.ID); err != nil {
		log.Debug("user delete failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

// Fetch maneja GET /users/fetch?organization_id=...
func (c *Controller) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := c.service.ListByOrg(ctx, r.URL.Query().Get("organization_id"))
	if err != nil {
		logger.From(ctx).Debug("user list failed",
			logger.Layer("controller"), logger.Op("Users.Fetch"), logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrMissingFields):
		httperrors.WriteError(w, httperrors.ErrMissingFields)

	case errors.Is(err, svc.ErrInvalidEmail):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("email inválido"))

	case errors.Is(err, svc.ErrInvalidUsername):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("username inválido"))

	case errors.Is(err, svc.ErrOrgNotFound):
		httperrors.WriteError(w, httperrors.ErrNotFound.WithMessage("la organización no existe"))

	case errors.Is(err, svc.ErrUserNotFound):
		httperrors.WriteError(w, httperrors.ErrNotFound.WithMessage("el usuario no existe"))

	case errors.Is(err, svc.ErrDuplicateUser):
		httperrors.WriteError(w, httperrors.ErrConflict.WithMessage("el username ya está en uso en la organización"))

	case errors.Is(err, svc.ErrAccountCreate):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage(err.Error()))

	default:
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
	}
}
