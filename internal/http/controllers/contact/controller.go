// Package contact contiene el controller del formulario de contacto.
package contact

import (
	"errors"
	"net/http"

	dto "github.com/storesight/storesight/internal/http/dto/contact"
	httperrors "github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/contact"
	"github.com/storesight/storesight/internal/observability/logger"
)

// Controller maneja el endpoint de contacto.
type Controller struct {
	service svc.Service
}

// New crea el controller de contacto.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Send maneja POST /contact
func (c *Controller) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Contact.Send"))

	var req dto.Request
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Send(ctx, req)
	if err != nil {
		log.Debug("contact send failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrMissingFields):
		httperrors.WriteError(w, httperrors.ErrMissingFields.WithMessage("name, email y message son obligatorios"))

	case errors.Is(err, svc.ErrInvalidEmail):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("email inválido"))

	case errors.Is(err, svc.ErrNotConfigured):
		httperrors.WriteError(w, httperrors.ErrServiceUnavailable.WithMessage("el formulario de contacto no está disponible"))

	case errors.Is(err, svc.ErrSendFailed):
		httperrors.WriteError(w, httperrors.ErrServiceUnavailable.WithMessage("no se pudo enviar el mensaje"))

	default:
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
	}
}
