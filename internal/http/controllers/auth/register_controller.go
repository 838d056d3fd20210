package auth

import (
	"errors"
	"net/http"

	dto "github.com/storesight/storesight/internal/http/dto/auth"
	httperrors "github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/auth"
	usersvc "github.com/storesight/storesight/internal/http/services/users"
	"github.com/storesight/storesight/internal/observability/logger"
)

// RegisterController maneja el alta de cuenta + perfil.
type RegisterController struct {
	service svc.RegisterService
}

// NewRegisterController crea un nuevo controller de registro.
func NewRegisterController(service svc.RegisterService) *RegisterController {
	return &RegisterController{service: service}
}

// Register maneja POST /auth/register
func (c *RegisterController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RegisterController.Register"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Register(ctx, req)
	if err != nil {
		log.Debug("register failed", logger.Err(err))
		writeRegisterError(w, err)
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, result)
}

func writeRegisterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usersvc.ErrMissingFields):
		httperrors.WriteError(w, httperrors.ErrMissingFields)

	case errors.Is(err, usersvc.ErrInvalidEmail):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("email inválido"))

	case errors.Is(err, usersvc.ErrInvalidUsername):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("username inválido"))

	case errors.Is(err, usersvc.ErrOrgNotFound):
		httperrors.WriteError(w, httperrors.ErrNotFound.WithMessage("la organización no existe"))

	case errors.Is(err, usersvc.ErrDuplicateUser):
		httperrors.WriteError(w, httperrors.ErrConflict.WithMessage("el username ya está en uso en la organización"))

	case errors.Is(err, usersvc.ErrAccountCreate):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage(err.Error()))

	default:
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
	}
}
