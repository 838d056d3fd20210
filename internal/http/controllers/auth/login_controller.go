package auth

import (
	"errors"
	"net/http"

	dto "github.com/storesight/storesight/internal/http/dto/auth"
	httperrors "github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/auth"
	"github.com/storesight/storesight/internal/observability/logger"
)

// LoginController maneja el endpoint de login.
type LoginController struct {
	service svc.LoginService
	// echo devuelve el eco de configuración para {"debug":true}.
	// Es nil salvo en dev con debug_echo habilitado.
	echo func() *dto.DebugEchoResponse
}

// NewLoginController crea un nuevo controller de login. echo puede ser nil.
func NewLoginController(service svc.LoginService, echo func() *dto.DebugEchoResponse) *LoginController {
	return &LoginController{service: service, echo: echo}
}

// Login maneja POST /auth/login
func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LoginController.Login"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	// Modo debug: solo responde si el echo está habilitado (dev).
	// En cualquier otro ambiente {"debug":true} se ignora y el request
	// sigue el camino normal de login.
	if req.Debug && c.echo != nil {
		helpers.WriteJSON(w, http.StatusOK, c.echo())
		return
	}

	result, err := c.service.LoginPassword(ctx, req)
	if err != nil {
		log.Debug("login failed", logger.Err(err))
		writeLoginError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	helpers.WriteJSON(w, http.StatusOK, result)
}

// ─── Helpers ───

func writeLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrMissingFields):
		httperrors.WriteError(w, httperrors.ErrMissingFields.WithMessage("orgDisplayid, username y password son obligatorios"))

	case errors.Is(err, svc.ErrInvalidCredentials):
		httperrors.WriteError(w, httperrors.ErrInvalidCredentials)

	case errors.Is(err, svc.ErrProviderUnavailable):
		httperrors.WriteError(w, httperrors.ErrServiceUnavailable)

	default:
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
	}
}
