// Package auth contiene los controllers de autenticación.
package auth

import (
	dto "github.com/storesight/storesight/internal/http/dto/auth"
	svc "github.com/storesight/storesight/internal/http/services/auth"
)

// Controllers agrupa todos los controllers del dominio auth.
type Controllers struct {
	Login    *LoginController
	Register *RegisterController
}

// NewControllers crea el agregador de controllers auth. echo es el
// provider del eco de configuración de dev (nil en prod).
func NewControllers(login svc.LoginService, register svc.RegisterService, echo func() *dto.DebugEchoResponse) *Controllers {
	return &Controllers{
		Login:    NewLoginController(login, echo),
		Register: NewRegisterController(register),
	}
}
