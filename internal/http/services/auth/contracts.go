// Package auth contiene contracts para servicios de autenticación.
package auth

import (
	"context"

	dto "github.com/storesight/storesight/internal/http/dto/auth"
)

// LoginService define las operaciones de login.
type LoginService interface {
	// LoginPassword intercambia (org display id, username, password) por el
	// token del identity provider. Cualquier miss de la cadena devuelve
	// ErrInvalidCredentials, sin distinguir en cuál paso ocurrió.
	LoginPassword(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// RegisterService define el alta de cuenta + perfil.
type RegisterService interface {
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error)
}
