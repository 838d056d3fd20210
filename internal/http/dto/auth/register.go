package auth

import "github.com/storesight/storesight/internal/domain/repository"

// RegisterRequest representa la solicitud de alta de cuenta + perfil.
type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role,omitempty"`
}

// RegisterResponse es la respuesta de alta exitosa (201).
type RegisterResponse struct {
	Message string             `json:"message"`
	User    repository.Profile `json:"user"`
}
