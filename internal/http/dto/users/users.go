// Package users contiene DTOs para la gestión de usuarios del panel.
package users

import "github.com/storesight/storesight/internal/domain/repository"

// CreateRequest registra un usuario dentro de una organización.
type CreateRequest struct {
	OrganizationID string   `json:"organization_id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	FullName       string   `json:"full_name,omitempty"`
	Role           string   `json:"role,omitempty"`
	Features       []string `json:"features,omitempty"`
}

// UpdateRequest actualiza el perfil. Campos omitidos no se tocan.
type UpdateRequest struct {
	ID       string  `json:"id"`
	Username *string `json:"username,omitempty"`
	Role     *string `json:"role,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

// DeleteRequest elimina un usuario por id.
type DeleteRequest struct {
	ID string `json:"id"`
}

// CreateResponse incluye el mensaje de cortesía del alta.
type CreateResponse struct {
	Message  string             `json:"message"`
	User     repository.Profile `json:"user"`
	Features []string           `json:"features,omitempty"`
}

// Response envuelve un perfil.
type Response struct {
	User repository.Profile `json:"user"`
}

// ListResponse envuelve el listado.
type ListResponse struct {
	Users []repository.Profile `json:"users"`
}
