// Package organizations contiene DTOs para el CRUD de organizaciones.
package organizations

import "github.com/storesight/storesight/internal/domain/repository"

// CreateRequest crea una organización.
type CreateRequest struct {
	DisplayID    string `json:"displayid"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// UpdateRequest actualiza campos de una organización. Campos omitidos no se tocan.
type UpdateRequest struct {
	ID           string  `json:"id"`
	DisplayID    *string `json:"displayid,omitempty"`
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
}

// DeleteRequest elimina una organización por id.
type DeleteRequest struct {
	ID string `json:"id"`
}

// Response envuelve una organización.
type Response struct {
	Organization repository.Organization `json:"organization"`
}

// ListResponse envuelve el listado.
type ListResponse struct {
	Organizations []repository.Organization `json:"organizations"`
}
