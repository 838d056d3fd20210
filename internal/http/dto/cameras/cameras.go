// Package cameras contiene DTOs para el CRUD de cámaras.
package cameras

import "github.com/storesight/storesight/internal/domain/repository"

// CreateRequest registra una cámara en una organización.
type CreateRequest struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Location       string `json:"location,omitempty"`
	StreamURL      string `json:"stream_url,omitempty"`
	Enabled        *bool  `json:"enabled,omitempty"`
}

// UpdateRequest actualiza campos de una cámara. Campos omitidos no se tocan.
type UpdateRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	Location  *string `json:"location,omitempty"`
	StreamURL *string `json:"stream_url,omitempty"`
	Enabled   *bool   `json:"enabled,omitempty"`
}

// DeleteRequest elimina una cámara por id.
type DeleteRequest struct {
	ID string `json:"id"`
}

// Response envuelve una cámara.
type Response struct {
	Camera repository.Camera `json:"camera"`
}

// ListResponse envuelve el listado.
type ListResponse struct {
	Cameras []repository.Camera `json:"cameras"`
}
