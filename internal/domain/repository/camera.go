package repository

import (
	"context"
	"time"
)

// Camera representa la configuración de una cámara de una organización.
type Camera struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	StreamURL      string    `json:"stream_url"`
	Enabled        bool      `json:"enabled"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateCameraInput contiene los datos para crear una cámara.
type CreateCameraInput struct {
	OrganizationID string
	Name           string
	Location       string
	StreamURL      string
	Enabled        bool
}

// UpdateCameraInput contiene los campos actualizables de una cámara.
type UpdateCameraInput struct {
	Name      *string
	Location  *string
	StreamURL *string
	Enabled   *bool
}

// CameraRepository define operaciones sobre cámaras.
type CameraRepository interface {
	// GetByID retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*Camera, error)

	// ListByOrg lista las cámaras de una organización.
	ListByOrg(ctx context.Context, orgID string) ([]Camera, error)

	Create(ctx context.Context, input CreateCameraInput) (*Camera, error)

	// Update actualiza campos. Retorna ErrNotFound si no existe.
	Update(ctx context.Context, id string, input UpdateCameraInput) (*Camera, error)

	// Delete retorna ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
