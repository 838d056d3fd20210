package repository

import (
	"context"
	"time"
)

// Organization representa un tenant del sistema.
type Organization struct {
	ID           string    `json:"id"`
	DisplayID    string    `json:"displayid"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateOrganizationInput contiene los datos para crear una organización.
type CreateOrganizationInput struct {
	DisplayID    string
	Name         string
	ContactEmail string
}

// UpdateOrganizationInput contiene los campos actualizables de una organización.
// Campos nil no se tocan.
type UpdateOrganizationInput struct {
	DisplayID    *string
	Name         *string
	ContactEmail *string
}

// OrganizationRepository define operaciones sobre organizaciones.
type OrganizationRepository interface {
	// GetByDisplayID busca una organización por su display id (slug).
	// El match es exacto y case-sensitive. Retorna ErrNotFound si no existe.
	GetByDisplayID(ctx context.Context, displayID string) (*Organization, error)

	// GetByID busca una organización por su id interno.
	// Retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*Organization, error)

	// List lista todas las organizaciones.
	List(ctx context.Context) ([]Organization, error)

	// Create inserta una organización.
	// Retorna ErrConflict si el nombre o el display id ya existen.
	Create(ctx context.Context, input CreateOrganizationInput) (*Organization, error)

	// Update actualiza campos de una organización.
	// Retorna ErrNotFound si no existe, ErrConflict si el nuevo nombre duplica.
	Update(ctx context.Context, id string, input UpdateOrganizationInput) (*Organization, error)

	// Delete elimina una organización. Los perfiles dependientes caen por
	// cascada de FK en el storage, no acá. Retorna ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
