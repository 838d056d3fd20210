package repository

import (
	"context"
	"time"
)

// Profile representa el usuario a nivel aplicación. Su ID es el mismo
// account id que emite el identity provider (relación uno a uno).
type Profile struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	FullName       string    `json:"full_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateProfileInput contiene los datos para insertar un perfil.
// ID debe ser el account id ya creado en el identity provider.
type CreateProfileInput struct {
	ID             string
	OrganizationID string
	Username       string
	Email          string
	Role           string
	FullName       string
}

// UpdateProfileInput contiene los campos actualizables de un perfil.
type UpdateProfileInput struct {
	Username *string
	Role     *string
	FullName *string
}

// ProfileRepository define operaciones sobre perfiles.
type ProfileRepository interface {
	// GetByOrgAndUsername busca un perfil por (organization id, username).
	// El par se asume único (constraint en el storage). Match exacto,
	// case-sensitive. Retorna ErrNotFound si no existe.
	GetByOrgAndUsername(ctx context.Context, orgID, username string) (*Profile, error)

	// GetByID busca un perfil por su id (== account id del provider).
	// Retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*Profile, error)

	// ListByOrg lista los perfiles de una organización.
	ListByOrg(ctx context.Context, orgID string) ([]Profile, error)

	// Create inserta un perfil. Retorna ErrConflict si (org, username) ya existe.
	Create(ctx context.Context, input CreateProfileInput) (*Profile, error)

	// Update actualiza campos de un perfil. Retorna ErrNotFound si no existe.
	Update(ctx context.Context, id string, input UpdateProfileInput) (*Profile, error)

	// Delete elimina un perfil. Retorna ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
