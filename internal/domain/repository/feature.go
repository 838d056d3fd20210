package repository

import (
	"context"
	"time"
)

// FeatureAssignment representa una feature habilitada para un perfil.
type FeatureAssignment struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Feature   string    `json:"feature"`
	CreatedAt time.Time `json:"created_at"`
}

// FeatureRepository define operaciones sobre asignaciones de features.
type FeatureRepository interface {
	// ListByProfile retorna las features habilitadas de un perfil.
	ListByProfile(ctx context.Context, profileID string) ([]FeatureAssignment, error)

	// Assign inserta una asignación. Retorna ErrConflict si ya existe.
	Assign(ctx context.Context, profileID, feature string) (*FeatureAssignment, error)

	// Unassign elimina una asignación. Retorna ErrNotFound si no existe.
	Unassign(ctx context.Context, profileID, feature string) error
}
