// Package users implementa la gestión de usuarios del panel: el alta
// orquesta cuenta en el identity provider + perfil local como una saga
// con compensación.
package users

import (
	"context"

	dto "github.com/storesight/storesight/internal/http/dto/users"
	"github.com/storesight/storesight/internal/identity"
)

// Service define las operaciones de gestión de usuarios.
type Service interface {
	// Create da de alta cuenta (provider) + perfil (storage) + features.
	// Si el perfil falla después de crear la cuenta, la cuenta se elimina
	// (compensación). Las features fallidas se reportan pero no revierten.
	Create(ctx context.Context, in dto.CreateRequest) (*dto.CreateResponse, error)

	Update(ctx context.Context, in dto.UpdateRequest) (*dto.Response, error)

	// Delete elimina perfil y cuenta del provider.
	Delete(ctx context.Context, id string) error

	// ListByOrg lista los perfiles de una organización.
	ListByOrg(ctx context.Context, orgID string) (*dto.ListResponse, error)
}

// AccountAdmin es el subconjunto admin del identity client que usa la saga.
type AccountAdmin interface {
	CreateAccount(ctx context.Context, email, password string) (*identity.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}
