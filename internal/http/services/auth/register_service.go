package auth

import (
	"context"

	dto "github.com/storesight/storesight/internal/http/dto/auth"
	usersdto "github.com/storesight/storesight/internal/http/dto/users"
	usersvc "github.com/storesight/storesight/internal/http/services/users"
)

// registerService delega el alta en el servicio de usuarios: el flujo de
// registro es la misma saga cuenta+perfil, sin features.
type registerService struct {
	users usersvc.Service
}

// NewRegisterService crea el servicio de registro.
func NewRegisterService(users usersvc.Service) RegisterService {
	return &registerService{users: users}
}

func (s *registerService) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	out, err := s.users.Create(ctx, usersdto.CreateRequest{
		OrganizationID: in.OrganizationID,
		Username:       in.Username,
		Email:          in.Email,
		Password:       in.Password,
		FullName:       in.FullName,
		Role:           in.Role,
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Message: out.Message,
		User:    out.User,
	}, nil
}
