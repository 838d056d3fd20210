// Package categories implementa la lectura de categorías de producto.
// Las categorías son un catálogo global administrado fuera de este
// servicio; acá solo se listan.
package categories

import (
	"context"

	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/categories"
)

// Service define las operaciones sobre categorías.
type Service interface {
	List(ctx context.Context) (*dto.ListResponse, error)
}

type service struct {
	categories repository.CategoryRepository
}

// New crea el servicio de categorías.
func New(categories repository.CategoryRepository) Service {
	return &service{categories: categories}
}

func (s *service) List(ctx context.Context) (*dto.ListResponse, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []repository.Category{}
	}
	return &dto.ListResponse{Categories: list}, nil
}
