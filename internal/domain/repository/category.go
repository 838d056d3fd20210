package repository

import (
	"context"
	"time"
)

// Category representa una categoría de productos.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryRepository define operaciones de solo lectura sobre categorías.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
}
