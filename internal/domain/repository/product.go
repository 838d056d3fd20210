package repository

import (
	"context"
	"time"
)

// Product representa un producto del shop de una organización.
type Product struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	CategoryID     *string   `json:"category_id,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PriceCents     int64     `json:"price_cents"`
	ImageURL       string    `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateProductInput contiene los datos para crear un producto.
type CreateProductInput struct {
	OrganizationID string
	CategoryID     *string
	Name           string
	Description    string
	PriceCents     int64
	ImageURL       string
}

// UpdateProductInput contiene los campos actualizables de un producto.
type UpdateProductInput struct {
	CategoryID  *string
	Name        *string
	Description *string
	PriceCents  *int64
	ImageURL    *string
}

// ProductFilter filtra lecturas de productos.
type ProductFilter struct {
	OrganizationID string
	CategoryID     string // opcional
}

// ProductRepository define operaciones sobre productos.
type ProductRepository interface {
	// GetByID retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*Product, error)

	// List lista productos según el filtro.
	List(ctx context.Context, filter ProductFilter) ([]Product, error)

	Create(ctx context.Context, input CreateProductInput) (*Product, error)

	// Update actualiza campos. Retorna ErrNotFound si no existe.
	Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error)
}
