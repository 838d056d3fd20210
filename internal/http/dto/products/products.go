// Package products contiene DTOs para el CRUD de productos y la subida de imágenes.
package products

import "github.com/storesight/storesight/internal/domain/repository"

// CreateRequest registra un producto en una organización.
type CreateRequest struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	CategoryID     string `json:"category_id,omitempty"`
	PriceCents     int64  `json:"price_cents,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

// UpdateRequest actualiza campos de un producto. Campos omitidos no se tocan.
type UpdateRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// FetchRequest lista productos de una organización, opcionalmente por categoría.
type FetchRequest struct {
	OrganizationID string `json:"organization_id"`
	CategoryID     string `json:"category_id,omitempty"`
}

// Response envuelve un producto.
type Response struct {
	Product repository.Product `json:"product"`
}

// ListResponse envuelve el listado.
type ListResponse struct {
	Products []repository.Product `json:"products"`
}

// UploadImageResponse devuelve la URL pública de la imagen subida.
type UploadImageResponse struct {
	URL string `json:"url"`
}
