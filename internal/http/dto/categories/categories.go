// Package categories contiene DTOs para categorías de producto.
package categories

import "github.com/storesight/storesight/internal/domain/repository"

// ListResponse envuelve el listado de categorías.
type ListResponse struct {
	Categories []repository.Category `json:"categories"`
}
