// Package session contiene DTOs del shell de sesión del panel.
package session

import "github.com/storesight/storesight/internal/domain/repository"

// Response describe la sesión activa: perfil y features habilitadas.
type Response struct {
	Profile  repository.Profile `json:"profile"`
	Features []string           `json:"features"`
}
