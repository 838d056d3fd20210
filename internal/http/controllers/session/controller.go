// Package session contiene el controller del shell de sesión del panel.
package session

import (
	"net/http"

	dto "github.com/storesight/storesight/internal/http/dto/session"
	"github.com/storesight/storesight/internal/http/helpers"
	"github.com/storesight/storesight/internal/http/middlewares"
)

// Controller expone la sesión ya resuelta por RequireSession.
type Controller struct{}

// New crea el controller de sesión.
func New() *Controller {
	return &Controller{}
}

// Get maneja GET /panel/session. La ruta siempre corre detrás de
// RequireSession: si el handler ejecuta, la sesión existe.
func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	s := middlewares.MustGetSession(r.Context())

	features := s.Features
	if features == nil {
		features = []string{}
	}

	helpers.WriteJSON(w, http.StatusOK, dto.Response{
		Profile:  s.Profile,
		Features: features,
	})
}
