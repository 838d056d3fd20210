// Package categories contiene el controller de categorías.
package categories

import (
	"net/http"

	httperrors "github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/categories"
	"github.com/storesight/storesight/internal/observability/logger"
)

// Controller maneja los endpoints de categorías.
type Controller struct {
	service svc.Service
}

// New crea el controller de categorías.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Fetch maneja GET /categories/fetch
func (c *Controller) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := c.service.List(ctx)
	if err != nil {
		logger.From(ctx).Error("category list failed",
			logger.Layer("controller"), logger.Op("Categories.Fetch"), logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}
