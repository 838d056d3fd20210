// Package products contiene los controllers de productos, incluida la
// subida multipart de imágenes.
package products

import (
	"errors"
	"net/http"

	dto "github.com/storesight/storesight/internal/http/dto/products"
	httperrors "github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/products"
	"github.com/storesight/storesight/internal/observability/logger"
)

// maxUploadSize limita la imagen subida a 5MB.
const maxUploadSize = 5 << 20

// Controller maneja los endpoints de productos.
type Controller struct {
	service svc.Service
}

// New crea el controller de productos.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Create maneja POST /products/create
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Products.Create"))

	var req dto.CreateRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Create(ctx, req)
	if err != nil {
		log.Debug("product create failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, result)
}

// Update maneja POST /products/update
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Products.Update"))

	var req dto.UpdateRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Update(ctx, req)
	if err != nil {
		log.Debug("product update failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

// Fetch maneja GET /products/fetch?organization_id=...&category_id=...
func (c *Controller) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	result, err := c.service.List(ctx, dto.FetchRequest{
		OrganizationID: q.Get("organization_id"),
		CategoryID:     q.Get("category_id"),
	})
	if err != nil {
		logger.From(ctx).Debug("product list failed",
			logger.Layer("controller"), logger.Op("Products.Fetch"), logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

// UploadImage maneja POST /products/uploadImage (multipart/form-data,
// campo "image"). Responde la URL pública del objeto subido.
func (c *Controller) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("Products.UploadImage"))

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("multipart inválido o imagen demasiado grande"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("falta el campo image"))
		return
	}
	defer file.Close()

	result, err := c.service.UploadImage(ctx, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Debug("image upload failed", logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrMissingFields):
		httperrors.WriteError(w, httperrors.ErrMissingFields)

	case errors.Is(err, svc.ErrNotFound):
		httperrors.WriteError(w, httperrors.ErrNotFound.WithMessage("el producto no existe"))

	case errors.Is(err, svc.ErrInvalidCategory):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("la categoría no existe"))

	case errors.Is(err, svc.ErrInvalidImage):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("formato de imagen no soportado"))

	case errors.Is(err, svc.ErrUploadsDisabled):
		httperrors.WriteError(w, httperrors.ErrServiceUnavailable.WithMessage("la subida de imágenes no está configurada"))

	default:
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
	}
}
