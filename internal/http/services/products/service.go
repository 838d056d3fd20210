// Package products implementa el CRUD de productos y la subida de
// imágenes al object storage.
package products

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/storesight/storesight/internal/blob"
	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/products"
	"github.com/storesight/storesight/internal/metrics"
	"github.com/storesight/storesight/internal/observability/logger"
)

// Service define las operaciones sobre productos.
type Service interface {
	Create(ctx context.Context, in dto.CreateRequest) (*dto.Response, error)
	Update(ctx context.Context, in dto.UpdateRequest) (*dto.Response, error)
	List(ctx context.Context, in dto.FetchRequest) (*dto.ListResponse, error)

	// UploadImage sube la imagen y retorna su URL pública. No toca
	// ningún producto: el caller decide a cuál asociarla vía Update.
	UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (*dto.UploadImageResponse, error)
}

// Deps contiene las dependencias del servicio.
type Deps struct {
	Products repository.ProductRepository
	Uploader blob.Uploader // nil = subida de imágenes deshabilitada
}

type service struct {
	deps Deps
}

// New crea el servicio de productos.
func New(deps Deps) Service {
	return &service{deps: deps}
}

// Errores del servicio de productos
var (
	ErrMissingFields   = fmt.Errorf("missing required fields")
	ErrNotFound        = fmt.Errorf("product not found")
	ErrInvalidCategory = fmt.Errorf("invalid category")
	ErrUploadsDisabled = fmt.Errorf("image uploads are not configured")
	ErrInvalidImage    = fmt.Errorf("invalid image")
)

// Tipos de imagen aceptados para subida.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

func (s *service) Create(ctx context.Context, in dto.CreateRequest) (*dto.Response, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("products"),
		logger.Op("Create"),
	)

	in.OrganizationID = strings.TrimSpace(in.OrganizationID)
	in.Name = strings.TrimSpace(in.Name)
	if in.OrganizationID == "" || in.Name == "" {
		return nil, ErrMissingFields
	}

	var categoryID *string
	if c := strings.TrimSpace(in.CategoryID); c != "" {
		categoryID = &c
	}

	p, err := s.deps.Products.Create(ctx, repository.CreateProductInput{
		OrganizationID: in.OrganizationID,
		CategoryID:     categoryID,
		Name:           in.Name,
		Description:    strings.TrimSpace(in.Description),
		PriceCents:     in.PriceCents,
		ImageURL:       strings.TrimSpace(in.ImageURL),
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, ErrInvalidCategory
		}
		log.Error("product insert failed", logger.OrgID(in.OrganizationID), logger.Err(err))
		return nil, err
	}

	log.Info("product created", logger.ProductID(p.ID), logger.OrgID(p.OrganizationID))
	return &dto.Response{Product: *p}, nil
}

func (s *service) Update(ctx context.Context, in dto.UpdateRequest) (*dto.Response, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("products"),
		logger.Op("Update"),
	)

	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return nil, ErrMissingFields
	}

	p, err := s.deps.Products.Update(ctx, in.ID, repository.UpdateProductInput{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, ErrInvalidCategory
		}
		log.Error("product update failed", logger.ProductID(in.ID), logger.Err(err))
		return nil, err
	}

	log.Info("product updated", logger.ProductID(p.ID))
	return &dto.Response{Product: *p}, nil
}

func (s *service) List(ctx context.Context, in dto.FetchRequest) (*dto.ListResponse, error) {
	in.OrganizationID = strings.TrimSpace(in.OrganizationID)
	if in.OrganizationID == "" {
		return nil, ErrMissingFields
	}

	list, err := s.deps.Products.List(ctx, repository.ProductFilter{
		OrganizationID: in.OrganizationID,
		CategoryID:     strings.TrimSpace(in.CategoryID),
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []repository.Product{}
	}
	return &dto.ListResponse{Products: list}, nil
}

func (s *service) UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (*dto.UploadImageResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("products"),
		logger.Op("UploadImage"),
	)

	if s.deps.Uploader == nil {
		return nil, ErrUploadsDisabled
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if contentType == "" {
		// Fallback por extensión del nombre original
		switch strings.ToLower(path.Ext(filename)) {
		case ".jpg", ".jpeg":
			contentType = "image/jpeg"
		case ".png":
			contentType = "image/png"
		case ".webp":
			contentType = "image/webp"
		}
	}
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, ErrInvalidImage
	}

	// Key aleatoria: el nombre original nunca viaja al bucket.
	key := "products/" + uuid.NewString() + ext

	url, err := s.deps.Uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		log.Error("image upload failed", logger.Key(key), logger.Err(err))
		return nil, err
	}

	metrics.UploadsTotal.Inc()
	log.Info("image uploaded", logger.Key(key))

	return &dto.UploadImageResponse{URL: url}, nil
}
