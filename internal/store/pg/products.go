package pg

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storesight/storesight/internal/domain/repository"
)

type productRepo struct {
	pool *pgxpool.Pool
}

const productColumns = `id, organization_id, category_id, name, description, price_cents, image_url, created_at`

func (r *productRepo) GetByID(ctx context.Context, id string) (*repository.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM product WHERE id = $1`
	var p repository.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.OrganizationID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, filter repository.ProductFilter) ([]repository.Product, error) {
	// category_id opcional: $2 NULL lo ignora.
	const query = `
		SELECT ` + productColumns + `
		FROM product
		WHERE organization_id = $1
		  AND ($2::uuid IS NULL OR category_id = $2)
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, filter.OrganizationID, nullIfEmpty(filter.CategoryID))
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var products []repository.Product
	for rows.Next() {
		var p repository.Product
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepo) Create(ctx context.Context, input repository.CreateProductInput) (*repository.Product, error) {
	const query = `
		INSERT INTO product (id, organization_id, category_id, name, description, price_cents, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns
	var p repository.Product
	err := r.pool.QueryRow(ctx, query,
		uuid.NewString(), input.OrganizationID, input.CategoryID,
		input.Name, input.Description, input.PriceCents, input.ImageURL,
	).Scan(&p.ID, &p.OrganizationID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *productRepo) Update(ctx context.Context, id string, input repository.UpdateProductInput) (*repository.Product, error) {
	const query = `
		UPDATE product
		SET category_id = COALESCE($2, category_id),
		    name        = COALESCE($3, name),
		    description = COALESCE($4, description),
		    price_cents = COALESCE($5, price_cents),
		    image_url   = COALESCE($6, image_url)
		WHERE id = $1
		RETURNING ` + productColumns
	var p repository.Product
	err := r.pool.QueryRow(ctx, query,
		id, input.CategoryID, input.Name, input.Description, input.PriceCents, input.ImageURL,
	).Scan(&p.ID, &p.OrganizationID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}
