package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storesight/storesight/internal/domain/repository"
)

type categoryRepo struct {
	pool *pgxpool.Pool
}

func (r *categoryRepo) List(ctx context.Context) ([]repository.Category, error) {
	const query = `SELECT id, name, created_at FROM category ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var categories []repository.Category
	for rows.Next() {
		var c repository.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
