package pg

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storesight/storesight/internal/domain/repository"
)

type cameraRepo struct {
	pool *pgxpool.Pool
}

const cameraColumns = `id, organization_id, name, location, stream_url, enabled, created_at`

func (r *cameraRepo) GetByID(ctx context.Context, id string) (*repository.Camera, error) {
	const query = `SELECT ` + cameraColumns + ` FROM camera WHERE id = $1`
	var c repository.Camera
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.Location, &c.StreamURL, &c.Enabled, &c.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *cameraRepo) ListByOrg(ctx context.Context, orgID string) ([]repository.Camera, error) {
	const query = `SELECT ` + cameraColumns + ` FROM camera WHERE organization_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var cameras []repository.Camera
	for rows.Next() {
		var c repository.Camera
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.Location, &c.StreamURL, &c.Enabled, &c.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		cameras = append(cameras, c)
	}
	return cameras, rows.Err()
}

func (r *cameraRepo) Create(ctx context.Context, input repository.CreateCameraInput) (*repository.Camera, error) {
	const query = `
		INSERT INTO camera (id, organization_id, name, location, stream_url, enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + cameraColumns
	var c repository.Camera
	err := r.pool.QueryRow(ctx, query,
		uuid.NewString(), input.OrganizationID, input.Name, input.Location, input.StreamURL, input.Enabled,
	).Scan(&c.ID, &c.OrganizationID, &c.Name, &c.Location, &c.StreamURL, &c.Enabled, &c.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *cameraRepo) Update(ctx context.Context, id string, input repository.UpdateCameraInput) (*repository.Camera, error) {
	const query = `
		UPDATE camera
		SET name       = COALESCE($2, name),
		    location   = COALESCE($3, location),
		    stream_url = COALESCE($4, stream_url),
		    enabled    = COALESCE($5, enabled)
		WHERE id = $1
		RETURNING ` + cameraColumns
	var c repository.Camera
	err := r.pool.QueryRow(ctx, query, id, input.Name, input.Location, input.StreamURL, input.Enabled).Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.Location, &c.StreamURL, &c.Enabled, &c.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *cameraRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM camera WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
