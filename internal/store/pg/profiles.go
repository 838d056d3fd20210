package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storesight/storesight/internal/domain/repository"
)

type profileRepo struct {
	pool *pgxpool.Pool
}

const profileColumns = `id, organization_id, username, email, role, full_name, created_at`

func (r *profileRepo) GetByOrgAndUsername(ctx context.Context, orgID, username string) (*repository.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profile WHERE organization_id = $1 AND username = $2`
	var p repository.Profile
	err := r.pool.QueryRow(ctx, query, orgID, username).Scan(
		&p.ID, &p.OrganizationID, &p.Username, &p.Email, &p.Role, &p.FullName, &p.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*repository.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profile WHERE id = $1`
	var p repository.Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.OrganizationID, &p.Username, &p.Email, &p.Role, &p.FullName, &p.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *profileRepo) ListByOrg(ctx context.Context, orgID string) ([]repository.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profile WHERE organization_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var profiles []repository.Profile
	for rows.Next() {
		var p repository.Profile
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Username, &p.Email, &p.Role, &p.FullName, &p.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) Create(ctx context.Context, input repository.CreateProfileInput) (*repository.Profile, error) {
	const query = `
		INSERT INTO profile (id, organization_id, username, email, role, full_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + profileColumns
	role := input.Role
	if role == "" {
		role = "member"
	}
	var p repository.Profile
	err := r.pool.QueryRow(ctx, query,
		input.ID, input.OrganizationID, input.Username, input.Email, role, input.FullName,
	).Scan(&p.ID, &p.OrganizationID, &p.Username, &p.Email, &p.Role, &p.FullName, &p.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, id string, input repository.UpdateProfileInput) (*repository.Profile, error) {
	const query = `
		UPDATE profile
		SET username  = COALESCE($2, username),
		    role      = COALESCE($3, role),
		    full_name = COALESCE($4, full_name)
		WHERE id = $1
		RETURNING ` + profileColumns
	var p repository.Profile
	err := r.pool.QueryRow(ctx, query, id, input.Username, input.Role, input.FullName).Scan(
		&p.ID, &p.OrganizationID, &p.Username, &p.Email, &p.Role, &p.FullName, &p.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profile WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
