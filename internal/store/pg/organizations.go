package pg

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storesight/storesight/internal/domain/repository"
)

type organizationRepo struct {
	pool *pgxpool.Pool
}

const orgColumns = `id, displayid, name, contact_email, created_at`

func (r *organizationRepo) GetByDisplayID(ctx context.Context, displayID string) (*repository.Organization, error) {
	const query = `SELECT ` + orgColumns + ` FROM organization WHERE displayid = $1`
	return r.scanOne(ctx, query, displayID)
}

func (r *organizationRepo) GetByID(ctx context.Context, id string) (*repository.Organization, error) {
	const query = `SELECT ` + orgColumns + ` FROM organization WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *organizationRepo) scanOne(ctx context.Context, query string, arg any) (*repository.Organization, error) {
	var org repository.Organization
	var contactEmail *string
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&org.ID, &org.DisplayID, &org.Name, &contactEmail, &org.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if contactEmail != nil {
		org.ContactEmail = *contactEmail
	}
	return &org, nil
}

func (r *organizationRepo) List(ctx context.Context) ([]repository.Organization, error) {
	const query = `SELECT ` + orgColumns + ` FROM organization ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var orgs []repository.Organization
	for rows.Next() {
		var org repository.Organization
		var contactEmail *string
		if err := rows.Scan(&org.ID, &org.DisplayID, &org.Name, &contactEmail, &org.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		if contactEmail != nil {
			org.ContactEmail = *contactEmail
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func (r *organizationRepo) Create(ctx context.Context, input repository.CreateOrganizationInput) (*repository.Organization, error) {
	const query = `
		INSERT INTO organization (id, displayid, name, contact_email)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + orgColumns
	id := uuid.NewString()
	return r.scanReturning(ctx, query, id, input.DisplayID, input.Name, nullIfEmpty(input.ContactEmail))
}

func (r *organizationRepo) Update(ctx context.Context, id string, input repository.UpdateOrganizationInput) (*repository.Organization, error) {
	// COALESCE: los campos nil conservan el valor actual.
	const query = `
		UPDATE organization
		SET displayid     = COALESCE($2, displayid),
		    name          = COALESCE($3, name),
		    contact_email = COALESCE($4, contact_email)
		WHERE id = $1
		RETURNING ` + orgColumns
	return r.scanReturning(ctx, query, id, input.DisplayID, input.Name, input.ContactEmail)
}

func (r *organizationRepo) scanReturning(ctx context.Context, query string, args ...any) (*repository.Organization, error) {
	var org repository.Organization
	var contactEmail *string
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&org.ID, &org.DisplayID, &org.Name, &contactEmail, &org.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if contactEmail != nil {
		org.ContactEmail = *contactEmail
	}
	return &org, nil
}

func (r *organizationRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM organization WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
