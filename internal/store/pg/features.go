package pg

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storesight/storesight/internal/domain/repository"
)

type featureRepo struct {
	pool *pgxpool.Pool
}

func (r *featureRepo) ListByProfile(ctx context.Context, profileID string) ([]repository.FeatureAssignment, error) {
	const query = `
		SELECT id, profile_id, feature, created_at
		FROM profile_feature
		WHERE profile_id = $1
		ORDER BY feature`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var features []repository.FeatureAssignment
	for rows.Next() {
		var f repository.FeatureAssignment
		if err := rows.Scan(&f.ID, &f.ProfileID, &f.Feature, &f.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func (r *featureRepo) Assign(ctx context.Context, profileID, feature string) (*repository.FeatureAssignment, error) {
	const query = `
		INSERT INTO profile_feature (id, profile_id, feature)
		VALUES ($1, $2, $3)
		RETURNING id, profile_id, feature, created_at`
	var f repository.FeatureAssignment
	err := r.pool.QueryRow(ctx, query, uuid.NewString(), profileID, feature).Scan(
		&f.ID, &f.ProfileID, &f.Feature, &f.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &f, nil
}

func (r *featureRepo) Unassign(ctx context.Context, profileID, feature string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM profile_feature WHERE profile_id = $1 AND feature = $2`,
		profileID, feature,
	)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
