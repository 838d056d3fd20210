package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storesight/storesight/internal/domain/repository"
)

type snapshotRepo struct {
	pool *pgxpool.Pool
}

const snapshotColumns = `id, camera_id, image_url, capture_method, created_at`

func (r *snapshotRepo) List(ctx context.Context, filter repository.SnapshotFilter) ([]repository.Snapshot, error) {
	const query = `
		SELECT ` + snapshotColumns + `
		FROM snapshot
		WHERE camera_id = ANY($1)
		  AND ($2::text IS NULL OR capture_method = $2)
		ORDER BY created_at DESC
		LIMIT CASE WHEN $3::int > 0 THEN $3::int ELSE NULL END`
	rows, err := r.pool.Query(ctx, query, filter.CameraIDs, nullIfEmpty(filter.CaptureMethod), filter.Limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var snaps []repository.Snapshot
	for rows.Next() {
		var s repository.Snapshot
		if err := rows.Scan(&s.ID, &s.CameraID, &s.ImageURL, &s.CaptureMethod, &s.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

func (r *snapshotRepo) Latest(ctx context.Context, cameraIDs []string, captureMethod string, limit int) ([]repository.Snapshot, error) {
	return r.List(ctx, repository.SnapshotFilter{
		CameraIDs:     cameraIDs,
		CaptureMethod: captureMethod,
		Limit:         limit,
	})
}
