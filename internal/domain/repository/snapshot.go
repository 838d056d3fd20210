package repository

import (
	"context"
	"time"
)

// Snapshot representa una captura de una cámara ya almacenada en el
// object storage. Este servicio solo la lee, nunca la produce.
type Snapshot struct {
	ID            string    `json:"id"`
	CameraID      string    `json:"camera_id"`
	ImageURL      string    `json:"image_url"`
	CaptureMethod string    `json:"capture_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// SnapshotFilter filtra lecturas de snapshots.
type SnapshotFilter struct {
	CameraIDs     []string
	CaptureMethod string // opcional
	Limit         int    // 0 = sin límite
}

// SnapshotRepository define lecturas sobre snapshots.
type SnapshotRepository interface {
	// List lista snapshots según el filtro, ordenados por created_at DESC.
	List(ctx context.Context, filter SnapshotFilter) ([]Snapshot, error)

	// Latest retorna como máximo `limit` snapshots más recientes del conjunto
	// de cámaras dado, filtrados a un capture method, created_at DESC.
	Latest(ctx context.Context, cameraIDs []string, captureMethod string, limit int) ([]Snapshot, error)
}
