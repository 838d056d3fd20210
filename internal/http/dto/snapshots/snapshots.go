// Package snapshots contiene DTOs para las capturas de cámara.
package snapshots

import "github.com/storesight/storesight/internal/domain/repository"

// FetchRequest lista capturas de un conjunto de cámaras.
type FetchRequest struct {
	CameraIDs []string `json:"camera_ids"`
	Limit     int      `json:"limit,omitempty"`
}

// LatestRequest pide las capturas más recientes programadas por tiempo.
type LatestRequest struct {
	CameraIDs []string `json:"camera_ids"`
}

// ListResponse envuelve el listado.
type ListResponse struct {
	Snapshots []repository.Snapshot `json:"snapshots"`
}
