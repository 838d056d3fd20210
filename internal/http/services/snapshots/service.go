// Package snapshots implementa las lecturas de capturas de cámara. Las
// capturas las produce el pipeline de visión, nunca este servicio.
package snapshots

import (
	"context"
	"fmt"
	"strings"

	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/snapshots"
)

// latestLimit y latestMethod fijan la semántica de "últimas capturas"
// del panel: como máximo 3, solo las programadas por tiempo.
const (
	latestLimit  = 3
	latestMethod = "time"
)

// Service define las lecturas sobre snapshots.
type Service interface {
	List(ctx context.Context, in dto.FetchRequest) (*dto.ListResponse, error)

	// Latest retorna como máximo 3 capturas con capture method "time",
	// más recientes primero, sobre el conjunto de cámaras dado.
	Latest(ctx context.Context, in dto.LatestRequest) (*dto.ListResponse, error)
}

type service struct {
	snapshots repository.SnapshotRepository
}

// New crea el servicio de snapshots.
func New(snapshots repository.SnapshotRepository) Service {
	return &service{snapshots: snapshots}
}

// ErrMissingFields indica que no se indicaron cámaras.
var ErrMissingFields = fmt.Errorf("missing required fields")

func (s *service) List(ctx context.Context, in dto.FetchRequest) (*dto.ListResponse, error) {
	ids := cleanIDs(in.CameraIDs)
	if len(ids) == 0 {
		return nil, ErrMissingFields
	}

	list, err := s.snapshots.List(ctx, repository.SnapshotFilter{
		CameraIDs: ids,
		Limit:     in.Limit,
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []repository.Snapshot{}
	}
	return &dto.ListResponse{Snapshots: list}, nil
}

func (s *service) Latest(ctx context.Context, in dto.LatestRequest) (*dto.ListResponse, error) {
	ids := cleanIDs(in.CameraIDs)
	if len(ids) == 0 {
		return nil, ErrMissingFields
	}

	list, err := s.snapshots.Latest(ctx, ids, latestMethod, latestLimit)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []repository.Snapshot{}
	}
	return &dto.ListResponse{Snapshots: list}, nil
}

func cleanIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
