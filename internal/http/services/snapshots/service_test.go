package snapshots

import (
	"context"
	"errors"
	"testing"

	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/snapshots"
)

type fakeRepo struct {
	gotFilter repository.SnapshotFilter

	latestIDs    []string
	latestMethod string
	latestLimit  int

	out []repository.Snapshot
}

func (f *fakeRepo) List(_ context.Context, filter repository.SnapshotFilter) ([]repository.Snapshot, error) {
	f.gotFilter = filter
	return f.out, nil
}

func (f *fakeRepo) Latest(_ context.Context, cameraIDs []string, captureMethod string, limit int) ([]repository.Snapshot, error) {
	f.latestIDs = cameraIDs
	f.latestMethod = captureMethod
	f.latestLimit = limit
	return f.out, nil
}

func TestLatest_CapsAtThreeTimeCaptures(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)

	_, err := svc.Latest(context.Background(), dto.LatestRequest{
		CameraIDs: []string{"cam-1", " cam-2 ", ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.latestLimit != 3 {
		t.Fatalf("limit %d, want 3", repo.latestLimit)
	}
	if repo.latestMethod != "time" {
		t.Fatalf("capture method %q, want time", repo.latestMethod)
	}
	if len(repo.latestIDs) != 2 || repo.latestIDs[1] != "cam-2" {
		t.Fatalf("camera ids not cleaned: %v", repo.latestIDs)
	}
}

func TestLatest_RequiresCameras(t *testing.T) {
	svc := New(&fakeRepo{})

	for _, ids := range [][]string{nil, {}, {"", "  "}} {
		_, err := svc.Latest(context.Background(), dto.LatestRequest{CameraIDs: ids})
		if !errors.Is(err, ErrMissingFields) {
			t.Fatalf("ids %v: got %v, want ErrMissingFields", ids, err)
		}
	}
}

func TestList_PassesFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)

	_, err := svc.List(context.Background(), dto.FetchRequest{
		CameraIDs: []string{"cam-1"},
		Limit:     10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotFilter.Limit != 10 || len(repo.gotFilter.CameraIDs) != 1 {
		t.Fatalf("filter: %+v", repo.gotFilter)
	}
	// List no filtra por capture method, a diferencia de Latest.
	if repo.gotFilter.CaptureMethod != "" {
		t.Fatalf("unexpected capture method filter: %q", repo.gotFilter.CaptureMethod)
	}
}

func TestList_EmptyResultIsNotNil(t *testing.T) {
	svc := New(&fakeRepo{})

	out, err := svc.List(context.Background(), dto.FetchRequest{CameraIDs: []string{"cam-1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Snapshots == nil {
		t.Fatal("snapshots must serialize as [], not null")
	}
}
