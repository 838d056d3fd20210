package snapshots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/snapshots"
)

// fakeService registra los ids de cámara que recibe cada operación.
type fakeService struct {
	listIDs   []string
	latestIDs []string
}

func (f *fakeService) List(_ context.Context, in dto.FetchRequest) (*dto.ListResponse, error) {
	f.listIDs = in.CameraIDs
	return &dto.ListResponse{Snapshots: []repository.Snapshot{}}, nil
}

func (f *fakeService) Latest(_ context.Context, in dto.LatestRequest) (*dto.ListResponse, error) {
	f.latestIDs = in.CameraIDs
	return &dto.ListResponse{Snapshots: []repository.Snapshot{}}, nil
}

func TestParseCameraIDs(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"vacío", "", nil},
		{"array de strings", `["a","b"]`, []string{"a", "b"}},
		{"array numérico", `[1,2]`, []string{"1", "2"}},
		{"array mixto", `["a",2]`, []string{"a", "2"}},
		{"lista por comas", "a,b", []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseCameraIDs(tc.raw)
			if err != nil {
				t.Fatalf("parseCameraIDs(%q): %v", tc.raw, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseCameraIDs(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseCameraIDs_Malformed(t *testing.T) {
	for _, raw := range []string{`[1,`, `[true]`, `[{"id":1}]`} {
		if _, err := parseCameraIDs(raw); err == nil {
			t.Fatalf("parseCameraIDs(%q): expected error", raw)
		}
	}
}

// Un array numérico llega al service como ids string, no como un nil que
// después parece "faltan campos".
func TestFetch_NumericCameraIDs(t *testing.T) {
	f := &fakeService{}
	c := New(f)

	r := httptest.NewRequest(http.MethodGet, "/snapshots/fetch?cameras=[1,2]", nil)
	w := httptest.NewRecorder()
	c.Fetch(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if want := []string{"1", "2"}; !reflect.DeepEqual(f.listIDs, want) {
		t.Fatalf("service got ids %v, want %v", f.listIDs, want)
	}
}

func TestFetch_MalformedCameras(t *testing.T) {
	f := &fakeService{}
	c := New(f)

	r := httptest.NewRequest(http.MethodGet, "/snapshots/fetch?cameras=[1,", nil)
	w := httptest.NewRecorder()
	c.Fetch(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "cameras") {
		t.Fatalf("body should name the cameras parameter, got %q", body)
	}
	if f.listIDs != nil {
		t.Fatalf("service should not be called, got ids %v", f.listIDs)
	}
}

func TestLatest_MalformedCameras(t *testing.T) {
	f := &fakeService{}
	c := New(f)

	r := httptest.NewRequest(http.MethodGet, "/snapshots/latest/fetch?cameras=[true]", nil)
	w := httptest.NewRecorder()
	c.Latest(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if f.latestIDs != nil {
		t.Fatalf("service should not be called, got ids %v", f.latestIDs)
	}
}
