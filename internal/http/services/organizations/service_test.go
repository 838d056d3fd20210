package organizations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/storesight/storesight/internal/cache"
	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/organizations"
)

type fakeRepo struct {
	byID      map[string]*repository.Organization
	dupNames  map[string]bool
	updateErr error
}

func (f *fakeRepo) GetByDisplayID(context.Context, string) (*repository.Organization, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeRepo) GetByID(_ context.Context, id string) (*repository.Organization, error) {
	if o, ok := f.byID[id]; ok {
		return o, nil
	}
	return nil, repository.ErrNotFound
}
func (f *fakeRepo) List(context.Context) ([]repository.Organization, error) {
	out := make([]repository.Organization, 0, len(f.byID))
	for _, o := range f.byID {
		out = append(out, *o)
	}
	return out, nil
}
func (f *fakeRepo) Create(_ context.Context, in repository.CreateOrganizationInput) (*repository.Organization, error) {
	if f.dupNames[in.Name] {
		return nil, repository.ErrConflict
	}
	return &repository.Organization{ID: "org-new", DisplayID: in.DisplayID, Name: in.Name}, nil
}
func (f *fakeRepo) Update(_ context.Context, id string, in repository.UpdateOrganizationInput) (*repository.Organization, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	o, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	updated := *o
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.DisplayID != nil {
		updated.DisplayID = *in.DisplayID
	}
	return &updated, nil
}
func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type spyCache struct {
	deleted []string
}

func (c *spyCache) Get(string) ([]byte, bool)         { return nil, false }
func (c *spyCache) Set(string, []byte, time.Duration) {}
func (c *spyCache) Delete(k string)                   { c.deleted = append(c.deleted, k) }

func setup() (*fakeRepo, *spyCache, Service) {
	repo := &fakeRepo{
		byID: map[string]*repository.Organization{
			"org-1": {ID: "org-1", DisplayID: "acme", Name: "Acme Co"},
		},
		dupNames: map[string]bool{"Acme Co": true},
	}
	c := &spyCache{}
	return repo, c, New(Deps{Organizations: repo, Cache: c})
}

func TestCreate_DuplicateName(t *testing.T) {
	_, _, svc := setup()

	_, err := svc.Create(context.Background(), dto.CreateRequest{
		DisplayID: "acme-2",
		Name:      "Acme Co",
	})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("got %v, want ErrDuplicateName", err)
	}
}

func TestCreate_NameTooShortAfterTrim(t *testing.T) {
	_, _, svc := setup()

	for _, name := range []string{"", "a", "  a  ", " "} {
		_, err := svc.Create(context.Background(), dto.CreateRequest{DisplayID: "x1", Name: name})
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("name %q: got %v, want ErrInvalidName", name, err)
		}
	}
}

func TestCreate_InvalidDisplayID(t *testing.T) {
	_, _, svc := setup()

	for _, id := range []string{"", "-lead", "trail-", "UPPER", "has space"} {
		_, err := svc.Create(context.Background(), dto.CreateRequest{DisplayID: id, Name: "Valid Name"})
		if !errors.Is(err, ErrInvalidDisplayID) {
			t.Fatalf("displayid %q: got %v, want ErrInvalidDisplayID", id, err)
		}
	}
}

func TestCreate_OK(t *testing.T) {
	_, _, svc := setup()

	out, err := svc.Create(context.Background(), dto.CreateRequest{
		DisplayID: "globex",
		Name:      "  Globex  ", // se guarda sin espacios
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Organization.Name != "Globex" {
		t.Fatalf("name not trimmed: %q", out.Organization.Name)
	}
}

func TestUpdate_InvalidatesCacheUnderOldAndNewDisplayID(t *testing.T) {
	_, c, svc := setup()

	newID := "acme-renamed"
	_, err := svc.Update(context.Background(), dto.UpdateRequest{ID: "org-1", DisplayID: &newID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]bool{
		cache.OrgDisplayIDKey("acme"):         true,
		cache.OrgDisplayIDKey("acme-renamed"): true,
	}
	for _, k := range c.deleted {
		delete(want, k)
	}
	if len(want) != 0 {
		t.Fatalf("missing cache invalidations: %v (got %v)", want, c.deleted)
	}
}

func TestDelete_InvalidatesCache(t *testing.T) {
	_, c, svc := setup()

	if err := svc.Delete(context.Background(), "org-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.deleted) != 1 || c.deleted[0] != cache.OrgDisplayIDKey("acme") {
		t.Fatalf("cache invalidation: %v", c.deleted)
	}
}

func TestDelete_NotFound(t *testing.T) {
	_, _, svc := setup()

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
