package users

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/users"
	"github.com/storesight/storesight/internal/identity"
)

// ─── Fakes ───

type fakeProfiles struct {
	existing  map[string]*repository.Profile // orgID/username
	createErr error
	created   []repository.CreateProfileInput
	deleted   []string
}

func (f *fakeProfiles) GetByOrgAndUsername(_ context.Context, orgID, username string) (*repository.Profile, error) {
	if p, ok := f.existing[orgID+"/"+username]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}
func (f *fakeProfiles) GetByID(context.Context, string) (*repository.Profile, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeProfiles) ListByOrg(context.Context, string) ([]repository.Profile, error) {
	return []repository.Profile{}, nil
}
func (f *fakeProfiles) Create(_ context.Context, in repository.CreateProfileInput) (*repository.Profile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &repository.Profile{
		ID:             in.ID,
		OrganizationID: in.OrganizationID,
		Username:       in.Username,
		Email:          in.Email,
		Role:           in.Role,
		FullName:       in.FullName,
	}, nil
}
func (f *fakeProfiles) Update(context.Context, string, repository.UpdateProfileInput) (*repository.Profile, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeProfiles) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOrgs struct{ known map[string]bool }

func (f *fakeOrgs) GetByDisplayID(context.Context, string) (*repository.Organization, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeOrgs) GetByID(_ context.Context, id string) (*repository.Organization, error) {
	if f.known[id] {
		return &repository.Organization{ID: id}, nil
	}
	return nil, repository.ErrNotFound
}
func (f *fakeOrgs) List(context.Context) ([]repository.Organization, error) { return nil, nil }
func (f *fakeOrgs) Create(context.Context, repository.CreateOrganizationInput) (*repository.Organization, error) {
	return nil, repository.ErrConflict
}
func (f *fakeOrgs) Update(context.Context, string, repository.UpdateOrganizationInput) (*repository.Organization, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeOrgs) Delete(context.Context, string) error { return repository.ErrNotFound }

type fakeFeatures struct {
	failOn   map[string]bool
	assigned []string
}

func (f *fakeFeatures) ListByProfile(context.Context, string) ([]repository.FeatureAssignment, error) {
	return nil, nil
}
func (f *fakeFeatures) Assign(_ context.Context, profileID, feature string) (*repository.FeatureAssignment, error) {
	if f.failOn[feature] {
		return nil, repository.ErrConflict
	}
	f.assigned = append(f.assigned, feature)
	return &repository.FeatureAssignment{ProfileID: profileID, Feature: feature}, nil
}
func (f *fakeFeatures) Unassign(context.Context, string, string) error { return nil }

type fakeAdmin struct {
	createErr  error
	deleteErr  error
	created    []string
	deletedIDs []string
}

func (f *fakeAdmin) CreateAccount(_ context.Context, email, _ string) (*identity.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, email)
	return &identity.Account{ID: "acc-new", Email: email}, nil
}
func (f *fakeAdmin) DeleteAccount(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func world() (*fakeProfiles, *fakeOrgs, *fakeFeatures, *fakeAdmin, Service) {
	profiles := &fakeProfiles{existing: map[string]*repository.Profile{}}
	orgs := &fakeOrgs{known: map[string]bool{"org-1": true}}
	features := &fakeFeatures{failOn: map[string]bool{}}
	admin := &fakeAdmin{}
	svc := New(Deps{Profiles: profiles, Organizations: orgs, Features: features, Identity: admin})
	return profiles, orgs, features, admin, svc
}

func validCreate() dto.CreateRequest {
	return dto.CreateRequest{
		OrganizationID: "org-1",
		Username:       "jdoe",
		Email:          "jdoe@acme.test",
		Password:       "pw-123456",
		FullName:       "John Doe",
		Features:       []string{"cameras", "products"},
	}
}

// ─── Tests ───

func TestCreate_HappyPath(t *testing.T) {
	profiles, _, features, admin, svc := world()

	out, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.User.ID != "acc-new" {
		t.Fatalf("profile id %q must be the provider account id", out.User.ID)
	}
	if len(profiles.created) != 1 || profiles.created[0].ID != "acc-new" {
		t.Fatalf("profile insert: %+v", profiles.created)
	}
	if len(admin.deletedIDs) != 0 {
		t.Fatal("no compensation expected on success")
	}
	if len(features.assigned) != 2 {
		t.Fatalf("features assigned: %v", features.assigned)
	}
	if out.User.Role != "member" {
		t.Fatalf("default role: %q", out.User.Role)
	}
}

// Si el insert del perfil falla, la cuenta recién creada en el provider
// tiene que eliminarse.
func TestCreate_CompensatesAccountOnProfileFailure(t *testing.T) {
	profiles, _, _, admin, svc := world()
	profiles.createErr = fmt.Errorf("connection reset")

	_, err := svc.Create(context.Background(), validCreate())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(admin.deletedIDs) != 1 || admin.deletedIDs[0] != "acc-new" {
		t.Fatalf("compensation expected for acc-new, got %v", admin.deletedIDs)
	}
}

// La compensación fallida no enmascara el error original del insert.
func TestCreate_CompensationFailureKeepsOriginalError(t *testing.T) {
	profiles, _, _, admin, svc := world()
	profiles.createErr = repository.ErrConflict
	admin.deleteErr = fmt.Errorf("provider down")

	_, err := svc.Create(context.Background(), validCreate())
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("got %v, want ErrDuplicateUser (the original failure)", err)
	}
}

// Una feature fallida se reporta pero el alta no se revierte.
func TestCreate_FeatureFailureDoesNotRollBack(t *testing.T) {
	profiles, _, features, admin, svc := world()
	features.failOn["products"] = true

	out, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Features) != 1 || out.Features[0] != "cameras" {
		t.Fatalf("assigned features: %v", out.Features)
	}
	if len(admin.deletedIDs) != 0 || len(profiles.deleted) != 0 {
		t.Fatal("feature failure must not trigger any rollback")
	}
}

// El username ocupado se detecta antes de tocar el provider.
func TestCreate_DuplicateUsernameCheckedEarly(t *testing.T) {
	profiles, _, _, admin, svc := world()
	profiles.existing["org-1/jdoe"] = &repository.Profile{ID: "other"}

	_, err := svc.Create(context.Background(), validCreate())
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("got %v, want ErrDuplicateUser", err)
	}
	if len(admin.created) != 0 {
		t.Fatal("provider must not be called when the username is taken")
	}
}

func TestCreate_UnknownOrg(t *testing.T) {
	_, orgs, _, admin, svc := world()
	delete(orgs.known, "org-1")

	_, err := svc.Create(context.Background(), validCreate())
	if !errors.Is(err, ErrOrgNotFound) {
		t.Fatalf("got %v, want ErrOrgNotFound", err)
	}
	if len(admin.created) != 0 {
		t.Fatal("provider must not be called for unknown org")
	}
}

func TestCreate_ProviderRejectionIsSurfaced(t *testing.T) {
	_, _, _, admin, svc := world()
	admin.createErr = &identity.ProviderError{StatusCode: 422, Message: "password too weak"}

	_, err := svc.Create(context.Background(), validCreate())
	if !errors.Is(err, ErrAccountCreate) {
		t.Fatalf("got %v, want ErrAccountCreate", err)
	}
}

func TestDelete_RemovesProfileThenAccount(t *testing.T) {
	profiles, _, _, admin, svc := world()

	if err := svc.Delete(context.Background(), "acc-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles.deleted) != 1 || profiles.deleted[0] != "acc-9" {
		t.Fatalf("profile delete: %v", profiles.deleted)
	}
	if len(admin.deletedIDs) != 1 || admin.deletedIDs[0] != "acc-9" {
		t.Fatalf("account delete: %v", admin.deletedIDs)
	}
}
