package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/storesight/storesight/internal/domain/repository"
	dto "github.com/storesight/storesight/internal/http/dto/auth"
	"github.com/storesight/storesight/internal/identity"
)

// ─── Fakes ───

type fakeOrgRepo struct {
	byDisplayID map[string]*repository.Organization
	calls       int
	// err fuerza una falla de storage en GetByDisplayID
	err error
}

func (f *fakeOrgRepo) GetByDisplayID(_ context.Context, id string) (*repository.Organization, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if o, ok := f.byDisplayID[id]; ok {
		return o, nil
	}
	return nil, repository.ErrNotFound
}
func (f *fakeOrgRepo) GetByID(context.Context, string) (*repository.Organization, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeOrgRepo) List(context.Context) ([]repository.Organization, error) { return nil, nil }
func (f *fakeOrgRepo) Create(context.Context, repository.CreateOrganizationInput) (*repository.Organization, error) {
	return nil, repository.ErrConflict
}
func (f *fakeOrgRepo) Update(context.Context, string, repository.UpdateOrganizationInput) (*repository.Organization, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeOrgRepo) Delete(context.Context, string) error { return repository.ErrNotFound }

type fakeProfileRepo struct {
	byOrgUser map[string]*repository.Profile // key: orgID + "/" + username
}

func (f *fakeProfileRepo) GetByOrgAndUsername(_ context.Context, orgID, username string) (*repository.Profile, error) {
	if p, ok := f.byOrgUser[orgID+"/"+username]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}
func (f *fakeProfileRepo) GetByID(context.Context, string) (*repository.Profile, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeProfileRepo) ListByOrg(context.Context, string) ([]repository.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) Create(context.Context, repository.CreateProfileInput) (*repository.Profile, error) {
	return nil, repository.ErrConflict
}
func (f *fakeProfileRepo) Update(context.Context, string, repository.UpdateProfileInput) (*repository.Profile, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeProfileRepo) Delete(context.Context, string) error { return repository.ErrNotFound }

type fakeExchanger struct {
	token json.RawMessage
	err   error
	// registra el email con el que se llamó al provider
	gotEmail string
}

func (f *fakeExchanger) PasswordGrant(_ context.Context, email, _ string) (json.RawMessage, error) {
	f.gotEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.token, nil
}

type memCache struct {
	m map[string][]byte
}

func newMemCache() *memCache { return &memCache{m: map[string][]byte{}} }

func (c *memCache) Get(k string) ([]byte, bool)             { b, ok := c.m[k]; return b, ok }
func (c *memCache) Set(k string, v []byte, _ time.Duration) { c.m[k] = v }
func (c *memCache) Delete(k string)                         { delete(c.m, k) }

// ─── Helpers ───

func testService(org *fakeOrgRepo, prof *fakeProfileRepo, ex *fakeExchanger) LoginService {
	return NewLoginService(LoginDeps{
		Organizations: org,
		Profiles:      prof,
		Identity:      ex,
	})
}

func demoWorld() (*fakeOrgRepo, *fakeProfileRepo, *fakeExchanger) {
	org := &fakeOrgRepo{byDisplayID: map[string]*repository.Organization{
		"acme": {ID: "org-1", DisplayID: "acme", Name: "Acme Co"},
	}}
	prof := &fakeProfileRepo{byOrgUser: map[string]*repository.Profile{
		"org-1/jdoe": {ID: "acc-1", OrganizationID: "org-1", Username: "jdoe", Email: "jdoe@acme.test"},
	}}
	ex := &fakeExchanger{token: json.RawMessage(`{"access_token":"tok"}`)}
	return org, prof, ex
}

// ─── Tests ───

func TestLoginPassword_Success(t *testing.T) {
	org, prof, ex := demoWorld()
	s := testService(org, prof, ex)

	out, err := s.LoginPassword(context.Background(), dto.LoginRequest{
		OrgDisplayID: " acme ", // el trim es parte del contrato
		Username:     "jdoe",
		Password:     "pw",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success {
		t.Fatal("expected success")
	}
	if string(out.Token) != `{"access_token":"tok"}` {
		t.Fatalf("token not passed through verbatim: %s", out.Token)
	}
	if out.Profile.ID != "acc-1" {
		t.Fatalf("wrong profile: %+v", out.Profile)
	}
	if ex.gotEmail != "jdoe@acme.test" {
		t.Fatalf("provider called with %q, want profile email", ex.gotEmail)
	}
}

// Org inexistente, usuario inexistente y password rechazado tienen que
// ser indistinguibles desde afuera.
func TestLoginPassword_AllMissesLookAlike(t *testing.T) {
	cases := []struct {
		name string
		req  dto.LoginRequest
		prep func(*fakeExchanger)
	}{
		{
			name: "unknown org",
			req:  dto.LoginRequest{OrgDisplayID: "ghost", Username: "jdoe", Password: "pw"},
		},
		{
			name: "unknown user",
			req:  dto.LoginRequest{OrgDisplayID: "acme", Username: "ghost", Password: "pw"},
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{OrgDisplayID: "acme", Username: "jdoe", Password: "bad"},
			prep: func(ex *fakeExchanger) {
				ex.err = &identity.ProviderError{StatusCode: 400, Message: "Invalid login credentials"}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			org, prof, ex := demoWorld()
			if tc.prep != nil {
				tc.prep(ex)
			}
			s := testService(org, prof, ex)

			_, err := s.LoginPassword(context.Background(), tc.req)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

// Una falla de storage en la resolución de la organización responde el
// mismo genérico que un miss: "no existe" y "no pude mirar" son
// indistinguibles desde afuera.
func TestLoginPassword_OrgStoreErrorLooksLikeMiss(t *testing.T) {
	org, prof, ex := demoWorld()
	org.err = errors.New("store unavailable")
	s := testService(org, prof, ex)

	_, err := s.LoginPassword(context.Background(), dto.LoginRequest{
		OrgDisplayID: "acme", Username: "jdoe", Password: "pw",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginPassword_MissingFields(t *testing.T) {
	org, prof, ex := demoWorld()
	s := testService(org, prof, ex)

	for _, req := range []dto.LoginRequest{
		{Username: "jdoe", Password: "pw"},
		{OrgDisplayID: "acme", Password: "pw"},
		{OrgDisplayID: "acme", Username: "jdoe"},
		{OrgDisplayID: "   ", Username: "jdoe", Password: "pw"},
	} {
		if _, err := s.LoginPassword(context.Background(), req); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("req %+v: got %v, want ErrMissingFields", req, err)
		}
	}
}

func TestLoginPassword_ProviderDown(t *testing.T) {
	org, prof, ex := demoWorld()
	ex.err = &identity.ProviderError{StatusCode: 502, Message: "bad gateway"}
	s := testService(org, prof, ex)

	_, err := s.LoginPassword(context.Background(), dto.LoginRequest{
		OrgDisplayID: "acme", Username: "jdoe", Password: "pw",
	})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("got %v, want ErrProviderUnavailable", err)
	}
}

func TestLoginPassword_OrgLookupUsesCache(t *testing.T) {
	org, prof, ex := demoWorld()
	c := newMemCache()
	s := NewLoginService(LoginDeps{
		Organizations: org,
		Profiles:      prof,
		Identity:      ex,
		Cache:         c,
	})

	req := dto.LoginRequest{OrgDisplayID: "acme", Username: "jdoe", Password: "pw"}

	if _, err := s.LoginPassword(context.Background(), req); err != nil {
		t.Fatalf("first login: %v", err)
	}
	if _, err := s.LoginPassword(context.Background(), req); err != nil {
		t.Fatalf("second login: %v", err)
	}

	if org.calls != 1 {
		t.Fatalf("org repo hit %d times, want 1 (second lookup must come from cache)", org.calls)
	}
}
