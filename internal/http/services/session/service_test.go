package session

import (
	"context"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/storesight/storesight/internal/domain/repository"
)

const testSecret = "super-secret-hs256"

type fakeProfiles struct {
	byID map[string]*repository.Profile
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (*repository.Profile, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}
func (f *fakeProfiles) GetByOrgAndUsername(context.Context, string, string) (*repository.Profile, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeProfiles) ListByOrg(context.Context, string) ([]repository.Profile, error) {
	return nil, nil
}
func (f *fakeProfiles) Create(context.Context, repository.CreateProfileInput) (*repository.Profile, error) {
	return nil, repository.ErrConflict
}
func (f *fakeProfiles) Update(context.Context, string, repository.UpdateProfileInput) (*repository.Profile, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeProfiles) Delete(context.Context, string) error { return repository.ErrNotFound }

type fakeFeatures struct {
	byProfile map[string][]string
}

func (f *fakeFeatures) ListByProfile(_ context.Context, profileID string) ([]repository.FeatureAssignment, error) {
	var out []repository.FeatureAssignment
	for _, name := range f.byProfile[profileID] {
		out = append(out, repository.FeatureAssignment{ProfileID: profileID, Feature: name})
	}
	return out, nil
}
func (f *fakeFeatures) Assign(context.Context, string, string) (*repository.FeatureAssignment, error) {
	return nil, repository.ErrConflict
}
func (f *fakeFeatures) Unassign(context.Context, string, string) error {
	return repository.ErrNotFound
}

func signToken(t *testing.T, secret, sub string, exp time.Time) string {
	t.Helper()
	tok := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwtv5.MapClaims{
		"sub": sub,
		"iat": time.Now().Unix(),
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newResolver() *Resolver {
	return New(Deps{
		Profiles: &fakeProfiles{byID: map[string]*repository.Profile{
			"acc-1": {ID: "acc-1", OrganizationID: "org-1", Username: "jdoe"},
		}},
		Features: &fakeFeatures{byProfile: map[string][]string{
			"acc-1": {"cameras", "products"},
		}},
		JWTSecret: testSecret,
	})
}

func TestResolve_OK(t *testing.T) {
	r := newResolver()
	tok := signToken(t, testSecret, "acc-1", time.Now().Add(time.Hour))

	s, err := r.Resolve(context.Background(), tok)
	require.NoError(t, err)
	require.Equal(t, "acc-1", s.Profile.ID)
	require.ElementsMatch(t, []string{"cameras", "products"}, s.Features)
}

func TestResolve_WrongSecret(t *testing.T) {
	r := newResolver()
	tok := signToken(t, "other-secret", "acc-1", time.Now().Add(time.Hour))

	_, err := r.Resolve(context.Background(), tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_ExpiredToken(t *testing.T) {
	r := newResolver()
	tok := signToken(t, testSecret, "acc-1", time.Now().Add(-time.Hour))

	_, err := r.Resolve(context.Background(), tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_UnknownSubject(t *testing.T) {
	r := newResolver()
	tok := signToken(t, testSecret, "ghost", time.Now().Add(time.Hour))

	_, err := r.Resolve(context.Background(), tok)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestResolve_GarbageToken(t *testing.T) {
	r := newResolver()

	_, err := r.Resolve(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

// El alg del token lo fija el parser: un token sin firma no pasa aunque
// declare "none".
func TestResolve_AlgNoneRejected(t *testing.T) {
	r := newResolver()

	tok := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, jwtv5.MapClaims{
		"sub": "acc-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}
