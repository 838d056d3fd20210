package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPasswordGrant_PassthroughPayload(t *testing.T) {
	payload := `{"access_token":"tok-123","token_type":"bearer","expires_in":3600,"user":{"id":"u1"}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "user@acme.test", body["email"])
		require.Equal(t, "s3cret", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := New(srv.URL, "anon-key", "service-key", 5*time.Second)

	tok, err := c.PasswordGrant(context.Background(), "user@acme.test", "s3cret")
	require.NoError(t, err)
	// El payload viaja verbatim, byte a byte.
	require.JSONEq(t, payload, string(tok))
}

func TestPasswordGrant_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "anon-key", "", 5*time.Second)

	_, err := c.PasswordGrant(context.Background(), "user@acme.test", "wrong")
	require.Error(t, err)

	perr, ok := err.(*ProviderError)
	require.True(t, ok, "expected *ProviderError, got %T", err)
	require.Equal(t, http.StatusBadRequest, perr.StatusCode)
	require.Equal(t, "Invalid login credentials", perr.Message)
}

func TestCreateAccount_UsesServiceKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		require.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, true, body["email_confirm"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"acc-1","email":"new@acme.test"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "anon-key", "service-key", 5*time.Second)

	acc, err := c.CreateAccount(context.Background(), "new@acme.test", "pass-123")
	require.NoError(t, err)
	require.Equal(t, "acc-1", acc.ID)
	require.Equal(t, "new@acme.test", acc.Email)
}

func TestDeleteAccount_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"msg":"User not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "anon", "svc", 5*time.Second)

	err := c.DeleteAccount(context.Background(), "missing-id")
	require.Error(t, err)
	perr, ok := err.(*ProviderError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, perr.StatusCode)
	require.Equal(t, "User not found", perr.Message)
}
