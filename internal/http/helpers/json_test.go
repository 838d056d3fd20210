package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func TestReadJSON_OK(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"acme","extra":"ignored"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	var p payload
	if !ReadJSON(rec, req, &p) {
		t.Fatalf("ReadJSON failed: %s", rec.Body.String())
	}
	if p.Name != "acme" {
		t.Fatalf("name = %q, want acme", p.Name)
	}
}

func TestReadJSON_ContentTypeWithCharset(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "Application/JSON; charset=utf-8")
	rec := httptest.NewRecorder()

	var p payload
	if !ReadJSON(rec, req, &p) {
		t.Fatal("charset suffix must be accepted")
	}
}

func TestReadJSON_RejectsWrongContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	var p payload
	if ReadJSON(rec, req, &p) {
		t.Fatal("text/plain must be rejected")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReadJSON_RejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	var p payload
	if ReadJSON(rec, req, &p) {
		t.Fatal("malformed json must be rejected")
	}
}

func TestReadJSON_EmptyBodyIsOK(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	var p payload
	if !ReadJSON(rec, req, &p) {
		t.Fatal("empty body must decode to zero value")
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, payload{Name: "acme"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"name":"acme"}` {
		t.Fatalf("body = %s", got)
	}
}
