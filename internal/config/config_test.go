package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.App.Env != "dev" {
		t.Fatalf("env = %q", c.App.Env)
	}
	if c.Server.Addr != ":8080" {
		t.Fatalf("addr = %q", c.Server.Addr)
	}
	if len(c.Server.CORSAllowedOrigins) != 1 || c.Server.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("cors = %v", c.Server.CORSAllowedOrigins)
	}
	if c.Cache.Kind != "memory" {
		t.Fatalf("cache kind = %q", c.Cache.Kind)
	}
	if c.SMTP.Port != 587 {
		t.Fatalf("smtp port = %d", c.SMTP.Port)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such.yaml")); err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
}

func TestLoad_YAMLValues(t *testing.T) {
	path := writeYAML(t, `
app:
  env: staging
server:
  addr: ":9090"
storage:
  dsn: "postgres://host/db"
identity:
  base_url: "https://id.example.com"
  anon_key: "anon"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.App.Env != "staging" {
		t.Fatalf("env = %q", c.App.Env)
	}
	if c.Server.Addr != ":9090" {
		t.Fatalf("addr = %q", c.Server.Addr)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, `
server:
  addr: ":9090"
`)
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("SERVER_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.Addr != ":7070" {
		t.Fatalf("addr = %q, env must win", c.Server.Addr)
	}
	if len(c.Server.CORSAllowedOrigins) != 2 || c.Server.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("cors = %v", c.Server.CORSAllowedOrigins)
	}
}

func TestLoad_DebugEchoForcedOffOutsideDev(t *testing.T) {
	for _, env := range []string{"staging", "prod"} {
		t.Setenv("APP_ENV", env)
		t.Setenv("AUTH_DEBUG_ECHO", "true")
		c, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if c.Auth.DebugEcho {
			t.Fatalf("debug echo must be off in %s", env)
		}
	}
}

func TestLoad_DebugEchoAllowedInDev(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("AUTH_DEBUG_ECHO", "true")
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Auth.DebugEcho {
		t.Fatal("debug echo must stay on in dev")
	}
}

func TestValidate_MissingDSN(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	c.Identity.BaseURL = "https://id.example.com"
	c.Identity.AnonKey = "anon"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing dsn")
	}
}

func TestDurationOr(t *testing.T) {
	if d := DurationOr("45s", time.Second); d != 45*time.Second {
		t.Fatalf("got %v", d)
	}
	if d := DurationOr("garbage", 2*time.Minute); d != 2*time.Minute {
		t.Fatalf("got %v", d)
	}
	if d := DurationOr("-5s", time.Second); d != time.Second {
		t.Fatalf("negative must fall back, got %v", d)
	}
}
