// Package config carga la configuración del servicio desde YAML y
// variables de entorno. El YAML es opcional; cualquier variable de
// entorno presente pisa el valor del archivo.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | staging | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Server struct {
		Addr               string   `yaml:"addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
		ReadTimeout        string   `yaml:"read_timeout"`
		WriteTimeout       string   `yaml:"write_timeout"`
	} `yaml:"server"`

	Storage struct {
		// DSN de la base Postgres hosteada (el servicio nunca es dueño de los datos).
		DSN      string `yaml:"dsn"`
		Postgres struct {
			MaxOpenConns    int    `yaml:"max_open_conns"`
			MaxIdleConns    int    `yaml:"max_idle_conns"`
			ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		} `yaml:"postgres"`
	} `yaml:"storage"`

	// Identity es el identity provider externo (emisión y validación de tokens).
	Identity struct {
		BaseURL string `yaml:"base_url"`
		// AnonKey es la API key anónima (puede viajar al browser).
		AnonKey string `yaml:"anon_key"`
		// ServiceKey es la key con privilegios elevados (solo server-side).
		ServiceKey string `yaml:"service_key"`
		// JWTSecret es el secreto HS256 con el que el provider firma los access tokens.
		JWTSecret string `yaml:"jwt_secret"`
		Timeout   string `yaml:"timeout"`
	} `yaml:"identity"`

	Blob struct {
		Bucket    string `yaml:"bucket"`
		Prefix    string `yaml:"prefix"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		// PublicBaseURL es la base con la que se construye la URL pública de un objeto.
		PublicBaseURL string `yaml:"public_base_url"`
	} `yaml:"blob"`

	Cache struct {
		Kind  string `yaml:"kind"` // memory | redis
		Redis struct {
			Addr   string `yaml:"addr"`
			DB     int    `yaml:"db"`
			Prefix string `yaml:"prefix"`
		} `yaml:"redis"`
		Memory struct {
			DefaultTTL string `yaml:"default_ttl"`
		} `yaml:"memory"`
	} `yaml:"cache"`

	SMTP struct {
		Host               string `yaml:"host"`
		Port               int    `yaml:"port"`
		Username           string `yaml:"username"`
		Password           string `yaml:"password"`
		From               string `yaml:"from"`
		ContactInbox       string `yaml:"contact_inbox"`
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify"` // sólo dev
	} `yaml:"smtp"`

	Contact struct {
		// RateMax limita envíos del formulario por IP en ventana fija.
		// 0 desactiva el throttle.
		RateMax    int    `yaml:"rate_max"`
		RateWindow string `yaml:"rate_window"`
	} `yaml:"contact"`

	Auth struct {
		// DebugEcho habilita el eco de configuración vía {"debug":true} en /auth/login.
		// Se fuerza a false fuera de dev.
		DebugEcho bool `yaml:"debug_echo"`
	} `yaml:"auth"`
}

// Load lee el YAML en path (si existe) y aplica overrides de entorno.
// Con path vacío o inexistente se parte de los defaults.
func Load(path string) (*Config, error) {
	var c Config

	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	c.applyEnvOverrides()
	c.applyDefaults()

	// Guardia dura: fuera de dev NUNCA se ecoa configuración por /auth/login.
	if !strings.EqualFold(c.App.Env, "dev") {
		c.Auth.DebugEcho = false
	}

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{"*"}
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "30s"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.Memory.DefaultTTL == "" {
		c.Cache.Memory.DefaultTTL = "2m"
	}
	if c.Identity.Timeout == "" {
		c.Identity.Timeout = "10s"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.Contact.RateWindow == "" {
		c.Contact.RateWindow = "1m"
	}
}

// applyEnvOverrides: pisa el YAML con variables de entorno.
func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(v)
	}
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.Log.Level = v
	}

	if v, ok := getEnvStr("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvCSV("SERVER_CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSAllowedOrigins = v
	}

	if v, ok := getEnvStr("STORAGE_DSN"); ok {
		c.Storage.DSN = v
	}
	if v, ok := getEnvInt("STORAGE_PG_MAX_OPEN_CONNS"); ok {
		c.Storage.Postgres.MaxOpenConns = v
	}
	if v, ok := getEnvInt("STORAGE_PG_MAX_IDLE_CONNS"); ok {
		c.Storage.Postgres.MaxIdleConns = v
	}

	if v, ok := getEnvStr("IDENTITY_BASE_URL"); ok {
		c.Identity.BaseURL = v
	}
	if v, ok := getEnvStr("IDENTITY_ANON_KEY"); ok {
		c.Identity.AnonKey = v
	}
	if v, ok := getEnvStr("IDENTITY_SERVICE_KEY"); ok {
		c.Identity.ServiceKey = v
	}
	if v, ok := getEnvStr("IDENTITY_JWT_SECRET"); ok {
		c.Identity.JWTSecret = v
	}

	if v, ok := getEnvStr("BLOB_BUCKET"); ok {
		c.Blob.Bucket = v
	}
	if v, ok := getEnvStr("BLOB_PREFIX"); ok {
		c.Blob.Prefix = v
	}
	if v, ok := getEnvStr("BLOB_REGION"); ok {
		c.Blob.Region = v
	}
	if v, ok := getEnvStr("BLOB_ENDPOINT"); ok {
		c.Blob.Endpoint = v
	}
	if v, ok := getEnvStr("BLOB_ACCESS_KEY"); ok {
		c.Blob.AccessKey = v
	}
	if v, ok := getEnvStr("BLOB_SECRET_KEY"); ok {
		c.Blob.SecretKey = v
	}
	if v, ok := getEnvStr("BLOB_PUBLIC_BASE_URL"); ok {
		c.Blob.PublicBaseURL = v
	}

	if v, ok := getEnvStr("CACHE_KIND"); ok {
		c.Cache.Kind = v
	}
	if v, ok := getEnvStr("CACHE_REDIS_ADDR"); ok {
		c.Cache.Redis.Addr = v
	}
	if v, ok := getEnvInt("CACHE_REDIS_DB"); ok {
		c.Cache.Redis.DB = v
	}
	if v, ok := getEnvStr("CACHE_REDIS_PREFIX"); ok {
		c.Cache.Redis.Prefix = v
	}

	if v, ok := getEnvStr("SMTP_HOST"); ok {
		c.SMTP.Host = v
	}
	if v, ok := getEnvInt("SMTP_PORT"); ok {
		c.SMTP.Port = v
	}
	if v, ok := getEnvStr("SMTP_USERNAME"); ok {
		c.SMTP.Username = v
	}
	if v, ok := getEnvStr("SMTP_PASSWORD"); ok {
		c.SMTP.Password = v
	}
	if v, ok := getEnvStr("SMTP_FROM"); ok {
		c.SMTP.From = v
	}
	if v, ok := getEnvStr("SMTP_CONTACT_INBOX"); ok {
		c.SMTP.ContactInbox = v
	}

	if v, ok := getEnvBool("AUTH_DEBUG_ECHO"); ok {
		c.Auth.DebugEcho = v
	}
	if v, ok := getEnvInt("CONTACT_RATE_MAX"); ok {
		c.Contact.RateMax = v
	}
	if v, ok := getEnvStr("CONTACT_RATE_WINDOW"); ok {
		c.Contact.RateWindow = v
	}
}

// Validate valida los valores críticos de configuración.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.DSN) == "" {
		return fmt.Errorf("config: storage.dsn is required")
	}
	if strings.TrimSpace(c.Identity.BaseURL) == "" {
		return fmt.Errorf("config: identity.base_url is required")
	}
	if strings.TrimSpace(c.Identity.AnonKey) == "" {
		return fmt.Errorf("config: identity.anon_key is required")
	}
	return nil
}

// DurationOr parsea un string de duración con fallback.
func DurationOr(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(s)); err == nil && d > 0 {
		return d
	}
	return def
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}

func getEnvCSV(key string) ([]string, bool) {
	if s, ok := getEnvStr(key); ok {
		if strings.TrimSpace(s) == "" {
			return []string{}, true
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out, true
	}
	return nil, false
}
