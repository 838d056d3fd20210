// Package auth contiene DTOs para endpoints de autenticación.
package auth

import (
	"encoding/json"

	"github.com/storesight/storesight/internal/domain/repository"
)

// LoginRequest representa la solicitud de login con scope de organización.
type LoginRequest struct {
	OrgDisplayID string `json:"orgDisplayid"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	// Debug dispara el eco de configuración. Solo honrado en dev.
	Debug bool `json:"debug,omitempty"`
}

// LoginResponse representa la respuesta exitosa de login.
// Token es el payload del identity provider, passthrough verbatim.
type LoginResponse struct {
	Success bool               `json:"success"`
	Token   json.RawMessage    `json:"token"`
	Profile repository.Profile `json:"profile"`
}

// DebugEchoResponse es la respuesta del modo debug (solo dev): reporta
// QUÉ está configurado, nunca los valores.
type DebugEchoResponse struct {
	Debug             bool   `json:"debug"`
	Env               string `json:"env"`
	StoreConfigured   bool   `json:"store_configured"`
	AnonKeySet        bool   `json:"anon_key_set"`
	ServiceKeySet     bool   `json:"service_key_set"`
	IdentityBaseURL   string `json:"identity_base_url"`
	JWTSecretSet      bool   `json:"jwt_secret_set"`
	BlobBucketSet     bool   `json:"blob_bucket_set"`
	SMTPHostSet       bool   `json:"smtp_host_set"`
	CacheKind         string `json:"cache_kind"`
	CORSOriginsCount  int    `json:"cors_origins_count"`
	ServerAddr        string `json:"server_addr"`
	ReadTimeoutValue  string `json:"read_timeout"`
	WriteTimeoutValue string `json:"write_timeout"`
}
