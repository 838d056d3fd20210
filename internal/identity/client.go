// Package identity es el cliente HTTP del identity provider externo.
// El provider es el dueño de las credenciales y de la emisión de tokens;
// este servicio solo intercambia (email, password) por un token y
// administra cuentas vía la superficie admin privilegiada.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	tokenPath      = "/auth/v1/token?grant_type=password"
	adminUsersPath = "/auth/v1/admin/users"
)

// Client es el cliente HTTP del identity provider.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string

	http *http.Client
}

// New crea un nuevo cliente de identity. anonKey viaja en toda llamada;
// serviceKey solo se adjunta en endpoints admin y nunca debe salir del
// server.
func New(baseURL, anonKey, serviceKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: timeout},
	}
}

// ProviderError es una respuesta no exitosa del identity provider.
// Message lleva el texto de error del propio provider, que el login
// propaga al caller.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider: status=%d: %s", e.StatusCode, e.Message)
}

// Account es un registro de cuenta del lado del provider.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// PasswordGrant intercambia (email, password) por un token de sesión.
// En éxito el payload del provider se retorna verbatim, sin re-marshal,
// para que el caller lo pase tal cual.
func (c *Client) PasswordGrant(ctx context.Context, email, password string) (json.RawMessage, error) {
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode/100 != 2 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: extractMessage(payload)}
	}
	return json.RawMessage(payload), nil
}

// CreateAccount provisiona una cuenta en el provider usando la service
// key. La cuenta se crea confirmada para que el usuario pueda loguearse
// de inmediato.
func (c *Client) CreateAccount(ctx context.Context, email, password string) (*Account, error) {
	body, _ := json.Marshal(map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+adminUsersPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setAdminHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: extractMessage(payload)}
	}

	var acc Account
	if err := json.Unmarshal(payload, &acc); err != nil {
		return nil, fmt.Errorf("identity: decode account: %w", err)
	}
	if acc.ID == "" {
		return nil, fmt.Errorf("identity: account response missing id")
	}
	return &acc, nil
}

// DeleteAccount elimina una cuenta del provider. Se usa como paso de
// compensación cuando el insert del perfil falla después de crear la
// cuenta.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+adminUsersPath+"/"+accountID, nil)
	if err != nil {
		return err
	}
	c.setAdminHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return &ProviderError{StatusCode: resp.StatusCode, Message: extractMessage(payload)}
	}
	return nil
}

func (c *Client) setAdminHeaders(req *http.Request) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
}

// extractMessage saca un mensaje legible del payload de error del
// provider. Los providers no son consistentes con el nombre del campo.
func extractMessage(payload []byte) string {
	var m map[string]any
	if json.Unmarshal(payload, &m) == nil {
		for _, k := range []string{"error_description", "msg", "message", "error"} {
			if s, ok := m[k].(string); ok && s != "" {
				return s
			}
		}
	}
	s := strings.TrimSpace(string(payload))
	if s == "" {
		return "unknown provider error"
	}
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
