// El binario seed puebla la base con datos de desarrollo: una
// organización demo, categorías base, cámaras y productos de ejemplo.
// El usuario demo se crea vía el identity provider para que la cuenta
// y el perfil queden en sintonía, igual que en producción.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/storesight/storesight/internal/config"
	"github.com/storesight/storesight/internal/identity"
)

func strEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	configPath := flag.String("config", "config.yaml", "ruta del archivo de configuración")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	orgDisplayID := strEnv("SEED_ORG_DISPLAYID", "demo")
	orgName := strEnv("SEED_ORG_NAME", "Demo Store")
	username := strEnv("SEED_USERNAME", "admin")
	userEmail := strEnv("SEED_EMAIL", "admin@demo.local")
	userPass := strEnv("SEED_PASSWORD", "demo-password-1")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Storage.DSN)
	if err != nil {
		log.Fatalf("pgxpool: %v", err)
	}
	defer pool.Close()

	// Organización demo
	var orgID string
	err = pool.QueryRow(ctx, `
		INSERT INTO organization (displayid, name, contact_email)
		VALUES ($1, $2, $3)
		ON CONFLICT (displayid) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		orgDisplayID, orgName, userEmail,
	).Scan(&orgID)
	if err != nil {
		log.Fatalf("seed organization: %v", err)
	}
	log.Printf("organization %q -> %s", orgDisplayID, orgID)

	// Categorías base
	for _, name := range []string{"Beverages", "Snacks", "Produce", "Household"} {
		if _, err := pool.Exec(ctx, `
			INSERT INTO category (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING`, name); err != nil {
			log.Fatalf("seed category %s: %v", name, err)
		}
	}
	log.Println("categories seeded")

	// Cámaras de ejemplo
	for _, cam := range []struct{ name, location string }{
		{"entrance", "front door"},
		{"aisle-3", "aisle 3, north"},
		{"checkout", "registers"},
	} {
		if _, err := pool.Exec(ctx, `
			INSERT INTO camera (organization_id, name, location)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (
				SELECT 1 FROM camera WHERE organization_id = $1 AND name = $2
			)`, orgID, cam.name, cam.location); err != nil {
			log.Fatalf("seed camera %s: %v", cam.name, err)
		}
	}
	log.Println("cameras seeded")

	// Usuario demo: cuenta en el provider + perfil local
	idc := identity.New(
		cfg.Identity.BaseURL,
		cfg.Identity.AnonKey,
		cfg.Identity.ServiceKey,
		config.DurationOr(cfg.Identity.Timeout, 10*time.Second),
	)
	account, err := idc.CreateAccount(ctx, userEmail, userPass)
	if err != nil {
		// Cuenta ya existente u otro rechazo del provider: se reporta y
		// se sigue, el seed es idempotente best-effort.
		log.Printf("provider account not created (may already exist): %v", err)
	} else {
		if _, err := pool.Exec(ctx, `
			INSERT INTO profile (id, organization_id, username, email, role, full_name)
			VALUES ($1, $2, $3, $4, 'admin', 'Demo Admin')
			ON CONFLICT (id) DO NOTHING`,
			account.ID, orgID, username, userEmail); err != nil {
			log.Fatalf("seed profile: %v", err)
		}
		log.Printf("demo user %q -> %s", username, account.ID)
	}

	log.Println("seed completed")
}
