// Package pg implementa los repositorios del dominio sobre la base
// Postgres hosteada, usando pgxpool. Este proceso nunca es dueño de los
// datos: solo lee y escribe filas en el servicio externo.
package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storesight/storesight/internal/domain/repository"
)

// Config configura el pool de conexiones.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store agrupa los repositorios Postgres y el pool compartido.
type Store struct {
	pool *pgxpool.Pool

	organizations *organizationRepo
	profiles      *profileRepo
	cameras       *cameraRepo
	products      *productRepo
	categories    *categoryRepo
	snapshots     *snapshotRepo
	features      *featureRepo
}

// Connect abre el pool y verifica conectividad.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("pg: parse DSN: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	} else {
		poolCfg.MaxConns = 10
	}
	if cfg.MaxIdleConns > 0 {
		poolCfg.MinConns = int32(cfg.MaxIdleConns)
	} else {
		poolCfg.MinConns = 2
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pg: create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg: ping failed: %w", err)
	}

	return &Store{
		pool:          pool,
		organizations: &organizationRepo{pool: pool},
		profiles:      &profileRepo{pool: pool},
		cameras:       &cameraRepo{pool: pool},
		products:      &productRepo{pool: pool},
		categories:    &categoryRepo{pool: pool},
		snapshots:     &snapshotRepo{pool: pool},
		features:      &featureRepo{pool: pool},
	}, nil
}

// Ping verifica la conexión (para /readyz).
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close cierra el pool.
func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Organizations() repository.OrganizationRepository { return s.organizations }
func (s *Store) Profiles() repository.ProfileRepository           { return s.profiles }
func (s *Store) Cameras() repository.CameraRepository             { return s.cameras }
func (s *Store) Products() repository.ProductRepository           { return s.products }
func (s *Store) Categories() repository.CategoryRepository        { return s.categories }
func (s *Store) Snapshots() repository.SnapshotRepository         { return s.snapshots }
func (s *Store) Features() repository.FeatureRepository           { return s.features }

// mapError traduce errores de pgx a los errores centinela del dominio.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return repository.ErrConflict
		case "23503": // foreign_key_violation
			return repository.ErrInvalidInput
		}
	}
	return err
}

// nullIfEmpty retorna nil si el string es vacío.
// Útil para insertar campos opcionales como NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
