// Package session resuelve bearer tokens del identity provider a una
// sesión del panel: verifica la firma HS256 del token y arma en paralelo
// el perfil y el set de features de la cuenta.
package session

import (
	"context"
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/errgroup"

	"github.com/storesight/storesight/internal/domain/repository"
	"github.com/storesight/storesight/internal/http/middlewares"
	"github.com/storesight/storesight/internal/observability/logger"
)

// Deps contiene las dependencias del resolver de sesión.
type Deps struct {
	Profiles repository.ProfileRepository
	Features repository.FeatureRepository
	// JWTSecret es el secreto HS256 con el que el provider firma los
	// access tokens. El provider emite, este servicio solo verifica.
	JWTSecret string
	// Leeway tolera clock skew al validar exp/nbf. Default 30s.
	Leeway time.Duration
}

// Resolver implementa middlewares.SessionResolver.
type Resolver struct {
	deps   Deps
	parser *jwtv5.Parser
}

// New crea el resolver de sesión.
func New(deps Deps) *Resolver {
	if deps.Leeway <= 0 {
		deps.Leeway = 30 * time.Second
	}
	return &Resolver{
		deps: deps,
		parser: jwtv5.NewParser(
			jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
			jwtv5.WithExpirationRequired(),
			jwtv5.WithLeeway(deps.Leeway),
		),
	}
}

// Errores de sesión. Todos terminan en el mismo 401 con redirect: el
// shell no distingue por qué la sesión no resolvió.
var (
	ErrInvalidToken    = fmt.Errorf("invalid session token")
	ErrProfileNotFound = fmt.Errorf("no profile for token subject")
)

// Resolve verifica el token y retorna perfil + features del sujeto.
func (r *Resolver) Resolve(ctx context.Context, bearer string) (*middlewares.SessionData, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("session"),
		logger.Op("Resolve"),
	)

	// Paso 1: Verificar firma y claims del token
	claims := jwtv5.MapClaims{}
	_, err := r.parser.ParseWithClaims(bearer, claims, func(t *jwtv5.Token) (any, error) {
		return []byte(r.deps.JWTSecret), nil
	})
	if err != nil {
		log.Debug("token verification failed", logger.Err(err))
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		log.Debug("token without subject")
		return nil, ErrInvalidToken
	}

	// Paso 2: Perfil y features en paralelo. Si cualquiera falla, la
	// sesión entera no resuelve.
	var (
		profile  *repository.Profile
		features []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := r.deps.Profiles.GetByID(gctx, sub)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrProfileNotFound
			}
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		list, err := r.deps.Features.ListByProfile(gctx, sub)
		if err != nil {
			return err
		}
		features = make([]string, 0, len(list))
		for _, a := range list {
			features = append(features, a.Feature)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Debug("session assembly failed", logger.ProfileID(sub), logger.Err(err))
		return nil, err
	}

	return &middlewares.SessionData{
		Profile:  *profile,
		Features: features,
	}, nil
}
