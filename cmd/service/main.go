// El binario service levanta el backend del panel: storage Postgres
// hosteado, identity provider externo, cache, blob storage y SMTP,
// detrás del router HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/storesight/storesight/internal/blob"
	credis "github.com/storesight/storesight/internal/cache/redis"
	"github.com/storesight/storesight/internal/config"
	"github.com/storesight/storesight/internal/email"
	authctrl "github.com/storesight/storesight/internal/http/controllers/auth"
	camerasctrl "github.com/storesight/storesight/internal/http/controllers/cameras"
	categoriesctrl "github.com/storesight/storesight/internal/http/controllers/categories"
	contactctrl "github.com/storesight/storesight/internal/http/controllers/contact"
	healthctrl "github.com/storesight/storesight/internal/http/controllers/health"
	orgctrl "github.com/storesight/storesight/internal/http/controllers/organizations"
	productsctrl "github.com/storesight/storesight/internal/http/controllers/products"
	sessionctrl "github.com/storesight/storesight/internal/http/controllers/session"
	snapshotsctrl "github.com/storesight/storesight/internal/http/controllers/snapshots"
	usersctrl "github.com/storesight/storesight/internal/http/controllers/users"
	authdto "github.com/storesight/storesight/internal/http/dto/auth"
	"github.com/storesight/storesight/internal/http/router"
	"github.com/storesight/storesight/internal/http/server"
	authsvc "github.com/storesight/storesight/internal/http/services/auth"
	camerassvc "github.com/storesight/storesight/internal/http/services/cameras"
	categoriessvc "github.com/storesight/storesight/internal/http/services/categories"
	contactsvc "github.com/storesight/storesight/internal/http/services/contact"
	healthsvc "github.com/storesight/storesight/internal/http/services/health"
	orgsvc "github.com/storesight/storesight/internal/http/services/organizations"
	productssvc "github.com/storesight/storesight/internal/http/services/products"
	sessionsvc "github.com/storesight/storesight/internal/http/services/session"
	snapshotssvc "github.com/storesight/storesight/internal/http/services/snapshots"
	userssvc "github.com/storesight/storesight/internal/http/services/users"
	"github.com/storesight/storesight/internal/identity"
	"github.com/storesight/storesight/internal/infra/cachefactory"
	"github.com/storesight/storesight/internal/metrics"
	"github.com/storesight/storesight/internal/observability/logger"
	"github.com/storesight/storesight/internal/rate"
	"github.com/storesight/storesight/internal/store/pg"
)

func main() {
	configPath := flag.String("config", "config.yaml", "ruta del archivo de configuración")
	flag.Parse()

	// .env es opcional; las variables reales del entorno tienen prioridad.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.L().Fatal("config load failed", logger.Err(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.L().Fatal("invalid config", logger.Err(err))
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "storesight",
		Version:     os.Getenv("SERVICE_VERSION"),
	})
	defer func() { _ = logger.Sync() }()

	log := logger.L()

	if err := metrics.Register(nil); err != nil {
		log.Fatal("metrics registration failed", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := pg.Connect(ctx, pg.Config{
		DSN:             cfg.Storage.DSN,
		MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
		ConnMaxLifetime: config.DurationOr(cfg.Storage.Postgres.ConnMaxLifetime, 30*time.Minute),
	})
	cancel()
	if err != nil {
		log.Fatal("store connect failed", logger.Err(err))
	}
	defer store.Close()

	var fcfg cachefactory.Config
	fcfg.Kind = cfg.Cache.Kind
	fcfg.Redis.Addr = cfg.Cache.Redis.Addr
	fcfg.Redis.DB = cfg.Cache.Redis.DB
	fcfg.Redis.Prefix = cfg.Cache.Redis.Prefix
	fcfg.Memory.DefaultTTL = cfg.Cache.Memory.DefaultTTL
	appCache := cachefactory.Open(fcfg)

	// Throttle del formulario de contacto por IP. Comparte el Redis del
	// cache cuando hay uno; en memoria solo sirve para una instancia.
	var contactLimiter rate.Limiter
	if max := cfg.Contact.RateMax; max > 0 {
		window := config.DurationOr(cfg.Contact.RateWindow, time.Minute)
		if rc, ok := appCache.(*credis.Cache); ok {
			contactLimiter = rate.NewRedisLimiter(rc.Client(), "rl:contact:", max, window)
		} else {
			contactLimiter = rate.NewMemoryLimiter(max, window)
		}
	}

	idClient := identity.New(
		cfg.Identity.BaseURL,
		cfg.Identity.AnonKey,
		cfg.Identity.ServiceKey,
		config.DurationOr(cfg.Identity.Timeout, 10*time.Second),
	)

	// Blob storage: sin bucket configurado, la subida de imágenes queda
	// deshabilitada pero el resto del servicio funciona.
	var uploader blob.Uploader
	if cfg.Blob.Bucket != "" {
		up, err := blob.NewS3(blob.Config{
			Bucket:        cfg.Blob.Bucket,
			Prefix:        cfg.Blob.Prefix,
			Region:        cfg.Blob.Region,
			Endpoint:      cfg.Blob.Endpoint,
			AccessKey:     cfg.Blob.AccessKey,
			SecretKey:     cfg.Blob.SecretKey,
			PublicBaseURL: cfg.Blob.PublicBaseURL,
		})
		if err != nil {
			log.Fatal("blob storage init failed", logger.Err(err))
		}
		uploader = up
	} else {
		log.Warn("blob bucket not configured, image uploads disabled")
	}

	var sender email.Sender
	if cfg.SMTP.Host != "" {
		s := email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)
		s.InsecureSkipVerify = cfg.SMTP.InsecureSkipVerify
		sender = s
	} else {
		log.Warn("smtp not configured, contact form disabled")
	}

	// ─── Services ───

	loginSvc := authsvc.NewLoginService(authsvc.LoginDeps{
		Organizations: store.Organizations(),
		Profiles:      store.Profiles(),
		Identity:      idClient,
		Cache:         appCache,
	})
	usersSvc := userssvc.New(userssvc.Deps{
		Profiles:      store.Profiles(),
		Organizations: store.Organizations(),
		Features:      store.Features(),
		Identity:      idClient,
	})
	registerSvc := authsvc.NewRegisterService(usersSvc)
	orgSvc := orgsvc.New(orgsvc.Deps{
		Organizations: store.Organizations(),
		Cache:         appCache,
	})
	camerasSvc := camerassvc.New(camerassvc.Deps{
		Cameras:       store.Cameras(),
		Organizations: store.Organizations(),
	})
	productsSvc := productssvc.New(productssvc.Deps{
		Products: store.Products(),
		Uploader: uploader,
	})
	categoriesSvc := categoriessvc.New(store.Categories())
	snapshotsSvc := snapshotssvc.New(store.Snapshots())
	contactSvc := contactsvc.New(contactsvc.Deps{
		Sender: sender,
		Inbox:  cfg.SMTP.ContactInbox,
	})
	sessionResolver := sessionsvc.New(sessionsvc.Deps{
		Profiles:  store.Profiles(),
		Features:  store.Features(),
		JWTSecret: cfg.Identity.JWTSecret,
	})
	healthSvc := healthsvc.New(healthsvc.Deps{
		DBCheck:         store.Ping,
		IdentityBaseURL: cfg.Identity.BaseURL,
	})

	// Eco de configuración para login debug. Solo existe en dev.
	var echo func() *authdto.DebugEchoResponse
	if cfg.Auth.DebugEcho {
		echo = debugEcho(cfg)
		log.Warn("auth debug echo is ENABLED")
	}

	handler := router.New(router.Deps{
		Auth:            authctrl.NewControllers(loginSvc, registerSvc, echo),
		Organizations:   orgctrl.New(orgSvc),
		Users:           usersctrl.New(usersSvc),
		Cameras:         camerasctrl.New(camerasSvc),
		Products:        productsctrl.New(productsSvc),
		Categories:      categoriesctrl.New(categoriesSvc),
		Snapshots:       snapshotsctrl.New(snapshotsSvc),
		Session:         sessionctrl.New(),
		Contact:         contactctrl.New(contactSvc),
		Health:          healthctrl.New(healthSvc),
		SessionResolver: sessionResolver,
		ContactLimiter:  contactLimiter,

		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})

	srv := server.New(server.Config{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  config.DurationOr(cfg.Server.ReadTimeout, 10*time.Second),
		WriteTimeout: config.DurationOr(cfg.Server.WriteTimeout, 30*time.Second),
	}, handler)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("http server failed", logger.Err(err))
		}
	case sig := <-stop:
		log.Info("signal received, draining", logger.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", logger.Err(err))
		}
	}
}

// debugEcho reporta QUÉ está configurado, nunca los valores.
func debugEcho(cfg *config.Config) func() *authdto.DebugEchoResponse {
	return func() *authdto.DebugEchoResponse {
		return &authdto.DebugEchoResponse{
			Debug:             true,
			Env:               cfg.App.Env,
			StoreConfigured:   cfg.Storage.DSN != "",
			AnonKeySet:        cfg.Identity.AnonKey != "",
			ServiceKeySet:     cfg.Identity.ServiceKey != "",
			IdentityBaseURL:   cfg.Identity.BaseURL,
			JWTSecretSet:      cfg.Identity.JWTSecret != "",
			BlobBucketSet:     cfg.Blob.Bucket != "",
			SMTPHostSet:       cfg.SMTP.Host != "",
			CacheKind:         cfg.Cache.Kind,
			CORSOriginsCount:  len(cfg.Server.CORSAllowedOrigins),
			ServerAddr:        cfg.Server.Addr,
			ReadTimeoutValue:  cfg.Server.ReadTimeout,
			WriteTimeoutValue: cfg.Server.WriteTimeout,
		}
	}
}
