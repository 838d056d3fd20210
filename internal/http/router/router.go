// Package router ensambla el árbol de rutas HTTP del servicio.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

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
	mw "github.com/storesight/storesight/internal/http/middlewares"
	"github.com/storesight/storesight/internal/rate"
)

// Deps contiene los controllers y middlewares que el router necesita.
type Deps struct {
	Auth          *authctrl.Controllers
	Organizations *orgctrl.Controller
	Users         *usersctrl.Controller
	Cameras       *camerasctrl.Controller
	Products      *productsctrl.Controller
	Categories    *categoriesctrl.Controller
	Snapshots     *snapshotsctrl.Controller
	Session       *sessionctrl.Controller
	Contact       *contactctrl.Controller
	Health        *healthctrl.Controller

	// SessionResolver protege todo lo que cuelga del panel.
	SessionResolver mw.SessionResolver

	// ContactLimiter throttlea el formulario público de contacto por IP.
	// Nil desactiva el throttle. El login queda deliberadamente sin
	// limitar: la política del flujo de credenciales es sin lockout ni
	// conteo de intentos.
	ContactLimiter rate.Limiter

	CORSAllowedOrigins []string
}

// New arma el handler raíz con la cadena de middlewares global y las
// rutas públicas y protegidas.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithSecurityHeaders(),
		mw.WithCORS(deps.CORSAllowedOrigins),
		mw.WithLogging(),
	)

	// ─── Públicas ───

	r.Get("/healthz", deps.Health.Liveness)
	r.Get("/readyz", deps.Health.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/auth/login", deps.Auth.Login.Login)
	r.Post("/auth/register", deps.Auth.Register.Register)

	if deps.ContactLimiter != nil {
		r.With(mw.WithRateLimit(deps.ContactLimiter)).Post("/contact", deps.Contact.Send)
	} else {
		r.Post("/contact", deps.Contact.Send)
	}

	// ─── Protegidas: requieren sesión resuelta ───

	r.Group(func(pr chi.Router) {
		pr.Use(mw.WithNoStore())
		pr.Use(mw.RequireSession(deps.SessionResolver))

		pr.Get("/panel/session", deps.Session.Get)

		pr.Route("/organizations", func(or chi.Router) {
			or.Post("/create", deps.Organizations.Create)
			or.Post("/update", deps.Organizations.Update)
			or.Post("/delete", deps.Organizations.Delete)
			or.Get("/fetch", deps.Organizations.Fetch)
		})

		pr.Route("/users", func(ur chi.Router) {
			ur.Post("/create", deps.Users.Create)
			ur.Post("/update", deps.Users.Update)
			ur.Post("/delete", deps.Users.Delete)
			ur.Get("/fetch", deps.Users.Fetch)
		})

		pr.Route("/camera", func(cr chi.Router) {
			cr.Post("/create", deps.Cameras.Create)
			cr.Put("/update", deps.Cameras.Update)
			cr.Delete("/delete", deps.Cameras.Delete)
			cr.Get("/fetch", deps.Cameras.Fetch)
		})

		pr.Route("/products", func(pp chi.Router) {
			pp.Post("/create", deps.Products.Create)
			pp.Post("/update", deps.Products.Update)
			pp.Get("/fetch", deps.Products.Fetch)
			pp.Post("/uploadImage", deps.Products.UploadImage)
		})

		pr.Get("/categories/fetch", deps.Categories.Fetch)

		pr.Route("/snapshots", func(sr chi.Router) {
			sr.Get("/fetch", deps.Snapshots.Fetch)
			sr.Get("/latest/fetch", deps.Snapshots.Latest)
		})
	})

	return r
}
