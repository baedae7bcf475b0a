// Package handler implements the HTTP handlers for the bus ticket generator.
// All handlers are methods on Server. Methods are split into files by surface
// (page.go for the HTML form, ticket.go for drawn tickets, api.go for JSON)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pkordes/bus-ticket/backend/internal/render"
	"github.com/pkordes/bus-ticket/backend/internal/service"
	"github.com/pkordes/bus-ticket/backend/spec"
)

// SessionStorer hands out one FormController per browser session.
// Defining the interface here (in the consumer package) lets handler tests
// inject a store without the pruning machinery.
type SessionStorer interface {
	Create() (uuid.UUID, *service.FormController)
	Get(id uuid.UUID) (*service.FormController, error)
}

// Options configures a Server.
type Options struct {
	// SessionCookie names the cookie carrying the session id.
	SessionCookie string
	// CurrencySymbol prefixes prices on rendered tickets.
	CurrencySymbol string
	// Registerer receives the ticket metrics. Nil uses a private registry.
	Registerer prometheus.Registerer
	// APIMiddleware wraps the /api routes only (e.g. CORS).
	APIMiddleware []func(http.Handler) http.Handler
}

// Server serves the form page, rendered tickets and the JSON API.
type Server struct {
	sessions SessionStorer
	cookie   string
	render   render.Options
	apiMW    []func(http.Handler) http.Handler
	rendered *prometheus.CounterVec
}

// NewServer constructs the Server with all its dependencies.
func NewServer(sessions SessionStorer, opts Options) *Server {
	if opts.SessionCookie == "" {
		opts.SessionCookie = "ticket_session"
	}
	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	rendered := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_rendered_total",
			Help: "Tickets drawn, by color scheme and output format.",
		},
		[]string{"scheme", "format"},
	)
	reg.MustRegister(rendered)

	return &Server{
		sessions: sessions,
		cookie:   opts.SessionCookie,
		render:   render.Options{CurrencySymbol: opts.CurrencySymbol},
		apiMW:    opts.APIMiddleware,
		rendered: rendered,
	}
}

// Routes returns the router for every endpoint the Server owns.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Get("/", s.GetPage)
	r.Post("/form/submit", s.PostSubmit)
	r.Post("/form/sample", s.PostSample)
	r.Post("/form/reset", s.PostReset)

	r.Get("/ticket.svg", s.GetTicketSVG)
	r.Get("/barcode.png", s.GetBarcodePNG)

	r.Route("/api", func(r chi.Router) {
		for _, mw := range s.apiMW {
			r.Use(mw)
		}
		r.Get("/presets", s.GetPresets)
		r.Get("/form", s.GetForm)
		r.Patch("/form/fields/{field}", s.PatchField)
		r.Post("/form/sample", s.PostAPISample)
		r.Post("/form/submit", s.PostAPISubmit)
		r.Post("/form/reset", s.PostAPIReset)
		r.Post("/render", s.PostRender)
	})

	return r
}

// form returns the caller's FormController, starting a new session (and
// setting its cookie) when the request carries none or an unknown one.
func (s *Server) form(w http.ResponseWriter, r *http.Request) *service.FormController {
	if f := s.existingForm(r); f != nil {
		return f
	}
	id, f := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return f
}

// existingForm returns the caller's FormController or nil, never creating one.
func (s *Server) existingForm(r *http.Request) *service.FormController {
	c, err := r.Cookie(s.cookie)
	if err != nil {
		return nil
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return nil
	}
	f, err := s.sessions.Get(id)
	if err != nil {
		return nil
	}
	return f
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
