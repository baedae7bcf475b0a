package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
	"github.com/pkordes/bus-ticket/backend/internal/render"
	"github.com/pkordes/bus-ticket/backend/internal/service"
)

//go:embed templates/page.html.tmpl
var pageFS embed.FS

var pageTemplate = template.Must(template.New("page.html.tmpl").Funcs(template.FuncMap{
	"swatchX": func(i int) int { return 7 + i*16 },
}).ParseFS(pageFS, "templates/page.html.tmpl"))

// pageData feeds templates/page.html.tmpl.
type pageData struct {
	Title   string
	Record  domain.TicketRecord
	Visible bool
	Corps   []domain.TransportCorp
	Schemes []domain.ColorScheme
	Ticket  template.HTML
}

// GetPage handles GET /. It renders the form with the session's record and,
// when the ticket is visible, the ticket itself. The page title follows
// the form state.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	st := s.form(w, r).State()

	data := pageData{
		Title:   st.Title,
		Record:  st.Record,
		Visible: st.Visible,
		Corps:   domain.TransportCorps(),
		Schemes: domain.ColorSchemes(),
	}
	if st.Visible {
		svg, err := render.SVG(s.layout(st.Record, "inline"))
		if err != nil {
			slog.ErrorContext(r.Context(), "render ticket", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		data.Ticket = svg
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "render page", "error", err)
	}
}

// PostSubmit handles POST /form/submit ("Generate Ticket"). Every posted
// field is applied to the record, then the ticket is shown.
func (s *Server) PostSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		status := http.StatusBadRequest
		if isTooLarge(err) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, http.StatusText(status), status)
		return
	}
	f := s.form(w, r)
	applyPostedFields(f, r)
	f.Submit()
	redirectHome(w, r)
}

// PostSample handles POST /form/sample ("Load Sample Data").
// It fills the form but does not reveal the ticket.
func (s *Server) PostSample(w http.ResponseWriter, r *http.Request) {
	s.form(w, r).LoadSample()
	redirectHome(w, r)
}

// PostReset handles POST /form/reset ("Generate New").
func (s *Server) PostReset(w http.ResponseWriter, r *http.Request) {
	s.form(w, r).Reset()
	redirectHome(w, r)
}

// applyPostedFields copies every known field present in the form body.
// Unknown keys are ignored; browsers post nothing else.
func applyPostedFields(f *service.FormController, r *http.Request) {
	for _, field := range domain.Fields {
		if vals, ok := r.PostForm[string(field)]; ok && len(vals) > 0 {
			// Fields come from domain.Fields, so UpdateField cannot fail.
			_ = f.UpdateField(field, vals[0])
		}
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// layout resolves the record's color scheme, lays out the ticket and counts it.
func (s *Server) layout(rec domain.TicketRecord, format string) render.Ticket {
	scheme := domain.ResolveColorScheme(rec.ColorScheme)
	s.rendered.WithLabelValues(scheme.ID, format).Inc()
	return render.Layout(rec, scheme, s.render)
}
