package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
	"github.com/pkordes/bus-ticket/backend/internal/render"
	"github.com/pkordes/bus-ticket/backend/internal/service"
)

// presetsResponse lists both preset catalogs.
type presetsResponse struct {
	ColorSchemes   []domain.ColorScheme   `json:"colorSchemes"`
	TransportCorps []domain.TransportCorp `json:"transportCorps"`
}

// fieldRequest is the body of PATCH /api/form/fields/{field}.
type fieldRequest struct {
	Value *string `json:"value"`
}

// renderResponse is the body returned by POST /api/render.
type renderResponse struct {
	Title       string              `json:"title"`
	DisplayDate string              `json:"displayDate"`
	TravelDate  *openapi_types.Date `json:"travelDate,omitempty"` // absent when the date does not parse
	Seed        string              `json:"seed"`
	Bars        []render.Bar        `json:"bars"`
	Ticket      render.Ticket       `json:"ticket"`
}

// GetPresets handles GET /api/presets.
func (s *Server) GetPresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, presetsResponse{
		ColorSchemes:   domain.ColorSchemes(),
		TransportCorps: domain.TransportCorps(),
	})
}

// GetForm handles GET /api/form: the session's record, visibility and title.
func (s *Server) GetForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.form(w, r).State())
}

// PatchField handles PATCH /api/form/fields/{field}.
func (s *Server) PatchField(w http.ResponseWriter, r *http.Request) {
	field, err := domain.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}

	var body fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDecodeError(w, err)
		return
	}
	if body.Value == nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("value is required"))
		return
	}

	f := s.form(w, r)
	if err := f.UpdateField(field, *body.Value); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{Code: "internal", Message: "internal error"}})
		return
	}
	writeJSON(w, http.StatusOK, f.State())
}

// PostAPISample handles POST /api/form/sample.
func (s *Server) PostAPISample(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, (*service.FormController).LoadSample)
}

// PostAPISubmit handles POST /api/form/submit.
func (s *Server) PostAPISubmit(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, (*service.FormController).Submit)
}

// PostAPIReset handles POST /api/form/reset.
func (s *Server) PostAPIReset(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, (*service.FormController).Reset)
}

func (s *Server) apply(w http.ResponseWriter, r *http.Request, op func(*service.FormController)) {
	f := s.form(w, r)
	op(f)
	writeJSON(w, http.StatusOK, f.State())
}

// PostRender handles POST /api/render. It lays out the posted record without
// touching any session, as if the record had just been submitted.
func (s *Server) PostRender(w http.ResponseWriter, r *http.Request) {
	rec := domain.EmptyRecord()
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeDecodeError(w, err)
		return
	}

	scheme, err := domain.LookupColorScheme(rec.ColorScheme)
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("color scheme not found"))
		return
	}
	s.rendered.WithLabelValues(scheme.ID, "json").Inc()
	ticket := render.Layout(rec, scheme, s.render)

	resp := renderResponse{
		Title:       render.TitleFor(rec, true),
		DisplayDate: render.FormatDate(rec.Date),
		Seed:        ticket.Seed,
		Bars:        ticket.Footer.Barcode.Bars,
		Ticket:      ticket,
	}
	if resp.Bars == nil {
		resp.Bars = []render.Bar{}
	}
	if d, err := time.Parse(openapi_types.DateFormat, strings.TrimSpace(rec.Date)); err == nil {
		resp.TravelDate = &openapi_types.Date{Time: d}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDecodeError(w http.ResponseWriter, err error) {
	if isTooLarge(err) {
		writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, requestBody("malformed JSON body"))
}
