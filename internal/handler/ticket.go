package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pkordes/bus-ticket/backend/internal/render"
	"github.com/pkordes/bus-ticket/backend/internal/service"
)

// GetTicketSVG handles GET /ticket.svg: the session's ticket as a standalone
// SVG document. Returns 404 while no ticket is visible.
func (s *Server) GetTicketSVG(w http.ResponseWriter, r *http.Request) {
	st, ok := s.visibleState(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, s.layout(st.Record, "svg")); err != nil {
		slog.ErrorContext(r.Context(), "render ticket svg", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeBytes(w, "image/svg+xml", buf.Bytes())
}

// GetBarcodePNG handles GET /barcode.png: the session's barcode as a
// 100×35 PNG. Returns 404 while no ticket is visible.
func (s *Server) GetBarcodePNG(w http.ResponseWriter, r *http.Request) {
	st, ok := s.visibleState(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	bars := render.Barcode(render.BarcodeSeed(st.Record))
	if err := render.WriteBarcodePNG(&buf, bars); err != nil {
		slog.ErrorContext(r.Context(), "render barcode png", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeBytes(w, "image/png", buf.Bytes())
}

// visibleState returns the caller's form state if a ticket is on display.
func (s *Server) visibleState(r *http.Request) (service.State, bool) {
	f := s.existingForm(r)
	if f == nil {
		return service.State{}, false
	}
	st := f.State()
	return st, st.Visible
}

func writeBytes(w http.ResponseWriter, contentType string, b []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.Header().Set("Cache-Control", "no-store")
	//nolint:errcheck — client went away; nothing to do.
	w.Write(b)
}

// isTooLarge reports whether err came from http.MaxBytesReader.
func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
