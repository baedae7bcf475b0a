package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
)

// busIconPath is a 24×24 bus glyph.
const busIconPath = "M4 16c0 .88.39 1.67 1 2.22V20c0 .55.45 1 1 1h1c.55 0 1-.45 1-1v-1h8v1c0 .55.45 1 1 1h1c.55 0 1-.45 1-1v-1.78c.61-.55 1-1.34 1-2.22V6c0-3.5-3.58-4-8-4s-8 .5-8 4v10zm3.5 1c-.83 0-1.5-.67-1.5-1.5S6.67 14 7.5 14s1.5.67 1.5 1.5S8.33 17 7.5 17zm9 0c-.83 0-1.5-.67-1.5-1.5s.67-1.5 1.5-1.5 1.5.67 1.5 1.5-.67 1.5-1.5 1.5zm1.5-6H6V6h12v5z"

//go:embed templates/ticket.svg.tmpl
var templateFS embed.FS

var svgTemplate = template.Must(template.New("svg").Funcs(template.FuncMap{
	"num":     formatNum,
	"scale":   func(size float64) string { return formatNum(size / 24) },
	"inset":   func(v float64) float64 { return v - 1 },
	"busPath": func() string { return busIconPath },
	"points":  formatPoints,
}).ParseFS(templateFS, "templates/ticket.svg.tmpl"))

// WriteSVG draws t as a standalone SVG document.
func WriteSVG(w io.Writer, t Ticket) error {
	if err := svgTemplate.ExecuteTemplate(w, "ticket", t); err != nil {
		return fmt.Errorf("render.WriteSVG: %w", err)
	}
	return nil
}

// SVG returns t as markup that is safe to embed in an HTML page.
func SVG(t Ticket) (template.HTML, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, t); err != nil {
		return "", err
	}
	//nolint:gosec — produced by html/template, all values escaped.
	return template.HTML(buf.String()), nil
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPoints(pts [3]Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = formatNum(p.X) + "," + formatNum(p.Y)
	}
	return strings.Join(parts, " ")
}
