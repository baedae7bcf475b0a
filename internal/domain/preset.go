package domain

import "fmt"

// DefaultColorSchemeID and DefaultTransportCorpID are the presets an empty
// form starts with.
const (
	DefaultColorSchemeID   = "red"
	DefaultTransportCorpID = "UPSRTC"
)

// ColorScheme is an immutable color preset. Colors are CSS hex strings.
type ColorScheme struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Primary   string `json:"primary"`   // header background, stamp text, body emblem
	Secondary string `json:"secondary"` // dashed separators
	Accent    string `json:"accent"`    // footer background
}

// Colors returns the ordered (primary, secondary, accent) triple.
func (c ColorScheme) Colors() [3]string {
	return [3]string{c.Primary, c.Secondary, c.Accent}
}

// TransportCorp is an immutable transport corporation preset.
type TransportCorp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
}

// colorSchemes is the fixed catalog, in display order.
var colorSchemes = []ColorScheme{
	{ID: "red", Name: "Classic Red", Primary: "#dc2626", Secondary: "#ef4444", Accent: "#fecaca"},
	{ID: "blue", Name: "Ocean Blue", Primary: "#1e40af", Secondary: "#3b82f6", Accent: "#bfdbfe"},
	{ID: "green", Name: "Forest Green", Primary: "#166534", Secondary: "#22c55e", Accent: "#bbf7d0"},
	{ID: "purple", Name: "Royal Purple", Primary: "#7c3aed", Secondary: "#a855f7", Accent: "#ddd6fe"},
	{ID: "orange", Name: "Sunset Orange", Primary: "#ea580c", Secondary: "#f97316", Accent: "#fed7aa"},
	{ID: "teal", Name: "Ocean Teal", Primary: "#0f766e", Secondary: "#14b8a6", Accent: "#ccfbf1"},
	{ID: "indigo", Name: "Deep Indigo", Primary: "#4338ca", Secondary: "#6366f1", Accent: "#c7d2fe"},
}

// transportCorps is the fixed catalog, in display order.
var transportCorps = []TransportCorp{
	{ID: "UPSRTC", Name: "UPSRTC", FullName: "Uttar Pradesh State Road Transport Corporation"},
	{ID: "HRST", Name: "HRST", FullName: "Haryana State Transport"},
	{ID: "PUNBUS", Name: "PUNBUS", FullName: "Punjab State Transport"},
	{ID: "RSRTC", Name: "RSRTC", FullName: "Rajasthan State Road Transport Corporation"},
	{ID: "JKSRTC", Name: "JKSRTC", FullName: "Jammu & Kashmir State Road Transport Corporation"},
	{ID: "DTC", Name: "DTC", FullName: "Delhi Transport Corporation"},
}

// ColorSchemes returns a copy of the color scheme catalog.
func ColorSchemes() []ColorScheme {
	return append([]ColorScheme(nil), colorSchemes...)
}

// TransportCorps returns a copy of the transport corporation catalog.
func TransportCorps() []TransportCorp {
	return append([]TransportCorp(nil), transportCorps...)
}

// LookupColorScheme returns the scheme with the given id.
// Returns ErrNotFound if the id is not in the catalog.
func LookupColorScheme(id string) (ColorScheme, error) {
	for _, c := range colorSchemes {
		if c.ID == id {
			return c, nil
		}
	}
	return ColorScheme{}, fmt.Errorf("domain.LookupColorScheme: color scheme %q: %w", id, ErrNotFound)
}

// ResolveColorScheme is LookupColorScheme with a fallback to the default
// scheme, for callers that must always draw something.
func ResolveColorScheme(id string) ColorScheme {
	if c, err := LookupColorScheme(id); err == nil {
		return c
	}
	return colorSchemes[0]
}

// LookupTransportCorp returns the corporation with the given id.
// Returns ErrNotFound if the id is not in the catalog.
func LookupTransportCorp(id string) (TransportCorp, error) {
	for _, t := range transportCorps {
		if t.ID == id {
			return t, nil
		}
	}
	return TransportCorp{}, fmt.Errorf("domain.LookupTransportCorp: transport corporation %q: %w", id, ErrNotFound)
}
