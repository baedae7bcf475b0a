package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
)

func TestColorSchemes_catalog(t *testing.T) {
	want := map[string][3]string{
		"red":    {"#dc2626", "#ef4444", "#fecaca"},
		"blue":   {"#1e40af", "#3b82f6", "#bfdbfe"},
		"green":  {"#166534", "#22c55e", "#bbf7d0"},
		"purple": {"#7c3aed", "#a855f7", "#ddd6fe"},
		"orange": {"#ea580c", "#f97316", "#fed7aa"},
		"teal":   {"#0f766e", "#14b8a6", "#ccfbf1"},
		"indigo": {"#4338ca", "#6366f1", "#c7d2fe"},
	}

	schemes := domain.ColorSchemes()

	require.Len(t, schemes, len(want))
	assert.Equal(t, "red", schemes[0].ID)
	for _, c := range schemes {
		assert.Equal(t, want[c.ID], c.Colors(), c.ID)
		assert.NotEmpty(t, c.Name)
	}
}

func TestColorSchemes_returnsCopy(t *testing.T) {
	schemes := domain.ColorSchemes()
	schemes[0].Primary = "#000000"

	assert.Equal(t, "#dc2626", domain.ColorSchemes()[0].Primary)
}

func TestTransportCorps_catalog(t *testing.T) {
	corps := domain.TransportCorps()

	ids := make([]string, len(corps))
	for i, c := range corps {
		ids[i] = c.ID
		assert.Equal(t, c.ID, c.Name)
	}
	assert.Equal(t, []string{"UPSRTC", "HRST", "PUNBUS", "RSRTC", "JKSRTC", "DTC"}, ids)
}

func TestLookupColorScheme(t *testing.T) {
	c, err := domain.LookupColorScheme("blue")
	require.NoError(t, err)
	assert.Equal(t, "Ocean Blue", c.Name)

	_, err = domain.LookupColorScheme("magenta")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveColorScheme_fallsBackToDefault(t *testing.T) {
	assert.Equal(t, "teal", domain.ResolveColorScheme("teal").ID)
	assert.Equal(t, domain.DefaultColorSchemeID, domain.ResolveColorScheme("").ID)
}

func TestLookupTransportCorp(t *testing.T) {
	c, err := domain.LookupTransportCorp("DTC")
	require.NoError(t, err)
	assert.Equal(t, "Delhi Transport Corporation", c.FullName)

	_, err = domain.LookupTransportCorp("KSRTC")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
