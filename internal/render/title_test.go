package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
	"github.com/pkordes/bus-ticket/backend/internal/render"
)

func TestTitleFor_visibleSample(t *testing.T) {
	got := render.TitleFor(domain.SampleRecord(), true)

	assert.Equal(t, "ANAND VIHAR-MUZAFFARNAGAR-14JUN-08:30-RAJAN KAPOOR", got)
}

func TestTitleFor_hidden(t *testing.T) {
	assert.Equal(t, render.DefaultTitle, render.TitleFor(domain.SampleRecord(), false))
}

func TestTitleFor_noPassengerName(t *testing.T) {
	r := domain.SampleRecord()
	r.PassengerName = ""

	assert.Equal(t, render.DefaultTitle, render.TitleFor(r, true))
}

func TestTitleFor_keepsRawCasing(t *testing.T) {
	r := domain.SampleRecord()
	r.From = "Anand Vihar"
	r.PassengerName = "Rajan"

	assert.Equal(t, "Anand Vihar-MUZAFFARNAGAR-14JUN-08:30-Rajan", render.TitleFor(r, true))
}
