package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
	"github.com/pkordes/bus-ticket/backend/internal/render"
	"github.com/pkordes/bus-ticket/backend/internal/service"
)

func TestFormController_startsEmptyAndHidden(t *testing.T) {
	c := service.NewFormController()

	st := c.State()

	assert.Equal(t, domain.EmptyRecord(), st.Record)
	assert.False(t, st.Visible)
	assert.Equal(t, render.DefaultTitle, st.Title)
}

func TestFormController_UpdateField(t *testing.T) {
	c := service.NewFormController()

	require.NoError(t, c.UpdateField(domain.FieldPassengerName, "Asha"))
	require.NoError(t, c.UpdateField(domain.FieldPrice, "-3")) // not validated

	st := c.State()
	assert.Equal(t, "Asha", st.Record.PassengerName)
	assert.Equal(t, "-3", st.Record.Price)
}

func TestFormController_UpdateField_unknownField(t *testing.T) {
	c := service.NewFormController()

	err := c.UpdateField(domain.Field("fare"), "1")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.EmptyRecord(), c.State().Record)
}

func TestFormController_LoadSample_overwritesAndHides(t *testing.T) {
	c := service.NewFormController()
	require.NoError(t, c.UpdateField(domain.FieldSeatNumber, "99Z"))
	require.NoError(t, c.UpdateField(domain.FieldColorScheme, "teal"))
	c.Submit()

	c.LoadSample()

	st := c.State()
	assert.Equal(t, domain.SampleRecord(), st.Record)
	assert.False(t, st.Visible)
	assert.Equal(t, render.DefaultTitle, st.Title)
}

func TestFormController_Submit_setsTitle(t *testing.T) {
	c := service.NewFormController()
	c.LoadSample()

	c.Submit()

	st := c.State()
	assert.True(t, st.Visible)
	assert.Equal(t, "ANAND VIHAR-MUZAFFARNAGAR-14JUN-08:30-RAJAN KAPOOR", st.Title)
}

func TestFormController_Reset(t *testing.T) {
	c := service.NewFormController()
	c.LoadSample()
	require.NoError(t, c.UpdateField(domain.FieldTransportCorp, "DTC"))
	c.Submit()

	c.Reset()

	st := c.State()
	assert.Equal(t, domain.EmptyRecord(), st.Record)
	assert.Equal(t, "red", st.Record.ColorScheme)
	assert.Equal(t, "UPSRTC", st.Record.TransportCorp)
	assert.False(t, st.Visible)
	assert.Equal(t, render.DefaultTitle, st.Title)
}

func TestFormController_stateIsSnapshot(t *testing.T) {
	c := service.NewFormController()
	c.LoadSample()
	c.Submit()
	before := c.State()

	require.NoError(t, c.UpdateField(domain.FieldPassengerName, "SOMEONE ELSE"))

	assert.Equal(t, "RAJAN KAPOOR", before.Record.PassengerName)
}

func TestFormController_Observe_firesSynchronously(t *testing.T) {
	c := service.NewFormController()
	var titles []string
	c.Observe(func(st service.State) { titles = append(titles, st.Title) })

	c.LoadSample()
	c.Submit()
	require.NoError(t, c.UpdateField(domain.FieldPassengerName, "ASHA"))
	require.NoError(t, c.UpdateField(domain.FieldPassengerName, ""))
	c.Reset()

	assert.Equal(t, []string{
		render.DefaultTitle, // initial call from Observe
		render.DefaultTitle, // sample loaded, still hidden
		"ANAND VIHAR-MUZAFFARNAGAR-14JUN-08:30-RAJAN KAPOOR",
		"ANAND VIHAR-MUZAFFARNAGAR-14JUN-08:30-ASHA",
		render.DefaultTitle, // visible but no passenger name
		render.DefaultTitle,
	}, titles)
}
