package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
)

func TestEmptyRecord_defaults(t *testing.T) {
	r := domain.EmptyRecord()

	assert.Equal(t, domain.TicketRecord{ColorScheme: "red", TransportCorp: "UPSRTC"}, r)
}

func TestSampleRecord_literal(t *testing.T) {
	r := domain.SampleRecord()

	assert.Equal(t, "RAJAN KAPOOR", r.PassengerName)
	assert.Equal(t, "ANAND VIHAR", r.From)
	assert.Equal(t, "MUZAFFARNAGAR", r.To)
	assert.Equal(t, "08:30", r.BoardingTime)
	assert.Equal(t, "2024-06-14", r.Date)
	assert.Equal(t, "420.00", r.Price)
	assert.Equal(t, "UP03 6388", r.BusNumber)
	assert.Equal(t, "07C", r.SeatNumber)
	assert.Equal(t, "red", r.ColorScheme)
	assert.Equal(t, "UPSRTC", r.TransportCorp)
}

func TestTicketRecord_SetGet_everyField(t *testing.T) {
	var r domain.TicketRecord
	for _, f := range domain.Fields {
		require.NoError(t, r.Set(f, "v-"+string(f)))
	}
	for _, f := range domain.Fields {
		got, err := r.Get(f)
		require.NoError(t, err)
		assert.Equal(t, "v-"+string(f), got)
	}
}

func TestTicketRecord_Set_unknownField(t *testing.T) {
	var r domain.TicketRecord

	err := r.Set("fare", "10")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.TicketRecord{}, r)
}

func TestParseField(t *testing.T) {
	f, err := domain.ParseField("busNumber")
	require.NoError(t, err)
	assert.Equal(t, domain.FieldBusNumber, f)

	_, err = domain.ParseField("BusNumber")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
