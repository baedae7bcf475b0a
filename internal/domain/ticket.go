// Package domain contains the core data types for the bus ticket generator.
// This package has no dependencies on the HTTP or rendering layers and is
// imported by every other internal package (render, service, handler).
package domain

import "fmt"

// Field names a single editable attribute of a TicketRecord.
// The string values match the JSON keys and the HTML form input names.
type Field string

const (
	FieldPassengerName Field = "passengerName"
	FieldFrom          Field = "from"
	FieldTo            Field = "to"
	FieldBoardingTime  Field = "boardingTime"
	FieldDate          Field = "date"
	FieldPrice         Field = "price"
	FieldBusNumber     Field = "busNumber"
	FieldSeatNumber    Field = "seatNumber"
	FieldColorScheme   Field = "colorScheme"
	FieldTransportCorp Field = "transportCorp"
)

// Fields lists every editable field in form order.
var Fields = []Field{
	FieldTransportCorp,
	FieldPassengerName,
	FieldFrom,
	FieldTo,
	FieldBoardingTime,
	FieldDate,
	FieldPrice,
	FieldBusNumber,
	FieldSeatNumber,
	FieldColorScheme,
}

// TicketRecord is the full set of user-entered ticket fields.
// Every field is an opaque string: nothing is parsed or validated here.
// Callers hand a copy (TicketRecord is a value type) to the renderer, so the
// renderer always sees a snapshot.
type TicketRecord struct {
	PassengerName string `json:"passengerName"`
	From          string `json:"from"`
	To            string `json:"to"`
	BoardingTime  string `json:"boardingTime"` // "HH:MM" from the time widget, not enforced
	Date          string `json:"date"`         // "YYYY-MM-DD" from the date widget, not enforced
	Price         string `json:"price"`
	BusNumber     string `json:"busNumber"`
	SeatNumber    string `json:"seatNumber"`
	ColorScheme   string `json:"colorScheme"`   // id into ColorSchemes
	TransportCorp string `json:"transportCorp"` // id into TransportCorps
}

// EmptyRecord returns the record a fresh or reset form starts from:
// empty free-text fields and the default presets.
func EmptyRecord() TicketRecord {
	return TicketRecord{
		ColorScheme:   DefaultColorSchemeID,
		TransportCorp: DefaultTransportCorpID,
	}
}

// SampleRecord returns the fixed demo record used by "Load Sample Data".
func SampleRecord() TicketRecord {
	return TicketRecord{
		PassengerName: "RAJAN KAPOOR",
		From:          "ANAND VIHAR",
		To:            "MUZAFFARNAGAR",
		BoardingTime:  "08:30",
		Date:          "2024-06-14",
		Price:         "420.00",
		BusNumber:     "UP03 6388",
		SeatNumber:    "07C",
		ColorScheme:   "red",
		TransportCorp: "UPSRTC",
	}
}

// Set assigns value to the named field. Any string is accepted; only an
// unknown field name is an error.
func (r *TicketRecord) Set(field Field, value string) error {
	p := r.fieldPtr(field)
	if p == nil {
		return fmt.Errorf("%w: unknown field %q", ErrValidation, field)
	}
	*p = value
	return nil
}

// Get returns the value of the named field.
func (r TicketRecord) Get(field Field) (string, error) {
	p := r.fieldPtr(field)
	if p == nil {
		return "", fmt.Errorf("%w: unknown field %q", ErrValidation, field)
	}
	return *p, nil
}

func (r *TicketRecord) fieldPtr(field Field) *string {
	switch field {
	case FieldPassengerName:
		return &r.PassengerName
	case FieldFrom:
		return &r.From
	case FieldTo:
		return &r.To
	case FieldBoardingTime:
		return &r.BoardingTime
	case FieldDate:
		return &r.Date
	case FieldPrice:
		return &r.Price
	case FieldBusNumber:
		return &r.BusNumber
	case FieldSeatNumber:
		return &r.SeatNumber
	case FieldColorScheme:
		return &r.ColorScheme
	case FieldTransportCorp:
		return &r.TransportCorp
	}
	return nil
}

// ParseField converts s into a Field, returning ErrValidation for names
// the record does not have.
func ParseField(s string) (Field, error) {
	f := Field(s)
	var r TicketRecord
	if r.fieldPtr(f) == nil {
		return "", fmt.Errorf("%w: unknown field %q", ErrValidation, s)
	}
	return f, nil
}
