package render

import (
	"strings"
	"unicode/utf16"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
)

// Barcode canvas geometry. The pattern is decorative: it is not a real
// symbology, but the bar positions must stay stable for a given seed.
const (
	BarcodeWidth  = 100.0
	BarcodeHeight = 35.0
	BarWidth      = 1.5
	barSlots      = 65
)

// Bar is a filled black rectangle in barcode canvas coordinates.
type Bar struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// BarcodeSeed joins the record's fields with "|" in the fixed order
// passenger, from, to, date, time, bus, seat, price.
func BarcodeSeed(r domain.TicketRecord) string {
	return strings.Join([]string{
		r.PassengerName,
		r.From,
		r.To,
		r.Date,
		r.BoardingTime,
		r.BusNumber,
		r.SeatNumber,
		r.Price,
	}, "|")
}

// Barcode computes the bar rectangles for seed. Slot i (0..64) is filled
// when the UTF-16 code unit at i mod len(seed) is divisible by 3.
// An empty seed yields no bars.
func Barcode(seed string) []Bar {
	units := utf16.Encode([]rune(seed))
	if len(units) == 0 {
		return nil
	}
	var bars []Bar
	for i := 0; i < barSlots; i++ {
		if units[i%len(units)]%3 == 0 {
			bars = append(bars, Bar{X: float64(i) * BarWidth, Y: 0, W: BarWidth, H: BarcodeHeight})
		}
	}
	return bars
}
