package render

import (
	"strings"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
)

// DefaultTitle is the page title whenever no ticket is on display.
const DefaultTitle = "Bus Ticket Generator"

// TitleFor derives the page title from the form state. A visible ticket
// with a passenger name yields "from-to-14JUN-08:30-name"; anything else
// yields DefaultTitle.
func TitleFor(r domain.TicketRecord, visible bool) string {
	if !visible || r.PassengerName == "" {
		return DefaultTitle
	}
	return strings.Join([]string{
		r.From,
		r.To,
		FormatTitleDate(r.Date),
		r.BoardingTime,
		r.PassengerName,
	}, "-")
}
