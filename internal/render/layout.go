// Package render turns a TicketRecord and its ColorScheme into a fixed-size
// ticket layout. Everything here is a pure function of its inputs: the
// layout is plain geometry and text, and drawing it onto a surface (SVG,
// PNG) is a separate step.
package render

import (
	"strings"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
)

// Canvas and band dimensions, in logical units.
const (
	TicketWidth   = 850.0
	TicketHeight  = 300.0
	HeaderHeight  = 70.0
	BodyHeight    = 150.0
	FooterHeight  = 80.0
	DefaultSymbol = "₹"
)

const (
	white      = "#ffffff"
	black      = "#000000"
	labelColor = "#333333"
	frameColor = "#dddddd"
	barBorder  = "#999999"
)

// Options tunes presentation details that are not part of the record.
type Options struct {
	// CurrencySymbol prefixes the price. Defaults to DefaultSymbol.
	CurrencySymbol string
}

// Rect is an axis-aligned box.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Point is a position on the ticket canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Text is a single line of text. Y is the baseline.
type Text struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`
	Bold   bool    `json:"bold"`
	Color  string  `json:"color"`
	Anchor string  `json:"anchor"` // start, middle, end
	Value  string  `json:"value"`
}

// Emblem is a bus icon drawn in a Size×Size square at (X, Y).
type Emblem struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

// Stamp is a transport corporation badge.
type Stamp struct {
	Box  Rect   `json:"box"`
	Fill string `json:"fill"`
	Text Text   `json:"text"`
}

// DashedLine is a straight line drawn as repeating On/Off segments.
type DashedLine struct {
	From  Point   `json:"from"`
	To    Point   `json:"to"`
	Width float64 `json:"width"`
	On    float64 `json:"on"`
	Off   float64 `json:"off"`
	Color string  `json:"color"`
}

// BarcodeBox places the barcode canvas on the ticket.
type BarcodeBox struct {
	Box    Rect   `json:"box"`
	Border string `json:"border"`
	Bars   []Bar  `json:"bars"`
}

// Header is the top band: mirrored emblems and stamps around the label.
type Header struct {
	Box     Rect      `json:"box"`
	Fill    string    `json:"fill"`
	Emblems [2]Emblem `json:"emblems"`
	Stamps  [2]Stamp  `json:"stamps"`
	Label   Text      `json:"label"`
	Notch   [3]Point  `json:"notch"`
}

// Body is the white middle band with the three text columns.
type Body struct {
	Box    Rect   `json:"box"`
	Fill   string `json:"fill"`
	Labels []Text `json:"labels"`

	PassengerName Text `json:"passengerName"`
	BoardingTime  Text `json:"boardingTime"`
	From          Text `json:"from"`
	To            Text `json:"to"`

	RightName   Text    `json:"rightName"`
	CompactFrom [2]Text `json:"compactFrom"`
	CompactTo   [2]Text `json:"compactTo"`
	Emblem      Emblem  `json:"emblem"`
}

// Footer is the accent band with price, bus, seat, date and barcode.
type Footer struct {
	Box        Rect         `json:"box"`
	Fill       string       `json:"fill"`
	Rule       DashedLine   `json:"rule"`
	Separators []DashedLine `json:"separators"`
	Labels     []Text       `json:"labels"`

	Price   Text       `json:"price"`
	Bus     Text       `json:"bus"`
	Seat    Text       `json:"seat"`
	Date    Text       `json:"date"`
	Barcode BarcodeBox `json:"barcode"`
}

// Ticket is the complete layout of one ticket.
type Ticket struct {
	Width  float64            `json:"width"`
	Height float64            `json:"height"`
	Frame  string             `json:"frame"`
	Scheme domain.ColorScheme `json:"scheme"`
	Header Header             `json:"header"`
	Body   Body               `json:"body"`
	Footer Footer             `json:"footer"`
	Seed   string             `json:"seed"`
}

// Layout computes the ticket for record r drawn in scheme.
func Layout(r domain.TicketRecord, scheme domain.ColorScheme, opts Options) Ticket {
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = DefaultSymbol
	}
	seed := BarcodeSeed(r)
	return Ticket{
		Width:  TicketWidth,
		Height: TicketHeight,
		Frame:  frameColor,
		Scheme: scheme,
		Header: layoutHeader(r, scheme),
		Body:   layoutBody(r, scheme),
		Footer: layoutFooter(r, scheme, opts, seed),
		Seed:   seed,
	}
}

func layoutHeader(r domain.TicketRecord, scheme domain.ColorScheme) Header {
	const (
		pad       = 25.0
		emblem    = 35.0
		stampW    = 60.0
		stampH    = 35.0
		stampGap  = 80.0
		notchHalf = 12.0
		notchTall = 12.0
	)
	midY := HeaderHeight / 2
	stampX := pad + emblem + stampGap

	stamp := func(x float64) Stamp {
		return Stamp{
			Box:  Rect{X: x, Y: midY - stampH/2, W: stampW, H: stampH},
			Fill: white,
			Text: Text{X: x + stampW/2, Y: midY + 4, Size: 11, Bold: true, Color: scheme.Primary, Anchor: "middle", Value: r.TransportCorp},
		}
	}

	cx := TicketWidth / 2
	return Header{
		Box:  Rect{X: 0, Y: 0, W: TicketWidth, H: HeaderHeight},
		Fill: scheme.Primary,
		Emblems: [2]Emblem{
			{X: pad, Y: midY - emblem/2, Size: emblem, Color: white},
			{X: TicketWidth - pad - emblem, Y: midY - emblem/2, Size: emblem, Color: white},
		},
		Stamps: [2]Stamp{
			stamp(stampX),
			stamp(TicketWidth - stampX - stampW),
		},
		Label: Text{X: cx, Y: midY + 6, Size: 18, Bold: true, Color: white, Anchor: "middle", Value: "TICKET"},
		Notch: [3]Point{
			{X: cx - notchHalf, Y: HeaderHeight},
			{X: cx + notchHalf, Y: HeaderHeight},
			{X: cx, Y: HeaderHeight + notchTall},
		},
	}
}

func layoutBody(r domain.TicketRecord, scheme domain.ColorScheme) Body {
	const (
		padX    = 30.0
		padY    = 20.0
		colPad  = 20.0
		label   = 13.0
		value   = 28.0
		small   = 11.0
		compact = 13.0
	)
	top := HeaderHeight
	colW := (TicketWidth - 2*padX) / 3
	left := padX
	center := padX + colW + colPad
	right := padX + 2*colW + colPad
	rightEdge := TicketWidth - padX

	row1Label := top + padY + label
	row1Value := row1Label + 6 + value
	row2Label := row1Value + 20 + label
	row2Value := row2Label + 6 + value

	lbl := func(x, y float64, s string) Text {
		return Text{X: x, Y: y, Size: label, Color: labelColor, Anchor: "start", Value: s}
	}
	val := func(x, y float64, s string) Text {
		return Text{X: x, Y: y, Size: value, Bold: true, Color: black, Anchor: "start", Value: s}
	}
	line := func(x, y float64, anchor, s string) Text {
		return Text{X: x, Y: y, Size: compact, Bold: true, Color: black, Anchor: anchor, Value: s}
	}

	name := strings.ToUpper(r.PassengerName)
	fromFirst, fromRest := CompactFrom(r.From)
	toFirst, toRest := CompactTo(r.To)

	compactLabel := row1Value + 30 + small
	compactLine1 := compactLabel + 2 + compact
	compactLine2 := compactLine1 + compact*1.1

	return Body{
		Box:  Rect{X: 0, Y: top, W: TicketWidth, H: BodyHeight},
		Fill: white,
		Labels: []Text{
			lbl(left, row1Label, "PASSENGER NAME :"),
			lbl(left, row2Label, "BOARDING TIME :"),
			lbl(center, row1Label, "FROM :"),
			lbl(center, row2Label, "TO :"),
			lbl(right, row1Label, "PASSENGER NAME :"),
			{X: right, Y: compactLabel, Size: small, Color: labelColor, Anchor: "start", Value: "FROM:"},
			{X: rightEdge, Y: compactLabel, Size: small, Color: labelColor, Anchor: "end", Value: "TO:"},
		},
		PassengerName: val(left, row1Value, name),
		BoardingTime:  val(left, row2Value, FormatTime(r.BoardingTime)),
		From:          val(center, row1Value, strings.ToUpper(r.From)),
		To:            val(center, row2Value, strings.ToUpper(r.To)),
		RightName:     val(right, row1Value, name),
		CompactFrom: [2]Text{
			line(right, compactLine1, "start", fromFirst),
			line(right, compactLine2, "start", fromRest),
		},
		CompactTo: [2]Text{
			line(rightEdge, compactLine1, "end", toFirst),
			line(rightEdge, compactLine2, "end", toRest),
		},
		Emblem: Emblem{X: (right+rightEdge)/2 - 12, Y: compactLabel, Size: 24, Color: scheme.Primary},
	}
}

func layoutFooter(r domain.TicketRecord, scheme domain.ColorScheme, opts Options, seed string) Footer {
	const (
		padX    = 30.0
		padY    = 15.0
		label   = 11.0
		value   = 20.0
		sepH    = 50.0
		sepW    = 3.0
		ruleW   = 3.0
		columns = 12.0
	)
	top := HeaderHeight + BodyHeight
	midY := top + FooterHeight/2
	colW := (TicketWidth - 2*padX) / columns
	col := func(n float64) float64 { return padX + n*colW }

	labelY := top + padY + label
	valueY := labelY + 4 + value

	lbl := func(x float64, s string) Text {
		return Text{X: x, Y: labelY, Size: label, Color: labelColor, Anchor: "start", Value: s}
	}
	val := func(x, size float64, s string) Text {
		return Text{X: x, Y: valueY, Size: size, Bold: true, Color: black, Anchor: "start", Value: s}
	}
	sep := func(x float64) DashedLine {
		return DashedLine{
			From:  Point{X: x, Y: midY - sepH/2},
			To:    Point{X: x, Y: midY + sepH/2},
			Width: sepW, On: 6, Off: 6, Color: scheme.Secondary,
		}
	}

	// Grid spans: price 2, sep 1, bus 2, sep 1, seat 1, sep 1, date 1, barcode 2.
	barcodeRight := col(11)
	return Footer{
		Box:  Rect{X: 0, Y: top, W: TicketWidth, H: FooterHeight},
		Fill: scheme.Accent,
		Rule: DashedLine{
			From:  Point{X: 0, Y: top + ruleW/2},
			To:    Point{X: TicketWidth, Y: top + ruleW/2},
			Width: ruleW, On: 8, Off: 8, Color: scheme.Secondary,
		},
		Separators: []DashedLine{sep(col(2.5)), sep(col(5.5)), sep(col(7.5))},
		Labels: []Text{
			lbl(col(0), "PRICE (INC. TAX)"),
			lbl(col(3), "BUS"),
			lbl(col(6), "SEAT:"),
			lbl(col(8), "DATE :"),
		},
		Price: val(col(0), value, opts.CurrencySymbol+" "+r.Price),
		Bus:   val(col(3), value, r.BusNumber),
		Seat:  val(col(6), value, r.SeatNumber),
		Date:  val(col(8), 18, FormatDate(r.Date)),
		Barcode: BarcodeBox{
			Box:    Rect{X: barcodeRight - BarcodeWidth, Y: midY - BarcodeHeight/2, W: BarcodeWidth, H: BarcodeHeight},
			Border: barBorder,
			Bars:   Barcode(seed),
		},
	}
}
