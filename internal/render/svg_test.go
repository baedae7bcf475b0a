package render_test

import (
	"bytes"
	"encoding/xml"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
	"github.com/pkordes/bus-ticket/backend/internal/render"
)

func TestWriteSVG_wellFormed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, sampleTicket(t, "blue")))

	dec := xml.NewDecoder(&buf)
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
}

func TestWriteSVG_containsTicketContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, sampleTicket(t, "blue")))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `width="850"`)
	assert.Contains(t, out, `height="300"`)
	assert.Contains(t, out, `fill="#1e40af"`)
	assert.Contains(t, out, `fill="#bfdbfe"`)
	assert.Contains(t, out, `stroke="#3b82f6"`)
	assert.Contains(t, out, `stroke-dasharray="8 8"`)
	assert.Contains(t, out, `stroke-dasharray="6 6"`)
	assert.Contains(t, out, ">RAJAN KAPOOR<")
	assert.Contains(t, out, ">14 JUN<")
	assert.Contains(t, out, ">MUZAFFA<")
	assert.Contains(t, out, ">TICKET<")
}

func TestWriteSVG_escapesText(t *testing.T) {
	r := domain.SampleRecord()
	r.PassengerName = `<script>alert("x")</script>`

	html, err := render.SVG(render.Layout(r, domain.ResolveColorScheme("red"), render.Options{}))

	require.NoError(t, err)
	assert.NotContains(t, string(html), "<SCRIPT>")
	assert.Contains(t, string(html), "&lt;SCRIPT&gt;")
}

func TestBarcodeImage_matchesBars(t *testing.T) {
	bars := []render.Bar{{X: 3, Y: 0, W: 1.5, H: render.BarcodeHeight}}

	img := render.BarcodeImage(bars)

	require.Equal(t, 100, img.Bounds().Dx())
	require.Equal(t, 35, img.Bounds().Dy())
	assert.Equal(t, uint8(0), img.GrayAt(3, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(3, 34).Y)
	assert.Equal(t, uint8(0xff), img.GrayAt(2, 10).Y)
	// Column 4's centre (4.5) sits on the bar's right edge, which is open.
	assert.Equal(t, uint8(0xff), img.GrayAt(4, 10).Y)
}

func TestWriteBarcodePNG_decodes(t *testing.T) {
	var buf bytes.Buffer
	bars := render.Barcode(render.BarcodeSeed(domain.SampleRecord()))
	require.NoError(t, render.WriteBarcodePNG(&buf, bars))

	img, err := png.Decode(&buf)

	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
}
