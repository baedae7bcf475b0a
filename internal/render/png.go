package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// BarcodeImage rasterises bars onto a white 100×35 image. A pixel column is
// black when its centre falls inside a bar.
func BarcodeImage(bars []Bar) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, int(BarcodeWidth), int(BarcodeHeight)))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for x := 0; x < img.Rect.Dx(); x++ {
		cx := float64(x) + 0.5
		for _, b := range bars {
			if cx < b.X || cx >= b.X+b.W {
				continue
			}
			for y := 0; y < img.Rect.Dy(); y++ {
				cy := float64(y) + 0.5
				if cy >= b.Y && cy < b.Y+b.H {
					img.SetGray(x, y, color.Gray{Y: 0})
				}
			}
			break
		}
	}
	return img
}

// WriteBarcodePNG encodes the barcode for bars as PNG.
func WriteBarcodePNG(w io.Writer, bars []Bar) error {
	if err := png.Encode(w, BarcodeImage(bars)); err != nil {
		return fmt.Errorf("render.WriteBarcodePNG: %w", err)
	}
	return nil
}
