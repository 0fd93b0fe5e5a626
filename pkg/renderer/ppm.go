package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
)

// WritePPM writes the image as a plain pixel map (P3): a three-line
// header declaring format, dimensions and maximum channel value,
// followed by one "r g b" triple per pixel, scanlines from the top,
// columns left to right.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WritePNG writes the image as a PNG
func WritePNG(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}
