package output

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
)

// Encode writes img to w in the given format
func Encode(w io.Writer, img *image.RGBA, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNM:
		return WritePNM(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// WritePPM writes a plain-text P3 image, one pixel per line, top row first
func WritePPM(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}
	return bw.Flush()
}

// WritePNM writes a binary P6 image
func WritePNM(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	row := make([]byte, 0, 3*bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row = row[:0]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			row = append(row, c.R, c.G, c.B)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
