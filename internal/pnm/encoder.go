package pnm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

// MaxValue is the maximum channel value written in every header.
const MaxValue = 255

// EncoderOptions controls plain PPM encoding.
type EncoderOptions struct {
	// Progress, if set, is called before each row with the number of rows
	// still to be written, the current one included.
	Progress func(remaining int)
}

// rgbaImage is implemented by images that can return an RGBA pixel without
// allocating an interface value.
type rgbaImage interface {
	image.Image
	RGBAAt(x, y int) color.RGBA
}

// EncodePlain writes img as a plain (P3) PPM. Every triple, including the
// last one on a line, is followed by a single space.
func EncodePlain(w io.Writer, img image.Image, opts EncoderOptions) error {
	bb := img.Bounds()
	width, height := bb.Dx(), bb.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("cannot encode empty image %dx%d", width, height)
	}

	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, MagicPlainPPM, width, height); err != nil {
		return err
	}

	pixel := func(x, y int) color.RGBA {
		return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	}
	if fast, ok := img.(rgbaImage); ok {
		pixel = fast.RGBAAt
	}

	// Room for one triple: "255 255 255 ".
	buf := make([]byte, 0, 12)
	for j := 0; j < height; j++ {
		if opts.Progress != nil {
			opts.Progress(height - j)
		}
		y := bb.Min.Y + j
		for i := 0; i < width; i++ {
			c := pixel(bb.Min.X+i, y)
			buf = buf[:0]
			buf = strconv.AppendUint(buf, uint64(c.R), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(c.G), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(c.B), 10)
			buf = append(buf, ' ')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeHeader(w io.Writer, magic string, width, height int) error {
	_, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", magic, width, height, MaxValue)
	return err
}
