package pnm

import (
	"bufio"
	"image"
	"io"

	gopnm "github.com/jbuchbinder/gopnm"
)

// EncodeRaw writes img as a raw (P6) PPM.
func EncodeRaw(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	if err := gopnm.Encode(bw, img, gopnm.PPM); err != nil {
		return err
	}
	return bw.Flush()
}

// Decode reads an image in any PNM variant, plain or raw.
func Decode(r io.Reader) (image.Image, error) {
	return gopnm.Decode(r)
}
