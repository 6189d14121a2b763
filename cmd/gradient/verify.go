package main

import (
	"bytes"
	"fmt"
	"image"

	"github.com/samuel-skean/My-Raytracing-Adventures/internal/gradient"
	"github.com/samuel-skean/My-Raytracing-Adventures/internal/pnm"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Check that an image holds the expected gradient (- reads stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	if info, err := pnm.GetInfo(bytes.NewReader(data)); err == nil && info.MaxValue != pnm.MaxValue {
		return fmt.Errorf("%s: max value %d, want %d", path, info.MaxValue, pnm.MaxValue)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := compareGradient(img); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	bb := img.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s %dx%d, %d pixels match\n", format, bb.Dx(), bb.Dy(), bb.Dx()*bb.Dy())
	return nil
}

// compareGradient reports the first pixel of img that differs from the
// gradient of the same size.
func compareGradient(img image.Image) error {
	bb := img.Bounds()
	g, err := gradient.New(bb.Dx(), bb.Dy())
	if err != nil {
		return err
	}
	for j := 0; j < bb.Dy(); j++ {
		for i := 0; i < bb.Dx(); i++ {
			r, gg, b, _ := img.At(bb.Min.X+i, bb.Min.Y+j).RGBA()
			got := [3]uint8{uint8(r >> 8), uint8(gg >> 8), uint8(b >> 8)}
			c := g.RGBAAt(i, j)
			if want := [3]uint8{c.R, c.G, c.B}; got != want {
				f := g.Fraction(i, j)
				return fmt.Errorf("pixel row %d col %d is %v, want %v (ramp %.4f, %.4f)", j, i, got, want, f.X, f.Y)
			}
		}
	}
	return nil
}
