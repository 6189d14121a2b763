// Package vector renders the gradient as an SVG document.
package vector

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// Gradient ids used inside the document.
const (
	redID   = "red-ramp"
	greenID = "green-ramp"
)

var (
	redRamp = []svg.Offcolor{
		{Offset: 0, Color: "rgb(0,0,0)", Opacity: 1},
		{Offset: 100, Color: "rgb(255,0,0)", Opacity: 1},
	}
	greenRamp = []svg.Offcolor{
		{Offset: 0, Color: "rgb(0,0,0)", Opacity: 1},
		{Offset: 100, Color: "rgb(0,255,0)", Opacity: 1},
	}
)

// Encode writes a width x height SVG whose color at every point matches the
// raster gradient: red grows left to right, green top to bottom. The green
// layer is composited with the screen blend mode; since the two layers never
// share a non-zero channel, screen reduces to a per-channel sum.
func Encode(w io.Writer, width, height int) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("svg dimensions must be at least 2x2, got %dx%d", width, height)
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("Red/green gradient %dx%d", width, height))
	canvas.Def()
	canvas.LinearGradient(redID, 0, 0, 100, 0, redRamp)
	canvas.LinearGradient(greenID, 0, 0, 0, 100, greenRamp)
	canvas.DefEnd()
	canvas.Rect(0, 0, width, height, "fill:black")
	canvas.Rect(0, 0, width, height, "fill:url(#"+redID+")")
	canvas.Rect(0, 0, width, height, "fill:url(#"+greenID+");mix-blend-mode:screen")
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
