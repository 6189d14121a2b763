package pipeline

import (
	"fmt"
	"image/png"
	"io"

	"github.com/samuel-skean/My-Raytracing-Adventures/internal/gradient"
	"github.com/samuel-skean/My-Raytracing-Adventures/internal/pnm"
	"github.com/samuel-skean/My-Raytracing-Adventures/internal/vector"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Options controls one gradient generation run.
type Options struct {
	Width    int
	Height   int
	Format   Format
	Progress io.Writer // optional: scanline progress, usually stderr
}

// DefaultOptions reproduces the reference image: 256x256 plain PPM.
func DefaultOptions() Options {
	return Options{
		Width:  gradient.DefaultWidth,
		Height: gradient.DefaultHeight,
		Format: FormatPlain,
	}
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Format Format
	Width  int
	Height int
	Bytes  int64 // bytes written to the output
}

// Run generates the gradient and encodes it to w.
func Run(w io.Writer, opts Options) (*Result, error) {
	// 1. Build the (lazy) gradient image
	g, err := gradient.New(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}

	// 2. Encode
	cw := &countingWriter{w: w}
	switch opts.Format {
	case FormatPlain:
		var encOpts pnm.EncoderOptions
		if opts.Progress != nil {
			encOpts.Progress = func(remaining int) {
				fmt.Fprintf(opts.Progress, "\rScanlines remaining: %3d", remaining)
			}
		}
		err = pnm.EncodePlain(cw, g, encOpts)
	case FormatRaw:
		err = pnm.EncodeRaw(cw, g)
	case FormatPNG:
		err = png.Encode(cw, g)
	case FormatBMP:
		err = bmp.Encode(cw, g)
	case FormatTIFF:
		err = tiff.Encode(cw, g, &tiff.Options{Compression: tiff.Deflate})
	case FormatSVG:
		err = vector.Encode(cw, opts.Width, opts.Height)
	default:
		return nil, fmt.Errorf("unsupported format %v", opts.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %v: %w", opts.Format, err)
	}

	// 3. Report
	if opts.Progress != nil {
		fmt.Fprintln(opts.Progress, "\rDone!                          ")
	}

	return &Result{
		Format: opts.Format,
		Width:  opts.Width,
		Height: opts.Height,
		Bytes:  cw.n,
	}, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
