package pipeline

import "fmt"

// Format selects the encoder used by Run.
type Format int

// Supported output formats.
const (
	FormatPlain Format = iota // P3, the default
	FormatRaw                 // P6
	FormatPNG
	FormatBMP
	FormatTIFF
	FormatSVG
)

var formatNames = [...]string{
	FormatPlain: "plain",
	FormatRaw:   "raw",
	FormatPNG:   "png",
	FormatBMP:   "bmp",
	FormatTIFF:  "tiff",
	FormatSVG:   "svg",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat converts a format name to a Format. "ppm" and "p3" are
// accepted for plain, "p6" for raw and "tif" for tiff.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "plain", "ppm", "p3":
		return FormatPlain, nil
	case "raw", "p6":
		return FormatRaw, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	case "svg":
		return FormatSVG, nil
	default:
		return 0, fmt.Errorf("unknown output format: %q", s)
	}
}
