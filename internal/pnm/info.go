package pnm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Netpbm magic numbers.
const (
	MagicPlainPBM = "P1"
	MagicPlainPGM = "P2"
	MagicPlainPPM = "P3"
	MagicRawPBM   = "P4"
	MagicRawPGM   = "P5"
	MagicRawPPM   = "P6"
)

// ErrNotPNM is returned when a stream does not start with a Netpbm magic number.
var ErrNotPNM = errors.New("not a PNM stream")

// FormatName returns a human-readable name for a Netpbm magic number.
func FormatName(magic string) string {
	switch magic {
	case MagicPlainPBM:
		return "PBM (plain)"
	case MagicPlainPGM:
		return "PGM (plain)"
	case MagicPlainPPM:
		return "PPM (plain)"
	case MagicRawPBM:
		return "PBM (raw)"
	case MagicRawPGM:
		return "PGM (raw)"
	case MagicRawPPM:
		return "PPM (raw)"
	default:
		return fmt.Sprintf("unknown(%q)", magic)
	}
}

// ImageInfo contains metadata from a PNM header.
type ImageInfo struct {
	Magic    string
	Width    int
	Height   int
	MaxValue int // 1 for bitmaps
}

// Plain reports whether the pixel data is ASCII.
func (info *ImageInfo) Plain() bool {
	return info.Magic == MagicPlainPBM || info.Magic == MagicPlainPGM || info.Magic == MagicPlainPPM
}

// GetInfo reads a PNM header without touching the pixel data. Whitespace and
// '#' comments between header tokens are skipped.
func GetInfo(r io.Reader) (*ImageInfo, error) {
	br := bufio.NewReader(r)
	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if len(magic) != 2 || magic[0] != 'P' || magic[1] < '1' || magic[1] > '6' {
		return nil, fmt.Errorf("%w: magic %q", ErrNotPNM, magic)
	}

	info := &ImageInfo{Magic: magic, MaxValue: 1}
	if info.Width, err = readInt(br, "width"); err != nil {
		return nil, err
	}
	if info.Height, err = readInt(br, "height"); err != nil {
		return nil, err
	}
	if magic != MagicPlainPBM && magic != MagicRawPBM {
		if info.MaxValue, err = readInt(br, "max value"); err != nil {
			return nil, err
		}
		if info.MaxValue > 65535 {
			return nil, fmt.Errorf("max value %d out of range", info.MaxValue)
		}
	}
	return info, nil
}

func readInt(br *bufio.Reader, field string) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", field, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", field, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s %d", field, v)
	}
	return v, nil
}

// readToken returns the next whitespace-delimited header token.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			if err == io.EOF {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}
		switch {
		case b == '#':
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
			if len(tok) > 0 {
				return string(tok), nil
			}
		case isSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
