package pnm

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/samuel-skean/My-Raytracing-Adventures/internal/gradient"
)

func encodeGradient(t *testing.T, width, height int, opts EncoderOptions) []byte {
	t.Helper()
	g, err := gradient.New(width, height)
	if err != nil {
		t.Fatalf("gradient.New: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodePlain(&buf, g, opts); err != nil {
		t.Fatalf("EncodePlain: %v", err)
	}
	return buf.Bytes()
}

func TestEncodePlainSmall(t *testing.T) {
	got := string(encodeGradient(t, 2, 2, EncoderOptions{}))
	want := "P3\n2 2\n255\n" +
		"0 0 0 255 0 0 \n" +
		"0 255 0 255 255 0 \n"
	if got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodePlainDefault(t *testing.T) {
	out := encodeGradient(t, gradient.DefaultWidth, gradient.DefaultHeight, EncoderOptions{})
	lines := strings.Split(string(out), "\n")
	// Header, 256 rows and the empty string after the final newline.
	if len(lines) != 3+256+1 {
		t.Fatalf("expected %d lines, got %d", 3+256+1, len(lines))
	}
	if lines[0] != "P3" || lines[1] != "256 256" || lines[2] != "255" {
		t.Fatalf("unexpected header %q", lines[:3])
	}
	if lines[len(lines)-1] != "" {
		t.Fatalf("output does not end with a newline")
	}

	rows := lines[3 : 3+256]
	for j, line := range rows {
		if !strings.HasSuffix(line, " ") {
			t.Errorf("row %d has no trailing space", j)
		}
		fields := strings.Fields(line)
		if len(fields) != 256*3 {
			t.Fatalf("row %d: expected %d values, got %d", j, 256*3, len(fields))
		}
		for k, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v > 255 {
				t.Fatalf("row %d value %d: %q out of range", j, k, f)
			}
			if k%3 == 2 && v != 0 {
				t.Fatalf("row %d col %d: blue %d", j, k/3, v)
			}
		}
	}

	corner := func(j, i int) string {
		fields := strings.Fields(rows[j])
		return strings.Join(fields[3*i:3*i+3], " ")
	}
	for _, tt := range []struct {
		row, col int
		want     string
	}{
		{0, 0, "0 0 0"},
		{0, 255, "255 0 0"},
		{255, 0, "0 255 0"},
		{255, 255, "255 255 0"},
	} {
		if got := corner(tt.row, tt.col); got != tt.want {
			t.Errorf("row %d col %d: got %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestEncodePlainIdempotent(t *testing.T) {
	a := encodeGradient(t, 256, 256, EncoderOptions{})
	b := encodeGradient(t, 256, 256, EncoderOptions{})
	if !bytes.Equal(a, b) {
		t.Fatal("two encodes of the same gradient differ")
	}
}

func TestEncodePlainProgress(t *testing.T) {
	var calls []int
	encodeGradient(t, 5, 4, EncoderOptions{Progress: func(remaining int) {
		calls = append(calls, remaining)
	}})
	want := []int{4, 3, 2, 1}
	if len(calls) != len(want) {
		t.Fatalf("progress called %d times, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: remaining %d, want %d", i, calls[i], want[i])
		}
	}
}

func TestEncodePlainGenericImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	img.Set(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.Set(11, 20, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	var buf bytes.Buffer
	if err := EncodePlain(&buf, img, EncoderOptions{}); err != nil {
		t.Fatalf("EncodePlain: %v", err)
	}
	want := "P3\n2 1\n255\n1 2 3 200 100 50 \n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodePlainEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePlain(&buf, image.NewRGBA(image.Rect(0, 0, 0, 0)), EncoderOptions{}); err == nil {
		t.Fatal("expected error for empty image")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

var errWrite = errors.New("write refused")

func TestEncodePlainWriteError(t *testing.T) {
	g, err := gradient.New(256, 256)
	if err != nil {
		t.Fatalf("gradient.New: %v", err)
	}
	if err := EncodePlain(failWriter{}, g, EncoderOptions{}); !errors.Is(err, errWrite) {
		t.Fatalf("got %v, want write error", err)
	}
}
