package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"

	"github.com/samuel-skean/My-Raytracing-Adventures/internal/pnm"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image header (- reads stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "File:       %s\n", path)
	info, err := pnm.GetInfo(bytes.NewReader(data))
	switch {
	case err == nil:
		fmt.Fprintf(out, "Format:     %s\n", pnm.FormatName(info.Magic))
		fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
		fmt.Fprintf(out, "Max value:  %d\n", info.MaxValue)
	case errors.Is(err, pnm.ErrNotPNM):
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		fmt.Fprintf(out, "Format:     %s\n", format)
		fmt.Fprintf(out, "Dimensions: %d x %d\n", cfg.Width, cfg.Height)
	default:
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	fmt.Fprintf(out, "File size:  %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)
	return nil
}

// readInput reads a whole file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
