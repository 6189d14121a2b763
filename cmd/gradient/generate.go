package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samuel-skean/My-Raytracing-Adventures/internal/gradient"
	"github.com/samuel-skean/My-Raytracing-Adventures/internal/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Flags().IntP("width", "W", gradient.DefaultWidth, "Image width in pixels (>= 2)")
	rootCmd.Flags().IntP("height", "H", gradient.DefaultHeight, "Image height in pixels (>= 2)")
	rootCmd.Flags().StringP("format", "f", "plain", "Output format (plain, raw, png, bmp, tiff, svg)")
	rootCmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")
	rootCmd.Flags().Bool("progress", false, "Report scanline progress on stderr")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	showProgress, _ := cmd.Flags().GetBool("progress")

	format, err := pipeline.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Width:  width,
		Height: height,
		Format: format,
	}
	if showProgress {
		opts.Progress = cmd.ErrOrStderr()
	}

	if outputPath == "-" {
		_, err := pipeline.Run(cmd.OutOrStdout(), opts)
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	result, err := generateTo(f, opts)
	if err != nil {
		return removePartial(outputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %dx%d %s gradient\n", result.Width, result.Height, result.Format)
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s (%d bytes)\n", outputPath, result.Bytes)
	return nil
}

// removePartial deletes an output file left behind by a failed run and
// returns err, joined with the removal error if there is one.
func removePartial(path string, err error) error {
	if rerr := os.Remove(path); rerr != nil {
		return errors.Join(err, fmt.Errorf("removing partial output: %w", rerr))
	}
	return err
}

// generateTo runs the pipeline into wc and closes it.
func generateTo(wc io.WriteCloser, opts pipeline.Options) (*pipeline.Result, error) {
	result, err := pipeline.Run(wc, opts)
	if cerr := wc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("writing output: %w", cerr)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
