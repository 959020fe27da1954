package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/zoom-fractal/pkg/config"
	"github.com/willbeason/zoom-fractal/pkg/controller"
	"github.com/willbeason/zoom-fractal/pkg/plane"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

var (
	functionType string
	paletteType  string
	centerReal   float64
	centerImag   float64
	cReal, cImag float64
	depth        float64
	iterations   int
	size         int
	out          string
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "still",
		Short: "Render a single frame of a fractal to a PNG",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	d := view.Default()
	cmd.Flags().StringVar(&functionType, "function", "mandelbrot", "mandelbrot, inverse-mandelbrot, julia, gradient or quadratic")
	cmd.Flags().StringVar(&paletteType, "palette", "wheel", "wheel or gradient")
	cmd.Flags().Float64Var(&centerReal, "real", d.Center.Real, "real part of the center")
	cmd.Flags().Float64Var(&centerImag, "imag", d.Center.Imaginary, "imaginary part of the center")
	cmd.Flags().Float64Var(&cReal, "c-real", -0.8, "real part of the Julia constant")
	cmd.Flags().Float64Var(&cImag, "c-imag", 0.156, "imaginary part of the Julia constant")
	cmd.Flags().Float64Var(&depth, "depth", d.Depth, "width of the view in plane units")
	cmd.Flags().IntVar(&iterations, "iterations", d.Iterations, "escape-time cutoff")
	cmd.Flags().IntVar(&size, "size", d.ImageSize, "side length of the image in pixels")
	cmd.Flags().StringVar(&out, "out", "", "output file, out/<timestamp>.png when empty")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	f, err := config.Function{Type: functionType, C: config.Point{Real: cReal, Imaginary: cImag}}.Build()
	if err != nil {
		return err
	}

	palette, err := config.Palette{Type: paletteType, Chroma: 1.0, Luminance: 0.6}.Build()
	if err != nil {
		return err
	}

	state := view.State{
		ImageSize:  size,
		Center:     plane.New(centerReal, centerImag),
		Iterations: iterations,
		Depth:      depth,
	}

	start := time.Now()
	ctrl := controller.New(f, nil, nil, controller.WithState(state), controller.WithPalette(palette))
	buf := ctrl.RenderState(state)
	log.Printf("rendered %dx%d in %v", size, size, time.Since(start))

	if out == "" {
		out = filepath.Join("out", fmt.Sprintf("%s.png", time.Now().Format("20060102150405")))
	}

	err = os.MkdirAll(filepath.Dir(out), os.ModePerm)
	if err != nil {
		return err
	}

	file, err := os.Create(out)
	if err != nil {
		return err
	}

	err = png.Encode(file, buf.Image())
	if err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
