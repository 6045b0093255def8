// Command gradientdump writes the picker gradients to image files for inspection.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"golang.org/x/image/tiff"

	"hexpick/internal/gradient"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gradientdump: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("gradientdump", pflag.ContinueOnError)
	dir := fs.StringP("dir", "d", ".", "Output directory")
	hue := fs.Float64("hue", 0, "Hue of the saturation/value plane in degrees")
	scale := fs.IntP("scale", "s", 1, "Integer upscale factor applied to both images")
	format := fs.StringP("format", "f", "png", "Image format: png or tiff")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", *scale)
	}
	encode, err := encoder(*format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", *dir, err)
	}

	images := []struct {
		name string
		img  *image.RGBA
	}{
		{"hue", gradient.HueStrip()},
		{"plane", gradient.Plane(*hue)},
	}

	for _, item := range images {
		img := item.img
		if n := *scale; n > 1 {
			b := img.Bounds()
			img = gradient.Scale(img, b.Dx()*n, b.Dy()*n)
		}

		path := filepath.Join(*dir, item.name+"."+*format)
		if err := writeImage(path, img, encode); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s (%dx%d)\n", path, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return nil
}

func encoder(format string) (func(io.Writer, image.Image) error, error) {
	switch format {
	case "png":
		return png.Encode, nil
	case "tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want png or tiff)", format)
	}
}

func writeImage(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
