package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// ErrNoValues reports that the metric produced nothing to plot, which
// happens when the input text holds no tokens at all.
var ErrNoValues = errors.New("no values to render")

// ProgressFunc receives the fraction of cells plotted so far.
type ProgressFunc func(frac float64)

// Options control how a mosaic is drawn.
type Options struct {
	// Scheme maps each intensity to a colour.
	Scheme Scheme
	// Scale is the edge length of each cell in pixels. Values below 2
	// leave the mosaic at one pixel per cell.
	Scale int
	// Background fills the cells past the last value on the bottom row.
	Background color.RGBA
	// Caption, when set, is drawn on a strip under the mosaic.
	Caption string
	// Progress, when set, is called as rows of cells are plotted.
	Progress ProgressFunc
}

// Render plots one coloured cell per value on the smallest square
// canvas that fits them all, row by row from the top left, then scales
// the result and adds the caption strip.
func Render(values []float64, opts Options) (*image.RGBA, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	side := GridSide(len(values))
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	for i, v := range values {
		x, y := CellAt(i, side)
		img.SetRGBA(x, y, opts.Scheme.At(clamp(v)))
		if opts.Progress != nil && x == side-1 {
			opts.Progress(float64(i+1) / float64(len(values)))
		}
	}
	if opts.Progress != nil {
		opts.Progress(1)
	}

	img = Upscale(img, opts.Scale)

	if opts.Caption != "" {
		captioned, err := AddCaption(img, opts.Caption, opts.Background)
		if err != nil {
			return nil, err
		}
		img = captioned
	}

	return img, nil
}

// Upscale grows each cell into a scale by scale block. Nearest
// neighbour keeps the cell edges hard.
func Upscale(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// Save writes the image to path as a PNG.
func Save(img image.Image, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	return png.Encode(out, img)
}

// clamp pins v into the unit interval.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
