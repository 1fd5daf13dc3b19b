package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

const (
	captionPad     = 8
	captionMaxSize = 24.0
	captionMinSize = 7.0
)

// AddCaption returns a copy of img with a labelled strip appended
// below it. The strip shares the mosaic's background colour and the
// label is set in whichever of black or white reads better against it.
func AddCaption(img *image.RGBA, label string, bg color.RGBA) (*image.RGBA, error) {
	ttf, err := captionTTF()
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption font: %w", err)
	}

	width := img.Bounds().Dx()
	face := fitCaptionFace(ttf, label, width-2*captionPad)
	defer face.Close()

	metrics := face.Metrics()
	stripHeight := (metrics.Ascent + metrics.Descent).Ceil() + 2*captionPad

	out := image.NewRGBA(image.Rect(0, 0, width, img.Bounds().Dy()+stripHeight))
	draw.Draw(out, img.Bounds(), img, image.Point{}, draw.Src)

	strip := image.Rect(0, img.Bounds().Dy(), width, out.Bounds().Dy())
	draw.Draw(out, strip, image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(captionInk(bg)),
		Face: face,
	}
	x := (width - textWidth(face, label)) / 2
	baseline := img.Bounds().Dy() + captionPad + metrics.Ascent.Ceil()
	d.Dot = freetype.Pt(x, baseline)
	d.DrawString(label)

	return out, nil
}

// fitCaptionFace finds the largest face, down to a floor, whose
// rendering of label fits within maxWidth.
func fitCaptionFace(ttf *truetype.Font, label string, maxWidth int) font.Face {
	for size := captionMaxSize; size > captionMinSize; size -= 1.0 {
		face := truetype.NewFace(ttf, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if textWidth(face, label) <= maxWidth {
			return face
		}
		face.Close()
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    captionMinSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// textWidth returns the advance width of text as rendered by face.
func textWidth(face font.Face, text string) int {
	d := &font.Drawer{Face: face}
	bounds, _ := d.BoundString(text)
	return (bounds.Max.X - bounds.Min.X).Ceil()
}

// captionInk picks the label colour with the stronger contrast against
// the strip background, using Rec. 601 luma.
func captionInk(bg color.RGBA) color.RGBA {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma < 128 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}
