// Package render hands reduced rasters to the outside world: the terminal,
// scaled display copies and indexed image encoders.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/esimov/colorquant"
	ansi "github.com/gookit/color"
	"github.com/nfnt/resize"

	"github.com/submersibletoaster/pixelart/examine"
	"github.com/submersibletoaster/pixelart/raster"
)

var (
	// ErrScale - a block size or zoom factor below 1
	ErrScale = errors.New("render: scale must be at least 1")
	// ErrTooManyColors - more distinct colors than an indexed image holds
	ErrTooManyColors = errors.New("render: more than 256 colors")
)

// WriteANSI prints one two-column cell per step x step block of r, painted
// with the block's top left colour as background.
func WriteANSI(w io.Writer, r *raster.Raster, step int) error {
	if step < 1 {
		return fmt.Errorf("ansi block %d: %w", step, ErrScale)
	}
	for y := 0; y+step <= r.Height; y += step {
		for x := 0; x+step <= r.Width; x += step {
			c := r.RGBAt(x, y)
			cSeq := ansi.NewRGBStyle(toANSI(c, false), toANSI(c, true))
			if _, err := io.WriteString(w, cSeq.Sprint("  ")); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func toANSI(c raster.RGB, bg bool) ansi.RGBColor {
	return ansi.RGB(c[0], c[1], c[2], bg)
}

// Zoom scales img up by factor with nearest neighbour sampling, so blocks
// stay sharp on screen.
func Zoom(img image.Image, factor int) (image.Image, error) {
	if factor < 1 {
		return nil, fmt.Errorf("zoom %d: %w", factor, ErrScale)
	}
	if factor == 1 {
		return img, nil
	}
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), img, resize.NearestNeighbor), nil
}

// Paletted converts r to an indexed image holding exactly r's colours, most
// used first. Reduced rasters usually have few enough colours for GIF.
func Paletted(r *raster.Raster) (*image.Paletted, error) {
	hist := examine.Histogram(r)
	if len(hist) > 256 {
		return nil, fmt.Errorf("%d colors: %w", len(hist), ErrTooManyColors)
	}
	pal := hist.Colors()
	if len(pal) == 0 {
		pal = examine.Palette{{}}.Colors()
	}
	dst := image.NewPaletted(r.Bounds(), pal)
	if r.Empty() {
		return dst, nil
	}
	out := colorquant.NoDither.Quantize(r, dst, len(pal), false, false)
	if p, ok := out.(*image.Paletted); ok {
		return p, nil
	}
	return dst, nil
}
