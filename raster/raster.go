// Package raster holds the 8 bit RGB pixel buffer passed between the
// pipeline stages, and its raw P6 encoding.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// ErrEncodingRange - a sample or buffer that does not fit the 8 bit RGB layout
var ErrEncodingRange = errors.New("raster: value out of encoding range")

// White and Black are the two colors forced by the noise cap and binarize passes
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// RGB is one pixel
type RGB [3]uint8

// Raster is a row-major RGB image, 3 bytes per pixel and no row padding.
// Stages treat a Raster as immutable and always return a new one.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// New returns a black raster of w x h
func New(w, h int) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Raster{Width: w, Height: h, Pix: make([]uint8, w*h*3)}
}

// FromSamples builds a raster from wide integer samples, as handed over by
// callers that did arithmetic outside of uint8.
func FromSamples(w, h int, samples []int) (*Raster, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("dimensions %dx%d: %w", w, h, ErrEncodingRange)
	}
	if len(samples) != w*h*3 {
		return nil, fmt.Errorf("%d samples for %dx%d: %w", len(samples), w, h, ErrEncodingRange)
	}
	r := New(w, h)
	for i, v := range samples {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("sample %d is %d: %w", i, v, ErrEncodingRange)
		}
		r.Pix[i] = uint8(v)
	}
	return r, nil
}

// FromImage copies any decoded image into a raster. Alpha is dropped.
func FromImage(img image.Image) *Raster {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	out := New(b.Dx(), b.Dy())
	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := rgba.PixOffset(b.Min.X, y)
		for x := 0; x < out.Width; x++ {
			out.Pix[o+0] = rgba.Pix[i+0]
			out.Pix[o+1] = rgba.Pix[i+1]
			out.Pix[o+2] = rgba.Pix[i+2]
			o += 3
			i += 4
		}
	}
	return out
}

// Clone returns a deep copy
func (r *Raster) Clone() *Raster {
	out := &Raster{Width: r.Width, Height: r.Height, Pix: make([]uint8, len(r.Pix))}
	copy(out.Pix, r.Pix)
	return out
}

// Empty reports whether the raster has no pixels
func (r *Raster) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// PixOffset is the index of the R sample of (x,y) in Pix
func (r *Raster) PixOffset(x, y int) int {
	return (y*r.Width + x) * 3
}

// RGBAt returns the pixel at (x,y)
func (r *Raster) RGBAt(x, y int) RGB {
	i := r.PixOffset(x, y)
	return RGB{r.Pix[i], r.Pix[i+1], r.Pix[i+2]}
}

// SetRGB sets the pixel at (x,y)
func (r *Raster) SetRGB(x, y int, c RGB) {
	i := r.PixOffset(x, y)
	r.Pix[i+0] = c[0]
	r.Pix[i+1] = c[1]
	r.Pix[i+2] = c[2]
}

// Validate checks the buffer matches the declared dimensions
func (r *Raster) Validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("dimensions %dx%d: %w", r.Width, r.Height, ErrEncodingRange)
	}
	if len(r.Pix) != r.Width*r.Height*3 {
		return fmt.Errorf("%d samples for %dx%d: %w", len(r.Pix), r.Width, r.Height, ErrEncodingRange)
	}
	return nil
}

// ColorModel, Bounds and At let renderers and encoders take a Raster as an image.Image.

func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

func (r *Raster) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(r.Bounds())) {
		return color.RGBA{}
	}
	c := r.RGBAt(x, y)
	return color.RGBA{c[0], c[1], c[2], 0xff}
}
