package pixelart

import (
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/pixelart/examine"
	"github.com/submersibletoaster/pixelart/raster"
)

// Generate reduces img to blocks of p.Step pixels, each filled with the mean
// colour of the source block. Rows and columns past the last whole block
// are dropped. Every block colour then goes through, in order:
//
//   - the noise cap: any channel above p.Cap makes the block white
//   - binarize, only with p.Binary: anything not white becomes black
//   - the palette step: each channel is floored to a multiple of p.PaletteStep
func Generate(img *raster.Raster, p Params) (*raster.Raster, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	h := img.Height - img.Height%p.Step
	w := img.Width - img.Width%p.Step
	out := raster.New(w, h)
	if out.Empty() {
		log.Debugf("Generate: %dx%d has no whole %d pixel block", img.Width, img.Height, p.Step)
		return out, nil
	}

	workers(p.workers(), examine.Bands(h, p.Step), func(b examine.Band) {
		reduceBand(img, out, b, p)
	})
	return out, nil
}

// reduceBand averages and fills every block of one band
func reduceBand(src, dst *raster.Raster, b examine.Band, p Params) {
	step := p.Step
	area := uint64(step * step)
	log.Tracef("reduceBand: band %d rows %d-%d", b.Nth, b.MinY, b.MaxY)
	for x0 := 0; x0+step <= dst.Width; x0 += step {
		var sum [3]uint64
		for y := b.MinY; y < b.MaxY; y++ {
			i := src.PixOffset(x0, y)
			for x := 0; x < step; x++ {
				sum[0] += uint64(src.Pix[i+0])
				sum[1] += uint64(src.Pix[i+1])
				sum[2] += uint64(src.Pix[i+2])
				i += 3
			}
		}
		mean := raster.RGB{uint8(sum[0] / area), uint8(sum[1] / area), uint8(sum[2] / area)}
		c := finish(mean, p)

		for y := b.MinY; y < b.MaxY; y++ {
			i := dst.PixOffset(x0, y)
			for x := 0; x < step; x++ {
				dst.Pix[i+0] = c[0]
				dst.Pix[i+1] = c[1]
				dst.Pix[i+2] = c[2]
				i += 3
			}
		}
	}
}

// finish applies the cap, binarize and palette passes to one block colour
func finish(c raster.RGB, p Params) raster.RGB {
	limit := uint8(p.Cap)
	if c[0] > limit || c[1] > limit || c[2] > limit {
		c = raster.White
	}
	if p.Binary && c != raster.White {
		c = raster.Black
	}
	if p.PaletteStep > 1 {
		for i, v := range c {
			c[i] = uint8(int(v) / p.PaletteStep * p.PaletteStep)
		}
	}
	return c
}
