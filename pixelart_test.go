package pixelart

import (
	"math/rand"

	"github.com/submersibletoaster/pixelart/raster"
)

func uniform(w, h int, v uint8) *raster.Raster {
	r := raster.New(w, h)
	for i := range r.Pix {
		r.Pix[i] = v
	}
	return r
}

func noise(rng *rand.Rand, w, h int) *raster.Raster {
	r := raster.New(w, h)
	for i := range r.Pix {
		r.Pix[i] = uint8(rng.Intn(256))
	}
	return r
}

// blocky fills every step x step block with one random colour
func blocky(rng *rand.Rand, w, h, step int) *raster.Raster {
	r := raster.New(w, h)
	for by := 0; by < h; by += step {
		for bx := 0; bx < w; bx += step {
			c := raster.RGB{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
			for y := by; y < by+step && y < h; y++ {
				for x := bx; x < bx+step && x < w; x++ {
					r.SetRGB(x, y, c)
				}
			}
		}
	}
	return r
}

func params(step int) Params {
	p := DefaultParams()
	p.Step = step
	return p
}
