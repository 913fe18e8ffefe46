package pixelart

import (
	"github.com/submersibletoaster/pixelart/raster"
)

// ExtractDrawing whitens every background pixel of img, that is every pixel
// brighter than limit. strict treats a pixel as background when any channel
// is over the limit, otherwise all three must be. img is not modified.
func ExtractDrawing(img *raster.Raster, limit float64, strict bool) *raster.Raster {
	out := img.Clone()
	for i := 0; i+2 < len(out.Pix); i += 3 {
		r := float64(out.Pix[i]) > limit
		g := float64(out.Pix[i+1]) > limit
		b := float64(out.Pix[i+2]) > limit

		var background bool
		if strict {
			background = r || g || b
		} else {
			background = r && g && b
		}
		if background {
			out.Pix[i+0] = 255
			out.Pix[i+1] = 255
			out.Pix[i+2] = 255
		}
	}
	return out
}
