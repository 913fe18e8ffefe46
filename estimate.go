package pixelart

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/submersibletoaster/pixelart/raster"
)

// LineCutoff - samples below this are printed guide lines, not paper
const LineCutoff = 85

// levels holds each histogram bin's sample value
var levels = binLevels()

func binLevels() (out [256]float64) {
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Estimate returns the mean sample brightness of a blank reference page,
// for use as the ExtractDrawing limit. With lined, samples darker than
// LineCutoff are left out of the mean.
func Estimate(ref *raster.Raster, lined bool) (float64, error) {
	var hist [256]float64
	for _, v := range ref.Pix {
		hist[v]++
	}
	if lined {
		for i := 0; i < LineCutoff; i++ {
			hist[i] = 0
		}
	}

	total := 0.0
	for _, n := range hist {
		total += n
	}
	if total == 0 {
		return 0, fmt.Errorf("reference %dx%d lined=%v: %w", ref.Width, ref.Height, lined, ErrEmptyInput)
	}

	limit := stat.Mean(levels[:], hist[:])
	log.Debugf("Estimate: limit %.3f from %.0f samples (lined=%v)", limit, total, lined)
	return limit, nil
}
