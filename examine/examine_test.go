package examine

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/submersibletoaster/pixelart/raster"
)

func collect(c <-chan Band) []Band {
	var out []Band
	for b := range c {
		out = append(out, b)
	}
	return out
}

func TestBands(t *testing.T) {
	got := collect(Bands(10, 4))
	assert.Equal(t, []Band{
		{Nth: 0, MinY: 0, MaxY: 4},
		{Nth: 1, MinY: 4, MaxY: 8},
	}, got)

	assert.Len(t, collect(Bands(8, 4)), 2)
	assert.Len(t, collect(Bands(8, 1)), 8)
	assert.Empty(t, collect(Bands(3, 4)))
	assert.Empty(t, collect(Bands(0, 1)))
}

func TestHistogram(t *testing.T) {
	r := raster.New(3, 2)
	r.SetRGB(0, 0, raster.White)
	r.SetRGB(1, 0, raster.White)
	r.SetRGB(2, 0, raster.RGB{255, 0, 0})
	r.SetRGB(0, 1, raster.RGB{255, 0, 0})

	p := Histogram(r)
	require.Len(t, p, 3)
	// all three colors cover two pixels, ties break on hex
	assert.Equal(t, "#000000", p[0].Hex)
	assert.Equal(t, 2, p[0].Count)
	assert.Equal(t, "#ff0000", p[1].Hex)
	assert.Equal(t, "#ffffff", p[2].Hex)
	assert.Equal(t, raster.White, p[2].RGB)

	cols := p.Colors()
	require.Len(t, cols, 3)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, cols[1])

	assert.Contains(t, p[2].String(), "#ffffff")
}

func TestHistogramEmpty(t *testing.T) {
	assert.Empty(t, Histogram(raster.New(0, 0)))
}
