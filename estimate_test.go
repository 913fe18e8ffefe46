package pixelart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/submersibletoaster/pixelart/raster"
)

func TestEstimateUniform(t *testing.T) {
	limit, err := Estimate(uniform(13, 7, 200), false)
	require.NoError(t, err)
	assert.Equal(t, 200.0, limit)

	limit, err = Estimate(uniform(13, 7, 200), true)
	require.NoError(t, err)
	assert.Equal(t, 200.0, limit)
}

func TestEstimateFlatMean(t *testing.T) {
	r := raster.New(2, 1)
	r.SetRGB(0, 0, raster.RGB{0, 100, 200})
	r.SetRGB(1, 0, raster.RGB{10, 20, 30})
	limit, err := Estimate(r, false)
	require.NoError(t, err)
	assert.InDelta(t, 360.0/6, limit, 1e-9)
}

func TestEstimateLined(t *testing.T) {
	r := raster.New(2, 1)
	r.SetRGB(0, 0, raster.RGB{50, 100, 200})
	r.SetRGB(1, 0, raster.White)
	limit, err := Estimate(r, true)
	require.NoError(t, err)
	assert.Equal(t, 213.0, limit)

	// the cutoff itself counts as paper
	r = raster.New(1, 1)
	r.SetRGB(0, 0, raster.RGB{84, 85, 84})
	limit, err = Estimate(r, true)
	require.NoError(t, err)
	assert.Equal(t, 85.0, limit)
}

func TestEstimateEmpty(t *testing.T) {
	_, err := Estimate(uniform(4, 4, 84), true)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Estimate(raster.New(0, 0), false)
	assert.ErrorIs(t, err, ErrEmptyInput)

	// not lined, dark pages still have a mean
	limit, err := Estimate(uniform(4, 4, 84), false)
	require.NoError(t, err)
	assert.Equal(t, 84.0, limit)
}
