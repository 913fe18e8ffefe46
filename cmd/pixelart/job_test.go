package main

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/submersibletoaster/pixelart"
	"github.com/submersibletoaster/pixelart/raster"
)

// page writes a w x h PNG of grey paper with a black square in the top left
func page(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{220, 220, 220, 255}
			if x < w/2 && y < h/2 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, "page.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func job(dir string, format string) Job {
	p := pixelart.DefaultParams()
	p.Step = 4
	return Job{Params: p, OutDir: dir, Format: format, Zoom: 1, Strict: true}
}

func TestRunPNG(t *testing.T) {
	dir := t.TempDir()
	src := page(t, dir, 18, 10)

	j := job(dir, "png")
	j.Zoom = 3
	dst, err := j.Run(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page-pixel.png"), dst)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16*3, 8*3), img.Bounds())
}

func TestRunPPMWithExtraction(t *testing.T) {
	dir := t.TempDir()
	src := page(t, dir, 8, 8)

	limit, err := BlankLimit(src, false)
	require.NoError(t, err)
	// (16 * 0 + 48 * 220) / 64
	assert.Equal(t, 165.0, limit)

	j := job(dir, "ppm")
	j.Extract = true
	j.Limit = limit
	dst, err := j.Run(src)
	require.NoError(t, err)

	r, err := Load(dst)
	require.NoError(t, err)
	assert.Equal(t, 8, r.Width)
	assert.Equal(t, raster.Black, r.RGBAt(0, 0))
	// grey paper is brighter than the limit and was erased
	assert.Equal(t, raster.White, r.RGBAt(7, 7))
}

func TestRunGIFWithANSI(t *testing.T) {
	dir := t.TempDir()
	src := page(t, dir, 8, 8)

	var term bytes.Buffer
	j := job(dir, "gif")
	j.Params.Binary = true
	j.Params.Cap = 200
	j.ANSI = &term
	dst, err := j.Run(src)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(term.Bytes(), []byte("\n")))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	img, err := gif.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	src := page(t, dir, 8, 8)

	j := job(dir, "tiff")
	_, err := j.Run(src)
	assert.Error(t, err)

	j = job(dir, "png")
	j.Zoom = 0
	_, err = j.Run(src)
	assert.Error(t, err)

	j = job(dir, "png")
	j.Params.Step = 0
	_, err = j.Run(src)
	assert.ErrorIs(t, err, pixelart.ErrInvalidParameter)

	j = job(dir, "png")
	j.Params.Step = 16
	_, err = j.Run(src)
	assert.ErrorIs(t, err, errNoBlocks)

	_, err = job(dir, "png").Run(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestOutPath(t *testing.T) {
	j := job("out", "gif")
	assert.Equal(t, filepath.Join("out", "scan-pixel.gif"), j.OutPath("/tmp/scan.JPG"))
}
