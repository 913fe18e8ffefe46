package main

import (
	"errors"
	"fmt"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/joshdk/preview"
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/pixelart"
	"github.com/submersibletoaster/pixelart/examine"
	"github.com/submersibletoaster/pixelart/raster"
	"github.com/submersibletoaster/pixelart/render"
)

// Job - everything needed to turn one input file into one output file
type Job struct {
	Params  pixelart.Params
	Extract bool    // Extract - whiten the page background before reducing
	Limit   float64 // Limit - background brightness, used with Extract
	Strict  bool    // Strict - any channel over Limit is background
	OutDir  string
	Format  string    // Format - png, gif or ppm
	Zoom    int       // Zoom - nearest neighbour factor applied to the written file
	ANSI    io.Writer // ANSI - if set, a block preview is printed here
	Preview bool      // Preview - show the result inline in the terminal
}

var errNoBlocks = errors.New("no whole block")

var formats = map[string]bool{"png": true, "gif": true, "ppm": true}

func (j Job) validate() error {
	if !formats[j.Format] {
		return fmt.Errorf("unknown output format %q", j.Format)
	}
	if j.Zoom < 1 {
		return fmt.Errorf("zoom %d: %w", j.Zoom, render.ErrScale)
	}
	return j.Params.Validate()
}

// Load decodes any registered image format, or a P6 pixmap
func Load(path string) (*raster.Raster, error) {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return raster.DecodePPM(f)
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, err
	}
	return raster.FromImage(img), nil
}

// BlankLimit estimates the extraction limit from a blank page scan
func BlankLimit(path string, lined bool) (float64, error) {
	ref, err := Load(path)
	if err != nil {
		return 0, err
	}
	return pixelart.Estimate(ref, lined)
}

// OutPath - where Run writes the result for src
func (j Job) OutPath(src string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(j.OutDir, base+"-pixel."+j.Format)
}

// Run processes src and returns the path written
func (j Job) Run(src string) (string, error) {
	if err := j.validate(); err != nil {
		return "", err
	}
	img, err := Load(src)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", src, err)
	}
	logger := log.WithFields(log.Fields{"file": src, "width": img.Width, "height": img.Height})

	if j.Extract {
		img = pixelart.ExtractDrawing(img, j.Limit, j.Strict)
		logger.Debugf("extracted drawing, limit %.1f strict=%v", j.Limit, j.Strict)
	}

	out, err := pixelart.Generate(img, j.Params)
	if err != nil {
		return "", err
	}
	if out.Empty() {
		return "", fmt.Errorf("%s is %dx%d, %w of %d pixels", src, img.Width, img.Height, errNoBlocks, j.Params.Step)
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		hist := examine.Histogram(out)
		logger.Debugf("%d colors", len(hist))
		for i := 0; i < len(hist) && i < 8; i++ {
			logger.Debug(hist[i].String())
		}
	}

	if j.ANSI != nil {
		if err := render.WriteANSI(j.ANSI, out, j.Params.Step); err != nil {
			return "", err
		}
	}

	disp := out
	if j.Zoom > 1 {
		zoomed, err := render.Zoom(out, j.Zoom)
		if err != nil {
			return "", err
		}
		disp = raster.FromImage(zoomed)
	}
	if j.Preview {
		preview.Image(disp)
	}

	dst := j.OutPath(src)
	if err := write(dst, j.Format, disp); err != nil {
		return "", err
	}
	logger.WithField("out", dst).Info("written")
	return dst, nil
}

func write(dst string, format string, r *raster.Raster) (err error) {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case "gif":
		p, perr := render.Paletted(r)
		if perr != nil {
			return perr
		}
		return gif.Encode(f, p, nil)
	case "ppm":
		return raster.WritePPM(f, r)
	default:
		return png.Encode(f, r)
	}
}
