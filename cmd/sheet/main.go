package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	pb "github.com/cheggaaa/pb/v3"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/submersibletoaster/pixelart"
	"github.com/submersibletoaster/pixelart/raster"
)

var sizes = flag.String("sizes", "4,8,16,24", "Comma separated block sizes, one tile each")
var capLimit = flag.Int("cap", pixelart.DefaultCap, "Noise cap")
var palStep = flag.Int("pal", pixelart.DefaultPaletteStep, "Palette restriction")
var binary = flag.Bool("binary", false, "Black and white tiles")
var gap = flag.Int("gap", 4, "Pixels between tiles")
var outFile = flag.String("o", "sheet.png", "Output file")
var verbose = flag.Bool("v", false, "Verbose logging")

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] image\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	steps, err := parseSizes(*sizes)
	if err != nil {
		log.WithError(err).Fatal("bad -sizes")
	}
	srcImg, err := imgio.Open(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatal("cannot open image")
	}
	src := raster.FromImage(srcImg)

	base := pixelart.DefaultParams()
	base.Cap = *capLimit
	base.PaletteStep = *palStep
	base.Binary = *binary

	tiles, err := reduceAll(src, steps, base)
	if err != nil {
		log.WithError(err).Fatal("reduce failed")
	}
	sheet := makeSheet(src, tiles, *gap)

	w, err := os.Create(*outFile)
	if err != nil {
		log.WithError(err).Fatal("cannot create output")
	}
	if err := png.Encode(w, sheet); err != nil {
		log.WithError(err).Fatal("cannot encode sheet")
	}
	if err := w.Close(); err != nil {
		log.WithError(err).Fatal("cannot write sheet")
	}
	log.WithField("out", *outFile).Infof("%d tiles", len(tiles))
}

func parseSizes(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("block size %d: %w", n, pixelart.ErrInvalidParameter)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no block sizes in %q", s)
	}
	return out, nil
}

// reduceAll runs one Generate per block size concurrently, tiles keep the
// order of steps
func reduceAll(src *raster.Raster, steps []int, base pixelart.Params) ([]*raster.Raster, error) {
	tiles := make([]*raster.Raster, len(steps))
	errs := make([]error, len(steps))
	bar := pb.StartNew(len(steps))
	wait := sync.WaitGroup{}
	for i, step := range steps {
		wait.Add(1)
		go func(i, step int) {
			defer wait.Done()
			p := base
			p.Step = step
			tiles[i], errs[i] = pixelart.Generate(src, p)
			bar.Increment()
		}(i, step)
	}
	wait.Wait()
	bar.Finish()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return tiles, nil
}

// makeSheet lays src and the tiles out left to right on a dark wash
func makeSheet(src *raster.Raster, tiles []*raster.Raster, gap int) *image.RGBA {
	n := len(tiles) + 1
	r := image.Rect(0, 0, n*src.Width+(n+1)*gap, src.Height+2*gap)
	sheet := image.NewRGBA(r)
	wash := image.NewUniform(color.RGBA{0x20, 0x20, 0x28, 0xff})
	draw.Draw(sheet, r, wash, image.Point{}, draw.Src)

	x := gap
	for _, t := range append([]*raster.Raster{src}, tiles...) {
		dst := image.Rect(x, gap, x+t.Width, gap+t.Height)
		draw.Draw(sheet, dst, t, image.Point{}, draw.Src)
		log.Debugf("tile %dx%d at %v", t.Width, t.Height, dst.Min)
		x += src.Width + gap
	}
	return sheet
}
