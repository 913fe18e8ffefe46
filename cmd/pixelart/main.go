package main

import (
	"flag"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	pb "github.com/cheggaaa/pb/v3"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/submersibletoaster/pixelart"
)

var blockSize = flag.Int("b", pixelart.DefaultStep, "Block size in source pixels")
var capLimit = flag.Int("cap", pixelart.DefaultCap, "Blocks with any channel above this become white")
var palStep = flag.Int("pal", pixelart.DefaultPaletteStep, "Palette restriction, channels are floored to multiples of this")
var binary = flag.Bool("binary", false, "Make every block that is not white black")
var blank = flag.String("blank", "", "Blank page scan. Pixels brighter than the page are erased first")
var lined = flag.Bool("lined", false, "The blank page is lined paper")
var strict = flag.Bool("strict", true, "Erase a pixel when any channel, rather than all, is brighter than the page")
var workers = flag.Int("w", runtime.NumCPU(), "Number of worker routines")
var outDir = flag.String("o", ".", "Output directory")
var format = flag.String("format", "png", "Output format: png, gif or ppm")
var zoom = flag.Int("zoom", 1, "Scale the written image up by this factor")
var ansiOut = flag.Bool("ansi", false, "Print a block preview to the terminal")
var inline = flag.Bool("preview", false, "Show the result inline in the terminal")
var verbose = flag.Bool("v", false, "Verbose logging")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] image...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	job := Job{
		Params: pixelart.Params{
			Step:        *blockSize,
			Cap:         *capLimit,
			Binary:      *binary,
			PaletteStep: *palStep,
			Workers:     *workers,
		},
		Strict:  *strict,
		OutDir:  *outDir,
		Format:  *format,
		Zoom:    *zoom,
		Preview: *inline,
	}
	if *ansiOut {
		job.ANSI = os.Stdout
	}
	if err := job.validate(); err != nil {
		log.WithError(err).Fatal("bad parameters")
	}

	if *blank != "" {
		limit, err := BlankLimit(*blank, *lined)
		if err != nil {
			log.WithError(err).WithField("blank", *blank).Fatal("cannot estimate page brightness")
		}
		log.Infof("Blank page brightness %.2f", limit)
		job.Extract = true
		job.Limit = limit
	}

	failed := 0
	bar := pb.StartNew(flag.NArg())
	for _, src := range flag.Args() {
		if _, err := job.Run(src); err != nil {
			log.WithError(err).WithField("file", src).Error("failed")
			failed++
		}
		bar.Increment()
	}
	bar.Finish()
	if failed > 0 {
		log.Errorf("%d of %d images failed", failed, flag.NArg())
		os.Exit(1)
	}
}
