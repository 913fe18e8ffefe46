// Package pixelart turns scanned drawings and photos into block "pixel art":
// brightness limit estimation, blank-page erasure and block-mean reduction.
package pixelart

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/submersibletoaster/pixelart/raster"
)

// Defaults for Params
const (
	DefaultStep        = 24
	DefaultCap         = 255
	DefaultPaletteStep = 1
)

var (
	// ErrEmptyInput - no samples to estimate a limit from
	ErrEmptyInput = errors.New("pixelart: no samples")
	// ErrInvalidParameter - a reduction parameter outside its domain
	ErrInvalidParameter = errors.New("pixelart: invalid parameter")
	// ErrEncodingRange - see raster.ErrEncodingRange
	ErrEncodingRange = raster.ErrEncodingRange
)

// Params controls Generate
type Params struct {
	Step        int  // Step - block edge in source pixels
	Cap         int  // Cap - blocks with any channel above this become white
	Binary      bool // Binary - force every non-white block to black
	PaletteStep int  // PaletteStep - channel values are floored to a multiple of this
	Workers     int  // Workers - goroutines averaging bands, < 1 means 1
}

// DefaultParams - 24 pixel blocks, no cap, colour, full palette
func DefaultParams() Params {
	return Params{
		Step:        DefaultStep,
		Cap:         DefaultCap,
		Binary:      false,
		PaletteStep: DefaultPaletteStep,
		Workers:     runtime.NumCPU(),
	}
}

// Validate reports the first parameter outside its domain
func (p Params) Validate() error {
	if p.Step <= 0 {
		return fmt.Errorf("block size %d: %w", p.Step, ErrInvalidParameter)
	}
	if p.PaletteStep <= 0 {
		return fmt.Errorf("palette step %d: %w", p.PaletteStep, ErrInvalidParameter)
	}
	if p.Cap < 0 || p.Cap > 255 {
		return fmt.Errorf("cap %d: %w", p.Cap, ErrInvalidParameter)
	}
	return nil
}

func (p Params) workers() int {
	if p.Workers < 1 {
		return 1
	}
	return p.Workers
}
