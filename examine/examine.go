package examine

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/pixelart/raster"
)

// Band - one row of blocks, the unit of work handed to reducer workers
type Band struct {
	Nth  int // Nth - block row index
	MinY int // MinY - first source row covered
	MaxY int // MaxY - one past the last source row covered
}

// Bands - slice the first height rows into bands of step rows. Rows that do
// not fill a whole band are never emitted.
func Bands(height int, step int) <-chan Band {
	out := make(chan Band, 1)
	go func() {
		n := 0
		for y := 0; y+step <= height; y += step {
			out <- Band{Nth: n, MinY: y, MaxY: y + step}
			n++
		}
		log.Debugf("Bands: %d bands of %d rows, closing channel", n, step)
		close(out)
	}()
	return out
}

// Entry - one distinct color of a raster and how many pixels carry it
type Entry struct {
	RGB   raster.RGB
	Color colorful.Color
	Hex   string
	Count int
}

// Palette - distinct colors, most used first
type Palette []Entry

func (p Palette) Len() int {
	return len(p)
}
func (p Palette) Less(i, j int) bool {
	if p[i].Count != p[j].Count {
		return p[i].Count > p[j].Count
	}
	return p[i].Hex < p[j].Hex
}
func (p Palette) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

// Colors - the palette as a color.Palette in the same order
func (p Palette) Colors() color.Palette {
	out := make(color.Palette, len(p))
	for i, e := range p {
		out[i] = color.RGBA{e.RGB[0], e.RGB[1], e.RGB[2], 0xff}
	}
	return out
}

func (e Entry) String() string {
	l, a, b := e.Color.Lab()
	return fmt.Sprintf("%s\t%d\tL=%.1f a=%.1f b=%.1f", e.Hex, e.Count, l*100, a*100, b*100)
}

// Histogram - count the distinct colors of src
func Histogram(src *raster.Raster) Palette {
	counts := make(map[raster.RGB]int)
	for i := 0; i+2 < len(src.Pix); i += 3 {
		counts[raster.RGB{src.Pix[i], src.Pix[i+1], src.Pix[i+2]}]++
	}
	out := make(Palette, 0, len(counts))
	for c, n := range counts {
		clr, _ := colorful.MakeColor(color.RGBA{c[0], c[1], c[2], 0xff})
		out = append(out, Entry{RGB: c, Color: clr, Hex: clr.Hex(), Count: n})
	}
	sort.Sort(out)
	return out
}
