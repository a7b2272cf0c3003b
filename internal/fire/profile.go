package fire

import (
	"fmt"
	"math/rand"

	"github.com/guptarohit/asciigraph"
)

// Profile is the outcome of a headless run.
type Profile struct {
	Width, Height int
	Frames        int
	RowMeans      []float64
	Peak          int
	Final         *Buffer
}

// RunProfile steps a fresh buffer for the given number of frames without a
// terminal and records the heat distribution of the last frame.
func RunProfile(width, height, frames int, s Settings) (*Profile, error) {
	s = s.withDefaults()
	buf, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(s.Seed))
	for f := 0; f < frames; f++ {
		buf.Step(rng, s.FlameBase, s.SparkDivisor)
	}
	return &Profile{
		Width:    width,
		Height:   height,
		Frames:   frames,
		RowMeans: buf.RowMeans(),
		Peak:     buf.Peak(),
		Final:    buf,
	}, nil
}

// Plot renders the mean heat per row, bottom row first.
func (p *Profile) Plot(width int) string {
	data := make([]float64, len(p.RowMeans))
	for i, v := range p.RowMeans {
		data[len(data)-1-i] = v
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("mean heat by row (bottom → top), %d frames", p.Frames)),
	)
}
