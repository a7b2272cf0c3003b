package fire

import (
	"errors"
	"math/rand"
)

const (
	DefaultFlameBase    = 65
	DefaultSparkDivisor = 9
)

// ErrInvalidSize indicates a grid with a non-positive dimension.
var ErrInvalidSize = errors.New("fire: grid width and height must be positive")

// Buffer is the flat heat grid. It carries width+1 trailing cells so the
// neighbour reads in Diffuse never need a bounds check.
type Buffer struct {
	width, height int
	cells         []int
}

func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]int, width*height+width+1),
	}, nil
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Size is the number of visible cells.
func (b *Buffer) Size() int { return b.width * b.height }

// Len is the backing slice length including the margin.
func (b *Buffer) Len() int { return len(b.cells) }

func (b *Buffer) At(i int) int    { return b.cells[i] }
func (b *Buffer) Set(i, heat int) { b.cells[i] = heat }

// Cells exposes the backing slice, margin included.
func (b *Buffer) Cells() []int { return b.cells }

// Pos maps a flat index to its row and column.
func (b *Buffer) Pos(i int) (row, col int) {
	return i / b.width, i % b.width
}

// Seed drops width/divisor sparks of the given heat onto the bottom row and
// returns the indices written. Indices may repeat.
func (b *Buffer) Seed(rng *rand.Rand, heat, divisor int) []int {
	if divisor <= 0 {
		divisor = DefaultSparkDivisor
	}
	n := b.width / divisor
	base := b.width * (b.height - 1)
	written := make([]int, 0, n)
	for k := 0; k < n; k++ {
		i := base + rng.Intn(b.width)
		b.Set(i, heat)
		written = append(written, i)
	}
	return written
}

// Diffuse averages every visible cell with its right, lower and lower-right
// neighbours. The sweep is in place and in increasing index order, so a cell
// sees its right neighbour's old value and the row below as left by the
// previous frame.
func (b *Buffer) Diffuse() {
	w := b.width
	c := b.cells
	for i := 0; i < b.Size(); i++ {
		c[i] = (c[i] + c[i+1] + c[i+w] + c[i+w+1]) / 4
	}
}

// Step advances one frame.
func (b *Buffer) Step(rng *rand.Rand, heat, divisor int) {
	b.Seed(rng, heat, divisor)
	b.Diffuse()
}

// RowMeans returns the mean heat of every visible row, top to bottom.
func (b *Buffer) RowMeans() []float64 {
	sums := make([]int, b.height)
	for i := 0; i < b.Size(); i++ {
		row, _ := b.Pos(i)
		sums[row] += b.At(i)
	}
	means := make([]float64, b.height)
	for r, sum := range sums {
		means[r] = float64(sum) / float64(b.width)
	}
	return means
}

// Peak is the hottest visible cell.
func (b *Buffer) Peak() int {
	peak := 0
	for i := 0; i < b.Size(); i++ {
		peak = max(peak, b.At(i))
	}
	return peak
}
