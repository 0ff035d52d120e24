package layout

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSpacing is the distance between neighbouring cell centers in world units.
const DefaultSpacing = 4

// DefaultFitSize is the largest dimension a model is scaled to.
const DefaultFitSize = 1.5

// Cell is one slot of the model grid.
type Cell struct {
	Index int
	Row   int
	Col   int
	// Center is the cell center on the Z=0 plane, rows going down from the top.
	Center mgl32.Vec3
}

// Grid places n models on a near-square grid centered on the origin of the XY plane.
type Grid struct {
	Count   int
	Columns int
	Rows    int
	Spacing float32
}

// NewGrid returns a grid for n models: ceil(sqrt(n)) columns and as many rows as needed.
// A non-positive spacing falls back to DefaultSpacing.
func NewGrid(n int, spacing float32) Grid {
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	if n <= 0 {
		return Grid{Spacing: spacing}
	}
	cols := int(math32.Ceil(math32.Sqrt(float32(n))))
	rows := (n + cols - 1) / cols
	return Grid{Count: n, Columns: cols, Rows: rows, Spacing: spacing}
}

// Cell returns the slot for model i. Indices outside the grid still get a position
// continuing the row-major pattern.
func (g Grid) Cell(i int) Cell {
	if g.Columns == 0 {
		return Cell{Index: i}
	}
	row := i / g.Columns
	col := i % g.Columns
	x := (float32(col) - float32(g.Columns)/2 + 0.5) * g.Spacing
	y := -(float32(row) - float32(g.Rows)/2 + 0.5) * g.Spacing
	return Cell{Index: i, Row: row, Col: col, Center: mgl32.Vec3{x, y, 0}}
}

// Cells returns every slot in index order.
func (g Grid) Cells() []Cell {
	out := make([]Cell, g.Count)
	for i := range out {
		out[i] = g.Cell(i)
	}
	return out
}

// Size returns the grid's width and height in world units.
func (g Grid) Size() (width, height float32) {
	return float32(g.Columns) * g.Spacing, float32(g.Rows) * g.Spacing
}

// FitScale returns the uniform scale that makes a box of the given size fit fitSize on its
// largest side. Empty boxes keep scale 1.
func FitScale(size mgl32.Vec3, fitSize float32) float32 {
	maxDim := math32.Max(size[0], math32.Max(size[1], size[2]))
	if maxDim <= 0 || math32.IsInf(maxDim, 0) || math32.IsNaN(maxDim) {
		return 1
	}
	return fitSize / maxDim
}

// IdleSpeed returns a deterministic pseudo-random speed in [min, max) for slot i.
// The same seed always yields the same speeds, so the gallery looks the same run to run.
func IdleSpeed(i int, seed int64, min, max float32) float32 {
	if max <= min {
		return min
	}
	return min + hash(int32(i), int32(seed))*(max-min)
}

// hash maps an index to a float in [0,1).
func hash(i, seed int32) float32 {
	n := i*374761393 + seed*668265263
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	return float32(n&0x7fffff) / (1 << 23)
}
