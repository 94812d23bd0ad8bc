package immersed

import "github.com/nereus-ocean/nereus/grid"

// CellMask is an immersed boundary given by an explicit per-cell solid flag.
// A Face-staggered point is solid when either adjacent cell is solid, so no
// face open to a solid cell survives masking. Neighbor indices wrap across
// Periodic seams; out-of-range cells on other axes count as fluid.
type CellMask struct {
	G     *grid.Grid
	solid []bool // interior cells, i fastest
}

func NewCellMask(g *grid.Grid) *CellMask {
	return &CellMask{
		G:     g,
		solid: make([]bool, g.Nx*g.Ny*g.Nz),
	}
}

// SetSolid marks interior cell (i, j, k).
func (m *CellMask) SetSolid(i, j, k int, solid bool) {
	m.solid[m.cellIndex(i, j, k)] = solid
}

func (m *CellMask) cellIndex(i, j, k int) int {
	return (i - 1) + m.G.Nx*((j-1)+m.G.Ny*(k-1))
}

func (m *CellMask) cell(i, j, k int) bool {
	g := m.G
	i, ok := interiorCell(g.TX, i, g.Nx)
	if !ok {
		return false
	}
	j, ok = interiorCell(g.TY, j, g.Ny)
	if !ok {
		return false
	}
	k, ok = interiorCell(g.TZ, k, g.Nz)
	if !ok {
		return false
	}
	return m.solid[m.cellIndex(i, j, k)]
}

// interiorCell normalizes a neighbor cell index along one axis: Periodic
// axes wrap across the seam, other axes treat out-of-range cells as fluid.
func interiorCell(t grid.Topology, i, n int) (int, bool) {
	if t == grid.Periodic {
		return (i-1+n)%n + 1, true
	}
	if i < 1 || i > n {
		return 0, false
	}
	return i, true
}

func (m *CellMask) IsSolid(i, j, k int, lx, ly, lz grid.Location) bool {
	for _, di := range adjacent(lx) {
		for _, dj := range adjacent(ly) {
			for _, dk := range adjacent(lz) {
				if m.cell(i+di, j+dj, k+dk) {
					return true
				}
			}
		}
	}
	return false
}

// adjacent lists the cell offsets a point touches along one axis: a center
// sits inside one cell, a face between two.
func adjacent(loc grid.Location) []int {
	if loc == grid.Face {
		return []int{-1, 0}
	}
	return []int{0}
}

// BottomTopography is a grid-fitted seafloor: a per-column bottom height
// b(x, y); a point is solid when its z coordinate lies at or below the
// bottom of its column. Face-staggered points in x or y use the deeper of
// the adjacent columns, wrapping across Periodic seams and clamping at
// Bounded walls.
type BottomTopography struct {
	G      *grid.Grid
	Bottom []float64 // per interior column (i, j), i fastest
}

// NewBottomTopography samples the bottom height at cell-center columns.
func NewBottomTopography(g *grid.Grid, bottom func(x, y float64) float64) (bt *BottomTopography) {
	bt = &BottomTopography{
		G:      g,
		Bottom: make([]float64, g.Nx*g.Ny),
	}
	for j := 1; j <= g.Ny; j++ {
		for i := 1; i <= g.Nx; i++ {
			x := g.Coord(grid.XAxis, grid.Center, i)
			y := g.Coord(grid.YAxis, grid.Center, j)
			bt.Bottom[(i-1)+g.Nx*(j-1)] = bottom(x, y)
		}
	}
	return
}

func (bt *BottomTopography) column(i, j int) float64 {
	g := bt.G
	i = columnIndex(g.TX, i, g.Nx)
	j = columnIndex(g.TY, j, g.Ny)
	return bt.Bottom[(i-1)+g.Nx*(j-1)]
}

// columnIndex wraps a column index across a Periodic seam and clamps it at
// a Bounded wall.
func columnIndex(t grid.Topology, i, n int) int {
	if t == grid.Periodic {
		return (i-1+n)%n + 1
	}
	if i < 1 {
		return 1
	}
	if i > n {
		return n
	}
	return i
}

func (bt *BottomTopography) IsSolid(i, j, k int, lx, ly, lz grid.Location) bool {
	var (
		g = bt.G
		b = bt.column(i, j)
	)
	for _, di := range adjacent(lx) {
		for _, dj := range adjacent(ly) {
			if cb := bt.column(i+di, j+dj); cb > b {
				b = cb
			}
		}
	}
	z := g.Coord(grid.ZAxis, lz, k)
	return z <= b
}
