package grid

import "fmt"

// Boundary answers whether the grid point (i, j, k) at the given staggering
// location lies inside a solid (immersed) region.
type Boundary interface {
	IsSolid(i, j, k int, lx, ly, lz Location) bool
}

// Grid describes a uniform staggered C-grid. Interior cell indices are
// 1-based: centers run over [1..N], faces over [1..N+1] on a Bounded axis.
// A Grid is constructed once at model setup and never mutated afterwards,
// except that an immersed boundary may be attached before the first kernel
// launch.
type Grid struct {
	TX, TY, TZ Topology
	Nx, Ny, Nz int // cells per axis
	Hx, Hy, Hz int // halo depth per axis
	Dx, Dy, Dz float64
	X0, Y0, Z0 float64 // coordinate of the first interior face per axis

	// IB is the immersed boundary owned by this grid; nil means the whole
	// domain is fluid and masking kernels short-circuit.
	IB Boundary
}

// NewGrid builds a grid with uniform spacing L/N per axis and a uniform halo
// depth on every non-Collapsed axis. Collapsed axes must have exactly one
// cell and carry no halo.
func NewGrid(tx, ty, tz Topology, Nx, Ny, Nz, Halo int, Lx, Ly, Lz float64) (g *Grid, err error) {
	check := func(t Topology, n int, l float64, name string) error {
		if n < 1 {
			return fmt.Errorf("axis %s: cell count %d must be positive", name, n)
		}
		if t == Collapsed && n != 1 {
			return fmt.Errorf("axis %s: Collapsed axis must have exactly one cell, have %d", name, n)
		}
		if l <= 0 {
			return fmt.Errorf("axis %s: extent %v must be positive", name, l)
		}
		return nil
	}
	if err = check(tx, Nx, Lx, "x"); err != nil {
		return
	}
	if err = check(ty, Ny, Ly, "y"); err != nil {
		return
	}
	if err = check(tz, Nz, Lz, "z"); err != nil {
		return
	}
	if Halo < 1 {
		err = fmt.Errorf("halo depth %d must be at least 1", Halo)
		return
	}
	haloFor := func(t Topology) int {
		if t == Collapsed {
			return 0
		}
		return Halo
	}
	g = &Grid{
		TX: tx, TY: ty, TZ: tz,
		Nx: Nx, Ny: Ny, Nz: Nz,
		Hx: haloFor(tx), Hy: haloFor(ty), Hz: haloFor(tz),
		Dx: Lx / float64(Nx), Dy: Ly / float64(Ny), Dz: Lz / float64(Nz),
	}
	return
}

func (g *Grid) Topo(ax Axis) Topology {
	switch ax {
	case XAxis:
		return g.TX
	case YAxis:
		return g.TY
	}
	return g.TZ
}

func (g *Grid) Size(ax Axis) int {
	switch ax {
	case XAxis:
		return g.Nx
	case YAxis:
		return g.Ny
	}
	return g.Nz
}

func (g *Grid) Halo(ax Axis) int {
	switch ax {
	case XAxis:
		return g.Hx
	case YAxis:
		return g.Hy
	}
	return g.Hz
}

func (g *Grid) Spacing(ax Axis) float64 {
	switch ax {
	case XAxis:
		return g.Dx
	case YAxis:
		return g.Dy
	}
	return g.Dz
}

func (g *Grid) origin(ax Axis) float64 {
	switch ax {
	case XAxis:
		return g.X0
	case YAxis:
		return g.Y0
	}
	return g.Z0
}

// Coord is the physical coordinate of index i at the given staggering
// location: face i sits at the left edge of cell i, center i half a cell in.
func (g *Grid) Coord(ax Axis, loc Location, i int) float64 {
	d := g.Spacing(ax)
	x := g.origin(ax) + float64(i-1)*d
	if loc == Center {
		x += 0.5 * d
	}
	return x
}

// SupportsBuffer verifies once, at setup, that the halo region is deep
// enough for a stencil of the given boundary buffer. Using a scheme whose
// buffer exceeds the halo depth reads outside field storage.
func (g *Grid) SupportsBuffer(buffer int) error {
	for _, ax := range []Axis{XAxis, YAxis, ZAxis} {
		if g.Topo(ax) == Collapsed {
			continue
		}
		if g.Halo(ax) < buffer {
			return fmt.Errorf("axis %s: halo depth %d cannot support stencil buffer %d",
				ax, g.Halo(ax), buffer)
		}
	}
	return nil
}
