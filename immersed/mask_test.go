package immersed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nereus-ocean/nereus/grid"
)

type predicateFunc func(i, j, k int, lx, ly, lz grid.Location) bool

func (p predicateFunc) IsSolid(i, j, k int, lx, ly, lz grid.Location) bool {
	return p(i, j, k, lx, ly, lz)
}

func testGrid(t *testing.T) *grid.Grid {
	g, err := grid.NewGrid(grid.Bounded, grid.Periodic, grid.Bounded,
		6, 5, 4, 2, 6, 5, 4)
	require.NoError(t, err)
	return g
}

func rampField(g *grid.Grid, lx, ly, lz grid.Location) (f *grid.Field) {
	f = grid.NewField(g, lx, ly, lz)
	n := 0.
	f.Each(func(i, j, k int) {
		n++
		f.Set(i, j, k, n)
	})
	return
}

func TestMaskWithoutImmersedBoundaryIsNoOp(t *testing.T) {
	g := testGrid(t) // no immersed boundary attached
	f := rampField(g, grid.Center, grid.Center, grid.Center)
	before := append([]float64(nil), f.Data...)
	MaskField(f, 0)
	MaskFieldAtLevel(f, 0, 2)
	assert.Equal(t, before, f.Data)
}

func TestMaskAlwaysFalseLeavesFieldUnchanged(t *testing.T) {
	g := testGrid(t)
	f := rampField(g, grid.Center, grid.Center, grid.Center)
	before := append([]float64(nil), f.Data...)
	never := predicateFunc(func(i, j, k int, lx, ly, lz grid.Location) bool { return false })
	MaskFieldWith(f, 0, never)
	assert.Equal(t, before, f.Data)
}

func TestMaskAlwaysTrueSetsEveryInteriorCell(t *testing.T) {
	g := testGrid(t)
	f := rampField(g, grid.Center, grid.Center, grid.Center)
	halo := f.At(0, 1, 1)
	always := predicateFunc(func(i, j, k int, lx, ly, lz grid.Location) bool { return true })
	MaskFieldWith(f, -5, always)
	f.Each(func(i, j, k int) {
		assert.Equal(t, -5., f.At(i, j, k))
	})
	// Halo storage is outside the kernel's reach.
	assert.Equal(t, halo, f.At(0, 1, 1))
}

func TestLauncherPoolSizeDoesNotChangeResult(t *testing.T) {
	g := testGrid(t)
	cm := NewCellMask(g)
	cm.SetSolid(2, 3, 1, true)
	cm.SetSolid(5, 1, 4, true)
	g.IB = cm

	serial := rampField(g, grid.Center, grid.Center, grid.Center)
	wide := serial.Copy()
	Launcher{NP: 1}.MaskField(serial, 0)
	Launcher{NP: 8}.MaskField(wide, 0)
	assert.Equal(t, serial.Data, wide.Data)
}

func TestMaskIsIdempotent(t *testing.T) {
	g := testGrid(t)
	cm := NewCellMask(g)
	cm.SetSolid(3, 2, 2, true)
	cm.SetSolid(4, 2, 2, true)
	g.IB = cm

	f := rampField(g, grid.Center, grid.Center, grid.Center)
	MaskField(f, 0)
	once := append([]float64(nil), f.Data...)
	MaskField(f, 0)
	assert.Equal(t, once, f.Data)
}

func TestMaskAtLevelTouchesOnlyThatLevel(t *testing.T) {
	g := testGrid(t)
	always := predicateFunc(func(i, j, k int, lx, ly, lz grid.Location) bool { return true })
	g.IB = always

	f := rampField(g, grid.Center, grid.Center, grid.Center)
	snapshot := f.Copy()
	MaskFieldAtLevel(f, 0, 2)
	f.Each(func(i, j, k int) {
		if k == 2 {
			assert.Equal(t, 0., f.At(i, j, k))
		} else {
			assert.Equal(t, snapshot.At(i, j, k), f.At(i, j, k))
		}
	})
}

func TestCellMaskStaggering(t *testing.T) {
	g := testGrid(t)
	cm := NewCellMask(g)
	cm.SetSolid(3, 2, 2, true)

	// The cell itself.
	assert.True(t, cm.IsSolid(3, 2, 2, grid.Center, grid.Center, grid.Center))
	assert.False(t, cm.IsSolid(2, 2, 2, grid.Center, grid.Center, grid.Center))

	// Both x faces of the solid cell, and no others.
	assert.True(t, cm.IsSolid(3, 2, 2, grid.Face, grid.Center, grid.Center))
	assert.True(t, cm.IsSolid(4, 2, 2, grid.Face, grid.Center, grid.Center))
	assert.False(t, cm.IsSolid(5, 2, 2, grid.Face, grid.Center, grid.Center))

	// Same along y and z.
	assert.True(t, cm.IsSolid(3, 2, 2, grid.Center, grid.Face, grid.Center))
	assert.True(t, cm.IsSolid(3, 3, 2, grid.Center, grid.Face, grid.Center))
	assert.True(t, cm.IsSolid(3, 2, 2, grid.Center, grid.Center, grid.Face))
	assert.True(t, cm.IsSolid(3, 2, 3, grid.Center, grid.Center, grid.Face))
}

func TestCellMaskPeriodicSeam(t *testing.T) {
	// Periodic x and y: solid cells in the last column and row must make
	// the seam faces at index 1 solid, since those faces straddle the wrap.
	g, err := grid.NewGrid(grid.Periodic, grid.Periodic, grid.Bounded,
		6, 5, 4, 2, 6, 5, 4)
	require.NoError(t, err)
	cm := NewCellMask(g)
	cm.SetSolid(6, 1, 1, true)
	cm.SetSolid(3, 5, 2, true)

	// u face 1 sits between cells 6 and 1 across the x seam.
	assert.True(t, cm.IsSolid(1, 1, 1, grid.Face, grid.Center, grid.Center))
	assert.False(t, cm.IsSolid(2, 1, 1, grid.Face, grid.Center, grid.Center))
	// Cell 1 itself stays fluid.
	assert.False(t, cm.IsSolid(1, 1, 1, grid.Center, grid.Center, grid.Center))

	// v face 1 sits between rows 5 and 1 across the y seam.
	assert.True(t, cm.IsSolid(3, 1, 2, grid.Center, grid.Face, grid.Center))
	assert.False(t, cm.IsSolid(4, 1, 2, grid.Center, grid.Face, grid.Center))
}

func TestCellMaskBoundedWallStaysFluidOutside(t *testing.T) {
	// Bounded x: the wall face of a solid edge cell is solid, but nothing
	// wraps and the opposite wall is untouched.
	g := testGrid(t)
	cm := NewCellMask(g)
	cm.SetSolid(6, 2, 2, true)

	assert.True(t, cm.IsSolid(6, 2, 2, grid.Face, grid.Center, grid.Center))
	assert.True(t, cm.IsSolid(7, 2, 2, grid.Face, grid.Center, grid.Center))
	assert.False(t, cm.IsSolid(1, 2, 2, grid.Face, grid.Center, grid.Center))
}

func TestMaskVelocitiesUsesComponentLocations(t *testing.T) {
	g := testGrid(t)
	cm := NewCellMask(g)
	cm.SetSolid(3, 2, 2, true)
	g.IB = cm

	u := rampField(g, grid.Face, grid.Center, grid.Center)
	v := rampField(g, grid.Center, grid.Face, grid.Center)
	w := rampField(g, grid.Center, grid.Center, grid.Face)
	MaskVelocities(0, u, v, w)

	assert.Equal(t, 0., u.At(3, 2, 2))
	assert.Equal(t, 0., u.At(4, 2, 2))
	assert.NotEqual(t, 0., u.At(5, 2, 2))
	assert.Equal(t, 0., v.At(3, 2, 2))
	assert.Equal(t, 0., v.At(3, 3, 2))
	assert.Equal(t, 0., w.At(3, 2, 2))
	assert.Equal(t, 0., w.At(3, 2, 3))

	// Nil components are allowed for reduced-dimension runs.
	MaskVelocities(0, u, nil, nil)
}

func TestBottomTopography(t *testing.T) {
	// Bounded z column of 4 cells over [0, 4]; a step bottom of height 2
	// in the left half of the domain.
	g, err := grid.NewGrid(grid.Periodic, grid.Periodic, grid.Bounded,
		6, 5, 4, 2, 6, 5, 4)
	require.NoError(t, err)
	bt := NewBottomTopography(g, func(x, y float64) float64 {
		if x < 3 {
			return 2
		}
		return 0
	})

	// Centers at z = 0.5, 1.5, 2.5, 3.5 in the shallow half.
	assert.True(t, bt.IsSolid(1, 1, 1, grid.Center, grid.Center, grid.Center))
	assert.True(t, bt.IsSolid(1, 1, 2, grid.Center, grid.Center, grid.Center))
	assert.False(t, bt.IsSolid(1, 1, 3, grid.Center, grid.Center, grid.Center))

	// The w face at the step top (z = 2) is still solid; one above is fluid.
	assert.True(t, bt.IsSolid(1, 1, 3, grid.Center, grid.Center, grid.Face))
	assert.False(t, bt.IsSolid(1, 1, 4, grid.Center, grid.Center, grid.Face))

	// Deep half is fluid above the floor.
	assert.False(t, bt.IsSolid(5, 1, 1, grid.Center, grid.Center, grid.Center))

	// A u face straddling the step uses the deeper column.
	assert.True(t, bt.IsSolid(4, 1, 2, grid.Face, grid.Center, grid.Center))
	assert.False(t, bt.IsSolid(5, 1, 2, grid.Face, grid.Center, grid.Center))
}

func TestBottomTopographyPeriodicSeam(t *testing.T) {
	// The step occupies the last column; the u face on the seam (face 1,
	// between columns 6 and 1 across the wrap) must see the step.
	g, err := grid.NewGrid(grid.Periodic, grid.Periodic, grid.Bounded,
		6, 5, 4, 2, 6, 5, 4)
	require.NoError(t, err)
	bt := NewBottomTopography(g, func(x, y float64) float64 {
		if x > 5 {
			return 2
		}
		return 0
	})

	assert.True(t, bt.IsSolid(1, 1, 2, grid.Face, grid.Center, grid.Center))
	assert.False(t, bt.IsSolid(2, 1, 2, grid.Face, grid.Center, grid.Center))
	// The seam column's own centers stay fluid above the flat floor.
	assert.False(t, bt.IsSolid(1, 1, 2, grid.Center, grid.Center, grid.Center))
}
