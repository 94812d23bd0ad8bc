package stencil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nereus-ocean/nereus/grid"
)

func TestSchemeChains(t *testing.T) {
	c6, err := Centered(6)
	require.NoError(t, err)
	require.NotNil(t, c6.Fallback)
	require.NotNil(t, c6.Fallback.Fallback)
	assert.Equal(t, 3, c6.Buffer)
	assert.Equal(t, 2, c6.Fallback.Buffer)
	assert.Equal(t, 1, c6.Fallback.Fallback.Buffer)
	assert.Nil(t, c6.Fallback.Fallback.Fallback)

	u5, err := UpwindBiased(5)
	require.NoError(t, err)
	assert.Equal(t, 3, u5.Buffer)
	assert.Equal(t, "UpwindBiased3", u5.Fallback.Name)

	_, err = Centered(8)
	assert.Error(t, err)
	_, err = UpwindBiased(2)
	assert.Error(t, err)
}

func TestSchemeConstructionErrors(t *testing.T) {
	noop := func(f *grid.Field, ax grid.Axis, loc grid.Location, bias Bias, i, j, k int) float64 {
		return 0
	}
	low, err := NewScheme("low", 1, noop, nil)
	require.NoError(t, err)

	// Non-terminal schemes must carry a fallback.
	_, err = NewScheme("orphan", 2, noop, nil)
	assert.Error(t, err)

	// Fallback buffers must strictly decrease.
	_, err = NewScheme("flat", 1, noop, low)
	assert.Error(t, err)

	_, err = NewScheme("bad", 0, noop, nil)
	assert.Error(t, err)
	_, err = NewScheme("nilkernel", 1, nil, nil)
	assert.Error(t, err)
}

// linearField fills storage, halo included, with a + b*i along ax so that any
// consistent reconstruction must land exactly on the line.
func linearField(g *grid.Grid, ax grid.Axis, lx, ly, lz grid.Location, a, b float64) (f *grid.Field) {
	f = grid.NewField(g, lx, ly, lz)
	var (
		h = g.Halo(ax)
		n = g.Size(ax)
	)
	for m := 1 - h; m <= n+h+1; m++ {
		for p := 1; p <= f.Extent(other(ax, 0)); p++ {
			for q := 1; q <= f.Extent(other(ax, 1)); q++ {
				i, j, k := compose(ax, m, p, q)
				f.Set(i, j, k, a+b*float64(m))
			}
		}
	}
	return
}

func other(ax grid.Axis, which int) grid.Axis {
	axes := [][2]grid.Axis{
		{grid.YAxis, grid.ZAxis},
		{grid.XAxis, grid.ZAxis},
		{grid.XAxis, grid.YAxis},
	}
	return axes[ax][which]
}

func compose(ax grid.Axis, m, p, q int) (i, j, k int) {
	switch ax {
	case grid.XAxis:
		return m, p, q
	case grid.YAxis:
		return p, m, q
	}
	return p, q, m
}

func TestReconstructionIsExactOnLinearData(t *testing.T) {
	g, err := grid.NewGrid(grid.Periodic, grid.Collapsed, grid.Collapsed,
		16, 1, 1, 3, 16, 1, 1)
	require.NoError(t, err)
	var (
		a, b = 0.7, 0.3
		c    = linearField(g, grid.XAxis, grid.Center, grid.Center, grid.Center, a, b)
		fc   = linearField(g, grid.XAxis, grid.Face, grid.Center, grid.Center, a, b)
		i    = 8
	)
	// Center data reconstructed at face i, physical position i - 1/2.
	faceWant := a + b*(float64(i)-0.5)
	for _, order := range []int{2, 4, 6} {
		s, err := Centered(order)
		require.NoError(t, err)
		assert.InDelta(t, faceWant, s.Native(c, grid.XAxis, grid.Face, Symmetric, i, 1, 1), 1e-12,
			"Centered(%d) at face", order)
	}
	for _, order := range []int{3, 5} {
		s, err := UpwindBiased(order)
		require.NoError(t, err)
		assert.InDelta(t, faceWant, s.Native(c, grid.XAxis, grid.Face, LeftBias, i, 1, 1), 1e-12,
			"UpwindBiased(%d) left at face", order)
		assert.InDelta(t, faceWant, s.Native(c, grid.XAxis, grid.Face, RightBias, i, 1, 1), 1e-12,
			"UpwindBiased(%d) right at face", order)
	}
	// First-order upwind picks the nearest upstream point.
	u1, err := UpwindBiased(1)
	require.NoError(t, err)
	assert.InDelta(t, a+b*float64(i-1), u1.Native(c, grid.XAxis, grid.Face, LeftBias, i, 1, 1), 1e-12)
	assert.InDelta(t, a+b*float64(i), u1.Native(c, grid.XAxis, grid.Face, RightBias, i, 1, 1), 1e-12)
	// Face data reconstructed at center i, physical position i + 1/2 in
	// face-index coordinates.
	centerWant := a + b*(float64(i)+0.5)
	for _, order := range []int{2, 4, 6} {
		s, err := Centered(order)
		require.NoError(t, err)
		assert.InDelta(t, centerWant, s.Native(fc, grid.XAxis, grid.Center, Symmetric, i, 1, 1), 1e-12,
			"Centered(%d) at center", order)
	}
	for _, order := range []int{3, 5} {
		s, err := UpwindBiased(order)
		require.NoError(t, err)
		assert.InDelta(t, centerWant, s.Native(fc, grid.XAxis, grid.Center, LeftBias, i, 1, 1), 1e-12,
			"UpwindBiased(%d) left at center", order)
		assert.InDelta(t, centerWant, s.Native(fc, grid.XAxis, grid.Center, RightBias, i, 1, 1), 1e-12,
			"UpwindBiased(%d) right at center", order)
	}
}
