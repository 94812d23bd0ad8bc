package stencil

import (
	"fmt"

	"github.com/nereus-ocean/nereus/grid"
)

// Interpolate reconstructs field data half a cell from (i, j, k) along ax,
// at the given staggering location for that axis. Periodic and Collapsed
// axes, and terminal (buffer-1) schemes, dispatch straight to the native
// stencil. On a Bounded axis a high-order scheme is only applied outside
// its boundary buffer; inside it the request is re-dispatched to the
// scheme's fallback with the same bias, axis and indices. The recursion is
// finite because fallback buffers are strictly decreasing by construction.
// Each axis inspects only its own topology and index, so grids Bounded in
// several axes compose the per-axis checks independently.
func Interpolate(f *grid.Field, s *Scheme, ax grid.Axis, loc grid.Location, bias Bias, i, j, k int) float64 {
	g := f.G
	if s.Fallback == nil || g.Topo(ax) != grid.Bounded {
		return s.kernel(f, ax, loc, bias, i, j, k)
	}
	if OutsideBuffer(axisIndex(ax, i, j, k), g.Size(ax), s.Buffer, bias, loc) {
		return s.kernel(f, ax, loc, bias, i, j, k)
	}
	return Interpolate(f, s.Fallback, ax, loc, bias, i, j, k)
}

func axisIndex(ax grid.Axis, i, j, k int) int {
	switch ax {
	case grid.XAxis:
		return i
	case grid.YAxis:
		return j
	}
	return k
}

// MultiDim is a genuinely two-dimensional reconstruction used by
// vector-invariant momentum advection: the inner scheme is applied along the
// interpolation axis at each of 2*Buffer-1 offsets along a cross axis, and
// the results are combined with the Cross weights. Near a Bounded wall in
// the cross axis the two-dimensional stencil cannot fit; the scheme then
// switches entirely to its designated one-dimensional fallback rather than
// degrading to a smaller two-dimensional stencil.
type MultiDim struct {
	Buffer int
	Cross  []float64 // symmetric cross-axis weights, length 2*Buffer-1
	Inner  *Scheme
	OneDim *Scheme
}

// NewMultiDim validates the cross-axis weight count and the presence of the
// one-dimensional fallback.
func NewMultiDim(inner, oneDim *Scheme, cross []float64) (md *MultiDim, err error) {
	if inner == nil || oneDim == nil {
		err = fmt.Errorf("multi-dimensional scheme requires an inner scheme and a one-dimensional fallback")
		return
	}
	if len(cross)%2 == 0 || len(cross) < 3 {
		err = fmt.Errorf("cross-axis weights must have odd length >= 3, have %d", len(cross))
		return
	}
	md = &MultiDim{
		Buffer: (len(cross) + 1) / 2,
		Cross:  cross,
		Inner:  inner,
		OneDim: oneDim,
	}
	return
}

// InterpolateMultiDim evaluates the two-dimensional stencil for the point
// (i, j, k): reconstruction along interpAx, widened across crossAx. The
// cross axis is checked against a symmetric buffer on both sides; inside
// that buffer the one-dimensional fallback runs along the unaffected
// interpolation axis through the ordinary adaptive dispatcher.
func InterpolateMultiDim(f *grid.Field, md *MultiDim, interpAx, crossAx grid.Axis, loc grid.Location, bias Bias, i, j, k int) (v float64) {
	g := f.G
	if g.Topo(crossAx) == grid.Bounded {
		idx := axisIndex(crossAx, i, j, k)
		if !OutsideBuffer(idx, g.Size(crossAx), md.Buffer, Symmetric, grid.Center) {
			return Interpolate(f, md.OneDim, interpAx, loc, bias, i, j, k)
		}
	}
	for m, wm := range md.Cross {
		off := m - (md.Buffer - 1)
		ci, cj, ck := shiftAxis(crossAx, off, i, j, k)
		// The interpolation axis keeps its own independent boundary check.
		v += wm * Interpolate(f, md.Inner, interpAx, loc, bias, ci, cj, ck)
	}
	return
}

func shiftAxis(ax grid.Axis, off, i, j, k int) (int, int, int) {
	switch ax {
	case grid.XAxis:
		return i + off, j, k
	case grid.YAxis:
		return i, j + off, k
	}
	return i, j, k + off
}
