package stencil

import (
	"fmt"

	"github.com/nereus-ocean/nereus/grid"
)

// Kernel evaluates a native stencil for the point (i, j, k) along ax at the
// given staggering location, with no boundary awareness of its own.
type Kernel func(f *grid.Field, ax grid.Axis, loc grid.Location, bias Bias, i, j, k int) float64

// Scheme is one link of an order-degradation chain: a reconstruction with
// boundary buffer Buffer and, unless terminal, an owned fallback of strictly
// smaller buffer. Chains are finite and end at a buffer-1 scheme that is
// boundary-safe everywhere at least one interior cell from each wall.
// Schemes are immutable after construction.
type Scheme struct {
	Name     string
	Order    int
	Buffer   int
	Fallback *Scheme

	kernel Kernel
}

// NewScheme assembles one chain link, rejecting chains that cannot
// terminate. A nil fallback is only legal for a buffer-1 scheme, and a
// fallback must have a strictly smaller buffer than its owner; together
// these guarantee every chain reaches a boundary-safe terminal scheme.
func NewScheme(name string, buffer int, kernel Kernel, fallback *Scheme) (s *Scheme, err error) {
	if buffer < 1 {
		err = fmt.Errorf("scheme %s: buffer %d must be at least 1", name, buffer)
		return
	}
	if kernel == nil {
		err = fmt.Errorf("scheme %s: nil kernel", name)
		return
	}
	if fallback == nil && buffer != 1 {
		err = fmt.Errorf("scheme %s: buffer %d requires a fallback, only buffer-1 schemes are terminal", name, buffer)
		return
	}
	if fallback != nil && fallback.Buffer >= buffer {
		err = fmt.Errorf("scheme %s: fallback buffer %d must be smaller than %d", name, fallback.Buffer, buffer)
		return
	}
	s = &Scheme{
		Name:     name,
		Buffer:   buffer,
		Fallback: fallback,
		kernel:   kernel,
	}
	return
}

// Native evaluates the scheme's own stencil with no boundary dispatch.
func (s *Scheme) Native(f *grid.Field, ax grid.Axis, loc grid.Location, bias Bias, i, j, k int) float64 {
	return s.kernel(f, ax, loc, bias, i, j, k)
}

// Reconstruction weights over 2B points for symmetric interpolation and
// 2B-1 points for biased interpolation, listed upwind to downwind. The
// advection-scheme catalog beyond these classical polynomial sets lives
// outside this package.
var (
	centeredWeights = map[int][]float64{
		2: {1. / 2., 1. / 2.},
		4: {-1. / 12., 7. / 12., 7. / 12., -1. / 12.},
		6: {1. / 60., -8. / 60., 37. / 60., 37. / 60., -8. / 60., 1. / 60.},
	}
	upwindWeights = map[int][]float64{
		1: {1.},
		3: {-1. / 6., 5. / 6., 2. / 6.},
		5: {2. / 60., -13. / 60., 47. / 60., 27. / 60., -3. / 60.},
	}
)

// Centered builds the symmetric reconstruction of the given even order
// (2, 4 or 6) with its full degradation chain down to second order.
func Centered(order int) (s *Scheme, err error) {
	if _, ok := centeredWeights[order]; !ok {
		err = fmt.Errorf("no centered reconstruction of order %d", order)
		return
	}
	var fallback *Scheme
	if order > 2 {
		if fallback, err = Centered(order - 2); err != nil {
			return
		}
	}
	buffer := order / 2
	if s, err = NewScheme(fmt.Sprintf("Centered%d", order), buffer,
		polyKernel(buffer, centeredWeights[order], nil), fallback); err == nil {
		s.Order = order
	}
	return
}

// UpwindBiased builds the biased reconstruction of the given odd order
// (1, 3 or 5) with its full degradation chain down to first order. The
// left- or right-leaning variant is selected per call through the Bias
// argument.
func UpwindBiased(order int) (s *Scheme, err error) {
	if _, ok := upwindWeights[order]; !ok {
		err = fmt.Errorf("no upwind reconstruction of order %d", order)
		return
	}
	var fallback *Scheme
	if order > 1 {
		if fallback, err = UpwindBiased(order - 2); err != nil {
			return
		}
	}
	buffer := (order + 1) / 2
	if s, err = NewScheme(fmt.Sprintf("UpwindBiased%d", order), buffer,
		polyKernel(buffer, nil, upwindWeights[order]), fallback); err == nil {
		s.Order = order
	}
	return
}

// polyKernel turns weight tables into a Kernel. Biased weights are listed
// for the left-leaning variant; the right-leaning variant is their mirror.
func polyKernel(buffer int, symmetric, biased []float64) Kernel {
	return func(f *grid.Field, ax grid.Axis, loc grid.Location, bias Bias, i, j, k int) (v float64) {
		var (
			w       = symmetric
			reverse bool
		)
		if bias != Symmetric {
			w = biased
			reverse = bias == RightBias
		}
		if w == nil {
			panic(fmt.Sprintf("scheme has no %s variant", bias))
		}
		start := axisIndex(ax, i, j, k) - buffer + stencilShift(loc, bias)
		for m, wm := range w {
			wv := wm
			if reverse {
				wv = w[len(w)-1-m]
			}
			v += wv * axisAt(f, ax, start+m, i, j, k)
		}
		return
	}
}

// stencilShift is the offset of the first stencil point relative to i-Buffer:
// Center-staggered evaluation shifts one point downwind, and so does a
// right-leaning bias.
func stencilShift(loc grid.Location, bias Bias) (s int) {
	if loc == grid.Center {
		s++
	}
	if bias == RightBias {
		s++
	}
	return
}

// axisAt reads the field at index m along ax, keeping the other two indices.
func axisAt(f *grid.Field, ax grid.Axis, m, i, j, k int) float64 {
	switch ax {
	case grid.XAxis:
		return f.At(m, j, k)
	case grid.YAxis:
		return f.At(i, m, k)
	}
	return f.At(i, j, m)
}
