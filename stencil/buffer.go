package stencil

import "github.com/nereus-ocean/nereus/grid"

// Bias marks which side of the evaluation point a reconstruction leans
// toward; Symmetric stencils are centered, biased stencils are used for
// upwinding.
type Bias uint8

const (
	Symmetric Bias = iota
	LeftBias
	RightBias
)

func (b Bias) String() string {
	switch b {
	case LeftBias:
		return "Left"
	case RightBias:
		return "Right"
	}
	return "Symmetric"
}

// OutsideBuffer reports whether index i on a Bounded axis of n cells is far
// enough from both walls that a stencil with the given boundary buffer can be
// evaluated without reaching past the domain edge. Face- and Center-staggered
// stencils are offset by half a cell and biased stencils consume one fewer
// point on their upstream side, giving six closed forms.
func OutsideBuffer(i, n, buffer int, bias Bias, loc grid.Location) bool {
	switch bias {
	case Symmetric:
		if loc == grid.Face {
			return i > buffer && i < n+1-buffer
		}
		return i > buffer-1 && i < n+1-buffer
	case LeftBias:
		if loc == grid.Face {
			return i > buffer && i < n+1-(buffer-1)
		}
		return i > buffer-1 && i < n+1-(buffer-1)
	default: // RightBias
		if loc == grid.Face {
			return i > buffer-1 && i < n+1-buffer
		}
		return i > buffer-2 && i < n+1-buffer
	}
}
