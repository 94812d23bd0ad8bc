package grid

// Field is dense storage for one variable on a staggered grid, halo region
// included. Storage per axis covers indices [1-H .. N+H+1]; the extra face
// plane keeps strides independent of staggering. Fields hold a non-owning
// reference to their grid.
type Field struct {
	G          *Grid
	LX, LY, LZ Location
	Data       []float64

	lenX, lenY int // strides, i fastest
}

func NewField(g *Grid, lx, ly, lz Location) (f *Field) {
	f = &Field{
		G:    g,
		LX:   lx,
		LY:   ly,
		LZ:   lz,
		lenX: g.Nx + 2*g.Hx + 1,
		lenY: g.Ny + 2*g.Hy + 1,
	}
	lenZ := g.Nz + 2*g.Hz + 1
	f.Data = make([]float64, f.lenX*f.lenY*lenZ)
	return
}

func (f *Field) index(i, j, k int) int {
	g := f.G
	return (i + g.Hx - 1) + f.lenX*((j+g.Hy-1)+f.lenY*(k+g.Hz-1))
}

func (f *Field) At(i, j, k int) float64 {
	return f.Data[f.index(i, j, k)]
}

func (f *Field) Set(i, j, k int, v float64) {
	f.Data[f.index(i, j, k)] = v
}

// Extent is the number of interior points along ax: N cells, plus the extra
// wall face when the field is Face-staggered on a Bounded axis.
func (f *Field) Extent(ax Axis) int {
	n := f.G.Size(ax)
	if f.loc(ax) == Face && f.G.Topo(ax) == Bounded {
		n++
	}
	return n
}

func (f *Field) loc(ax Axis) Location {
	switch ax {
	case XAxis:
		return f.LX
	case YAxis:
		return f.LY
	}
	return f.LZ
}

// Location returns the staggering location along ax.
func (f *Field) Location(ax Axis) Location {
	return f.loc(ax)
}

// Fill sets every interior value.
func (f *Field) Fill(v float64) {
	f.Each(func(i, j, k int) {
		f.Set(i, j, k, v)
	})
}

// Each visits every interior point, i fastest.
func (f *Field) Each(visit func(i, j, k int)) {
	for k := 1; k <= f.Extent(ZAxis); k++ {
		for j := 1; j <= f.Extent(YAxis); j++ {
			for i := 1; i <= f.Extent(XAxis); i++ {
				visit(i, j, k)
			}
		}
	}
}

// Copy duplicates the field, halos included.
func (f *Field) Copy() (c *Field) {
	c = NewField(f.G, f.LX, f.LY, f.LZ)
	copy(c.Data, f.Data)
	return
}

// Interior returns the interior values as a flat slice, i fastest, for
// diagnostics.
func (f *Field) Interior() (vals []float64) {
	vals = make([]float64, 0, f.Extent(XAxis)*f.Extent(YAxis)*f.Extent(ZAxis))
	f.Each(func(i, j, k int) {
		vals = append(vals, f.At(i, j, k))
	})
	return
}

// FillHalos populates the halo region from interior data: Periodic axes wrap,
// Bounded axes copy the edge value (zero gradient), Collapsed axes carry no
// halo. Corners are made consistent by sweeping x, then y, then z.
func (f *Field) FillHalos() {
	g := f.G
	if g.TX != Collapsed {
		nx := f.Extent(XAxis)
		for k := 1; k <= f.Extent(ZAxis); k++ {
			for j := 1; j <= f.Extent(YAxis); j++ {
				for h := 1; h <= g.Hx; h++ {
					fillPair(g.TX, h, nx,
						func(i int) float64 { return f.At(i, j, k) },
						func(i int, v float64) { f.Set(i, j, k, v) })
				}
			}
		}
	}
	if g.TY != Collapsed {
		ny := f.Extent(YAxis)
		for k := 1; k <= f.Extent(ZAxis); k++ {
			for i := 1 - g.Hx; i <= f.Extent(XAxis)+g.Hx; i++ {
				for h := 1; h <= g.Hy; h++ {
					fillPair(g.TY, h, ny,
						func(j int) float64 { return f.At(i, j, k) },
						func(j int, v float64) { f.Set(i, j, k, v) })
				}
			}
		}
	}
	if g.TZ != Collapsed {
		nz := f.Extent(ZAxis)
		for j := 1 - g.Hy; j <= f.Extent(YAxis)+g.Hy; j++ {
			for i := 1 - g.Hx; i <= f.Extent(XAxis)+g.Hx; i++ {
				for h := 1; h <= g.Hz; h++ {
					fillPair(g.TZ, h, nz,
						func(k int) float64 { return f.At(i, j, k) },
						func(k int, v float64) { f.Set(i, j, k, v) })
				}
			}
		}
	}
}

func fillPair(t Topology, h, n int, at func(int) float64, set func(int, float64)) {
	switch t {
	case Periodic:
		set(1-h, at(n+1-h))
		set(n+h, at(h))
	case Bounded:
		set(1-h, at(1))
		set(n+h, at(n))
	}
}
