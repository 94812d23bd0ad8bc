package immersed

import (
	"runtime"

	"github.com/nereus-ocean/nereus/grid"
	"github.com/nereus-ocean/nereus/utils"
)

// Launcher is the execution context for masking kernel launches. Passing it
// explicitly lets several grids run side by side with differently sized
// worker pools; there is no package-level launch state. The zero Launcher
// sizes its pool from the host.
type Launcher struct {
	NP int // worker goroutines per launch; 0 means runtime.NumCPU()
}

func (l Launcher) degree() int {
	if l.NP > 0 {
		return l.NP
	}
	return runtime.NumCPU()
}

// MaskField overwrites every interior value classified as solid by the
// grid's immersed boundary with value, in place. Grids without an immersed
// boundary skip the kernel launch entirely. The driver must call this after
// each physical update of the field and before a coupled solver consumes
// it; ordering across launches is the driver's contract, nothing here
// locks. Re-applying with the same value is a no-op.
func (l Launcher) MaskField(f *grid.Field, value float64) {
	if f.G.IB == nil {
		return
	}
	l.MaskFieldWith(f, value, f.G.IB)
}

// MaskFieldWith is MaskField with an explicit membership predicate. The
// kernel is a parallel-for over z levels; every worker writes only its own
// levels, so no synchronization is needed within the launch.
func (l Launcher) MaskFieldWith(f *grid.Field, value float64, ib grid.Boundary) {
	var (
		nz = f.Extent(grid.ZAxis)
		ip = utils.NewIndexPartition(l.degree(), nz)
	)
	ip.RunParallel(func(min, max int) {
		for k := min + 1; k <= max; k++ { // buckets are 0-based, interior is 1-based
			maskLevel(f, value, k, ib)
		}
	})
}

// MaskFieldAtLevel masks the single level k of a field, for reduced
// (single-slice) updates; all other levels are untouched.
func (l Launcher) MaskFieldAtLevel(f *grid.Field, value float64, k int) {
	if f.G.IB == nil {
		return
	}
	maskLevel(f, value, k, f.G.IB)
}

// MaskVelocities masks each velocity component with its own staggering
// location in one call. Nil components are skipped so 2D runs can pass
// their two active components.
func (l Launcher) MaskVelocities(value float64, components ...*grid.Field) {
	for _, f := range components {
		if f != nil {
			l.MaskField(f, value)
		}
	}
}

func maskLevel(f *grid.Field, value float64, k int, ib grid.Boundary) {
	for j := 1; j <= f.Extent(grid.YAxis); j++ {
		for i := 1; i <= f.Extent(grid.XAxis); i++ {
			if ib.IsSolid(i, j, k, f.LX, f.LY, f.LZ) {
				f.Set(i, j, k, value)
			}
		}
	}
}

// Convenience entry points launching with the zero Launcher.

func MaskField(f *grid.Field, value float64) {
	Launcher{}.MaskField(f, value)
}

func MaskFieldWith(f *grid.Field, value float64, ib grid.Boundary) {
	Launcher{}.MaskFieldWith(f, value, ib)
}

func MaskFieldAtLevel(f *grid.Field, value float64, k int) {
	Launcher{}.MaskFieldAtLevel(f, value, k)
}

func MaskVelocities(value float64, components ...*grid.Field) {
	Launcher{}.MaskVelocities(value, components...)
}
