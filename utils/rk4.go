package utils

// Carpenter/Kennedy five-stage fourth-order low-storage Runge-Kutta
// coefficients.
var (
	RK4a = []float64{
		0,
		-567301805773. / 1357537059087.,
		-2404267990393. / 2016746695238.,
		-3550918686646. / 2091501179385.,
		-1275806237668. / 842570457699.,
	}
	RK4b = []float64{
		1432997174477. / 9575080441755.,
		5161836677717. / 13612068292357.,
		1720146321549. / 2090206949498.,
		3134564353537. / 4481467310338.,
		2277821191437. / 14882151754819.,
	}
)
