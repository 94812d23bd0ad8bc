package grid

// Topology classifies one axis of the domain.
type Topology uint8

const (
	Periodic  Topology = iota // wraparound continuity
	Bounded                   // physical wall at both ends
	Collapsed                 // no extent, e.g. the third axis of a 2D run
)

func (t Topology) String() string {
	switch t {
	case Periodic:
		return "Periodic"
	case Bounded:
		return "Bounded"
	case Collapsed:
		return "Collapsed"
	}
	return "Unknown"
}

// ParseTopology converts the spelling used in YAML input files.
func ParseTopology(label string) (t Topology, ok bool) {
	switch label {
	case "Periodic", "periodic":
		return Periodic, true
	case "Bounded", "bounded":
		return Bounded, true
	case "Collapsed", "collapsed", "Flat", "flat":
		return Collapsed, true
	}
	return Periodic, false
}

// Location is the staggering location of field data along one axis of the
// C-grid: scalars live at cell Centers, vector components at cell Faces.
type Location uint8

const (
	Center Location = iota
	Face
)

func (l Location) String() string {
	if l == Face {
		return "Face"
	}
	return "Center"
}

// Axis selects one of the three spatial directions.
type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

func (a Axis) String() string {
	switch a {
	case XAxis:
		return "X"
	case YAxis:
		return "Y"
	}
	return "Z"
}
