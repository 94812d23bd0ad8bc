package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimParameters struct {
	Title          string  `yaml:"Title"`
	CFL            float64 `yaml:"CFL"`
	FinalTime      float64 `yaml:"FinalTime"`
	SchemeType     string  `yaml:"SchemeType"` // Centered or UpwindBiased
	SchemeOrder    int     `yaml:"SchemeOrder"`
	Nx             int     `yaml:"Nx"`
	Ny             int     `yaml:"Ny"`
	Lx             float64 `yaml:"Lx"`
	Ly             float64 `yaml:"Ly"`
	Halo           int     `yaml:"Halo"`
	TopologyX      string  `yaml:"TopologyX"` // Periodic or Bounded
	TopologyY      string  `yaml:"TopologyY"`
	U0             float64 `yaml:"U0"` // background velocity components
	V0             float64 `yaml:"V0"`
	Obstacle       string  `yaml:"Obstacle"` // None or Cylinder
	ObstacleRadius float64 `yaml:"ObstacleRadius"`
}

func (sp *SimParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", sp.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", sp.FinalTime)
	fmt.Printf("[%s %d]\t= Scheme\n", sp.SchemeType, sp.SchemeOrder)
	fmt.Printf("[%d x %d]\t\t= Cells\n", sp.Nx, sp.Ny)
	fmt.Printf("[%s, %s]\t= Topology\n", sp.TopologyX, sp.TopologyY)
	fmt.Printf("[%s]\t\t= Obstacle\n", sp.Obstacle)
}
