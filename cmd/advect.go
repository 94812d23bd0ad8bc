/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nereus-ocean/nereus/InputParameters"
	"github.com/nereus-ocean/nereus/grid"
	"github.com/nereus-ocean/nereus/immersed"
	"github.com/nereus-ocean/nereus/model_problems/TracerAdvection2D"
	"github.com/nereus-ocean/nereus/stencil"
)

type ModelAdvect struct {
	ICFile  string
	Graph   bool
	Delay   time.Duration
	Profile bool
}

// AdvectCmd represents the advect command
var AdvectCmd = &cobra.Command{
	Use:   "advect",
	Short: "Tracer advection on a staggered grid with an immersed obstacle",
	Long: `
Runs the tracer-advection model problem: boundary-aware adaptive stencils
around the domain edges, immersed-boundary masking after every update.`,
	Run: func(cmd *cobra.Command, args []string) {
		ma := &ModelAdvect{}
		var err error
		if ma.ICFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		ma.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		ma.Delay = time.Duration(dr) * time.Millisecond
		ma.Profile, _ = cmd.Flags().GetBool("profile")
		sp := processInput(ma)
		RunAdvect(ma, sp)
	},
}

func processInput(ma *ModelAdvect) (sp *InputParameters.SimParameters) {
	if len(ma.ICFile) == 0 {
		fmt.Printf("error: must supply an input parameters file (-I, --inputFile) in YAML format\n")
		exampleFile := `
########################################
Title: "Cylinder Wake Tracer"
CFL: 0.25
FinalTime: 10
SchemeType: UpwindBiased
SchemeOrder: 5
Nx: 128
Ny: 64
Lx: 4
Ly: 2
Halo: 3
TopologyX: Bounded
TopologyY: Periodic
U0: 1
V0: 0
Obstacle: Cylinder
ObstacleRadius: 0.25
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := ioutil.ReadFile(ma.ICFile)
	if err != nil {
		panic(err)
	}
	sp = &InputParameters.SimParameters{}
	if err = sp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(AdvectCmd)
	AdvectCmd.Flags().StringP("inputFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- SchemeOrder\n\t- Obstacle geometry")
	AdvectCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	AdvectCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	AdvectCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the run")
}

func RunAdvect(ma *ModelAdvect, sp *InputParameters.SimParameters) {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	if ma.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	sp.Print()

	tx, ok := grid.ParseTopology(sp.TopologyX)
	if !ok {
		sugar.Fatalw("bad x topology", "TopologyX", sp.TopologyX)
	}
	ty, ok := grid.ParseTopology(sp.TopologyY)
	if !ok {
		sugar.Fatalw("bad y topology", "TopologyY", sp.TopologyY)
	}
	g, err := grid.NewGrid(tx, ty, grid.Collapsed, sp.Nx, sp.Ny, 1, sp.Halo, sp.Lx, sp.Ly, 1)
	if err != nil {
		sugar.Fatalw("grid construction failed", "err", err)
	}
	attachObstacle(g, sp)

	var (
		s         *stencil.Scheme
		symmetric bool
	)
	switch sp.SchemeType {
	case "Centered":
		s, err = stencil.Centered(sp.SchemeOrder)
		symmetric = true
	default:
		s, err = stencil.UpwindBiased(sp.SchemeOrder)
	}
	if err != nil {
		sugar.Fatalw("scheme construction failed", "err", err)
	}

	m, err := TracerAdvection2D.NewTracer(g, s, symmetric, sp.CFL, sp.FinalTime, sp.U0, sp.V0)
	if err != nil {
		sugar.Fatalw("model setup failed", "err", err)
	}
	sugar.Infow("starting run",
		"title", sp.Title,
		"cells", sp.Nx*sp.Ny,
		"scheme", s.Name,
		"obstacle", sp.Obstacle,
	)
	start := time.Now()
	m.Run(ma.Graph, ma.Delay)
	sugar.Infow("run complete",
		"steps", m.StepCount,
		"elapsed", time.Since(start),
	)
}

// attachObstacle installs the immersed boundary named by the input file.
func attachObstacle(g *grid.Grid, sp *InputParameters.SimParameters) {
	switch sp.Obstacle {
	case "Cylinder":
		var (
			cm = immersed.NewCellMask(g)
			xc = g.X0 + 0.5*sp.Lx
			yc = g.Y0 + 0.5*sp.Ly
			r  = sp.ObstacleRadius
		)
		for j := 1; j <= g.Ny; j++ {
			for i := 1; i <= g.Nx; i++ {
				x := g.Coord(grid.XAxis, grid.Center, i)
				y := g.Coord(grid.YAxis, grid.Center, j)
				if math.Hypot(x-xc, y-yc) <= r {
					cm.SetSolid(i, j, 1, true)
				}
			}
		}
		g.IB = cm
	}
}
