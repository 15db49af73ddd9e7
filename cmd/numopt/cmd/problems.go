// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numopt/newton"
	"github.com/katalvlaran/numopt/optimize"
	"github.com/katalvlaran/numopt/vector"
)

// objective is a built-in scalar problem for maximize/minimize.
type objective struct {
	desc   string
	start  []float64
	lambda float64 // suggested initial step; 0 keeps the configured one
	f      optimize.Objective
}

// system is a built-in vector field for newton.
type system struct {
	desc  string
	start []float64
	F     newton.Field
}

// at reads component i; callers check the dimension first.
func at(v vector.Vector, i int) float64 {
	x, _ := v.At(i)
	return x
}

var objectives = map[string]objective{
	"trig": {
		desc:  "sin(xy) + sin(x) + cos(y)",
		start: []float64{0.2, -2.1},
		f: func(v vector.Vector) float64 {
			x, y := at(v, 0), at(v, 1)
			return math.Sin(x*y) + math.Sin(x) + math.Cos(y)
		},
	},
	"cap": {
		desc:  "-(x-1)^2 - (y-2)^2",
		start: []float64{0, 0},
		f: func(v vector.Vector) float64 {
			x, y := at(v, 0), at(v, 1)
			return -(x-1)*(x-1) - (y-2)*(y-2)
		},
	},
	"bowl": {
		desc:   "2x^2 - 2xy + y^2 + z^2 - 2x - 4z",
		start:  []float64{0, 0, 0},
		lambda: 0.1,
		f: func(v vector.Vector) float64 {
			x, y, z := at(v, 0), at(v, 1), at(v, 2)
			return 2*x*x - 2*x*y + y*y + z*z - 2*x - 4*z
		},
	},
}

var systems = map[string]system{
	"sqrt2": {
		desc:  "(x^2 - 2, y - x)",
		start: []float64{1, 1},
		F: func(v vector.Vector) vector.Vector {
			x, y := at(v, 0), at(v, 1)
			return vector.New(x*x-2, y-x)
		},
	},
	"cubic": {
		desc:  "(x^3 y^3 - 2y, x - 2)",
		start: []float64{1, 1},
		F: func(v vector.Vector) vector.Vector {
			x, y := at(v, 0), at(v, 1)
			return vector.New(x*x*x*y*y*y-2*y, x-2)
		},
	},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// startPoint returns the --start override or the problem default, checked
// against the problem's dimension.
func startPoint(override, def []float64) (vector.Vector, error) {
	if len(override) == 0 {
		return vector.New(def...), nil
	}
	if len(override) != len(def) {
		return vector.Vector{}, fmt.Errorf("--start: got %d coordinates, want %d", len(override), len(def))
	}

	return vector.New(override...), nil
}

func newProblemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List built-in objectives and systems",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "objectives (maximize, minimize):")
			for _, name := range sortedKeys(objectives) {
				p := objectives[name]
				fmt.Fprintf(out, "  %-6s %-36s start %v\n", name, p.desc, vector.New(p.start...))
			}
			fmt.Fprintln(out, "systems (newton):")
			for _, name := range sortedKeys(systems) {
				s := systems[name]
				fmt.Fprintf(out, "  %-6s %-36s start %v\n", name, s.desc, vector.New(s.start...))
			}
		},
	}
}
