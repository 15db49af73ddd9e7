// SPDX-License-Identifier: MIT
package optimize_test

import (
	"fmt"

	"github.com/katalvlaran/numopt/optimize"
	"github.com/katalvlaran/numopt/vector"
)

// ExampleMaximize climbs the cap −(x−1)² − (y−2)² from the origin.
func ExampleMaximize() {
	f := func(x vector.Vector) float64 {
		v := x.Values()
		return -(v[0]-1)*(v[0]-1) - (v[1]-2)*(v[1]-2)
	}
	res, err := optimize.Maximize(vector.New(0, 0), f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x, _ := res.Position.At(0)
	y, _ := res.Position.At(1)
	fmt.Printf("x=%.3f y=%.3f cause=%s\n", x, y, res.Cause)
	// Output:
	// x=1.000 y=2.000 cause=converged
}

// ExampleMinimize descends (x−5)² from 0.
func ExampleMinimize() {
	g := func(x vector.Vector) float64 {
		v, _ := x.At(0)
		return (v - 5) * (v - 5)
	}
	res, _ := optimize.Minimize(vector.New(0), g)
	x, _ := res.Position.At(0)
	fmt.Printf("x=%.3f\n", x)
	// Output:
	// x=5.000
}
