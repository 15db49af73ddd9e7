// SPDX-License-Identifier: MIT

package optimize

import (
	"github.com/katalvlaran/numopt/vector"
)

// Objective is a pure scalar field Rⁿ → R. It is evaluated several times per
// iteration at nearby points, so it must be defined on the whole region the
// search visits.
type Objective func(x vector.Vector) float64

// Termination says why a search stopped. All causes are normal terminations;
// failures are reported through the error return instead.
type Termination int

const (
	// Converged: ‖∇f‖ fell below MaxError.
	Converged Termination = iota
	// MaxSteps: the iteration budget was exhausted (best-effort result).
	MaxSteps
	// StepCollapsed: MaxHalvings halvings did not recover an improvement.
	StepCollapsed
)

// String returns a stable lower-case name, used in trace records and logs.
func (t Termination) String() string {
	switch t {
	case Converged:
		return "converged"
	case MaxSteps:
		return "max-steps"
	case StepCollapsed:
		return "step-collapsed"
	default:
		return "unknown"
	}
}

// Result is the terminal state of a search.
type Result struct {
	Position    vector.Vector // terminal position
	Value       float64       // objective at Position, on the caller's scale
	Gradient    vector.Vector // ∇f at Position, on the caller's scale
	GradNorm    float64       // ‖Gradient‖
	Step        float64       // step size λ in force at termination
	Iterations  int           // committed iterations
	Evaluations int           // objective evaluations, including gradients
	Cause       Termination
}
