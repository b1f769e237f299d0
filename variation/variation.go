// Package variation holds the pluggable generators of input-shape sweeps
// used to probe how a target's cost scales. Strategies are deterministic
// and side-effect-free so regenerating a report reproduces it exactly;
// new strategies are added as new files without touching existing ones.
package variation

import (
	"fmt"
	"strings"

	"github.com/rustopian/eisodos/target"
)

// Parameter is one named point coordinate of a variation.
type Parameter struct {
	Name  string
	Value uint64
}

// Variation describes one point in an input-shape sweep.
type Variation struct {
	Strategy string
	Params   []Parameter
}

// Label renders the variation in the stable human-diffable form used for
// measurement labels: "strategy(k=v, k=v)".
func (v Variation) Label() string {
	if len(v.Params) == 0 {
		return v.Strategy
	}
	parts := make([]string, 0, len(v.Params))
	for _, param := range v.Params {
		parts = append(parts, fmt.Sprintf("%v=%v", param.Name, param.Value))
	}
	return fmt.Sprintf("%v(%v)", v.Strategy, strings.Join(parts, ", "))
}

// Param returns the value of a named parameter.
func (v Variation) Param(name string) (uint64, bool) {
	for _, param := range v.Params {
		if param.Name == name {
			return param.Value, true
		}
	}
	return 0, false
}

// Strategy generates a finite ordered sequence of variations for one
// target. Implementations never repeat a parameter set.
type Strategy interface {
	Name() string
	Generate(descriptor target.Descriptor) []Variation
}

// Single is the degenerate strategy for targets with no input shape to
// sweep: one variation, no parameters.
type Single struct{}

func (Single) Name() string { return "single" }

func (Single) Generate(target.Descriptor) []Variation {
	return []Variation{{Strategy: "single"}}
}
