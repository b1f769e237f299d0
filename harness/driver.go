package harness

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rustopian/eisodos/logger"
	"github.com/rustopian/eisodos/target"
	"github.com/rustopian/eisodos/variation"
	"github.com/rustopian/eisodos/wire"
)

// Driver runs sweeps. Warmup invocations are executed and discarded
// before the measured attempts; attempts of one combination must report
// the same cost, anything else is logged as instability.
type Driver struct {
	Warmup   int
	Attempts int
	Log      *zap.SugaredLogger
}

func (d *Driver) log() *zap.SugaredLogger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Logger
}

func (d *Driver) attempts() int {
	if d.Attempts < 1 {
		return 1
	}
	return d.Attempts
}

// Sweep measures every (environment, plan, variation) combination in
// order. A failing combination produces a Result with Err set and the
// sweep continues; one broken target never hides the rest of the report.
func (d *Driver) Sweep(environments []Environment) []Result {
	results := make([]Result, 0)
	for _, environment := range environments {
		for _, plan := range environment.Plans {
			descriptor := target.Descriptor{ID: plan.ID, Name: plan.Name}
			for _, v := range plan.Strategy.Generate(descriptor) {
				result := d.measure(environment, plan, v)
				if result.Err != nil {
					d.log().Errorf("measurement failed for %v: %v", result.Label, result.Err)
				} else {
					d.log().Infof("measured %v: cost=%v", result.Label, result.Cost)
				}
				results = append(results, result)
			}
		}
	}
	return results
}

func (d *Driver) measure(environment Environment, plan Plan, v variation.Variation) Result {
	result := Result{
		Environment: environment.Name,
		Target:      plan.Name,
		Variation:   v.Label(),
		Label:       fmt.Sprintf("%v: %v (%v)", environment.Name, plan.Name, v.Label()),
	}
	setup, specs, err := plan.Build(v)
	if err != nil {
		result.Err = fmt.Errorf("build failed: %w", err)
		return result
	}
	instruction := wire.Encode(plan.ID, setup)

	for i := 0; i < d.Warmup; i++ {
		if _, err := environment.Exec.Execute(instruction, specs); err != nil {
			result.Err = fmt.Errorf("warmup #%v failed: %w", i+1, err)
			return result
		}
	}

	attempts := d.attempts()
	for i := 0; i < attempts; i++ {
		cost, err := environment.Exec.Execute(instruction, specs)
		if err != nil {
			result.Err = fmt.Errorf("attempt #%v failed: %w", i+1, err)
			return result
		}
		if i == 0 {
			result.Cost = cost
		} else if cost != result.Cost {
			d.log().Warnf("unstable cost for %v: attempt #%v reported %v, expected %v", result.Label, i+1, cost, result.Cost)
		}
		result.Attempts++
	}
	return result
}
