// Package harness is the host-side measurement driver: it enumerates
// environments, expands each benchmark plan through its variation
// strategy and collects one labelled cost per (environment, target,
// variation) combination. The harness never interprets instruction
// payloads; it only builds them and hands them to an executor.
package harness

import (
	"github.com/rustopian/eisodos/fixture"
	"github.com/rustopian/eisodos/variation"
	"github.com/rustopian/eisodos/wire"
)

// Executor abstracts one environment build. In-process executors wrap a
// target registry directly; CmdExecutor shells out to a variant binary.
type Executor interface {
	Name() string
	Execute(instruction []byte, specs []fixture.AccountSpec) (uint64, error)
}

// Plan binds one target to the variation strategy that sweeps it and to
// the builder producing the setup payload and account set for each
// variation point.
type Plan struct {
	ID       wire.TargetID
	Name     string
	Strategy variation.Strategy
	Build    func(v variation.Variation) ([]byte, []fixture.AccountSpec, error)
}

// Environment is one benchmarkable build: a named executor plus the
// plans it supports.
type Environment struct {
	Name  string
	Exec  Executor
	Plans []Plan
}

// Result is one measurement row. Err is set when any phase of the
// combination failed; the cost of a failed combination is meaningless.
type Result struct {
	Environment string
	Target      string
	Variation   string
	Label       string
	Cost        uint64
	Attempts    int
	Err         error
}
