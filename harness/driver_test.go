package harness

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rustopian/eisodos/fixture"
	"github.com/rustopian/eisodos/variation"
	"github.com/rustopian/eisodos/wire"
)

type stubExecutor struct {
	name     string
	costs    map[wire.TargetID]uint64
	failing  map[wire.TargetID]bool
	executed int
}

func (s *stubExecutor) Name() string { return s.name }

func (s *stubExecutor) Execute(instruction []byte, _ []fixture.AccountSpec) (uint64, error) {
	s.executed++
	id, _, err := wire.Decode(instruction)
	if err != nil {
		return 0, err
	}
	if s.failing[id] {
		return 0, fmt.Errorf("target %v is broken", id)
	}
	return s.costs[id], nil
}

func stubPlan(id wire.TargetID, name string) Plan {
	return Plan{ID: id, Name: name, Strategy: variation.Single{}, Build: emptyBuild}
}

func TestSweepContinuesPastFailures(t *testing.T) {
	executor := &stubExecutor{
		name:    "stub",
		costs:   map[wire.TargetID]uint64{0: 10, 2: 30},
		failing: map[wire.TargetID]bool{1: true},
	}
	driver := Driver{Attempts: 1}
	results := driver.Sweep([]Environment{{
		Name: "stub",
		Exec: executor,
		Plans: []Plan{
			stubPlan(0, "first"),
			stubPlan(1, "broken"),
			stubPlan(2, "last"),
		},
	}})

	require.Len(t, results, 3)
	require.Nil(t, results[0].Err)
	require.Equal(t, uint64(10), results[0].Cost)
	require.NotNil(t, results[1].Err)
	require.Nil(t, results[2].Err)
	require.Equal(t, uint64(30), results[2].Cost)
}

func TestSweepRunsWarmupBeforeAttempts(t *testing.T) {
	executor := &stubExecutor{name: "stub", costs: map[wire.TargetID]uint64{0: 10}}
	driver := Driver{Warmup: 2, Attempts: 3}
	results := driver.Sweep([]Environment{{
		Name:  "stub",
		Exec:  executor,
		Plans: []Plan{stubPlan(0, "first")},
	}})

	require.Len(t, results, 1)
	require.Equal(t, 3, results[0].Attempts)
	require.Equal(t, 5, executor.executed)
}

func TestSweepLabelsAreUnique(t *testing.T) {
	driver := Driver{Attempts: 1}
	results := driver.Sweep(StandardEnvironments())
	require.NotEmpty(t, results)

	labels := make(map[string]bool, len(results))
	for _, result := range results {
		require.Nil(t, result.Err, result.Label)
		require.False(t, labels[result.Label], result.Label)
		labels[result.Label] = true
	}
}

func TestStandardSweepIsRepeatable(t *testing.T) {
	driver := Driver{Attempts: 2}
	first := driver.Sweep(StandardEnvironments())
	second := driver.Sweep(StandardEnvironments())
	require.Equal(t, first, second)
}

func TestLeanEnvironmentIsCheaper(t *testing.T) {
	driver := Driver{Attempts: 1}
	results := driver.Sweep(StandardEnvironments())

	costs := make(map[string]uint64)
	for _, result := range results {
		costs[result.Label] = result.Cost
	}
	require.Less(t, costs["raw: ping (single)"], costs["sdk: ping (single)"])
	require.Less(t, costs["raw: transfer (single)"], costs["sdk: transfer (single)"])
}

func TestParseCost(t *testing.T) {
	cost, err := parseCost("warming up\ncost: 1234\n")
	require.Nil(t, err)
	require.Equal(t, uint64(1234), cost)

	_, err = parseCost("error: boom\n")
	require.NotNil(t, err)
}
