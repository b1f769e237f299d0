package variation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rustopian/eisodos/target"
)

var descriptor = target.Descriptor{ID: 1, Name: "test"}

func values(variations []Variation, param string) []uint64 {
	result := make([]uint64, 0, len(variations))
	for _, v := range variations {
		value, ok := v.Param(param)
		if !ok {
			continue
		}
		result = append(result, value)
	}
	return result
}

func TestHalving(t *testing.T) {
	variations := Halving{Param: "entries", Max: 100}.Generate(descriptor)
	require.Equal(t, []uint64{100, 50, 25, 12, 6, 3, 1}, values(variations, "entries"))
}

func TestHalvingNeverZero(t *testing.T) {
	for _, max := range []uint64{1, 2, 7, 512, 1000} {
		variations := Halving{Param: "entries", Max: max}.Generate(descriptor)
		counts := values(variations, "entries")
		require.NotEmpty(t, counts)
		require.Equal(t, uint64(1), counts[len(counts)-1])
		for i := 1; i < len(counts); i++ {
			require.Less(t, counts[i], counts[i-1])
		}
	}
	require.Empty(t, Halving{Param: "entries", Max: 0}.Generate(descriptor))
}

func TestSteps(t *testing.T) {
	variations := Steps{Param: "accounts", Values: []uint64{1, 3, 5, 10, 20, 32, 64}}.Generate(descriptor)
	require.Equal(t, []uint64{1, 3, 5, 10, 20, 32, 64}, values(variations, "accounts"))
}

func TestStepsDeduplicates(t *testing.T) {
	variations := Steps{Param: "accounts", Values: []uint64{1, 1, 2, 2}}.Generate(descriptor)
	require.Equal(t, []uint64{1, 2}, values(variations, "accounts"))
}

func TestPositions(t *testing.T) {
	variations := Positions{Param: "index", Entries: 512, Points: 10}.Generate(descriptor)
	indices := values(variations, "index")
	require.Equal(t, uint64(0), indices[0])
	require.Equal(t, uint64(511), indices[len(indices)-1])
	for i := 1; i < len(indices); i++ {
		require.Less(t, indices[i-1], indices[i])
	}
}

func TestPositionsSmallEntryCounts(t *testing.T) {
	variations := Positions{Param: "index", Entries: 2, Points: 10}.Generate(descriptor)
	require.Equal(t, []uint64{0, 1}, values(variations, "index"))

	variations = Positions{Param: "index", Entries: 1, Points: 10}.Generate(descriptor)
	require.Equal(t, []uint64{0}, values(variations, "index"))

	require.Empty(t, Positions{Param: "index", Entries: 0, Points: 10}.Generate(descriptor))
}

func TestGenerateDeterministic(t *testing.T) {
	strategies := []Strategy{
		Single{},
		Halving{Param: "entries", Max: 512},
		Steps{Param: "accounts", Values: []uint64{1, 3, 5}},
		Positions{Param: "index", Entries: 512, Points: 10},
	}
	for _, strategy := range strategies {
		require.Equal(t, strategy.Generate(descriptor), strategy.Generate(descriptor), strategy.Name())
	}
}

func TestLabels(t *testing.T) {
	require.Equal(t, "single", Variation{Strategy: "single"}.Label())
	v := Variation{Strategy: "positions-index", Params: []Parameter{
		{Name: "entries", Value: 512},
		{Name: "index", Value: 255},
	}}
	require.Equal(t, "positions-index(entries=512, index=255)", v.Label())
}
