package variation

import (
	"github.com/rustopian/eisodos/target"
)

// Positions sweeps an index parameter across Points evenly spaced
// positions of an Entries-sized sequence, first and last included. Small
// entry counts collapse duplicate indices, so the sequence never repeats
// a parameter set.
type Positions struct {
	Param   string
	Entries uint64
	Points  uint64
}

func (p Positions) Name() string { return "positions-" + p.Param }

func (p Positions) Generate(target.Descriptor) []Variation {
	if p.Entries == 0 {
		return nil
	}
	points := p.Points
	if points < 2 {
		points = 2
	}
	last := p.Entries - 1
	variations := make([]Variation, 0, points)
	seen := make(map[uint64]bool, points)
	for i := uint64(0); i < points; i++ {
		index := last * i / (points - 1)
		if seen[index] {
			continue
		}
		seen[index] = true
		variations = append(variations, Variation{
			Strategy: p.Name(),
			Params: []Parameter{
				{Name: "entries", Value: p.Entries},
				{Name: p.Param, Value: index},
			},
		})
	}
	return variations
}
