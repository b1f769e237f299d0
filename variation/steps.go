package variation

import (
	"fmt"

	"github.com/rustopian/eisodos/target"
)

// Steps sweeps a single parameter over an explicit list of values, e.g.
// account counts [1, 3, 5, 10, 20, 32, 64].
type Steps struct {
	Param  string
	Values []uint64
}

func (s Steps) Name() string { return fmt.Sprintf("steps-%v", s.Param) }

func (s Steps) Generate(target.Descriptor) []Variation {
	variations := make([]Variation, 0, len(s.Values))
	seen := make(map[uint64]bool, len(s.Values))
	for _, value := range s.Values {
		if seen[value] {
			continue
		}
		seen[value] = true
		variations = append(variations, Variation{
			Strategy: s.Name(),
			Params:   []Parameter{{Name: s.Param, Value: value}},
		})
	}
	return variations
}
