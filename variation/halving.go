package variation

import (
	"fmt"

	"github.com/rustopian/eisodos/target"
)

// Halving sweeps a single parameter geometrically from Max down to 1 by
// floor division: 100 -> 100, 50, 25, 12, 6, 3, 1. Zero is never
// produced; a zero Max generates nothing.
type Halving struct {
	Param string
	Max   uint64
}

func (h Halving) Name() string { return fmt.Sprintf("halving-%v", h.Param) }

func (h Halving) Generate(target.Descriptor) []Variation {
	variations := make([]Variation, 0)
	for n := h.Max; n >= 1; n /= 2 {
		variations = append(variations, Variation{
			Strategy: h.Name(),
			Params:   []Parameter{{Name: h.Param, Value: n}},
		})
	}
	return variations
}
