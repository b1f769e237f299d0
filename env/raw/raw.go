// Package raw is the lean environment variant: accounts stay in one
// serialized byte region and accessors slice it directly with no borrow
// or key checks. Entry overhead and per-operation costs are a fraction of
// the sdk environment's, which is exactly the difference the benchmark
// suite exists to measure. This environment also registers the unchecked
// slot-hashes search targets the sdk variant does not carry.
package raw

// Deterministic unit costs for metered operations. Stability and
// relative ordering are what matters, not the absolute values.
const (
	costEntry       = 15
	costLoadAccount = 8
	costKey         = 2
	costData        = 2
	costReadWord    = 1
	costLogBase     = 100
	costInvoke      = 500
)

type meter struct {
	used uint64
}

func (m *meter) consume(units uint64) {
	m.used += units
}

// meterHolder points registered factories at the meter of the invocation
// currently executing. Invocations are strictly sequential within one
// artifact, so a single slot suffices.
type meterHolder struct {
	m *meter
}

func logMessage(m *meter, message string) {
	m.consume(costLogBase + uint64(len(message)))
}
