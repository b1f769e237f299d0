// Package sdk is the checked environment variant: accounts are
// deserialized into structs, every access goes through bounds and key
// checks, and each checked operation charges the invocation meter. It is
// the expensive flavor the raw environment is compared against.
package sdk

// Deterministic unit costs for metered operations. The absolute values
// are arbitrary; only their stability and relative ordering matter, so a
// sweep over input shapes isolates the shape-dependent part.
const (
	costEntry       = 85
	costLoadAccount = 25
	costKey         = 10
	costBorrow      = 20
	costLamports    = 5
	costReadWord    = 2
	costLogBase     = 100
	costInvoke      = 1000
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
