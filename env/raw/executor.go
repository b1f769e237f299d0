package raw

import (
	"github.com/rustopian/eisodos/fixture"
	"github.com/rustopian/eisodos/target"
)

// Env is this environment's registry name.
const Env = "raw"

var programKey = fixture.DeriveKey("bench-program-raw")

// ProgramKey is the id the variant's own program runs under; "self"
// owners in account specs resolve against it.
func ProgramKey() fixture.Pubkey { return programKey }

func buildRegistry(holder *meterHolder) *target.Registry[*Account] {
	r := target.NewRegistry[*Account](Env)
	r.Register(TargetPing, "ping", func() target.Target[*Account] { return pingTarget{} })
	r.Register(TargetLog, "log", func() target.Target[*Account] { return &logTarget{holder: holder} })
	r.Register(TargetAccountRead, "account-read", func() target.Target[*Account] { return &accountReadTarget{} })
	r.Register(TargetCreateAccount, "create-account", func() target.Target[*Account] { return createAccountTarget{} })
	r.Register(TargetTransfer, "transfer", func() target.Target[*Account] { return transferTarget{} })
	r.Register(TargetSlotHashesGetEntryUnchecked, "slot-hashes-get-entry-unchecked", func() target.Target[*Account] { return getEntryTarget{} })
	r.Register(TargetSlotHashesGetHashUnchecked, "slot-hashes-get-hash-unchecked", func() target.Target[*Account] { return &getHashTarget{} })
	r.Register(TargetSlotHashesPositionInterpolated, "slot-hashes-position-interpolated", func() target.Target[*Account] { return &positionInterpolatedTarget{} })
	r.Register(TargetSlotHashesPositionNaive, "slot-hashes-position-naive", func() target.Target[*Account] { return &positionNaiveTarget{} })
	return r
}

// Executor runs instructions against this environment in process,
// reporting the deterministic unit cost of the invocation. Invocations
// are strictly sequential; an Executor must not be shared across
// goroutines.
type Executor struct {
	registry *target.Registry[*Account]
	holder   *meterHolder
}

func NewExecutor() *Executor {
	holder := &meterHolder{}
	return &Executor{registry: buildRegistry(holder), holder: holder}
}

func (e *Executor) Name() string { return Env }

// Registry exposes the environment's target mapping for host-side
// enumeration.
func (e *Executor) Registry() *target.Registry[*Account] { return e.registry }

func (e *Executor) Execute(instruction []byte, specs []fixture.AccountSpec) (uint64, error) {
	m := &meter{}
	e.holder.m = m
	m.consume(costEntry)
	accounts := make([]*Account, 0, len(specs))
	for _, spec := range specs {
		accounts = append(accounts, loadAccount(spec, m))
	}
	err := target.Dispatch(e.registry, instruction, accounts)
	return m.used, err
}
