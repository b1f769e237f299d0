package harness

import (
	"encoding/binary"
	"fmt"

	"github.com/rustopian/eisodos/env/raw"
	"github.com/rustopian/eisodos/env/sdk"
	"github.com/rustopian/eisodos/fixture"
	"github.com/rustopian/eisodos/variation"
	"github.com/rustopian/eisodos/wire"
)

var readAccountCounts = []uint64{1, 3, 5, 10, 20, 32, 64}

const (
	slotHashesMaxEntries = 512
	slotHashesPoints     = 10
)

// StandardEnvironments wires every in-process environment with its full
// plan set, in report order.
func StandardEnvironments() []Environment {
	return []Environment{
		{Name: sdk.Env, Exec: sdk.NewExecutor(), Plans: sdkPlans()},
		{Name: raw.Env, Exec: raw.NewExecutor(), Plans: rawPlans()},
	}
}

func sdkPlans() []Plan {
	plans := basePlans(sdk.TargetPing, sdk.TargetLog, sdk.TargetAccountRead, sdk.TargetCreateAccount, sdk.TargetTransfer)
	plans = append(plans,
		Plan{
			ID:       sdk.TargetSlotHashesGetEntry,
			Name:     "slot-hashes-get-entry",
			Strategy: variation.Halving{Param: "entries", Max: slotHashesMaxEntries},
			Build:    slotHashesBuild(fixture.GapStrictly1),
		},
		Plan{
			ID:       sdk.TargetSlotHashesGetHash,
			Name:     "slot-hashes-get-hash",
			Strategy: variation.Positions{Param: "index", Entries: slotHashesMaxEntries, Points: slotHashesPoints},
			Build:    slotTargetBuild(fixture.GapStrictly1),
		},
		Plan{
			ID:       sdk.TargetSlotHashesPosition,
			Name:     "slot-hashes-position",
			Strategy: variation.Positions{Param: "index", Entries: slotHashesMaxEntries, Points: slotHashesPoints},
			Build:    slotTargetBuild(fixture.GapStrictly1),
		},
	)
	return plans
}

func rawPlans() []Plan {
	plans := basePlans(raw.TargetPing, raw.TargetLog, raw.TargetAccountRead, raw.TargetCreateAccount, raw.TargetTransfer)
	plans = append(plans,
		Plan{
			ID:       raw.TargetSlotHashesGetEntryUnchecked,
			Name:     "slot-hashes-get-entry-unchecked",
			Strategy: variation.Halving{Param: "entries", Max: slotHashesMaxEntries},
			Build:    slotHashesBuild(fixture.GapStrictly1),
		},
		Plan{
			ID:       raw.TargetSlotHashesGetHashUnchecked,
			Name:     "slot-hashes-get-hash-unchecked",
			Strategy: variation.Positions{Param: "index", Entries: slotHashesMaxEntries, Points: slotHashesPoints},
			Build:    slotTargetBuild(fixture.GapStrictly1),
		},
	)
	// The interpolated/naive pair is swept once per gap rule: the slot
	// distribution is the variable that separates the two searches.
	for _, rule := range fixture.GapRules() {
		plans = append(plans,
			Plan{
				ID:       raw.TargetSlotHashesPositionInterpolated,
				Name:     fmt.Sprintf("slot-hashes-position-interpolated-%v", rule),
				Strategy: variation.Positions{Param: "index", Entries: slotHashesMaxEntries, Points: slotHashesPoints},
				Build:    slotTargetBuild(rule),
			},
			Plan{
				ID:       raw.TargetSlotHashesPositionNaive,
				Name:     fmt.Sprintf("slot-hashes-position-naive-%v", rule),
				Strategy: variation.Positions{Param: "index", Entries: slotHashesMaxEntries, Points: slotHashesPoints},
				Build:    slotTargetBuild(rule),
			},
		)
	}
	return plans
}

func basePlans(ping, logID, read, create, transfer wire.TargetID) []Plan {
	return []Plan{
		{ID: ping, Name: "ping", Strategy: variation.Single{}, Build: emptyBuild},
		{ID: logID, Name: "log", Strategy: variation.Single{}, Build: emptyBuild},
		{
			ID:       read,
			Name:     "account-read",
			Strategy: variation.Steps{Param: "accounts", Values: readAccountCounts},
			Build:    accountReadBuild,
		},
		{ID: create, Name: "create-account", Strategy: variation.Single{}, Build: createAccountBuild},
		{ID: transfer, Name: "transfer", Strategy: variation.Single{}, Build: transferBuild},
	}
}

func wordSetup(value uint64) []byte {
	setup := make([]byte, 8)
	binary.LittleEndian.PutUint64(setup, value)
	return setup
}

func emptyBuild(variation.Variation) ([]byte, []fixture.AccountSpec, error) {
	return nil, nil, nil
}

func accountReadBuild(v variation.Variation) ([]byte, []fixture.AccountSpec, error) {
	count, ok := v.Param("accounts")
	if !ok {
		return nil, nil, fmt.Errorf("variation %v misses the accounts parameter", v.Label())
	}
	return wordSetup(count), fixture.ReadAccounts(count), nil
}

func createAccountBuild(variation.Variation) ([]byte, []fixture.AccountSpec, error) {
	return nil, []fixture.AccountSpec{
		funderSpec(),
		{
			Role: "new_account", Key: fixture.DeriveKey("new-account"),
			Owner: fixture.SystemProgramKey, Signer: true, Writable: true,
		},
		fixture.SystemProgramSpec(),
	}, nil
}

func transferBuild(variation.Variation) ([]byte, []fixture.AccountSpec, error) {
	return nil, []fixture.AccountSpec{
		funderSpec(),
		{
			Role: "destination", Key: fixture.DeriveKey("destination"),
			Owner: fixture.SystemProgramKey, Writable: true,
		},
		fixture.SystemProgramSpec(),
	}, nil
}

func funderSpec() fixture.AccountSpec {
	return fixture.AccountSpec{
		Role: "funder", Key: fixture.DeriveKey("funder"),
		Lamports: fixture.BaseLamports, Owner: fixture.SystemProgramKey,
		Signer: true, Writable: true,
	}
}

func slotHashesAccounts(count uint64, rule fixture.GapRule) []fixture.AccountSpec {
	return []fixture.AccountSpec{fixture.SlotHashesSpec(fixture.GenerateSlotHashes(count, rule))}
}

func slotHashesBuild(rule fixture.GapRule) func(variation.Variation) ([]byte, []fixture.AccountSpec, error) {
	return func(v variation.Variation) ([]byte, []fixture.AccountSpec, error) {
		count, ok := v.Param("entries")
		if !ok {
			return nil, nil, fmt.Errorf("variation %v misses the entries parameter", v.Label())
		}
		return nil, slotHashesAccounts(count, rule), nil
	}
}

func slotTargetBuild(rule fixture.GapRule) func(variation.Variation) ([]byte, []fixture.AccountSpec, error) {
	return func(v variation.Variation) ([]byte, []fixture.AccountSpec, error) {
		count, ok := v.Param("entries")
		if !ok {
			return nil, nil, fmt.Errorf("variation %v misses the entries parameter", v.Label())
		}
		index, ok := v.Param("index")
		if !ok {
			return nil, nil, fmt.Errorf("variation %v misses the index parameter", v.Label())
		}
		entries := fixture.GenerateSlotHashes(count, rule)
		if index >= uint64(len(entries)) {
			return nil, nil, fmt.Errorf("index %v out of range for %v generated entries", index, len(entries))
		}
		return wordSetup(entries[index].Slot), []fixture.AccountSpec{fixture.SlotHashesSpec(entries)}, nil
	}
}
