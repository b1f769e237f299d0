package sdk

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rustopian/eisodos/fixture"
	"github.com/rustopian/eisodos/target"
	"github.com/rustopian/eisodos/wire"
)

func countSetup(count uint64) []byte {
	setup := make([]byte, 8)
	binary.LittleEndian.PutUint64(setup, count)
	return setup
}

func TestPingCostIsDeterministic(t *testing.T) {
	executor := NewExecutor()
	first, err := executor.Execute(wire.Encode(TargetPing, nil), nil)
	require.Nil(t, err)
	for i := 0; i < 10; i++ {
		cost, err := executor.Execute(wire.Encode(TargetPing, nil), nil)
		require.Nil(t, err)
		require.Equal(t, first, cost)
	}
}

func TestCostIgnoresRegistrySize(t *testing.T) {
	small := NewExecutor()
	big := NewExecutor()
	for id := wire.TargetID(100); id < 200; id++ {
		big.Registry().Register(id, "filler", func() target.Target[*Account] { return pingTarget{} })
	}

	smallCost, err := small.Execute(wire.Encode(TargetPing, nil), nil)
	require.Nil(t, err)
	bigCost, err := big.Execute(wire.Encode(TargetPing, nil), nil)
	require.Nil(t, err)
	require.Equal(t, smallCost, bigCost)
}

func TestLogCostsMoreThanPing(t *testing.T) {
	executor := NewExecutor()
	ping, err := executor.Execute(wire.Encode(TargetPing, nil), nil)
	require.Nil(t, err)
	log, err := executor.Execute(wire.Encode(TargetLog, nil), nil)
	require.Nil(t, err)
	require.Greater(t, log, ping)
}

func TestAccountReadCostGrowsWithAccounts(t *testing.T) {
	executor := NewExecutor()
	previous := uint64(0)
	for _, count := range []uint64{1, 3, 5, 10, 20, 32, 64} {
		cost, err := executor.Execute(wire.Encode(TargetAccountRead, countSetup(count)), fixture.ReadAccounts(count))
		require.Nil(t, err)
		require.Greater(t, cost, previous)
		previous = cost
	}
}

func TestAccountReadCountMismatch(t *testing.T) {
	executor := NewExecutor()
	_, err := executor.Execute(wire.Encode(TargetAccountRead, countSetup(3)), fixture.ReadAccounts(1))
	var runErr *target.RunError
	require.ErrorAs(t, err, &runErr)
	require.Equal(t, TargetAccountRead, runErr.ID)
}

func TestMalformedSetupIsRejected(t *testing.T) {
	executor := NewExecutor()
	_, err := executor.Execute(wire.Encode(TargetAccountRead, []byte{1, 2, 3}), fixture.ReadAccounts(1))
	var setupErr *target.SetupError
	require.ErrorAs(t, err, &setupErr)
	require.True(t, errors.Is(err, target.ErrInvalidData))

	_, err = executor.Execute(wire.Encode(TargetPing, []byte{0}), nil)
	require.True(t, errors.Is(err, target.ErrInvalidData))
}

func TestUnknownTargetIds(t *testing.T) {
	executor := NewExecutor()
	for _, id := range []wire.TargetID{8, 9, 10, 11, 42} {
		_, err := executor.Execute(wire.Encode(id, nil), nil)
		var unknown *target.UnknownTargetError
		require.ErrorAs(t, err, &unknown)
		require.Equal(t, id, unknown.ID)
	}
}

func TestTransferMovesLamports(t *testing.T) {
	m := &meter{}
	from := loadAccount(fixture.AccountSpec{
		Role: "funder", Key: fixture.DeriveKey("funder"),
		Lamports: fixture.BaseLamports, Owner: fixture.SystemProgramKey,
		Signer: true, Writable: true,
	}, m)
	to := loadAccount(fixture.AccountSpec{
		Role: "destination", Key: fixture.DeriveKey("destination"),
		Owner: fixture.SystemProgramKey, Writable: true,
	}, m)

	require.Nil(t, invokeTransfer(from, to, transferLamports))
	require.Equal(t, uint64(fixture.BaseLamports-transferLamports), from.lamports)
	require.Equal(t, uint64(transferLamports), to.lamports)

	require.NotNil(t, invokeTransfer(from, to, fixture.BaseLamports))
}

func TestTransferRequiresSigner(t *testing.T) {
	m := &meter{}
	from := loadAccount(fixture.AccountSpec{
		Role: "funder", Key: fixture.DeriveKey("funder"),
		Lamports: fixture.BaseLamports, Owner: fixture.SystemProgramKey,
		Writable: true,
	}, m)
	to := loadAccount(fixture.AccountSpec{
		Role: "destination", Key: fixture.DeriveKey("destination"),
		Owner: fixture.SystemProgramKey, Writable: true,
	}, m)
	require.NotNil(t, invokeTransfer(from, to, 1))
}

func TestCreateAccount(t *testing.T) {
	m := &meter{}
	funder := loadAccount(fixture.AccountSpec{
		Role: "funder", Key: fixture.DeriveKey("funder"),
		Lamports: fixture.BaseLamports, Owner: fixture.SystemProgramKey,
		Signer: true, Writable: true,
	}, m)
	created := loadAccount(fixture.AccountSpec{
		Role: "new_account", Key: fixture.DeriveKey("new-account"),
		Owner: fixture.SystemProgramKey, Signer: true, Writable: true,
	}, m)

	require.Nil(t, invokeCreateAccount(funder, created, createAccountLamports, createAccountSpace, programKey))
	require.Equal(t, uint64(createAccountLamports), created.lamports)
	require.Equal(t, programKey, created.owner)
	require.Len(t, created.data, createAccountSpace)
	require.Equal(t, uint64(fixture.BaseLamports-createAccountLamports), funder.lamports)

	require.NotNil(t, invokeCreateAccount(funder, created, createAccountLamports, createAccountSpace, programKey))
}

func TestSlotHashesRejectsWrongKey(t *testing.T) {
	executor := NewExecutor()
	spec := fixture.SlotHashesSpec(fixture.GenerateSlotHashes(8, fixture.GapStrictly1))
	spec.Key = fixture.DeriveKey("imposter")
	_, err := executor.Execute(wire.Encode(TargetSlotHashesGetEntry, nil), []fixture.AccountSpec{spec})
	var runErr *target.RunError
	require.ErrorAs(t, err, &runErr)
}

func TestSlotHashesGetHashFindsSlot(t *testing.T) {
	executor := NewExecutor()
	entries := fixture.GenerateSlotHashes(64, fixture.GapAverage2)
	spec := fixture.SlotHashesSpec(entries)
	setup := countSetup(entries[17].Slot)
	_, err := executor.Execute(wire.Encode(TargetSlotHashesGetHash, setup), []fixture.AccountSpec{spec})
	require.Nil(t, err)
}

func TestSlotHashesPositionCostScalesWithEntries(t *testing.T) {
	executor := NewExecutor()
	costAt := func(count uint64) uint64 {
		entries := fixture.GenerateSlotHashes(count, fixture.GapStrictly1)
		spec := fixture.SlotHashesSpec(entries)
		setup := countSetup(entries[len(entries)-1].Slot)
		cost, err := executor.Execute(wire.Encode(TargetSlotHashesPosition, setup), []fixture.AccountSpec{spec})
		require.Nil(t, err)
		return cost
	}
	require.Greater(t, costAt(512), costAt(1))
	require.Equal(t, costAt(512), costAt(512))

	previous := costAt(512)
	for count := uint64(256); count >= 1; count /= 2 {
		cost := costAt(count)
		require.LessOrEqual(t, cost, previous)
		previous = cost
	}
}
