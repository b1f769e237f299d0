package sdk

import (
	"encoding/binary"
	"fmt"

	"github.com/rustopian/eisodos/fixture"
	"github.com/rustopian/eisodos/target"
	"github.com/rustopian/eisodos/wire"
)

// Target ids registered in this environment. The 0-4 suite is common to
// every environment; 5-7 are the checked slot-hashes targets only this
// environment provides.
const (
	TargetPing wire.TargetID = iota
	TargetLog
	TargetAccountRead
	TargetCreateAccount
	TargetTransfer
	TargetSlotHashesGetEntry
	TargetSlotHashesGetHash
	TargetSlotHashesPosition
)

const (
	createAccountLamports = 500_000_000
	createAccountSpace    = 10
	transferLamports      = 1_000_000_000
)

func requireEmptySetup(setup []byte) error {
	if len(setup) != 0 {
		return target.ErrInvalidData
	}
	return nil
}

func parseUint64Setup(setup []byte) (uint64, error) {
	if len(setup) != 8 {
		return 0, target.ErrInvalidData
	}
	return binary.LittleEndian.Uint64(setup), nil
}

type pingTarget struct{}

func (pingTarget) Setup(_ wire.TargetID, _ []*Account, setup []byte) error {
	return requireEmptySetup(setup)
}

func (pingTarget) Run([]*Account) error { return nil }

type logTarget struct {
	holder *meterHolder
}

func (t *logTarget) Setup(_ wire.TargetID, _ []*Account, setup []byte) error {
	return requireEmptySetup(setup)
}

func (t *logTarget) Run([]*Account) error {
	logMessage(t.holder.m, "Instruction: Log")
	return nil
}

type accountReadTarget struct {
	expected uint64
}

func (t *accountReadTarget) Setup(_ wire.TargetID, _ []*Account, setup []byte) error {
	expected, err := parseUint64Setup(setup)
	if err != nil {
		return err
	}
	t.expected = expected
	return nil
}

func (t *accountReadTarget) Run(accounts []*Account) error {
	if uint64(len(accounts)) != t.expected {
		return fmt.Errorf("expected %v accounts, got %v", t.expected, len(accounts))
	}
	for _, account := range accounts {
		data := account.Data()
		if len(data) > 0 {
			_ = data[0]
		}
	}
	return nil
}

type createAccountTarget struct{}

func (createAccountTarget) Setup(_ wire.TargetID, _ []*Account, setup []byte) error {
	return requireEmptySetup(setup)
}

func (createAccountTarget) Run(accounts []*Account) error {
	if len(accounts) < 3 {
		return fmt.Errorf("create-account needs funder, new account and system program")
	}
	return invokeCreateAccount(accounts[0], accounts[1], createAccountLamports, createAccountSpace, programKey)
}

type transferTarget struct{}

func (transferTarget) Setup(_ wire.TargetID, _ []*Account, setup []byte) error {
	return requireEmptySetup(setup)
}

func (transferTarget) Run(accounts []*Account) error {
	if len(accounts) < 3 {
		return fmt.Errorf("transfer needs source, destination and system program")
	}
	return invokeTransfer(accounts[0], accounts[1], transferLamports)
}

type slotHashesGetEntryTarget struct{}

func (slotHashesGetEntryTarget) Setup(_ wire.TargetID, _ []*Account, setup []byte) error {
	return requireEmptySetup(setup)
}

func (slotHashesGetEntryTarget) Run(accounts []*Account) error {
	if len(accounts) < 1 {
		return fmt.Errorf("slot-hashes target needs the sysvar account")
	}
	count, err := checkSlotHashes(accounts[0])
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	_, err = accounts[0].ReadUint64(slotOffset(0))
	return err
}

type slotHashesGetHashTarget struct {
	targetSlot uint64
}

func (t *slotHashesGetHashTarget) Setup(_ wire.TargetID, _ []*Account, setup []byte) error {
	slot, err := parseUint64Setup(setup)
	if err != nil {
		return err
	}
	t.targetSlot = slot
	return nil
}

func (t *slotHashesGetHashTarget) Run(accounts []*Account) error {
	if len(accounts) < 1 {
		return fmt.Errorf("slot-hashes target needs the sysvar account")
	}
	account := accounts[0]
	count, err := checkSlotHashes(account)
	if err != nil {
		return err
	}
	index, found, err := findSlotMidpoint(account, count, t.targetSlot)
	if err != nil || !found {
		return err
	}
	data := account.Data()
	_ = data[slotOffset(index)+fixture.SlotSize]
	return nil
}

type slotHashesPositionTarget struct {
	targetSlot uint64
}

func (t *slotHashesPositionTarget) Setup(_ wire.TargetID, _ []*Account, setup []byte) error {
	slot, err := parseUint64Setup(setup)
	if err != nil {
		return err
	}
	t.targetSlot = slot
	return nil
}

func (t *slotHashesPositionTarget) Run(accounts []*Account) error {
	if len(accounts) < 1 {
		return fmt.Errorf("slot-hashes target needs the sysvar account")
	}
	count, err := checkSlotHashes(accounts[0])
	if err != nil {
		return err
	}
	_, _, err = findSlotMidpoint(accounts[0], count, t.targetSlot)
	return err
}
