package sdk

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/rustopian/eisodos/fixture"
)

// Account is this environment's context handle: a deserialized account
// with checked, metered accessors. Instances belong to a single
// invocation and share that invocation's meter.
type Account struct {
	key        fixture.Pubkey
	owner      fixture.Pubkey
	lamports   uint64
	data       []byte
	signer     bool
	writable   bool
	executable bool
	meter      *meter
}

func loadAccount(spec fixture.AccountSpec, m *meter) *Account {
	m.consume(costLoadAccount)
	return &Account{
		key:        spec.Key,
		owner:      spec.Owner,
		lamports:   spec.Lamports,
		data:       slices.Clone(spec.Data),
		signer:     spec.Signer,
		writable:   spec.Writable,
		executable: spec.Executable,
		meter:      m,
	}
}

func (a *Account) Key() fixture.Pubkey {
	a.meter.consume(costKey)
	return a.key
}

func (a *Account) Owner() fixture.Pubkey {
	a.meter.consume(costKey)
	return a.owner
}

func (a *Account) Lamports() uint64 {
	a.meter.consume(costLamports)
	return a.lamports
}

func (a *Account) Signer() bool   { return a.signer }
func (a *Account) Writable() bool { return a.writable }

// Data borrows the account data. The borrow itself is the metered
// operation; callers index the returned slice freely.
func (a *Account) Data() []byte {
	a.meter.consume(costBorrow)
	return a.data
}

// ReadUint64 reads a little-endian word at offset with bounds checking.
func (a *Account) ReadUint64(offset int) (uint64, error) {
	a.meter.consume(costReadWord)
	if offset < 0 || offset+8 > len(a.data) {
		return 0, fmt.Errorf("read of 8 bytes at %v exceeds account data of %v bytes", offset, len(a.data))
	}
	return binary.LittleEndian.Uint64(a.data[offset:]), nil
}
