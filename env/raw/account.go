package raw

import (
	"encoding/binary"
	"fmt"

	"github.com/rustopian/eisodos/fixture"
)

// Serialized account layout: key, owner, lamports, flag byte, then the
// account data. Accessors slice the region in place.
const (
	keyOffset      = 0
	ownerOffset    = 32
	lamportsOffset = 64
	flagsOffset    = 72
	headerSize     = 73
)

const (
	flagSigner = 1 << iota
	flagWritable
	flagExecutable
)

// Account is this environment's context handle: one serialized byte
// region per account, shared meter per invocation.
type Account struct {
	raw   []byte
	meter *meter
}

func loadAccount(spec fixture.AccountSpec, m *meter) *Account {
	m.consume(costLoadAccount)
	raw := make([]byte, headerSize+len(spec.Data))
	copy(raw[keyOffset:], spec.Key[:])
	copy(raw[ownerOffset:], spec.Owner[:])
	binary.LittleEndian.PutUint64(raw[lamportsOffset:], spec.Lamports)
	var flags byte
	if spec.Signer {
		flags |= flagSigner
	}
	if spec.Writable {
		flags |= flagWritable
	}
	if spec.Executable {
		flags |= flagExecutable
	}
	raw[flagsOffset] = flags
	copy(raw[headerSize:], spec.Data)
	return &Account{raw: raw, meter: m}
}

func (a *Account) Key() fixture.Pubkey {
	a.meter.consume(costKey)
	var key fixture.Pubkey
	copy(key[:], a.raw[keyOffset:ownerOffset])
	return key
}

func (a *Account) Lamports() uint64 {
	a.meter.consume(costReadWord)
	return binary.LittleEndian.Uint64(a.raw[lamportsOffset:])
}

func (a *Account) setLamports(value uint64) {
	binary.LittleEndian.PutUint64(a.raw[lamportsOffset:], value)
}

// Data returns the account data region without a borrow check.
func (a *Account) Data() []byte {
	a.meter.consume(costData)
	return a.raw[headerSize:]
}

// readWord reads a little-endian word at a data offset. The only check
// is a length clamp so malformed fixtures fail instead of panicking.
func (a *Account) readWord(offset int) uint64 {
	a.meter.consume(costReadWord)
	data := a.raw[headerSize:]
	if offset < 0 || offset+8 > len(data) {
		return 0
	}
	return binary.LittleEndian.Uint64(data[offset:])
}

// invokeTransfer moves lamports between accounts at the reduced invoke
// cost of this environment. Balance underflow is the only check kept.
func invokeTransfer(from, to *Account, lamports uint64) error {
	from.meter.consume(costInvoke)
	balance := binary.LittleEndian.Uint64(from.raw[lamportsOffset:])
	if balance < lamports {
		return fmt.Errorf("insufficient lamports: %v < %v", balance, lamports)
	}
	from.setLamports(balance - lamports)
	to.setLamports(binary.LittleEndian.Uint64(to.raw[lamportsOffset:]) + lamports)
	return nil
}

// invokeCreateAccount funds a fresh account, sizes its data region and
// assigns ownership.
func invokeCreateAccount(funder, created *Account, lamports, space uint64, owner fixture.Pubkey) error {
	funder.meter.consume(costInvoke)
	if binary.LittleEndian.Uint64(created.raw[lamportsOffset:]) != 0 || len(created.raw) > headerSize {
		return fmt.Errorf("account already in use")
	}
	balance := binary.LittleEndian.Uint64(funder.raw[lamportsOffset:])
	if balance < lamports {
		return fmt.Errorf("insufficient lamports: %v < %v", balance, lamports)
	}
	funder.setLamports(balance - lamports)
	grown := make([]byte, headerSize+int(space))
	copy(grown, created.raw[:headerSize])
	created.raw = grown
	created.setLamports(lamports)
	copy(created.raw[ownerOffset:], owner[:])
	return nil
}
