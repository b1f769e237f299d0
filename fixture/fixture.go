// Package fixture builds the environment-agnostic account material the
// driver ships to a variant build: account specifications, deterministic
// keys and the slot-hashes sysvar blob used by the search targets. Every
// generator here is a pure function of its inputs so repeated sweeps see
// identical data.
package fixture

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// BaseLamports is the default balance for generated funding accounts.
const BaseLamports = 2_000_000_000

type Pubkey [32]byte

func (p Pubkey) String() string { return hex.EncodeToString(p[:]) }

var (
	SystemProgramKey = DeriveKey("system-program")
	SlotHashesKey    = DeriveKey("slot-hashes-sysvar")
)

// DeriveKey produces a stable pubkey from a placeholder name, so specs
// written by hand and specs rebuilt by the driver agree on keys without
// shared counters.
func DeriveKey(seed string) Pubkey {
	var key Pubkey
	state := uint64(len(seed) + 1)
	for _, b := range []byte(seed) {
		state = prng(state + uint64(b))
	}
	for i := range key {
		state = prng(state)
		key[i] = byte(state)
	}
	return key
}

// AccountSpec describes one account to materialize inside a variant
// build. The core imposes no structure beyond "ordered, indexable"; the
// fields mirror what every supported environment needs to construct its
// own account representation.
type AccountSpec struct {
	Role       string
	Key        Pubkey
	Lamports   uint64
	Data       []byte
	Owner      Pubkey
	Signer     bool
	Writable   bool
	Executable bool
}

// SystemProgramSpec is the well-known executable system account used by
// the create-account and transfer targets.
func SystemProgramSpec() AccountSpec {
	return AccountSpec{
		Role:       "system_program",
		Key:        SystemProgramKey,
		Lamports:   1,
		Owner:      SystemProgramKey,
		Executable: true,
	}
}

// String renders the spec in the wire form consumed by the variant
// binaries: role:key:signer:writable:lamports:datalen:owner[:datahex].
// The datahex part is emitted only when the data is not all zeroes.
func (s AccountSpec) String() string {
	parts := []string{
		s.Role,
		s.Key.String(),
		strconv.FormatBool(s.Signer),
		strconv.FormatBool(s.Writable),
		strconv.FormatUint(s.Lamports, 10),
		strconv.Itoa(len(s.Data)),
		s.Owner.String(),
	}
	if !allZero(s.Data) {
		parts = append(parts, hex.EncodeToString(s.Data))
	}
	return strings.Join(parts, ":")
}

// ParseSpec parses the textual account spec form. The owner part accepts
// the shorthands "system" and "self" (resolved against selfKey) besides a
// hex key; the key part accepts either a hex key or a placeholder name
// fed through DeriveKey.
func ParseSpec(text string, selfKey Pubkey) (AccountSpec, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 7 && len(parts) != 8 {
		return AccountSpec{}, fmt.Errorf("invalid account spec %q: expected 7 or 8 parts, got %v", text, len(parts))
	}
	spec := AccountSpec{Role: parts[0]}
	var err error
	if spec.Key, err = parseKey(parts[1]); err != nil {
		return AccountSpec{}, fmt.Errorf("invalid account spec %q: %w", text, err)
	}
	if spec.Signer, err = strconv.ParseBool(parts[2]); err != nil {
		return AccountSpec{}, fmt.Errorf("invalid account spec %q: signer: %w", text, err)
	}
	if spec.Writable, err = strconv.ParseBool(parts[3]); err != nil {
		return AccountSpec{}, fmt.Errorf("invalid account spec %q: writable: %w", text, err)
	}
	if spec.Lamports, err = strconv.ParseUint(parts[4], 10, 64); err != nil {
		return AccountSpec{}, fmt.Errorf("invalid account spec %q: lamports: %w", text, err)
	}
	dataLen, err := strconv.Atoi(parts[5])
	if err != nil || dataLen < 0 {
		return AccountSpec{}, fmt.Errorf("invalid account spec %q: data length %q", text, parts[5])
	}
	spec.Data = make([]byte, dataLen)
	switch parts[6] {
	case "system":
		spec.Owner = SystemProgramKey
	case "self":
		spec.Owner = selfKey
	default:
		if spec.Owner, err = parseKey(parts[6]); err != nil {
			return AccountSpec{}, fmt.Errorf("invalid account spec %q: owner: %w", text, err)
		}
	}
	if len(parts) == 8 {
		data, err := hex.DecodeString(parts[7])
		if err != nil {
			return AccountSpec{}, fmt.Errorf("invalid account spec %q: data: %w", text, err)
		}
		spec.Data = data
	}
	if spec.Role == "system_program" {
		spec.Executable = true
	}
	return spec, nil
}

func parseKey(text string) (Pubkey, error) {
	if len(text) == 64 {
		raw, err := hex.DecodeString(text)
		if err == nil {
			var key Pubkey
			copy(key[:], raw)
			return key, nil
		}
	}
	if text == "" {
		return Pubkey{}, fmt.Errorf("empty key")
	}
	return DeriveKey(text), nil
}

func allZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}

// ReadAccounts builds a deterministic set of read-only accounts, one per
// requested count, for the account-read target sweeps.
func ReadAccounts(count uint64) []AccountSpec {
	specs := make([]AccountSpec, 0, count)
	for i := uint64(0); i < count; i++ {
		specs = append(specs, AccountSpec{
			Role:     fmt.Sprintf("reader-%v", i),
			Key:      DeriveKey(fmt.Sprintf("reader-%v", i)),
			Lamports: BaseLamports,
			Data:     []byte{byte(i)},
			Owner:    SystemProgramKey,
		})
	}
	return specs
}
