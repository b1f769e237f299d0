package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKeyStable(t *testing.T) {
	require.Equal(t, DeriveKey("funder"), DeriveKey("funder"))
	require.NotEqual(t, DeriveKey("funder"), DeriveKey("destination"))
}

func TestSpecRoundtrip(t *testing.T) {
	spec := AccountSpec{
		Role:     "funder",
		Key:      DeriveKey("funder"),
		Lamports: BaseLamports,
		Data:     make([]byte, 16),
		Owner:    SystemProgramKey,
		Signer:   true,
		Writable: true,
	}
	parsed, err := ParseSpec(spec.String(), Pubkey{})
	require.Nil(t, err)
	require.Equal(t, spec, parsed)
}

func TestSpecRoundtripWithData(t *testing.T) {
	spec := SlotHashesSpec(GenerateSlotHashes(4, GapStrictly1))
	parsed, err := ParseSpec(spec.String(), Pubkey{})
	require.Nil(t, err)
	require.Equal(t, spec, parsed)
}

func TestParseSpecOwnerShorthands(t *testing.T) {
	self := DeriveKey("program")
	spec, err := ParseSpec("payer:alice:true:true:100:0:self", self)
	require.Nil(t, err)
	require.Equal(t, self, spec.Owner)
	require.Equal(t, DeriveKey("alice"), spec.Key)

	spec, err = ParseSpec("payer:alice:false:false:100:0:system", self)
	require.Nil(t, err)
	require.Equal(t, SystemProgramKey, spec.Owner)
}

func TestParseSpecInvalid(t *testing.T) {
	_, err := ParseSpec("too:few:parts", Pubkey{})
	require.NotNil(t, err)

	_, err = ParseSpec("payer:alice:maybe:true:100:0:system", Pubkey{})
	require.NotNil(t, err)
}

func TestGenerateSlotHashesMonotonic(t *testing.T) {
	for _, rule := range GapRules() {
		entries := GenerateSlotHashes(512, rule)
		require.Len(t, entries, 512)
		require.Equal(t, uint64(StartSlot), entries[0].Slot)
		for i := 1; i < len(entries); i++ {
			require.Less(t, entries[i].Slot, entries[i-1].Slot, "rule %v", rule)
		}
	}
}

func TestGenerateSlotHashesDeterministic(t *testing.T) {
	for _, rule := range GapRules() {
		require.Equal(t, GenerateSlotHashes(64, rule), GenerateSlotHashes(64, rule))
	}
}

func TestMarshalSlotHashes(t *testing.T) {
	entries := GenerateSlotHashes(3, GapStrictly1)
	data := MarshalSlotHashes(entries)
	require.Len(t, data, NumEntriesSize+3*EntrySize)
	require.Equal(t, byte(3), data[0])
}
