package fixture

import "encoding/binary"

// Slot-hashes blob layout: u64 LE entry count, then per entry a u64 LE
// slot and a 32-byte hash, slots strictly decreasing.
const (
	NumEntriesSize = 8
	SlotSize       = 8
	HashSize       = 32
	EntrySize      = SlotSize + HashSize
)

// StartSlot is the highest slot in generated slot-hashes data. It leaves
// enough headroom that no gap rule can drive a slot to zero before the
// entry budget runs out.
const StartSlot = 10_000

// GapRule selects how far apart consecutive slots in generated
// slot-hashes data are. The uneven rules make the slot distribution
// non-uniform, which is what separates interpolated from midpoint search
// costs.
type GapRule string

const (
	GapStrictly1  GapRule = "strictly1"
	GapAverage105 GapRule = "avg1.05"
	GapAverage2   GapRule = "avg2"
)

// GapRules lists every rule in sweep order.
func GapRules() []GapRule {
	return []GapRule{GapStrictly1, GapAverage105, GapAverage2}
}

type SlotHash struct {
	Slot uint64
	Hash [HashSize]byte
}

// Lehmer / MINSTD step, enough randomness for gap variation while staying
// trivially reproducible.
func prng(seed uint64) uint64 {
	const a = 16807
	const m = 2147483647
	if seed == 0 {
		seed = 1
	}
	return (a * seed) % m
}

// GenerateSlotHashes produces count entries starting at StartSlot with
// strictly decreasing slots. Generation stops early if a slot would stop
// decreasing, so monotonicity always holds.
func GenerateSlotHashes(count uint64, rule GapRule) []SlotHash {
	entries := make([]SlotHash, 0, count)
	slot := uint64(StartSlot)
	for i := uint64(0); i < count; i++ {
		var hash [HashSize]byte
		for j := range hash {
			hash[j] = byte(i)
		}
		entries = append(entries, SlotHash{Slot: slot, Hash: hash})

		random := prng(i)
		gap := uint64(1)
		switch rule {
		case GapAverage105:
			if random%20 == 0 {
				gap = 2
			}
		case GapAverage2:
			if random%2 != 0 {
				gap = 3
			}
		}
		if slot <= gap {
			break
		}
		slot -= gap
	}
	return entries
}

// MarshalSlotHashes serializes entries into the sysvar account layout.
func MarshalSlotHashes(entries []SlotHash) []byte {
	data := make([]byte, NumEntriesSize, NumEntriesSize+len(entries)*EntrySize)
	binary.LittleEndian.PutUint64(data, uint64(len(entries)))
	for _, entry := range entries {
		var slot [SlotSize]byte
		binary.LittleEndian.PutUint64(slot[:], entry.Slot)
		data = append(data, slot[:]...)
		data = append(data, entry.Hash[:]...)
	}
	return data
}

// SlotHashesSpec builds the read-only sysvar account carrying the
// serialized entries.
func SlotHashesSpec(entries []SlotHash) AccountSpec {
	return AccountSpec{
		Role:     "slot_hashes",
		Key:      SlotHashesKey,
		Lamports: 1,
		Data:     MarshalSlotHashes(entries),
		Owner:    SystemProgramKey,
	}
}
