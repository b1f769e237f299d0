package sdk

import (
	"fmt"

	"github.com/rustopian/eisodos/fixture"
)

// checkSlotHashes verifies the sysvar account and returns its entry
// count. Key comparison and the count read are metered accesses.
func checkSlotHashes(account *Account) (uint64, error) {
	if account.Key() != fixture.SlotHashesKey {
		return 0, fmt.Errorf("account is not the slot-hashes sysvar")
	}
	if len(account.Data()) < fixture.NumEntriesSize {
		return 0, fmt.Errorf("slot-hashes data too small")
	}
	count, err := account.ReadUint64(0)
	if err != nil {
		return 0, err
	}
	if fixture.NumEntriesSize+int(count)*fixture.EntrySize > len(account.data) {
		return 0, fmt.Errorf("slot-hashes count %v exceeds account data", count)
	}
	return count, nil
}

func slotOffset(index uint64) int {
	return fixture.NumEntriesSize + int(index)*fixture.EntrySize
}

// findSlotMidpoint binary-searches the descending slot sequence for
// target. Every probe is a metered checked read, so the reported cost
// scales with the number of probes.
func findSlotMidpoint(account *Account, count, targetSlot uint64) (uint64, bool, error) {
	low, high := uint64(0), count
	for low < high {
		mid := low + (high-low)/2
		slot, err := account.ReadUint64(slotOffset(mid))
		if err != nil {
			return 0, false, err
		}
		switch {
		case slot == targetSlot:
			return mid, true, nil
		case slot < targetSlot:
			// Slots are stored in descending order, so smaller slots
			// live at higher indices.
			high = mid
		default:
			low = mid + 1
		}
	}
	return 0, false, nil
}
