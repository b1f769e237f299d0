package raw

import "github.com/rustopian/eisodos/fixture"

func slotOffset(index uint64) int {
	return fixture.NumEntriesSize + int(index)*fixture.EntrySize
}

// slotHashesCount reads the entry count, clamped to what the data region
// can actually hold.
func slotHashesCount(account *Account) uint64 {
	count := account.readWord(0)
	capacity := uint64(0)
	if size := len(account.raw) - headerSize - fixture.NumEntriesSize; size > 0 {
		capacity = uint64(size / fixture.EntrySize)
	}
	if count > capacity {
		count = capacity
	}
	return count
}

// findSlotNaive is a plain midpoint binary search over the descending
// slot sequence, one metered read per probe.
func findSlotNaive(account *Account, count, targetSlot uint64) (uint64, bool) {
	low, high := uint64(0), count
	for low < high {
		mid := low + (high-low)/2
		slot := account.readWord(slotOffset(mid))
		switch {
		case slot == targetSlot:
			return mid, true
		case slot < targetSlot:
			// Descending order: smaller slots live at higher indices.
			high = mid
		default:
			low = mid + 1
		}
	}
	return 0, false
}

// findSlotInterpolated estimates the probe index from the slot spread at
// the current bounds before narrowing, which beats midpoint probing when
// slot gaps are near-uniform.
func findSlotInterpolated(account *Account, count, targetSlot uint64) (uint64, bool) {
	if count == 0 {
		return 0, false
	}
	low, high := uint64(0), count-1
	for low <= high {
		lowSlot := account.readWord(slotOffset(low))
		highSlot := account.readWord(slotOffset(high))
		if targetSlot > lowSlot || targetSlot < highSlot {
			return 0, false
		}
		mid := low
		if lowSlot != highSlot {
			mid = low + (lowSlot-targetSlot)*(high-low)/(lowSlot-highSlot)
		}
		slot := account.readWord(slotOffset(mid))
		switch {
		case slot == targetSlot:
			return mid, true
		case slot < targetSlot:
			if mid == 0 {
				return 0, false
			}
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return 0, false
}
