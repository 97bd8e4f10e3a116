package counting

import (
	"fmt"
	"math/big"

	"github.com/samber/lo"
)

// Placement pins Person to Slot.
type Placement struct {
	Person string `json:"person"`
	Slot   int    `json:"slot"`
}

// ScheduleCount counts the assignments of every person to one of slots labeled slots, with at
// most maxPerSlot people per slot and every fixed placement honoured.
//
// Occupancy tuples are enumerated with Compositions. A tuple is feasible when no slot holds
// fewer people than are pinned to it; it then contributes the multinomial
// (people - pinned)! / Π(occupancy[i] - pinned[i])!, the ways to spread the unpinned people
// over the room left in each slot.
func ScheduleCount(people []string, slots int, maxPerSlot uint64, fixed []Placement) (*big.Int, error) {
	pinned, err := pinnedPerSlot(people, slots, fixed)
	if err != nil {
		return nil, err
	}

	total := new(big.Int)
	remaining := make([]uint64, slots)
	for occupancy := range Compositions(uint64(len(people)), slots, maxPerSlot) {
		if lo.SomeBy(lo.Range(slots), func(slot int) bool { return pinned[slot] > occupancy[slot] }) {
			continue
		}
		for slot := range remaining {
			remaining[slot] = occupancy[slot] - pinned[slot]
		}
		total.Add(total, Multinomial(remaining))
	}
	return total, nil
}

func pinnedPerSlot(people []string, slots int, fixed []Placement) ([]uint64, error) {
	if slots < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrSlotOutOfRange, slots)
	}
	if duplicates := lo.FindDuplicates(people); len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDuplicatePerson, duplicates)
	}

	known := lo.SliceToMap(people, func(person string) (string, bool) { return person, true })
	placed := make(map[string]bool)
	pinned := make([]uint64, slots)
	for _, placement := range fixed {
		if !known[placement.Person] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPerson, placement.Person)
		} else if placed[placement.Person] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlacement, placement.Person)
		} else if placement.Slot < 0 || placement.Slot >= slots {
			return nil, fmt.Errorf("%w: %q pinned to slot %d of %d", ErrSlotOutOfRange, placement.Person, placement.Slot, slots)
		}
		placed[placement.Person] = true
		pinned[placement.Slot]++
	}
	return pinned, nil
}
