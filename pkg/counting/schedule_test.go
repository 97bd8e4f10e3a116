package counting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteSchedules tries every slot for every person.
func bruteSchedules(people []string, slots int, maxPerSlot uint64, fixed []Placement) int64 {
	pinned := make(map[string]int)
	for _, placement := range fixed {
		pinned[placement.Person] = placement.Slot
	}

	assignment := make([]int, len(people))
	var walk func(person int) int64
	walk = func(person int) int64 {
		if person == len(people) {
			occupancy := make([]uint64, slots)
			for _, slot := range assignment {
				occupancy[slot]++
			}
			for _, count := range occupancy {
				if count > maxPerSlot {
					return 0
				}
			}
			return 1
		}

		var count int64
		for slot := range slots {
			if pinnedSlot, ok := pinned[people[person]]; ok && pinnedSlot != slot {
				continue
			}
			assignment[person] = slot
			count += walk(person + 1)
		}
		return count
	}
	return walk(0)
}

func TestScheduleCountExamples(t *testing.T) {
	result, err := ScheduleCount([]string{"A", "B", "C", "D"}, 2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Int64())

	// Three people pinned to a slot that holds two
	result, err = ScheduleCount([]string{"A", "B", "C", "D"}, 2, 2, []Placement{{"A", 0}, {"B", 0}, {"C", 0}})
	require.NoError(t, err)
	assert.Zero(t, result.Sign())
}

func TestScheduleCountAgainstBruteForce(t *testing.T) {
	people := []string{"A", "B", "C", "D", "E"}
	scenarios := [][]Placement{
		nil,
		{{"A", 0}},
		{{"A", 0}, {"C", 1}},
		{{"A", 1}, {"B", 1}, {"E", 2}},
	}

	for _, fixed := range scenarios {
		for slots := 3; slots <= 4; slots++ {
			for maxPerSlot := uint64(0); maxPerSlot <= 5; maxPerSlot++ {
				// Act
				result, err := ScheduleCount(people, slots, maxPerSlot, fixed)

				// Assert
				require.NoError(t, err)
				assert.Equal(t, bruteSchedules(people, slots, maxPerSlot, fixed), result.Int64(),
					"slots=%d, maxPerSlot=%d, fixed=%v", slots, maxPerSlot, fixed)
			}
		}
	}
}

func TestScheduleCountDegenerate(t *testing.T) {
	result, err := ScheduleCount(nil, 0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Int64())

	result, err = ScheduleCount([]string{"A"}, 0, 3, nil)
	require.NoError(t, err)
	assert.Zero(t, result.Sign())

	result, err = ScheduleCount(nil, 3, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Int64())
}

func TestScheduleCountRejectsPlacements(t *testing.T) {
	people := []string{"A", "B"}

	_, err := ScheduleCount(people, 2, 2, []Placement{{"Z", 0}})
	assert.ErrorIs(t, err, ErrUnknownPerson)

	_, err = ScheduleCount(people, 2, 2, []Placement{{"A", 0}, {"A", 1}})
	assert.ErrorIs(t, err, ErrDuplicatePlacement)

	_, err = ScheduleCount(people, 2, 2, []Placement{{"A", 2}})
	assert.ErrorIs(t, err, ErrSlotOutOfRange)

	_, err = ScheduleCount(people, -1, 2, nil)
	assert.ErrorIs(t, err, ErrSlotOutOfRange)

	_, err = ScheduleCount([]string{"A", "A"}, 2, 2, nil)
	assert.ErrorIs(t, err, ErrDuplicatePerson)
}
