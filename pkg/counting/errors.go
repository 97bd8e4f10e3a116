package counting

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a quota slice whose length differs from the group sizes.
	ErrDimensionMismatch = errors.New("counting: quota length must match group sizes")
	// ErrTooManyItems indicates an item count above MaxItems for the forbidden-adjacency table.
	ErrTooManyItems = errors.New("counting: too many items for the adjacency table")
	// ErrInconsistentSizes indicates set and intersection sizes that no family of sets can have.
	ErrInconsistentSizes = errors.New("counting: set sizes and intersections are inconsistent")
	// ErrNegativeArgument indicates a negative item or selection count.
	ErrNegativeArgument = errors.New("counting: argument must not be negative")
	// ErrSlotOutOfRange indicates a negative slot count or a fixed placement outside the slots.
	ErrSlotOutOfRange = errors.New("counting: slot out of range")
	// ErrUnknownPerson indicates a fixed placement for someone not in the people list.
	ErrUnknownPerson = errors.New("counting: placement names an unknown person")
	// ErrDuplicatePlacement indicates the same person fixed more than once.
	ErrDuplicatePlacement = errors.New("counting: person placed more than once")
	// ErrDuplicatePerson indicates a people list with repeated names.
	ErrDuplicatePerson = errors.New("counting: people must be distinct")
)

// DimensionMismatchError reports which quota did not line up with the group sizes.
type DimensionMismatchError struct {
	Quota  string // "minimums", "exacts" or "maximums"
	Groups int
	Got    int
}

func (err *DimensionMismatchError) Error() string {
	return fmt.Sprintf("counting: %v length %d must match %d group sizes", err.Quota, err.Got, err.Groups)
}

func (err *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func checkDimensions(quota string, groups, values []uint64) error {
	if len(groups) != len(values) {
		return &DimensionMismatchError{Quota: quota, Groups: len(groups), Got: len(values)}
	}
	return nil
}
