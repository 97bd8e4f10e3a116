package counting

import (
	"slices"
	"strconv"
	"strings"
)

// LabelSet is a canonical set of set labels, usable as a map key. The zero value is the empty
// set. Two LabelSets built from the same labels in any order, with or without repeats, are
// equal.
type LabelSet struct {
	key string // length-prefixed sorted labels, e.g. "1:A1:B"
}

// NewLabelSet builds the canonical set of the given labels.
func NewLabelSet(labels ...string) LabelSet {
	sorted := slices.Compact(slices.Sorted(slices.Values(labels)))
	var builder strings.Builder
	for _, label := range sorted {
		builder.WriteString(strconv.Itoa(len(label)))
		builder.WriteByte(':')
		builder.WriteString(label)
	}
	return LabelSet{key: builder.String()}
}

// Labels returns the labels in ascending order.
func (set LabelSet) Labels() []string {
	labels := make([]string, 0)
	for rest := set.key; rest != ""; {
		separator := strings.IndexByte(rest, ':')
		length, _ := strconv.Atoi(rest[:separator])
		labels = append(labels, rest[separator+1:separator+1+length])
		rest = rest[separator+1+length:]
	}
	return labels
}

// Len returns the number of labels in the set.
func (set LabelSet) Len() int {
	return len(set.Labels())
}

func (set LabelSet) String() string {
	return strings.Join(set.Labels(), ",")
}

// Intersections maps a set of labels to the size of the intersection of those labeled sets.
// Missing keys mean an empty intersection.
type Intersections map[LabelSet]uint64

// Set records the size of the intersection of the given labeled sets.
func (intersections Intersections) Set(size uint64, labels ...string) {
	intersections[NewLabelSet(labels...)] = size
}
