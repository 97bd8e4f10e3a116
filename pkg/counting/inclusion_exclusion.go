package counting

import (
	"math/big"

	"github.com/samber/lo"
)

// Union returns |A1 ∪ A2 ∪ ... ∪ Ak| for the labeled sets in sizes by inclusion-exclusion:
// the alternating sum over every non-empty subset of labels, where a subset of r labels
// contributes with sign +1 for odd r and -1 for even r. Single labels contribute their set
// size; larger subsets contribute their entry in intersections, or nothing when absent.
//
// Only intersections whose labels all appear in sizes take part, and one-label keys are
// ignored in favour of sizes. The sum is accumulated over the given intersections rather than
// all 2^k subsets, since absent subsets contribute zero. ErrInconsistentSizes is returned if
// the sum is negative.
func Union(sizes map[string]uint64, intersections Intersections) (*big.Int, error) {
	total := new(big.Int)
	for _, size := range sizes {
		total.Add(total, new(big.Int).SetUint64(size))
	}

	for labelSet, size := range intersections {
		labels := labelSet.Labels()
		if len(labels) < 2 || !lo.EveryBy(labels, func(label string) bool {
			_, ok := sizes[label]
			return ok
		}) {
			continue
		}

		term := new(big.Int).SetUint64(size)
		if len(labels)%2 == 0 {
			total.Sub(total, term)
		} else {
			total.Add(total, term)
		}
	}

	if total.Sign() < 0 {
		return nil, ErrInconsistentSizes
	}
	return total, nil
}
