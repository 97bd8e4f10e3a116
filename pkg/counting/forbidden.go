package counting

import (
	"fmt"
	"math/big"
	"math/bits"
)

// MaxItems is the largest n ArrangementsWithForbidden accepts. Its table holds 2^n × n
// counters, about 170 MB at the limit.
const MaxItems = 20

// Pair forbids After from being placed immediately after Before. It is directional: Pair{0, 1}
// still allows 1 to be followed by 0.
type Pair struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// ArrangementsWithForbidden counts the sequences of r distinct items from 0..n-1 in which no
// two consecutive items form a forbidden pair. There is exactly one arrangement of length 0
// and none when r > n. Pairs naming items outside 0..n-1 are ignored.
func ArrangementsWithForbidden(n, r int, forbidden []Pair) (*big.Int, error) {
	if n < 0 || r < 0 {
		return nil, fmt.Errorf("%w: n=%d, r=%d", ErrNegativeArgument, n, r)
	} else if n > MaxItems {
		return nil, fmt.Errorf("%w: %d items, at most %d are supported", ErrTooManyItems, n, MaxItems)
	}

	if r == 0 {
		return big.NewInt(1), nil
	} else if r > n {
		return new(big.Int), nil
	}

	// blocked[x] has bit y set when y may not follow x
	blocked := make([]uint32, n)
	for _, pair := range forbidden {
		if pair.Before >= 0 && pair.Before < n && pair.After >= 0 && pair.After < n {
			blocked[pair.Before] |= 1 << pair.After
		}
	}

	// ways at (mask, last) counts the arrangements using exactly the items in mask and ending
	// in last. No entry exceeds 20! < 2^64, so uint64 counters are exact.
	indexer := newStateIndexer(n)
	ways := make([]uint64, indexer.size())
	for item := range n {
		ways[indexer.index(1<<item, item)] = 1
	}

	full := uint32(1)<<n - 1
	total := new(big.Int)
	// Adding an item only ever grows the mask, so ascending masks visit every state after
	// all of its predecessors
	for mask := uint32(1); mask <= full; mask++ {
		used := bits.OnesCount32(mask)
		if used > r {
			continue
		}

		for last := range n {
			count := ways[indexer.index(mask, last)]
			if count == 0 {
				continue
			}

			if used == r {
				total.Add(total, new(big.Int).SetUint64(count))
				continue
			}

			for candidates := full &^ mask &^ blocked[last]; candidates != 0; candidates &= candidates - 1 {
				next := bits.TrailingZeros32(candidates)
				ways[indexer.index(mask|1<<next, next)] += count
			}
		}
	}

	return total, nil
}

// stateIndexer gives every (mask, last) state of the adjacency table a unique offset.
type stateIndexer struct {
	items int
}

func newStateIndexer(items int) stateIndexer {
	return stateIndexer{items: items}
}

func (indexer stateIndexer) index(mask uint32, last int) int {
	return int(mask)*indexer.items + last
}

func (indexer stateIndexer) size() int {
	return (1 << indexer.items) * indexer.items
}
