package counting

import (
	"iter"
	"math"
	"math/big"
	"slices"

	"github.com/samber/lo"
)

// Compositions yields every tuple of parts non-negative integers that sums to total with each
// part at most capPerPart. See CompositionsWithBounds for ordering and reuse rules.
func Compositions(total uint64, parts int, capPerPart uint64) iter.Seq[[]uint64] {
	if parts < 0 {
		parts = 0
	}
	return CompositionsWithBounds(total, slices.Repeat([]uint64{capPerPart}, parts))
}

// CompositionsWithBounds yields every tuple c with len(c) == len(bounds), c[i] <= bounds[i]
// and Σc == total, in lexicographic order. Nothing is yielded when total exceeds Σbounds, and
// exactly one empty tuple is yielded for empty bounds and a zero total.
//
// The yielded slice is reused between iterations; copy it to retain it. Each range over the
// returned sequence starts a fresh enumeration.
func CompositionsWithBounds(total uint64, bounds []uint64) iter.Seq[[]uint64] {
	bounds = slices.Clone(bounds)
	return func(yield func([]uint64) bool) {
		capacity := suffixCapacity(bounds)
		if total > capacity[0] {
			return
		}
		composition := make([]uint64, len(bounds))
		compose(bounds, capacity, 0, total, composition, yield)
	}
}

// capacity[i] is the most that parts i.. can hold together, saturating at math.MaxUint64.
func suffixCapacity(bounds []uint64) []uint64 {
	capacity := make([]uint64, len(bounds)+1)
	for i := len(bounds) - 1; i >= 0; i-- {
		capacity[i] = capacity[i+1] + bounds[i]
		if capacity[i] < bounds[i] {
			capacity[i] = math.MaxUint64
		}
	}
	return capacity
}

func compose(
	bounds []uint64,
	capacity []uint64,
	currentPart int,
	remaining uint64,
	composition []uint64,
	yield func([]uint64) bool) bool {

	if currentPart >= len(bounds) {
		return yield(composition)
	}

	// Leave no more than the following parts can absorb
	var lower uint64
	if remaining > capacity[currentPart+1] {
		lower = remaining - capacity[currentPart+1]
	}
	upper := min(bounds[currentPart], remaining)

	for value := lower; value <= upper; value++ {
		composition[currentPart] = value
		if !compose(bounds, capacity, currentPart+1, remaining-value, composition, yield) {
			return false
		}
		if value == math.MaxUint64 {
			break
		}
	}

	composition[currentPart] = 0
	return true
}

// maxTableCells caps the parts × total table CountCompositions fills before it switches to
// inclusion-exclusion over the parts whose bound binds.
const maxTableCells = 1 << 22

// CountCompositions returns how many tuples CompositionsWithBounds(total, bounds) would yield,
// without enumerating them.
func CountCompositions(total uint64, bounds []uint64) *big.Int {
	if total > suffixCapacity(bounds)[0] {
		return new(big.Int)
	} else if len(bounds) == 0 {
		return big.NewInt(1)
	}

	if total <= maxTableCells/uint64(len(bounds)) {
		return countByTable(total, bounds)
	}
	return countByExclusion(total, bounds)
}

func countByTable(total uint64, bounds []uint64) *big.Int {
	// ways[t] is the number of ways the parts seen so far sum to t
	ways := make([]*big.Int, total+1)
	for t := range ways {
		ways[t] = new(big.Int)
	}
	ways[0].SetInt64(1)

	for _, bound := range bounds {
		next := make([]*big.Int, total+1)
		window := new(big.Int)
		for t := uint64(0); t <= total; t++ {
			window.Add(window, ways[t])
			if bound < t {
				window.Sub(window, ways[t-bound-1])
			}
			next[t] = new(big.Int).Set(window)
		}
		ways = next
	}

	return ways[total]
}

// countByExclusion sums (-1)^|S| C(total - Σ(bound+1 over S) + parts - 1, parts - 1) over the
// sets S of parts whose bound is below total. Parts bounded at total or above never bind.
func countByExclusion(total uint64, bounds []uint64) *big.Int {
	binding := lo.Filter(bounds, func(bound uint64, _ int) bool { return bound < total })
	parts := uint64(len(bounds))

	count := new(big.Int)
	var exclude func(next int, excluded uint64, odd bool)
	exclude = func(next int, excluded uint64, odd bool) {
		term := new(big.Int).SetUint64(total - excluded)
		term = binomial(term.Add(term, new(big.Int).SetUint64(parts-1)), parts-1)
		if odd {
			count.Sub(count, term)
		} else {
			count.Add(count, term)
		}

		for i := next; i < len(binding); i++ {
			// bound < total, so bound+1 cannot overflow
			if binding[i]+1 <= total-excluded {
				exclude(i+1, excluded+binding[i]+1, !odd)
			}
		}
	}
	exclude(0, 0, false)
	return count
}

// binomial returns C(n, k) for an arbitrary precision n >= k.
func binomial(n *big.Int, k uint64) *big.Int {
	result := big.NewInt(1)
	factor := new(big.Int)
	base := new(big.Int).Sub(n, new(big.Int).SetUint64(k))
	for j := uint64(1); j <= k; j++ {
		// result holds C(n-k+j-1, j-1), so the product divides j exactly
		result.Mul(result, factor.Add(base, factor.SetUint64(j)))
		result.Quo(result, factor.SetUint64(j))
	}
	return result
}
