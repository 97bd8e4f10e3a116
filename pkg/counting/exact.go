package counting

import (
	"math"
	"math/big"

	"github.com/samber/lo"
)

// Factorial returns n!.
func Factorial(n uint64) *big.Int {
	return mulRange(1, n)
}

// Permutations returns the number of ordered selections of r items out of n, or 0 when r > n.
func Permutations(n, r uint64) *big.Int {
	if r > n {
		return new(big.Int)
	} else if r == 0 {
		return big.NewInt(1)
	}
	return mulRange(n-r+1, n)
}

// Combinations returns the number of unordered selections of r items out of n, or 0 when r > n.
func Combinations(n, r uint64) *big.Int {
	if r > n {
		return new(big.Int)
	}
	if n <= math.MaxInt64 {
		return new(big.Int).Binomial(int64(n), int64(r))
	}
	k := min(r, n-r)
	if k == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Quo(mulRange(n-k+1, n), Factorial(k))
}

// mulRange returns low × (low+1) × ... × high, or 1 when low > high.
func mulRange(low, high uint64) *big.Int {
	if low > high {
		return big.NewInt(1)
	}
	if high <= math.MaxInt64 {
		return new(big.Int).MulRange(int64(low), int64(high))
	}

	// MulRange takes int64 bounds, so the factors above MaxInt64 are multiplied one by one
	result := big.NewInt(1)
	if low <= math.MaxInt64 {
		result.MulRange(int64(low), math.MaxInt64)
		low = math.MaxInt64 + 1
	}
	factor := new(big.Int)
	for value := low; ; value++ {
		result.Mul(result, factor.SetUint64(value))
		if value == high {
			break
		}
	}
	return result
}

// Multinomial returns (Σparts)! / Π(part!), the number of ways to split distinct items into
// labeled groups of the given sizes.
func Multinomial(parts []uint64) *big.Int {
	result := Factorial(lo.Sum(parts))
	denominator := big.NewInt(1)
	for _, part := range parts {
		denominator.Mul(denominator, Factorial(part))
	}
	return result.Quo(result, denominator)
}

// MultisetPermutations returns the number of distinct orderings of a multiset given the
// multiplicity of each symbol. The empty multiset has exactly one ordering.
func MultisetPermutations(counts map[string]uint64) *big.Int {
	return Multinomial(lo.Values(counts))
}
