package counting

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutationsAndCombinationsIdentities(t *testing.T) {
	for n := uint64(0); n <= 30; n++ {
		assert.Equal(t, int64(1), Permutations(n, 0).Int64())
		assert.Equal(t, int64(1), Combinations(n, 0).Int64())
		assert.Equal(t, int64(1), Combinations(n, n).Int64())
		assert.Zero(t, Factorial(n).Cmp(Permutations(n, n)), "nPr(%d, %d) must equal %d!", n, n, n)

		for r := uint64(0); r <= n; r++ {
			assert.Zero(t, Combinations(n, r).Cmp(Combinations(n, n-r)), "nCr(%d, %d) symmetry", n, r)
		}
		for r := n + 1; r <= n+3; r++ {
			assert.Zero(t, Permutations(n, r).Sign())
			assert.Zero(t, Combinations(n, r).Sign())
		}
	}
}

func TestPermutationsAndCombinationsValues(t *testing.T) {
	assert.Equal(t, int64(60), Permutations(5, 3).Int64())
	assert.Equal(t, int64(10), Combinations(5, 3).Int64())
	assert.Equal(t, int64(15), Combinations(6, 2).Int64())

	// Beyond 64 bits
	expected, _ := new(big.Int).SetString("30414093201713378043612608166064768844377641568960512000000000000", 10)
	assert.Zero(t, expected.Cmp(Factorial(50)))
	assert.Zero(t, expected.Cmp(Permutations(50, 50)))

	binomial, _ := new(big.Int).SetString("100891344545564193334812497256", 10)
	assert.Zero(t, binomial.Cmp(Combinations(100, 50)))
}

func TestMultisetPermutations(t *testing.T) {
	// Arrange
	scenarios := []struct {
		counts   map[string]uint64
		expected int64
	}{
		{map[string]uint64{}, 1},
		{nil, 1},
		{map[string]uint64{"a": 0}, 1},
		{map[string]uint64{"a": 3}, 1},
		{map[string]uint64{"a": 1, "b": 1, "c": 1}, 6},
		{map[string]uint64{"M": 1, "I": 4, "S": 4, "P": 2}, 34650},
	}

	for _, scenario := range scenarios {
		// Act
		result := MultisetPermutations(scenario.counts)

		// Assert
		assert.Equal(t, scenario.expected, result.Int64(), "counts %v", scenario.counts)
	}
}

func TestMultinomial(t *testing.T) {
	assert.Equal(t, int64(1), Multinomial(nil).Int64())
	assert.Equal(t, int64(6), Multinomial([]uint64{2, 2}).Int64())
	assert.Equal(t, int64(30), Multinomial([]uint64{2, 2, 1}).Int64())
	assert.Equal(t, int64(1), Multinomial([]uint64{0, 0, 4}).Int64())
}

func TestPermutationsAndCombinationsAboveInt64(t *testing.T) {
	twoTo63 := new(big.Int).Lsh(big.NewInt(1), 63)
	maxUint64 := new(big.Int).SetUint64(math.MaxUint64)

	assert.Zero(t, twoTo63.Cmp(Permutations(1<<63, 1)))
	assert.Zero(t, twoTo63.Cmp(Combinations(1<<63, 1)))
	assert.Zero(t, twoTo63.Cmp(Combinations(1<<63, 1<<63-1)))
	assert.Equal(t, int64(1), Combinations(math.MaxUint64, math.MaxUint64).Int64())
	assert.Equal(t, int64(1), Combinations(math.MaxUint64, 0).Int64())
	assert.Equal(t, int64(1), Permutations(math.MaxUint64, 0).Int64())
	assert.Zero(t, maxUint64.Cmp(Permutations(math.MaxUint64, 1)))

	// (2^64 - 1)(2^64 - 2)
	expected := new(big.Int).Mul(maxUint64, new(big.Int).Sub(maxUint64, big.NewInt(1)))
	assert.Zero(t, expected.Cmp(Permutations(math.MaxUint64, 2)))
	assert.Zero(t, new(big.Int).Rsh(expected, 1).Cmp(Combinations(math.MaxUint64, 2)))

	// Ranges straddling MaxInt64
	expected = new(big.Int).Mul(big.NewInt(math.MaxInt64), twoTo63)
	assert.Zero(t, expected.Cmp(Permutations(1<<63, 2)))
	assert.Equal(t, 1, Permutations(1<<63, 2).Sign())
}
