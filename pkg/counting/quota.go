package counting

import (
	"math/big"

	"github.com/samber/lo"
)

// WithMinimums counts the ways to choose r items from groups of the given sizes taking at
// least minimums[i] from group i. It is 0 when the minimums exceed r or a group cannot supply
// its minimum.
func WithMinimums(groups, minimums []uint64, r uint64) (*big.Int, error) {
	if err := checkDimensions("minimums", groups, minimums); err != nil {
		return nil, err
	}

	required := lo.Sum(minimums)
	if required > r || lo.SomeBy(lo.Range(len(groups)), func(i int) bool { return minimums[i] > groups[i] }) {
		return new(big.Int), nil
	}

	// Spread the selections left after the minimums over what each group has to spare
	spare := lo.Map(groups, func(size uint64, i int) uint64 { return size - minimums[i] })
	total := new(big.Int)
	picks := make([]uint64, len(groups))
	for extra := range CompositionsWithBounds(r-required, spare) {
		for i := range picks {
			picks[i] = minimums[i] + extra[i]
		}
		total.Add(total, selections(groups, picks))
	}
	return total, nil
}

// WithExacts counts the ways to take exactly exacts[i] items from group i. An exact count
// larger than its group makes the product 0.
func WithExacts(groups, exacts []uint64) (*big.Int, error) {
	if err := checkDimensions("exacts", groups, exacts); err != nil {
		return nil, err
	}
	return selections(groups, exacts), nil
}

// WithMaximums counts the ways to choose r items from groups of the given sizes taking at
// most maximums[i] from group i.
func WithMaximums(groups, maximums []uint64, r uint64) (*big.Int, error) {
	if err := checkDimensions("maximums", groups, maximums); err != nil {
		return nil, err
	}

	caps := lo.Map(groups, func(size uint64, i int) uint64 { return min(size, maximums[i]) })
	total := new(big.Int)
	for picks := range CompositionsWithBounds(r, caps) {
		total.Add(total, selections(groups, picks))
	}
	return total, nil
}

// selections returns Π nCr(groups[i], picks[i]).
func selections(groups, picks []uint64) *big.Int {
	ways := big.NewInt(1)
	for i, size := range groups {
		ways.Mul(ways, Combinations(size, picks[i]))
		if ways.Sign() == 0 {
			break
		}
	}
	return ways
}
