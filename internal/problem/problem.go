package problem

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/limaJavier/counting/pkg/counting"
	"github.com/samber/lo"
)

type Kind string

const (
	Permutations Kind = "permutations"
	Combinations Kind = "combinations"
	Multiset     Kind = "multiset"
	Union        Kind = "union"
	Minimums     Kind = "minimums"
	Exacts       Kind = "exacts"
	Maximums     Kind = "maximums"
	Forbidden    Kind = "forbidden"
	Schedule     Kind = "schedule"
	Compositions Kind = "compositions"
)

var (
	ErrUnknownKind    = errors.New("unknown problem kind")
	ErrInvalidProblem = errors.New("invalid problem")
)

// Problem is one counting question as written in a problem file or assembled from flags.
// Only the fields used by Kind are read.
type Problem struct {
	Name string `mapstructure:"name" json:"name,omitempty"`
	Kind Kind   `mapstructure:"kind" json:"kind" validate:"required,oneof=permutations combinations multiset union minimums exacts maximums forbidden schedule compositions"`

	// permutations, combinations, forbidden
	N uint64 `mapstructure:"n" json:"n,omitempty"`
	// permutations, combinations, forbidden, minimums, maximums
	R uint64 `mapstructure:"r" json:"r,omitempty"`

	Counts map[string]uint64 `mapstructure:"counts" json:"counts,omitempty"`

	Sets          map[string]uint64 `mapstructure:"sets" json:"sets,omitempty" validate:"omitempty,dive,keys,required,endkeys"`
	Intersections map[string]uint64 `mapstructure:"intersections" json:"intersections,omitempty"`

	Groups   []uint64 `mapstructure:"groups" json:"groups,omitempty"`
	Minimums []uint64 `mapstructure:"minimums" json:"minimums,omitempty"`
	Exacts   []uint64 `mapstructure:"exacts" json:"exacts,omitempty"`
	Maximums []uint64 `mapstructure:"maximums" json:"maximums,omitempty"`

	Forbidden []counting.Pair `mapstructure:"forbidden" json:"forbidden,omitempty"`

	People     []string             `mapstructure:"people" json:"people,omitempty" validate:"omitempty,dive,required"`
	Slots      int                  `mapstructure:"slots" json:"slots,omitempty" validate:"gte=0"`
	MaxPerSlot uint64               `mapstructure:"maxPerSlot" json:"maxPerSlot,omitempty"`
	Fixed      []counting.Placement `mapstructure:"fixed" json:"fixed,omitempty"`

	Total  uint64   `mapstructure:"total" json:"total,omitempty"`
	Bounds []uint64 `mapstructure:"bounds" json:"bounds,omitempty"`
}

// Result pairs a problem with its count.
type Result struct {
	Problem Problem
	Count   *big.Int
}

var problemValidate = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateKindFields, Problem{})
	return validate
}

// validateKindFields requires the fields each kind cannot do without.
func validateKindFields(level validator.StructLevel) {
	problem := level.Current().Interface().(Problem)
	switch problem.Kind {
	case Minimums, Exacts, Maximums:
		if problem.Groups == nil {
			level.ReportError(problem.Groups, "Groups", "groups", "required", "")
		}
	case Schedule:
		if problem.Slots == 0 && len(problem.People) > 0 {
			level.ReportError(problem.Slots, "Slots", "slots", "required", "")
		}
		validatePlacements(level, problem)
	case Forbidden:
		if problem.N > counting.MaxItems {
			level.ReportError(problem.N, "N", "n", "lte", fmt.Sprint(counting.MaxItems))
		}
	}
}

// validatePlacements rejects people lists and fixed placements the schedule counter cannot
// take, so they surface as input errors rather than counting failures.
func validatePlacements(level validator.StructLevel, problem Problem) {
	if len(lo.FindDuplicates(problem.People)) > 0 {
		level.ReportError(problem.People, "People", "people", "unique", "")
	}

	known := lo.SliceToMap(problem.People, func(person string) (string, bool) { return person, true })
	placed := make(map[string]bool)
	for i, placement := range problem.Fixed {
		field := fmt.Sprintf("Fixed[%d]", i)
		if !known[placement.Person] {
			level.ReportError(placement.Person, field+".Person", "person", "oneof", strings.Join(problem.People, " "))
		} else if placed[placement.Person] {
			level.ReportError(placement.Person, field+".Person", "person", "unique", "")
		} else if placement.Slot < 0 || placement.Slot >= problem.Slots {
			level.ReportError(placement.Slot, field+".Slot", "slot", "lt", fmt.Sprint(problem.Slots))
		}
		placed[placement.Person] = true
	}
}

// Validate checks the problem's shape before it is solved. Quota lengths are left to the
// engine, which reports them as a dimension mismatch.
func (problem *Problem) Validate() error {
	return problemValidate.Struct(problem)
}

// withDefaults fills absent quotas: no minimums means zero from every group and no maximums
// means every group may be used in full.
func (problem Problem) withDefaults() Problem {
	if problem.Kind == Minimums && problem.Minimums == nil {
		problem.Minimums = make([]uint64, len(problem.Groups))
	}
	if problem.Kind == Maximums && problem.Maximums == nil {
		problem.Maximums = slices.Clone(problem.Groups)
	}
	return problem
}

var solvers = map[Kind]func(Problem) (*big.Int, error){
	Permutations: func(problem Problem) (*big.Int, error) {
		return counting.Permutations(problem.N, problem.R), nil
	},
	Combinations: func(problem Problem) (*big.Int, error) {
		return counting.Combinations(problem.N, problem.R), nil
	},
	Multiset: func(problem Problem) (*big.Int, error) {
		return counting.MultisetPermutations(problem.Counts), nil
	},
	Union: func(problem Problem) (*big.Int, error) {
		intersections, err := IntersectionsFromKeys(problem.Intersections)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
		}
		return counting.Union(problem.Sets, intersections)
	},
	Minimums: func(problem Problem) (*big.Int, error) {
		return counting.WithMinimums(problem.Groups, problem.Minimums, problem.R)
	},
	Exacts: func(problem Problem) (*big.Int, error) {
		return counting.WithExacts(problem.Groups, problem.Exacts)
	},
	Maximums: func(problem Problem) (*big.Int, error) {
		return counting.WithMaximums(problem.Groups, problem.Maximums, problem.R)
	},
	Forbidden: func(problem Problem) (*big.Int, error) {
		// N is validated against MaxItems, but R is unbounded
		if problem.R > problem.N {
			return new(big.Int), nil
		}
		return counting.ArrangementsWithForbidden(int(problem.N), int(problem.R), problem.Forbidden)
	},
	Schedule: func(problem Problem) (*big.Int, error) {
		return counting.ScheduleCount(problem.People, problem.Slots, problem.MaxPerSlot, problem.Fixed)
	},
	Compositions: func(problem Problem) (*big.Int, error) {
		return counting.CountCompositions(problem.Total, problem.Bounds), nil
	},
}

// Solve validates the problem, applies quota defaults and runs the matching counter.
func Solve(problem Problem) (Result, error) {
	solver, ok := solvers[problem.Kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownKind, problem.Kind, Kinds())
	}
	if err := problem.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v: %w", ErrInvalidProblem, problem.Kind, err)
	}

	problem = problem.withDefaults()
	count, err := solver(problem)
	if err != nil {
		return Result{}, fmt.Errorf("cannot count %v: %w", problem.Kind, err)
	}
	return Result{Problem: problem, Count: count}, nil
}

// Kinds lists every supported kind in alphabetical order.
func Kinds() []Kind {
	kinds := lo.Keys(solvers)
	slices.Sort(kinds)
	return kinds
}
