package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/limaJavier/counting/internal/problem"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func parseNR(args []string) (n, r uint64, err error) {
	n, err = strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid n %q: %w", args[0], err)
	}
	r, err = strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid r %q: %w", args[1], err)
	}
	return n, r, nil
}

// NewPermCommand creates the perm command.
func NewPermCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "perm <n> <r>",
		Short: "Ordered selections of r items out of n (nPr)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, r, err := parseNR(args)
			if err != nil {
				return reportInputError(rootOpts, cmd, err)
			}
			return runProblems(rootOpts, cmd, []problem.Problem{{Kind: problem.Permutations, N: n, R: r}})
		},
	}
}

// NewCombCommand creates the comb command.
func NewCombCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comb <n> <r>",
		Short: "Unordered selections of r items out of n (nCr)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, r, err := parseNR(args)
			if err != nil {
				return reportInputError(rootOpts, cmd, err)
			}
			return runProblems(rootOpts, cmd, []problem.Problem{{Kind: problem.Combinations, N: n, R: r}})
		},
	}
}

// NewMultisetCommand creates the multiset command.
func NewMultisetCommand(rootOpts *RootOptions) *cobra.Command {
	var counts string

	cmd := &cobra.Command{
		Use:   "multiset [word]",
		Short: "Distinct orderings of a multiset",
		Long: `Counts the distinct orderings of a multiset, given either as a word whose letters
are the symbols or as --counts a=2,b=1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			multiplicities, err := problem.ParseCounts(counts)
			if err != nil {
				return reportInputError(rootOpts, cmd, err)
			}
			if len(args) == 1 {
				if counts != "" {
					return reportInputError(rootOpts, cmd, errors.New("give either a word or --counts, not both"))
				}
				multiplicities = lo.MapEntries(lo.CountValues([]rune(args[0])), func(symbol rune, count int) (string, uint64) {
					return string(symbol), uint64(count)
				})
			}
			return runProblems(rootOpts, cmd, []problem.Problem{{Kind: problem.Multiset, Counts: multiplicities}})
		},
	}

	cmd.Flags().StringVar(&counts, "counts", "", `symbol multiplicities, e.g. "a=2,b=1"`)
	return cmd
}

// NewUnionCommand creates the union command.
func NewUnionCommand(rootOpts *RootOptions) *cobra.Command {
	var sets, intersections string

	cmd := &cobra.Command{
		Use:   "union",
		Short: "Size of a union of overlapping sets by inclusion-exclusion",
		Example: `  counting union --sets '{"A":20,"B":25,"C":18}' \
    --intersections '{"A,B":8,"A,C":5,"B,C":6,"A,B,C":3}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := problem.ParseSetSizes(sets)
			if err != nil {
				return reportInputError(rootOpts, cmd, err)
			}
			raw, err := problem.ParseSetSizes(intersections)
			if err != nil {
				return reportInputError(rootOpts, cmd, fmt.Errorf("invalid intersections: %w", err))
			}
			return runProblems(rootOpts, cmd, []problem.Problem{{Kind: problem.Union, Sets: sizes, Intersections: raw}})
		},
	}

	cmd.Flags().StringVar(&sets, "sets", "", `set sizes as JSON, e.g. '{"A":20,"B":25}'`)
	cmd.Flags().StringVar(&intersections, "intersections", "", `intersection sizes as JSON keyed by comma-separated labels, e.g. '{"A,B":8}'`)
	_ = cmd.MarkFlagRequired("sets")
	return cmd
}

// NewGroupsCommand creates the groups command and its quota subcommands.
func NewGroupsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Selections from groups under per-group quotas",
		Long: `Counts the ways to select items from groups of the given sizes when each group has
a minimum, an exact or a maximum quota. Quotas pair positionally with --groups.`,
	}

	cmd.AddCommand(newQuotaCommand(rootOpts, problem.Minimums, "min", "at least quota[i] items from group i", true))
	cmd.AddCommand(newQuotaCommand(rootOpts, problem.Exacts, "exact", "exactly quota[i] items from group i", false))
	cmd.AddCommand(newQuotaCommand(rootOpts, problem.Maximums, "max", "at most quota[i] items from group i", true))
	return cmd
}

func newQuotaCommand(rootOpts *RootOptions, kind problem.Kind, use, meaning string, usesR bool) *cobra.Command {
	var (
		groups string
		quota  string
		r      uint64
	)

	cmd := &cobra.Command{
		Use:     use,
		Aliases: []string{string(kind)},
		Short:   "Choose " + meaning,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := problem.ParseIntList(groups)
			if err != nil {
				return reportInputError(rootOpts, cmd, fmt.Errorf("invalid groups: %w", err))
			}
			values, err := problem.ParseIntList(quota)
			if err != nil {
				return reportInputError(rootOpts, cmd, fmt.Errorf("invalid quota: %w", err))
			}
			if sizes == nil {
				sizes = []uint64{}
			}

			current := problem.Problem{Kind: kind, Groups: sizes, R: r}
			switch kind {
			case problem.Minimums:
				current.Minimums = values
			case problem.Exacts:
				current.Exacts = values
			case problem.Maximums:
				current.Maximums = values
			}
			return runProblems(rootOpts, cmd, []problem.Problem{current})
		},
	}

	cmd.Flags().StringVar(&groups, "groups", "", `group sizes, e.g. "6,5,4"`)
	if usesR {
		cmd.Flags().StringVar(&quota, "quota", "", "per-group quota; empty means no constraint")
		cmd.Flags().Uint64Var(&r, "r", 0, "total number of items to select")
		_ = cmd.MarkFlagRequired("r")
	} else {
		cmd.Flags().StringVar(&quota, "quota", "", "per-group exact counts")
		_ = cmd.MarkFlagRequired("quota")
	}
	_ = cmd.MarkFlagRequired("groups")
	return cmd
}

// NewForbiddenCommand creates the forbidden command.
func NewForbiddenCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		n, r  uint64
		pairs string
	)

	cmd := &cobra.Command{
		Use:   "forbidden",
		Short: "Arrangements of r of the items 0..n-1 avoiding forbidden adjacencies",
		Long: `Counts sequences of r distinct items from 0..n-1 where no forbidden pair appears
consecutively. Pairs are directional: "1-2" forbids 2 right after 1 but still allows
1 right after 2; list "2-1" as well to block both orders.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			forbidden, err := problem.ParsePairs(pairs)
			if err != nil {
				return reportInputError(rootOpts, cmd, err)
			}
			return runProblems(rootOpts, cmd, []problem.Problem{{Kind: problem.Forbidden, N: n, R: r, Forbidden: forbidden}})
		},
	}

	cmd.Flags().Uint64Var(&n, "n", 0, "number of items")
	cmd.Flags().Uint64Var(&r, "r", 0, "arrangement length")
	cmd.Flags().StringVar(&pairs, "pairs", "", `forbidden pairs, e.g. "1-2,2-3"`)
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("r")
	return cmd
}

// NewScheduleCommand creates the schedule command.
func NewScheduleCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		people     string
		slots      int
		maxPerSlot uint64
		fixed      string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Assignments of people to capacity-bounded slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			placements, err := problem.ParsePlacements(fixed)
			if err != nil {
				return reportInputError(rootOpts, cmd, err)
			}
			return runProblems(rootOpts, cmd, []problem.Problem{{
				Kind:       problem.Schedule,
				People:     problem.ParseNames(people),
				Slots:      slots,
				MaxPerSlot: maxPerSlot,
				Fixed:      placements,
			}})
		},
	}

	cmd.Flags().StringVar(&people, "people", "", `people, e.g. "A,B,C,D,E"`)
	cmd.Flags().IntVar(&slots, "slots", 1, "number of slots")
	cmd.Flags().Uint64Var(&maxPerSlot, "max", 1, "maximum people per slot")
	cmd.Flags().StringVar(&fixed, "fixed", "", `fixed placements, e.g. "A:0,C:1"`)
	_ = cmd.MarkFlagRequired("people")
	return cmd
}

// NewCompositionsCommand creates the compositions command.
func NewCompositionsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		total  uint64
		bounds string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "compositions",
		Short: "Ways to split a total into bounded parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caps, err := problem.ParseIntList(bounds)
			if err != nil {
				return reportInputError(rootOpts, cmd, fmt.Errorf("invalid bounds: %w", err))
			}
			if list {
				if rootOpts.Format != "text" {
					return reportInputError(rootOpts, cmd, errors.New("--list is only available with text output"))
				}
				return listCompositions(cmd, total, caps)
			}
			return runProblems(rootOpts, cmd, []problem.Problem{{Kind: problem.Compositions, Total: total, Bounds: caps}})
		},
	}

	cmd.Flags().Uint64Var(&total, "total", 0, "total to split")
	cmd.Flags().StringVar(&bounds, "bounds", "", `upper bound of each part, e.g. "2,1,2"`)
	cmd.Flags().BoolVar(&list, "list", false, "print every composition instead of the count")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve every problem in a JSON or YAML problem file",
		Long: `Solves a problem file. The file holds either one problem or a "problems" list;
each problem has a "kind" (one of ` + fmt.Sprint(problem.Kinds()) + `) and the fields
that kind needs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := problem.LoadFile(args[0])
			if err != nil {
				return reportInputError(rootOpts, cmd, err)
			}
			rootOpts.logger.Debug("loaded problem file", "file", args[0], "problems", len(problems))
			return runProblems(rootOpts, cmd, problems)
		},
	}
}
