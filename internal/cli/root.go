package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/limaJavier/counting/internal/config"
	"github.com/limaJavier/counting/internal/render"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands, merged with the config file.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string
	NoGrouping bool

	grouping bool
	logger   *slog.Logger
}

// NewRootCommand creates the root command of the counting CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "counting",
		Short: "Exact counts for combinatorial problems",
		Long: `Counts permutations, combinations, multiset orderings, unions of overlapping sets,
quota-constrained selections, arrangements avoiding forbidden adjacencies and
capacity-bounded schedules. Every count is exact.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: counting/config.yaml in the user config directory)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVar(&opts.NoGrouping, "no-grouping", false, "print counts without thousands separators")

	// Add subcommands
	cmd.AddCommand(NewPermCommand(opts))
	cmd.AddCommand(NewCombCommand(opts))
	cmd.AddCommand(NewMultisetCommand(opts))
	cmd.AddCommand(NewUnionCommand(opts))
	cmd.AddCommand(NewGroupsCommand(opts))
	cmd.AddCommand(NewForbiddenCommand(opts))
	cmd.AddCommand(NewScheduleCommand(opts))
	cmd.AddCommand(NewCompositionsCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))

	return cmd
}

// resolve layers the config file under the flags that were set explicitly.
func (opts *RootOptions) resolve(cmd *cobra.Command) error {
	var (
		settings config.Config
		err      error
	)
	if opts.ConfigPath != "" {
		settings, err = config.Load(opts.ConfigPath)
	} else {
		settings, err = config.LoadDefault()
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return WrapExitError(ExitCommandError, "cannot load config", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("format") {
		opts.Format = settings.Format
	}
	if !flags.Changed("verbose") {
		opts.Verbose = settings.Verbose
	}
	opts.grouping = settings.Grouping && !opts.NoGrouping

	if !slices.Contains(render.ValidFormats, opts.Format) {
		message := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, render.ValidFormats)
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", message)
		return NewExitError(ExitCommandError, message)
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}
