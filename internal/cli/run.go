package cli

import (
	"errors"
	"time"

	"github.com/limaJavier/counting/internal/problem"
	"github.com/limaJavier/counting/internal/render"
	"github.com/spf13/cobra"
)

func (opts *RootOptions) formatter(cmd *cobra.Command) *render.Formatter {
	return &render.Formatter{
		Format:   opts.Format,
		Grouping: opts.grouping,
		Writer:   cmd.OutOrStdout(),
	}
}

// runProblems solves every problem and writes the results, or the first failure.
func runProblems(opts *RootOptions, cmd *cobra.Command, problems []problem.Problem) error {
	formatter := opts.formatter(cmd)

	results := make([]problem.Result, 0, len(problems))
	for _, current := range problems {
		start := time.Now()
		result, err := problem.Solve(current)
		if err != nil {
			opts.logger.Error("counting failed", "kind", current.Kind, "name", current.Name, "error", err)
			return reportError(formatter, err)
		}
		opts.logger.Debug("counted", "kind", current.Kind, "name", current.Name, "elapsed", time.Since(start))
		results = append(results, result)
	}

	return formatter.Results(results)
}

// reportError writes err in the configured format and wraps it with the matching exit code.
// Shape problems in the input exit with ExitCommandError; problems the counter rejects exit
// with ExitFailure.
func reportError(formatter *render.Formatter, err error) error {
	code, exitCode := ErrCodeCounting, ExitFailure
	if errors.Is(err, problem.ErrInvalidProblem) || errors.Is(err, problem.ErrUnknownKind) {
		code, exitCode = ErrCodeInput, ExitCommandError
	}

	if outputErr := formatter.Error(code, err.Error()); outputErr != nil {
		return outputErr
	}
	return WrapExitError(exitCode, "counting failed", err)
}

// reportInputError reports flag values that could not be parsed.
func reportInputError(opts *RootOptions, cmd *cobra.Command, err error) error {
	if outputErr := opts.formatter(cmd).Error(ErrCodeInput, err.Error()); outputErr != nil {
		return outputErr
	}
	return WrapExitError(ExitCommandError, "invalid input", err)
}
