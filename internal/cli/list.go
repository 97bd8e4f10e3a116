package cli

import (
	"fmt"

	"github.com/limaJavier/counting/pkg/counting"
	"github.com/spf13/cobra"
)

func listCompositions(cmd *cobra.Command, total uint64, bounds []uint64) error {
	for composition := range counting.CompositionsWithBounds(total, bounds) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), composition); err != nil {
			return err
		}
	}
	return nil
}
