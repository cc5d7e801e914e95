package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is reported by "crucible version". Release builds set it with
// -ldflags "-X github.com/katalvlaran/runpath/internal/cli.Version=...".
var Version = "dev"

// NewRootCommand returns the crucible command tree writing all output,
// logs included, to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "crucible",
		Short: "Cheapest routes on digit grids under a run-length rule",
		Long: `crucible finds the minimum-cost route across a grid of digit costs when
every move is a straight run of a bounded number of cells followed by a
90 degree turn. Reversing is never allowed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(newSolveCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the crucible version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "crucible %s\n", Version)
		},
	}
}
