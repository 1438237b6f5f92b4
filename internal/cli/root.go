package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tracecmp/internal/compare"
	"github.com/roach88/tracecmp/internal/trace"
)

const usageLine = "Usage: tracecmp <file1> <file2>"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Fields  []string // fields that decide divergence

	// RunIDs tags each run's log lines. Defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

// NewRootCommand creates the root command for the tracecmp CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{RunIDs: UUIDv7Generator{}})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracecmp <file1> <file2>",
		Short: "Find where two CPU execution traces diverge",
		Long: `Compare two CPU execution trace logs line by line and report the
first line where the decoded instruction differs.

File 1 is read with the reference layout and File 2 with the candidate
(nestest.log) layout. Lines are paired by position and the comparison
stops at the end of the shorter file. On a divergence both decoded states
and both raw lines are printed and the exit status is 1. Matching traces
print nothing and exit 0. Any file or decode error exits 2.

Examples:
  tracecmp mine.log nestest.log
  tracecmp mine.log nestest.log --fields instruction,a,x,y,flag
  tracecmp mine.log nestest.log -v`,
		Args:          exactlyTwoFiles,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], args[1], cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output on stderr")
	cmd.Flags().StringSliceVar(&opts.Fields, "fields", compare.DefaultFields,
		fmt.Sprintf("fields that decide divergence (%s)", strings.Join(trace.AllFields, ",")))

	cmd.AddCommand(NewDialectsCommand(opts))

	return cmd
}

// exactlyTwoFiles prints usage on stdout for a wrong argument count.
func exactlyTwoFiles(cmd *cobra.Command, args []string) error {
	if len(args) == 2 {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), usageLine)
	return &ExitError{
		Code:     ExitCommandError,
		Message:  fmt.Sprintf("expected 2 trace files, got %d", len(args)),
		Reported: true,
	}
}

// Main runs the CLI with args and returns the process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || !exitErr.Reported {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}
	return GetExitCode(err)
}
