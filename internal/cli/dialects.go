package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/tracecmp/internal/trace"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "Show the built-in trace line layouts",
		Long: `Show the column layout of each built-in trace dialect.

Spans are character positions, end-exclusive. The cycle counter is not
positional: it runs from the marker to the end of the line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDialects(rootOpts, cmd)
		},
	}
}

func runDialects(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, err := trace.Builtin()
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeDialect, "failed to load dialects", err)
	}

	w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	for i, name := range reg.Names() {
		d, err := reg.Lookup(name)
		if err != nil {
			return fail(formatter, ExitCommandError, ErrCodeDialect, "failed to load dialects", err)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Description)
		for _, s := range d.Spans {
			fmt.Fprintf(w, "  %s\t[%d,%d)\n", s.Field, s.Start, s.End)
		}
		fmt.Fprintf(w, "  %s\tfrom %q to end of line\n", trace.FieldCyc, d.Marker)
		formatter.VerboseLog("%s: minimum line length %d", d.Name, d.MinLength())
	}
	return w.Flush()
}
