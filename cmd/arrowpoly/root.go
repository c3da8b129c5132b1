package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/arrowpoly/pd"
	"github.com/katalvlaran/arrowpoly/render"
)

type rootFlags struct {
	workers      int
	maxCrossings int
	plain        bool
	verbose      bool
}

// newRootCmd creates the arrowpoly command. Input, output and error streams
// come from cobra (SetIn/SetOut/SetErr), so tests can drive it in memory.
func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "arrowpoly",
		Short: "arrowpoly computes arrow polynomials of virtual knots from Gauss codes.",
		Long: `arrowpoly reads signed Gauss codes, one per line, and prints the arrow
polynomial of each knot.

A Gauss code lists the crossings met while travelling along the knot:

	O1-O2-U1-U2-

Each triple is O (over) or U (under), a one-character label and the crossing
sign + or -. Every label appears once over and once under with the same sign.
Lines that are not valid codes are ignored. Type "quit" to exit.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, f)
		},
	}

	f.bind(cmd.Flags())

	return cmd
}

func (f *rootFlags) bind(fl *pflag.FlagSet) {
	fl.IntVarP(&f.workers, "workers", "w", 1, "goroutines used to reduce states")
	fl.IntVar(&f.maxCrossings, "max-crossings", pd.DefaultMaxCrossings, "reject diagrams with more crossings")
	fl.BoolVar(&f.plain, "plain", false, "ASCII output without colour")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")
}

func runRoot(cmd *cobra.Command, f rootFlags) error {
	if f.workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", f.workers)
	}
	if f.maxCrossings < 0 {
		return fmt.Errorf("--max-crossings must not be negative, got %d", f.maxCrossings)
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	s := &session{
		in:       in,
		out:      out,
		prompt:   isTerminal(in),
		renderer: render.NewRenderer(render.WithUnicode(!f.plain), render.WithColor(!f.plain && isTerminal(out))),
		logger:   logger,
		opts: []pd.Option{
			pd.WithWorkers(f.workers),
			pd.WithMaxCrossings(f.maxCrossings),
			pd.WithLogger(logger),
		},
	}

	return s.run(cmd.Context())
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
