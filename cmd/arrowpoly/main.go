// Command arrowpoly reads Gauss codes from standard input and prints their
// arrow polynomials.
//
// Usage:
//
//	arrowpoly [--workers n] [--max-crossings n] [--plain] [--verbose]
//
// Each input line is one Gauss code, e.g. O1-O2-U1-U2-. Invalid lines are
// skipped; "quit" or end of input terminates.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
