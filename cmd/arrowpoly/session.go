package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/arrowpoly"
	"github.com/katalvlaran/arrowpoly/gauss"
	"github.com/katalvlaran/arrowpoly/pd"
	"github.com/katalvlaran/arrowpoly/render"
)

const (
	promptText = `Please enter a valid Gauss code (or "quit"):`
	promptMark = "> "
	quitWord   = "quit"
	exitText   = "Exiting..."

	// maxLineBytes bounds one input line; longer lines are rejected.
	maxLineBytes = 64 * 1024
)

var errLineTooLong = errors.New("input line too long")

// session is one read-compute-print loop.
type session struct {
	in       io.Reader
	out      io.Writer
	prompt   bool
	renderer *render.Renderer
	logger   *slog.Logger
	opts     []pd.Option
}

// run loops until "quit", end of input, or cancellation of ctx.
func (s *session) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := append(append([]pd.Option(nil), s.opts...), pd.WithContext(ctx))

	rd := bufio.NewReaderSize(s.in, maxLineBytes)
	for {
		// 1. Prompt
		if s.prompt {
			fmt.Fprintln(s.out, promptText)
			fmt.Fprint(s.out, s.renderer.Hint(promptMark))
		}

		// 2. Read one line
		text, err := readLine(rd)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errLineTooLong):
			s.logger.Debug("rejected input", "err", err)

			continue
		case err != nil:
			return err
		}
		if text == quitWord {
			fmt.Fprintln(s.out, exitText)

			return nil
		}

		// 3. Compute; rejected input is logged and skipped
		p, err := arrowpoly.Compute(text, opts...)
		switch {
		case err == nil:
			fmt.Fprintln(s.out, s.renderer.Render(p))
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case errors.Is(err, gauss.ErrFormat), errors.Is(err, gauss.ErrInvalidCode):
			s.logger.Debug("rejected input", "input", text, "err", err)
		default:
			s.logger.Warn("cannot compute arrow polynomial", "input", text, "err", err)
		}
	}
}

// readLine returns the next line without its terminator. A line that does
// not fit the reader's buffer is drained and reported as errLineTooLong.
func readLine(rd *bufio.Reader) (string, error) {
	b, isPrefix, err := rd.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		return strings.TrimSuffix(string(b), "\r"), nil
	}
	n := len(b)
	for isPrefix {
		b, isPrefix, err = rd.ReadLine()
		n += len(b)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("%d bytes: %w", n, errLineTooLong)
}
