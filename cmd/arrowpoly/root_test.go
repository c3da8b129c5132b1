package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrowpoly/render"
)

func execute(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestRoot_Session(t *testing.T) {
	input := "O1+U\nO1-O2-U1-U2-\nO1+U1+\nquit\nO1+U1+\n"
	out, _, err := execute(t, input)
	require.NoError(t, err)
	assert.Equal(t, "A⁴ − A¹⁰ K₁ + A⁶ K₁\n1\nExiting...\n", out)
}

func TestRoot_Plain(t *testing.T) {
	out, _, err := execute(t, "O1+U2+O3+U1+O2+U3+\nquit\n", "--plain", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "A^-4 + A^-12 - A^-16\nExiting...\n", out)
}

func TestRoot_EndOfInput(t *testing.T) {
	out, _, err := execute(t, "O1-U1-\r\n", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestRoot_NoPromptWhenPiped(t *testing.T) {
	out, _, err := execute(t, "quit\n")
	require.NoError(t, err)
	assert.NotContains(t, out, promptText)
}

func TestRoot_VerboseLogsRejections(t *testing.T) {
	out, errOut, err := execute(t, "O1+O1+\nO1+U1+\nquit\n", "--verbose", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "1\nExiting...\n", out)
	assert.Contains(t, errOut, "rejected input")
	assert.Contains(t, errOut, "expanded diagram")
}

func TestRoot_LongLineRejected(t *testing.T) {
	input := strings.Repeat("O1+", 40000) + "\nO1+U1+\nquit\n"
	out, errOut, err := execute(t, input, "--verbose", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "1\nExiting...\n", out)
	assert.Contains(t, errOut, "input line too long")
}

func TestRoot_LongLastLine(t *testing.T) {
	out, _, err := execute(t, strings.Repeat("U", 100000), "--plain")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoot_QuietByDefault(t *testing.T) {
	_, errOut, err := execute(t, "O1+O1+\nO1+U1+\nquit\n")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestRoot_TooManyCrossingsWarns(t *testing.T) {
	out, errOut, err := execute(t, "O1+U2+O3+U1+O2+U3+\nquit\n", "--max-crossings", "2")
	require.NoError(t, err)
	assert.Equal(t, "Exiting...\n", out)
	assert.Contains(t, errOut, "cannot compute arrow polynomial")
}

func TestRoot_FlagErrors(t *testing.T) {
	_, _, err := execute(t, "", "--workers", "0")
	assert.ErrorContains(t, err, "--workers")

	_, _, err = execute(t, "", "--max-crossings=-1")
	assert.ErrorContains(t, err, "--max-crossings")

	_, _, err = execute(t, "", "O1+U1+")
	assert.Error(t, err)
}

func TestSession_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	s := &session{
		in:       strings.NewReader("O1+U2+O3+U1+O2+U3+\n"),
		out:      &out,
		renderer: render.NewRenderer(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	err := s.run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
