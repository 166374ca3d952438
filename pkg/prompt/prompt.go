// Package prompt implements blocking warnings and yes/no confirmation on a
// terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned by Confirm when no answer can be read from a
// terminal and confirmation was not pre-approved.
var ErrNotInteractive = errors.New("prompt: stdin is not a terminal; pass --yes to confirm")

// Terminal prompts on a reader/writer pair.
type Terminal struct {
	In          io.Reader
	Out         io.Writer
	AssumeYes   bool
	Interactive bool
}

// NewTerminal prompts on stdin/stderr.
func NewTerminal(assumeYes bool) *Terminal {
	return NewTerminalOn(os.Stdin, os.Stderr, assumeYes)
}

// NewTerminalOn prompts on in/out. Only a reader backed by a terminal file
// descriptor counts as interactive.
func NewTerminalOn(in io.Reader, out io.Writer, assumeYes bool) *Terminal {
	return &Terminal{
		In:          in,
		Out:         out,
		AssumeYes:   assumeYes,
		Interactive: isTerminal(in),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Alert prints msg as a warning.
func (t *Terminal) Alert(_ context.Context, msg string) {
	warn := color.New(color.FgYellow, color.Bold)
	_, _ = warn.Fprintln(t.Out, "! "+msg)
}

// Confirm asks msg and waits for an answer. Anything but y/yes declines.
func (t *Terminal) Confirm(ctx context.Context, msg string) (bool, error) {
	if t.AssumeYes {
		return true, nil
	}
	if !t.Interactive {
		return false, ErrNotInteractive
	}

	q := color.New(color.Bold)
	_, _ = q.Fprint(t.Out, msg)
	_, _ = fmt.Fprint(t.Out, " [y/N] ")

	answer := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		line, err := bufio.NewReader(t.In).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			errs <- err
			return
		}
		answer <- line
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errs:
		return false, err
	case line := <-answer:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
