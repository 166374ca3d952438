// Package teaui runs the interactive list as a Bubble Tea program.
package teaui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"tableflip.dev/itemlist/pkg/items"
)

// Run launches the UI on the alternate screen and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, store *items.Store, log *zap.Logger) error {
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNoTerminal
	}
	m, err := New(ctx, store, log)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
