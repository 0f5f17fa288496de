// Package controller provides output adapters for displaying detection results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "wpprep.dev/pkg/wpprep/internal/model"
)

// SummaryTitle heads the advisory block.
const SummaryTitle = "=== Project Detection Summary ==="

// UI defines how detection results are presented.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	DisplayState(ctx context.Context, state m.State, format m.Format) error
	DisplayAdvice(ctx context.Context, root m.Path, advice []m.Advice) error
	DisplayCatalog(ctx context.Context, entries []m.CatalogEntry) error
}

// NewUI returns a styled UI for terminals and a plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
