package controller

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "wpprep.dev/pkg/wpprep/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	installStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	mergeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// StyledUI renders the advisory block with colors; everything else is shared
// with SimpleUI.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayAdvice prints the summary block with one color per marker.
func (s *StyledUI) DisplayAdvice(ctx context.Context, root m.Path, advice []m.Advice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSummary(root, advice, styleAdvice, styleTitle))

	return nil
}

func styleTitle(text string) string {
	return titleStyle.Render(text)
}

func styleAdvice(a m.Advice) string {
	return markerStyle(a.Mark).Render(a.String())
}

func markerStyle(mark m.Marker) lipgloss.Style {
	switch mark {
	case m.MarkWarn:
		return warnStyle
	case m.MarkInstall:
		return installStyle
	case m.MarkMerge:
		return mergeStyle
	default:
		return skipStyle
	}
}
