package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "wpprep.dev/pkg/wpprep/internal/model"
)

const (
	presentLabel = "present"
	missingLabel = "missing"
)

// SimpleUI implements UI using the cobra command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayState prints the snapshot in the requested format.
func (s *SimpleUI) DisplayState(ctx context.Context, state m.State, format m.Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := renderState(state, format)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

// DisplayAdvice prints the summary block.
func (s *SimpleUI) DisplayAdvice(ctx context.Context, root m.Path, advice []m.Advice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSummary(root, advice, func(a m.Advice) string { return a.String() }, identity))

	return nil
}

// DisplayCatalog prints every catalog check as a table.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, entries []m.CatalogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderCatalogTable(entries))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func identity(text string) string {
	return text
}

func renderState(state m.State, format m.Format) (string, error) {
	switch format {
	case m.FormatJSON, "":
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode state as json: %w", err)
		}

		return string(data) + "\n", nil
	case m.FormatYAML:
		var buf bytes.Buffer

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)

		if err := encoder.Encode(state); err != nil {
			return "", fmt.Errorf("encode state as yaml: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return "", fmt.Errorf("encode state as yaml: %w", err)
		}

		return buf.String(), nil
	case m.FormatTable:
		return renderStateTable(state), nil
	}

	return "", fmt.Errorf("%w %q", m.ErrUnknownFormat, format)
}

func renderStateTable(state m.State) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Check", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	present := 0
	total := 0

	for _, category := range state.Categories() {
		for _, check := range category.Checks {
			status := missingLabel
			if check.OK {
				status = presentLabel
				present++
			}

			table.Append([]string{category.Key, check.Name, status})

			total++
		}
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d checks", total), fmt.Sprintf("%d present", present)})
	table.Render()

	return tableBuffer.String()
}

func renderCatalogTable(entries []m.CatalogEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Check", "Probe", "Target"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, entry := range entries {
		table.Append([]string{entry.Category, entry.Check, entry.Probe, entry.Target})
	}

	table.Render()

	return tableBuffer.String()
}

// renderSummary lays out the advisory block: a blank line, the title, the
// root, a blank line, the advice (gaps become blank lines) and a blank line.
func renderSummary(root m.Path, advice []m.Advice, line func(m.Advice) string, title func(string) string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(title(SummaryTitle))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Root: %s\n\n", root)

	for _, a := range advice {
		if a.Gap {
			b.WriteString("\n")
		}

		b.WriteString(line(a))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	return b.String()
}
