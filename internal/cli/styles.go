package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"config-generator/internal/gen"
)

// Styles holds the lipgloss styles of status lines.
type Styles struct {
	Title     lipgloss.Style
	Wrote     lipgloss.Style
	Unchanged lipgloss.Style
	DryRun    lipgloss.Style
	Failed    lipgloss.Style
	Warning   lipgloss.Style
}

// NewStyles returns styles for w. Colours are dropped when w is not a terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Title:     r.NewStyle().Foreground(lipgloss.Color("#89B4FA")).Bold(true),
		Wrote:     r.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
		Unchanged: r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		DryRun:    r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")).Bold(true),
		Failed:    r.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true),
		Warning:   r.NewStyle().Foreground(lipgloss.Color("#FAB387")),
	}
}

// Line renders the status line of one result. Failures show the error
// diagnostics of the file; other lines note how many warnings it produced.
func (s Styles) Line(res gen.Result) string {
	if res.Diagnostics.HasErrors() {
		return s.Failed.Render("Failed") + " " + res.Diagnostics.Error().Error()
	}

	var line string

	switch res.Status {
	case gen.StatusWrote:
		line = s.Wrote.Render("Wrote") + " " + res.Output
	case gen.StatusUnchanged:
		line = s.Unchanged.Render("Ignoring") + " " + res.Output + " as it has not changed"
	case gen.StatusDryRun:
		line = s.DryRun.Render("Would write") + " " + res.Output
	default:
		line = s.Failed.Render("Failed") + " " + res.Path
	}

	if res.Diagnostics.HasWarnings() {
		line += " " + s.Warning.Render(fmt.Sprintf("(%d warnings)", len(res.Diagnostics.Warnings)))
	}

	return line
}

func (s Styles) report(w io.Writer, results []gen.Result) {
	for _, res := range results {
		fmt.Fprintln(w, s.Line(res))
	}
}
