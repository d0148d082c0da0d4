package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/vlanadm/vlanadm/internal/config"
	"github.com/vlanadm/vlanadm/internal/provision"
)

// reportColors, shared palette for run reports.
var (
	reportColorGreen = lipgloss.Color("#22c55e")
	reportColorRed   = lipgloss.Color("#ef4444")
	reportColorBlue  = lipgloss.Color("#3b82f6")
	reportColorDim   = lipgloss.Color("#6b7280")
	reportColorWhite = lipgloss.Color("#f9fafb")
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorWhite)

	reportSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorBlue)

	reportDimStyle = lipgloss.NewStyle().
			Foreground(reportColorDim)

	reportGreenStyle = lipgloss.NewStyle().
				Foreground(reportColorGreen)

	reportRedStyle = lipgloss.NewStyle().
			Foreground(reportColorRed)

	reportBlueStyle = lipgloss.NewStyle().
			Foreground(reportColorBlue)
)

// stdoutIsTerminal is a variable so tests can force plain output.
var stdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderReport produces the run report for a completed job. Styling is
// applied only when stdout is a terminal; piped output stays plain.
func renderReport(job *config.Job, outcomes []provision.Outcome, remaining int) string {
	styled := stdoutIsTerminal()
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder

	title := fmt.Sprintf("  vlanadm %s: %s%d-%s%d", job.Mode,
		job.Network.Prefix, job.Range.Start, job.Network.Prefix, job.Range.End)
	b.WriteString("\n")
	b.WriteString(render(reportTitleStyle, title))
	b.WriteString("\n")
	b.WriteString(render(reportDimStyle, "  "+strings.Repeat("═", 40)))
	b.WriteString("\n\n")

	for _, o := range outcomes {
		renderOutcome(&b, job, o, render)
	}

	if remaining > 0 {
		b.WriteString(render(reportDimStyle, fmt.Sprintf("  ... and %d more attachments not shown", remaining)))
		b.WriteString("\n")
	}

	renderSummary(&b, outcomes, remaining, render)
	return b.String()
}

// renderOutcome writes one per-id line, plus the rendered manifest for
// previewed creates and the error detail for failures.
func renderOutcome(b *strings.Builder, job *config.Job, o provision.Outcome, render func(lipgloss.Style, string) string) {
	line := fmt.Sprintf("  %-28s %s", job.Network.Namespace+"/"+o.Name, o.Status)

	switch o.Status {
	case provision.StatusCreated, provision.StatusDeleted:
		b.WriteString(render(reportGreenStyle, line))
	case provision.StatusAlreadyAbsent:
		b.WriteString(render(reportDimStyle, line))
	case provision.StatusFailed:
		b.WriteString(render(reportRedStyle, line))
	case provision.StatusPlanned:
		b.WriteString(render(reportBlueStyle, line))
	default:
		b.WriteString(line)
	}
	b.WriteString("\n")

	switch {
	case o.Status == provision.StatusFailed:
		b.WriteString(render(reportRedStyle, "    "+o.Detail))
		b.WriteString("\n")
	case o.Status == provision.StatusPlanned && job.Mode.IsCreate():
		b.WriteString(render(reportDimStyle, indent(o.Detail, "    ")))
		b.WriteString("\n")
	}
}

// renderSummary writes the aggregate block.
func renderSummary(b *strings.Builder, outcomes []provision.Outcome, remaining int, render func(lipgloss.Style, string) string) {
	s := provision.Summarize(outcomes)

	b.WriteString("\n")
	b.WriteString(render(reportSectionStyle, "  Summary"))
	b.WriteString("\n")
	b.WriteString(render(reportDimStyle, "  "+strings.Repeat("─", 35)))
	b.WriteString("\n")

	if s.Planned > 0 {
		fmt.Fprintf(b, "    Planned:        %d\n", s.Planned+remaining)
	}
	if s.Created > 0 {
		fmt.Fprintf(b, "    Created:        %d\n", s.Created)
	}
	if s.Deleted > 0 {
		fmt.Fprintf(b, "    Deleted:        %d\n", s.Deleted)
	}
	if s.AlreadyAbsent > 0 {
		fmt.Fprintf(b, "    Already absent: %d\n", s.AlreadyAbsent)
	}
	if s.Failed > 0 {
		b.WriteString(render(reportRedStyle, fmt.Sprintf("    Failed:         %d", s.Failed)))
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "    Total:          %d\n", s.Total+remaining)
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
