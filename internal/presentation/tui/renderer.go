package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// When glamour cannot be initialized the markdown is returned unchanged.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// DetailMarkdown renders a calculator detail as a markdown document.
func DetailMarkdown(d domain.Detail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	fmt.Fprintf(&b, "- **Slug:** `%s`\n", d.Slug)
	fmt.Fprintf(&b, "- **ID:** %s\n", d.ID)
	if d.Type != "" {
		fmt.Fprintf(&b, "- **Type:** %s\n", d.Type)
	}
	if d.Question != "" {
		fmt.Fprintf(&b, "\n> %s\n", d.Question)
	}

	b.WriteString("\n## Fields\n\n")
	if len(d.Fields) == 0 {
		b.WriteString("_No input fields._\n")
		return b.String()
	}
	b.WriteString("| Label | Parameter |\n|---|---|\n")
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "| %s | `%s` |\n", escapeCell(f.Label), f.Param)
	}
	return b.String()
}

// SummaryTable renders the catalog as a markdown table.
func SummaryTable(summaries []domain.Summary) string {
	var b strings.Builder
	b.WriteString("| ID | Slug | Name | Type |\n|---|---|---|---|\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n", s.ID, s.Slug, escapeCell(s.Name), s.Type)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// Print writes markdown to w, rendered with glamour when w is a terminal.
func Print(w io.Writer, markdown string) error {
	if IsTerminal(w) {
		if out, err := NewRenderer()(markdown); err == nil {
			markdown = out
		}
	}
	_, err := io.WriteString(w, markdown)
	return err
}
