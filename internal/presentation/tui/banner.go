package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the medcalc ASCII art banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"                      _           _      ", "#34d399"},
		{"  _ __ ___   ___  __| | ___ __ _| | ___ ", "#2dd4bf"},
		{" | '_ ` _ \\ / _ \\/ _` |/ __/ _` | |/ __|", "#22d3ee"},
		{" | | | | | |  __/ (_| | (_| (_| | | (__ ", "#38bdf8"},
		{" |_| |_| |_|\\___|\\__,_|\\___\\__,_|_|\\___|", "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Verdict colours a pass/fail word for terminal output.
func Verdict(ok bool) string {
	p := termenv.ColorProfile()
	if ok {
		return termenv.String("OK").Foreground(p.Color("#22c55e")).Bold().String()
	}
	return termenv.String("FAIL").Foreground(p.Color("#ef4444")).Bold().String()
}
