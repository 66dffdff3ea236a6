// Package linear renders lock reports as plain, line-oriented text.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/ui/style"
)

// Renderer writes check, show and list reports to a writer.
type Renderer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewRenderer creates a Renderer writing to out with the given color profile.
// A nil out writes to stdout.
func NewRenderer(out io.Writer, profile termenv.Profile) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	lipgloss.SetColorProfile(profile)
	return &Renderer{out: out}
}

// Check prints the drift of every checked configuration followed by a summary.
func (r *Renderer) Check(results []domain.CheckResult) {
	var b strings.Builder
	failed := 0

	for _, res := range results {
		b.WriteString(heading(res.Configuration, res.Mode, res.Participates))
		b.WriteByte('\n')

		switch {
		case !res.Participates:
			line(&b, style.Muted, style.Dot, "locking disabled")
			continue
		case res.Report == nil:
			line(&b, style.Muted, style.Dot, "no lock")
			continue
		}

		for _, d := range res.Report.Violations {
			line(&b, style.Failure, style.Cross, d.String())
		}
		for _, d := range res.Report.Accepted {
			line(&b, style.Caution, style.Warning, d.String())
		}
		if res.Failed() {
			failed++
		}
		line(&b, style.Success, style.Check, fmt.Sprintf("%d matched", res.Report.Matched))
	}

	summary := fmt.Sprintf("%d %s checked", len(results), plural(len(results), "configuration"))
	if failed > 0 {
		summary += ", " + style.Failure.Render(fmt.Sprintf("%d failed", failed))
	}
	b.WriteString(summary)
	b.WriteByte('\n')

	r.write(b.String())
}

// Show prints the locked constraints of one configuration.
func (r *Renderer) Show(status domain.ConfigurationStatus) {
	var b strings.Builder

	b.WriteString(heading(status.Name, status.Mode, status.Participates))
	if status.Record != nil {
		b.WriteString(" " + style.Muted.Render(status.Record.Fingerprint()))
	}
	b.WriteByte('\n')

	if !status.Participates {
		line(&b, style.Caution, style.Warning, "locking is disabled for "+status.Name)
	}
	if status.Record == nil {
		line(&b, style.Muted, style.Dot, "no lock")
	} else {
		for _, c := range status.Record.Constraints() {
			b.WriteString("  " + c.String() + "\n")
		}
	}

	r.write(b.String())
}

// List prints one row per configuration.
func (r *Renderer) List(statuses []domain.ConfigurationStatus) {
	width := 0
	for _, s := range statuses {
		width = max(width, len(s.Name))
	}

	var b strings.Builder
	for _, s := range statuses {
		mode := "disabled"
		if s.Participates {
			mode = string(s.Mode)
		}
		row := fmt.Sprintf("%-*s  %-8s  %-7s", width, s.Name, mode, s.State())
		if s.Record != nil {
			row += fmt.Sprintf("  %d %s  %s", s.Record.Len(), plural(s.Record.Len(), "entry"),
				style.Muted.Render(s.Record.Fingerprint()))
		}
		b.WriteString(strings.TrimRight(row, " ") + "\n")
	}
	if len(statuses) == 0 {
		line(&b, style.Muted, style.Dot, "no configurations")
	}

	r.write(b.String())
}

func (r *Renderer) write(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.out, s)
}

func heading(name string, mode domain.LockMode, participates bool) string {
	h := style.Heading.Render(name)
	if participates {
		h += " " + style.Muted.Render("("+string(mode)+")")
	}
	return h
}

func line(b *strings.Builder, s lipgloss.Style, icon, text string) {
	b.WriteString("  " + s.Render(icon) + " " + text + "\n")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
