package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	bar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/handiism/podcast-tagger/internal/progress"
)

// Reporter prints progress events as styled lines. Events that carry a
// batch position also get a progress bar.
type Reporter struct {
	out     io.Writer
	verbose bool
	bar     bar.Model
}

// NewReporter creates a Reporter writing to out (stdout when nil). Verbose
// events are dropped unless verbose is set.
func NewReporter(out io.Writer, verbose bool) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	b := bar.New(bar.WithDefaultGradient())
	b.Width = 40
	return &Reporter{out: out, verbose: verbose, bar: b}
}

// Func returns the reporter as a progress callback.
func (r *Reporter) Func() progress.Func {
	return r.Handle
}

// Handle prints one event.
func (r *Reporter) Handle(e progress.Event) {
	if e.Level == progress.LevelVerbose && !r.verbose {
		return
	}

	var style lipgloss.Style
	prefix := "•"
	switch e.Level {
	case progress.LevelError:
		style = errorStyle
		prefix = "✗"
	case progress.LevelWarning:
		style = warningStyle
		prefix = "!"
	case progress.LevelSuccess:
		style = successStyle
		prefix = "✓"
	case progress.LevelInfo:
		style = infoStyle
		prefix = "›"
	default:
		style = dimStyle
	}

	fmt.Fprintln(r.out, style.Render(prefix+" "+e.Message))
	if e.Total > 0 {
		percent := float64(e.Done) / float64(e.Total)
		fmt.Fprintf(r.out, "  %s %s\n", r.bar.ViewAs(percent), dimStyle.Render(fmt.Sprintf("%d/%d", e.Done, e.Total)))
	}
}

// Title prints a heading.
func (r *Reporter) Title(title string) {
	fmt.Fprintln(r.out, titleStyle.Render(title))
	fmt.Fprintln(r.out)
}

// List prints items numbered from zero, the way ParseSelection expects.
func (r *Reporter) List(heading string, items []string) {
	fmt.Fprintln(r.out, infoStyle.Render(heading))
	for i, item := range items {
		fmt.Fprintln(r.out, podcastStyle.Render(fmt.Sprintf("  [%d] %s", i, item)))
	}
}

// Summary prints the totals of a run in a box.
func (r *Reporter) Summary(heading string, lines ...string) {
	var b strings.Builder
	b.WriteString(heading)
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, boxStyle.Render(b.String()))
}

// Bytes formats a byte count for humans.
func Bytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
