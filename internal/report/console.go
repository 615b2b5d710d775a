// Package report renders benchmark progress and results.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cwbudde/rasterbench/internal/bench"
	"github.com/cwbudde/rasterbench/internal/raster"
)

const ruleWidth = 80

var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorMuted   = lipgloss.Color("#5C7A84")
	colorGood    = lipgloss.Color("#2ECC71")
	colorBaseRow = lipgloss.Color("#F4D03F")
)

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	header lipgloss.Style
	base   lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorTitle),
		muted:  r.NewStyle().Foreground(colorMuted),
		good:   r.NewStyle().Foreground(colorGood),
		header: r.NewStyle().Bold(true),
		base:   r.NewStyle().Foreground(colorBaseRow),
	}
}

// Console prints per-trial progress and a final summary as plain text.
type Console struct {
	w      io.Writer
	st     styles
	trials bool
}

// NewConsole returns a Console writing to w. color enables ANSI styling;
// trials enables one line per trial.
func NewConsole(w io.Writer, color, trials bool) *Console {
	return &Console{w: w, st: newStyles(w, color), trials: trials}
}

func (c *Console) rule() {
	fmt.Fprintln(c.w, c.st.muted.Render(strings.Repeat("=", ruleWidth)))
}

// TrialDone prints the strategy header on the first trial, then the sample.
func (c *Console) TrialDone(name raster.Name, trial int, elapsed time.Duration) {
	if trial == 1 {
		c.rule()
		fmt.Fprintln(c.w, c.st.title.Render("Profiling strategy: "+string(name)))
	}
	if c.trials {
		fmt.Fprintf(c.w, "Trial %d: %d ns\n", trial, elapsed.Nanoseconds())
	}
}

// StrategyDone prints the min/average/max block.
func (c *Console) StrategyDone(r bench.Result) {
	fmt.Fprintf(c.w, "Minimum execution time: %d ns\n", r.Min.Nanoseconds())
	fmt.Fprintf(c.w, "Average execution time: %d ns\n", r.Mean.Nanoseconds())
	fmt.Fprintf(c.w, "Maximum execution time: %d ns\n", r.Max.Nanoseconds())
	c.rule()
}

// Summary prints the speedup of every strategy over the baseline followed
// by a table of all statistics.
func (c *Console) Summary(rep *bench.Report) {
	c.rule()
	for _, r := range rep.Results {
		if r.Strategy == rep.Baseline {
			continue
		}
		line := fmt.Sprintf("%s measured speedup over %s: %.1f%%", r.Strategy, rep.Baseline, r.Speedup)
		if r.Speedup > 100 {
			line = c.st.good.Render(line)
		}
		fmt.Fprintln(c.w, line)
	}
	c.rule()

	var buf bytes.Buffer
	WriteTable(&buf, rep)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			line = c.st.header.Render(line)
		case i-1 < len(rep.Results) && rep.Results[i-1].Strategy == rep.Baseline:
			line = c.st.base.Render(line)
		}
		fmt.Fprintln(c.w, line)
	}
}

// WriteTable writes one row per result: name, min, mean, max, speedup and
// coverage.
func WriteTable(w io.Writer, rep *bench.Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tMIN\tMEAN\tMAX\tSPEEDUP\tCOVERED")
	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f%%\t%d/%d\n",
			r.Strategy,
			r.Min,
			r.Mean,
			r.Max,
			r.Speedup,
			r.Covered,
			rep.Config.Pixels(),
		)
	}
	tw.Flush()
}
