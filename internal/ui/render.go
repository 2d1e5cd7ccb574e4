package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"xbench/internal/benchmark"
)

// header styles each column label separately; lipgloss rewrites tab
// characters, so tabs must stay outside of Render calls.
func header(cols ...string) string {
	styled := make([]string, len(cols))
	for i, c := range cols {
		styled[i] = headerStyle.Render(c)
	}
	return strings.Join(styled, "\t")
}

// RenderRun writes one table row per sample of a run.
func RenderRun(out io.Writer, run *benchmark.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, header("PARSER", "ELAPSED NS", "STATUS"))
	for _, s := range run.Samples {
		status := okStyle.Render("OK")
		if !s.OK {
			status = failStyle.Render("FAIL") + " " + s.Diagnostic
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", s.Parser, s.ElapsedNs, status)
	}
	w.Flush()
}

// RenderComparison writes a comparison table between the current run and a
// previous one. Samples without a previous counterpart are marked NEW.
func RenderComparison(out io.Writer, prev, curr *benchmark.Run, threshold float64) {
	prevParsers := make(map[string]bool)
	for _, s := range prev.Samples {
		prevParsers[s.Parser] = true
	}
	comps := make(map[string]benchmark.Comparison)
	for _, c := range benchmark.Compare(prev, curr) {
		comps[c.Parser] = c
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, header("PARSER", "ELAPSED NS", "DIFF %", "STATUS"))

	for _, s := range curr.Samples {
		if !prevParsers[s.Parser] {
			fmt.Fprintf(w, "%s\t%d\t-\t%s\n", s.Parser, s.ElapsedNs, newStyle.Render("NEW"))
			continue
		}
		c := comps[s.Parser]
		status := okStyle.Render("PASS")
		if c.Regression(threshold) {
			status = regressStyle.Render("REGRESS")
		} else if c.ElapsedDiff < -threshold {
			status = improveStyle.Render("IMPROVE")
		}
		fmt.Fprintf(w, "%s\t%d\t%+.2f%%\t%s\n", s.Parser, s.ElapsedNs, c.ElapsedDiff, status)
	}
	w.Flush()
}

// RenderHistory writes one table row per stored run, newest first.
func RenderHistory(out io.Writer, runs []benchmark.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, header("ID", "TIME", "LABEL", "INPUT", "BYTES", "SAMPLES"))
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Label, r.Input, r.InputBytes, len(r.Samples))
	}
	w.Flush()
}
