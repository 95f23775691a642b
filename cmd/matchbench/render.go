// render.go renders reports for the terminal. Rendering lives in the CLI,
// not the evaluation engine: the engine produces the report record, the
// reporter decides how it looks.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/haasonsaas/matchbench/internal/dataset"
	"github.com/haasonsaas/matchbench/internal/eval"
)

func renderReport(w io.Writer, report *eval.Report, verbose bool) {
	fmt.Fprintf(w, "Run %s: suite %q, dataset %q, candidate %q\n\n",
		report.RunID, report.Suite, report.Dataset, report.Candidate)

	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetStyle(table.StyleLight)
	summary.AppendHeader(table.Row{"Metric", "Value"})
	summary.AppendRows([]table.Row{
		{"Cases", fmt.Sprintf("%d (%d passed)", report.Summary.Cases, report.Summary.PassCases)},
		{"Recall", fmt.Sprintf("%.2f%%", report.Summary.Recall)},
		{"Precision", fmt.Sprintf("%.2f%%", report.Summary.Precision)},
		{"F1", fmt.Sprintf("%.2f", report.Summary.F1)},
		{"Penalty points", fmt.Sprintf("%.2f", report.Summary.PenaltyPoints)},
		{"Score", renderScore(report.Summary)},
		{"Avg latency", fmt.Sprintf("%.2f ms", report.Timing.AvgMs)},
		{"p95 latency", fmt.Sprintf("%.2f ms", report.Timing.P95Ms)},
		{"Throughput", fmt.Sprintf("%.1f qps", report.Timing.QPS)},
	})
	summary.Render()

	if report.Summary.InvalidIDs > 0 {
		fmt.Fprintln(w, text.FgRed.Sprintf(
			"score zeroed: candidate returned %d id(s) that do not exist in the dataset",
			report.Summary.InvalidIDs))
	}

	if !verbose {
		return
	}

	fmt.Fprintln(w)
	cases := table.NewWriter()
	cases.SetOutputMirror(w)
	cases.SetStyle(table.StyleLight)
	cases.AppendHeader(table.Row{"Case", "Result", "Hits", "Missing", "Decoys", "Invalid", "Extras", "Elapsed"})
	for _, c := range report.Cases {
		cases.AppendRow(table.Row{
			c.CaseID,
			renderCaseResult(c),
			strings.Join(c.Classification.Hits, ","),
			strings.Join(c.Classification.Missing, ","),
			strings.Join(c.Classification.FalsePositiveHits, ","),
			strings.Join(c.Classification.InvalidIDs, ","),
			strings.Join(c.Classification.ExtrasUnscored, ","),
			fmt.Sprintf("%.1f ms", c.ElapsedMs),
		})
	}
	cases.Render()
}

func renderScore(s eval.Summary) string {
	score := fmt.Sprintf("%.2f / 100", s.Score)
	if s.InvalidIDs > 0 {
		return text.FgRed.Sprint(score)
	}
	if s.Score >= 90 {
		return text.FgGreen.Sprint(score)
	}
	return score
}

func renderCaseResult(c eval.CaseReport) string {
	switch {
	case c.Passed:
		return text.FgGreen.Sprint("pass")
	case c.RuntimeError != "":
		return text.FgRed.Sprintf("%s: %s", c.Status, c.RuntimeError)
	default:
		return text.FgRed.Sprint("fail")
	}
}

func renderDatasetInfo(w io.Writer, index *dataset.Index) {
	fmt.Fprintf(w, "dataset %q: %d records (%s)\n", index.Name(), index.Len(), index.Path())
	records := index.Records()
	if len(records) > 5 {
		records = records[:5]
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name"})
	for _, r := range records {
		t.AppendRow(table.Row{r.ID, r.Name})
	}
	t.Render()
}
