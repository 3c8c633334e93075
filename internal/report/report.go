// Package report renders scheduler results for humans and spreadsheets.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/sched"
)

var titles = map[string]string{
	"fcfs": "FCFS",
	"sjf":  "SJF (non-preemptive)",
}

// Title returns the display name of an algorithm.
func Title(algorithm string) string {
	if t, ok := titles[algorithm]; ok {
		return t
	}
	return strings.ToUpper(algorithm)
}

// Label is how a segment is named in the Gantt chart.
func Label(s sched.Segment) string {
	if s.Idle() {
		return "Idle"
	}
	return "P" + strconv.Itoa(s.PID)
}

// Write renders the full report of one run.
func Write(w io.Writer, res sched.Result) {
	_, _ = fmt.Fprintf(w, "\n----- %s -----\n", Title(res.Algorithm))
	_, _ = fmt.Fprintln(w, "processing sequence:")
	Sequence(w, res)
	Table(w, res)
	Gantt(w, res.Timeline)
	Summary(w, res)
}

// Sequence prints the completion order, e.g. "P1 -> P3 -> P2".
func Sequence(w io.Writer, res sched.Result) {
	names := make([]string, len(res.Metrics))
	for i, m := range res.Metrics {
		names[i] = "P" + strconv.Itoa(m.PID)
	}
	_, _ = fmt.Fprintln(w, strings.Join(names, " -> "))
}

// Table prints per-process metrics in completion order with averages in
// the footer.
func Table(w io.Writer, res sched.Result) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Waiting", "Turnaround", "Completion"})
	for _, m := range res.Metrics {
		table.Append([]string{
			strconv.Itoa(m.PID),
			strconv.Itoa(m.Arrival),
			strconv.Itoa(m.Burst),
			strconv.Itoa(m.Waiting),
			strconv.Itoa(m.Turnaround),
			strconv.Itoa(m.Completion),
		})
	}
	table.SetFooter([]string{"", "", "Average",
		fmt.Sprintf("%.2f", res.AvgWaiting),
		fmt.Sprintf("%.2f", res.AvgTurnaround),
		""})
	table.Render()
}

// Gantt prints the timeline as a bar of labels with the boundary times
// beneath it.
func Gantt(w io.Writer, timeline []sched.Segment) {
	if len(timeline) == 0 {
		return
	}

	var bar, ticks strings.Builder
	bar.WriteString("|")
	ticks.WriteString(strconv.Itoa(timeline[0].Start))
	for _, s := range timeline {
		bar.WriteString(" " + Label(s) + " |")
		ticks.WriteString("   " + strconv.Itoa(s.End))
	}

	_, _ = fmt.Fprintln(w, "\nGantt chart:")
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, ticks.String())
}

// Summary prints the aggregate figures of a run.
func Summary(w io.Writer, res sched.Result) {
	_, _ = fmt.Fprintf(w, "Avg WT=%.2f  Avg TAT=%.2f\n", res.AvgWaiting, res.AvgTurnaround)
	_, _ = fmt.Fprintf(w, "Makespan=%d  Idle=%d  Utilization=%.2f%%  Throughput=%.3f/t\n",
		res.Makespan, res.IdleTime, res.Utilization*100, res.Throughput)
}

// Processes prints the records as they were read.
func Processes(w io.Writer, source string, processes []sched.Process) {
	_, _ = fmt.Fprintf(w, "Read %d processes from %s\n", len(processes), source)
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority"})
	for _, p := range processes {
		table.Append([]string{
			strconv.Itoa(p.PID),
			strconv.Itoa(p.Arrival),
			strconv.Itoa(p.Burst),
			strconv.Itoa(p.Priority),
		})
	}
	table.Render()
}
