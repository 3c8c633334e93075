package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"schedsim/internal/sched"
)

// WriteTimelineCSV writes one row per timeline segment.
func WriteTimelineCSV(w io.Writer, res sched.Result) error {
	cw := csv.NewWriter(w)

	// write header
	if err := cw.Write([]string{"algorithm", "label", "pid", "start", "end", "duration"}); err != nil {
		return err
	}
	for _, s := range res.Timeline {
		rec := []string{
			res.Algorithm,
			Label(s),
			strconv.Itoa(s.PID),
			strconv.Itoa(s.Start),
			strconv.Itoa(s.End),
			strconv.Itoa(s.Len()),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEventsCSV writes the event trace of a run.
func WriteEventsCSV(w io.Writer, res sched.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"algorithm", "tick", "event", "pid"}); err != nil {
		return err
	}
	for _, ev := range res.Events {
		rec := []string{
			res.Algorithm,
			strconv.Itoa(ev.Time),
			ev.Kind.String(),
			strconv.Itoa(ev.PID),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes <prefix>-<algorithm>-timeline.csv and
// <prefix>-<algorithm>-events.csv and returns the paths it created.
func ExportCSV(prefix string, res sched.Result) ([]string, error) {
	writers := []struct {
		suffix string
		write  func(io.Writer, sched.Result) error
	}{
		{"timeline", WriteTimelineCSV},
		{"events", WriteEventsCSV},
	}

	paths := make([]string, 0, len(writers))
	for _, wr := range writers {
		path := fmt.Sprintf("%s-%s-%s.csv", prefix, res.Algorithm, wr.suffix)
		if err := writeFile(path, res, wr.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, res sched.Result, write func(io.Writer, sched.Result) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, res); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
