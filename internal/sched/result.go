package sched

import "sort"

// Segment is one interval [Start, End) of the simulated CPU.
type Segment struct {
	PID   int `json:"pid"` // IdlePID when the CPU had nothing to run
	Start int `json:"start"`
	End   int `json:"end"`
}

// Idle reports whether no process ran during the segment.
func (s Segment) Idle() bool { return s.PID == IdlePID }

// Len is the number of ticks the segment covers.
func (s Segment) Len() int { return s.End - s.Start }

// Metrics holds the computed timing of one process.
type Metrics struct {
	PID        int `json:"pid"`
	Arrival    int `json:"arrival"`
	Burst      int `json:"burst"`
	Priority   int `json:"priority"`
	Start      int `json:"start"`
	Waiting    int `json:"waiting"`    // Start - Arrival
	Turnaround int `json:"turnaround"` // Completion - Arrival
	Completion int `json:"completion"`
}

func newMetrics(p Process, start, completion int) Metrics {
	return Metrics{
		PID:        p.PID,
		Arrival:    p.Arrival,
		Burst:      p.Burst,
		Priority:   p.Priority,
		Start:      start,
		Waiting:    start - p.Arrival,
		Turnaround: completion - p.Arrival,
		Completion: completion,
	}
}

// Result is the complete outcome of one scheduler run.
// Metrics are in completion order.
type Result struct {
	Algorithm     string    `json:"algorithm"`
	Metrics       []Metrics `json:"metrics"`
	Timeline      []Segment `json:"timeline"`
	Events        []Event   `json:"events"`
	AvgWaiting    float64   `json:"avg_waiting"`
	AvgTurnaround float64   `json:"avg_turnaround"`
	Makespan      int       `json:"makespan"`
	IdleTime      int       `json:"idle_time"`
	Utilization   float64   `json:"utilization"`
	Throughput    float64   `json:"throughput"`
}

// Averages returns the arithmetic mean waiting and turnaround time.
// Both are zero for an empty slice.
func Averages(metrics []Metrics) (avgWaiting, avgTurnaround float64) {
	if len(metrics) == 0 {
		return 0, 0
	}
	var waitingSum, turnaroundSum float64
	for _, m := range metrics {
		waitingSum += float64(m.Waiting)
		turnaroundSum += float64(m.Turnaround)
	}
	n := float64(len(metrics))
	return waitingSum / n, turnaroundSum / n
}

// eventRank orders events that share a tick: a finishing process frees the
// CPU before anything new arrives or is dispatched.
func eventRank(k EventKind) int {
	switch k {
	case EventFinish:
		return 0
	case EventIdle:
		return 1
	case EventArrive:
		return 2
	default:
		return 3
	}
}

// finish assembles the Result once every process has completed.
func finish(algorithm string, metrics []Metrics, tr *trace) Result {
	events := tr.events
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return eventRank(events[i].Kind) < eventRank(events[j].Kind)
	})

	res := Result{
		Algorithm: algorithm,
		Metrics:   metrics,
		Timeline:  tr.timeline,
		Events:    events,
	}
	res.AvgWaiting, res.AvgTurnaround = Averages(metrics)

	busy := 0
	for _, s := range tr.timeline {
		if s.Idle() {
			res.IdleTime += s.Len()
		} else {
			busy += s.Len()
		}
	}
	if n := len(tr.timeline); n > 0 {
		res.Makespan = tr.timeline[n-1].End - tr.timeline[0].Start
	}
	if res.Makespan > 0 {
		res.Utilization = float64(busy) / float64(res.Makespan)
	}
	if last := metrics[len(metrics)-1].Completion; last > 0 {
		res.Throughput = float64(len(metrics)) / float64(last)
	}
	return res
}
