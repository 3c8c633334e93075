package sched

import "slices"

// FCFS serves processes strictly in arrival order, pid breaking ties.
type FCFS struct{}

func (FCFS) Name() string { return "fcfs" }

func (FCFS) Schedule(processes []Process) (Result, error) { return RunFCFS(processes) }

// RunFCFS simulates first-come, first-served scheduling.
func RunFCFS(processes []Process) (Result, error) {
	if err := Validate(processes); err != nil {
		return Result{}, err
	}

	queue := clone(processes)
	slices.SortFunc(queue, byArrival)

	var (
		clock   Clock
		tr      trace
		metrics = make([]Metrics, 0, len(queue))
	)
	for _, p := range queue {
		tr.record(p.Arrival, EventArrive, p.PID)
	}

	for _, p := range queue {
		// CPU sits idle until the next process shows up
		if clock.Now() < p.Arrival {
			tr.idle(clock.Now(), p.Arrival)
			clock.AdvanceTo(p.Arrival)
		}
		start, end := clock.Run(p.Burst)
		tr.ran(p, start, end)
		metrics = append(metrics, newMetrics(p, start, end))
	}

	return finish(FCFS{}.Name(), metrics, &tr), nil
}
