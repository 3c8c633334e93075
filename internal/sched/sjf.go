package sched

import (
	"slices"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// SJF is non-preemptive shortest-job-first.
type SJF struct{}

func (SJF) Name() string { return "sjf" }

func (SJF) Schedule(processes []Process) (Result, error) { return RunSJF(processes) }

// RunSJF simulates non-preemptive shortest-job-first scheduling.
//
// Processes move from an arrival-ordered pending list into a ready queue as
// the clock passes their arrival. Whenever the CPU frees up, the leftmost
// node of the ready queue runs to completion. With nothing ready, the clock
// jumps to the next arrival and the gap is recorded as idle time.
func RunSJF(processes []Process) (Result, error) {
	if err := Validate(processes); err != nil {
		return Result{}, err
	}

	pending := clone(processes)
	slices.SortFunc(pending, byArrival)

	var (
		clock   Clock
		tr      trace
		ready   = redblacktree.NewWith(readyCmp)
		metrics = make([]Metrics, 0, len(pending))
		next    int // index of the first process not yet admitted
	)

	for len(metrics) < len(pending) {
		// 1) admit everything that has arrived by now
		for ; next < len(pending) && pending[next].Arrival <= clock.Now(); next++ {
			p := pending[next]
			tr.record(p.Arrival, EventArrive, p.PID)
			ready.Put(readyKey{burst: p.Burst, arrival: p.Arrival, pid: p.PID, priority: p.Priority, seq: next}, p)
		}

		// 2) idle case: jump to the earliest unfinished arrival
		node := ready.Left()
		if node == nil {
			arrival := pending[next].Arrival
			tr.idle(clock.Now(), arrival)
			clock.AdvanceTo(arrival)
			continue
		}

		// 3) dispatch the shortest ready job and run it to completion
		ready.Remove(node.Key)
		p := node.Value.(Process)
		start, end := clock.Run(p.Burst)
		tr.ran(p, start, end)
		metrics = append(metrics, newMetrics(p, start, end))
	}

	return finish(SJF{}.Name(), metrics, &tr), nil
}

// readyKey is used as a key in the ready queue.
// seq keeps byte-identical records from colliding in the tree.
type readyKey struct {
	burst    int
	arrival  int
	pid      int
	priority int
	seq      int
}

// readyCmp implements the Comparator for the ready queue: burst, arrival,
// pid, then priority.
func readyCmp(a, b any) int {
	ka, kb := a.(readyKey), b.(readyKey)
	switch {
	case ka.burst != kb.burst:
		return compareInt(ka.burst, kb.burst)
	case ka.arrival != kb.arrival:
		return compareInt(ka.arrival, kb.arrival)
	case ka.pid != kb.pid:
		return compareInt(ka.pid, kb.pid)
	case ka.priority != kb.priority:
		return compareInt(ka.priority, kb.priority)
	default:
		return compareInt(ka.seq, kb.seq)
	}
}
