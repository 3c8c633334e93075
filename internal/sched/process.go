package sched

import (
	"errors"
	"fmt"
)

// IdlePID marks a timeline segment during which no process was runnable.
const IdlePID = -1

// Process is one immutable input record.
type Process struct {
	PID      int `json:"pid" yaml:"pid"`
	Arrival  int `json:"arrival" yaml:"arrival"`   // time the process becomes eligible, >= 0
	Burst    int `json:"burst" yaml:"burst"`       // required CPU time, > 0
	Priority int `json:"priority" yaml:"priority"` // carried through, never used for ordering
}

var (
	ErrEmptyInput       = errors.New("no processes to schedule")
	ErrInvalidBurst     = errors.New("burst must be positive")
	ErrInvalidArrival   = errors.New("arrival must not be negative")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Validate rejects input no scheduler may run on.
// It stops at the first offending record.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	for _, p := range processes {
		if p.Burst <= 0 {
			return fmt.Errorf("%w: pid %d has burst %d", ErrInvalidBurst, p.PID, p.Burst)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: pid %d has arrival %d", ErrInvalidArrival, p.PID, p.Arrival)
		}
	}
	return nil
}

// clone gives each run its own working copy.
func clone(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	return out
}

// byArrival orders processes the way FCFS serves them: arrival, then pid.
// Burst and priority only separate records that share both.
func byArrival(a, b Process) int {
	switch {
	case a.Arrival != b.Arrival:
		return compareInt(a.Arrival, b.Arrival)
	case a.PID != b.PID:
		return compareInt(a.PID, b.PID)
	case a.Burst != b.Burst:
		return compareInt(a.Burst, b.Burst)
	default:
		return compareInt(a.Priority, b.Priority)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
