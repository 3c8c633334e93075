// internal/sched/event.go

package sched

import "fmt"

// EventKind represents the type of a simulation event
type EventKind int

const (
	EventIdle EventKind = iota
	EventArrive
	EventDispatch
	EventFinish
)

// Event is recorded on every arrival, dispatch, completion and idle gap.
type Event struct {
	Time int       `json:"time"`
	Kind EventKind `json:"kind"`
	PID  int       `json:"pid"` // IdlePID for EventIdle
}

func (k EventKind) String() string {
	switch k {
	case EventIdle:
		return "Idle"
	case EventArrive:
		return "Arrive"
	case EventDispatch:
		return "Dispatch"
	case EventFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// MarshalText lets events serialize by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(text []byte) error {
	for kind := EventIdle; kind <= EventFinish; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}

// trace collects events and timeline segments for one run.
type trace struct {
	events   []Event
	timeline []Segment
}

func (tr *trace) record(at int, kind EventKind, pid int) {
	tr.events = append(tr.events, Event{Time: at, Kind: kind, PID: pid})
}

// idle emits an idle segment [from, to).
func (tr *trace) idle(from, to int) {
	tr.record(from, EventIdle, IdlePID)
	tr.timeline = append(tr.timeline, Segment{PID: IdlePID, Start: from, End: to})
}

// ran emits the execution segment of p and its dispatch/finish events.
func (tr *trace) ran(p Process, start, end int) {
	tr.record(start, EventDispatch, p.PID)
	tr.timeline = append(tr.timeline, Segment{PID: p.PID, Start: start, End: end})
	tr.record(end, EventFinish, p.PID)
}
