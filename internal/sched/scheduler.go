// internal/sched/scheduler.go

package sched

import (
	"fmt"
	"strings"
	"sync"
)

// Algorithm is a scheduling policy. Implementations must not mutate the
// input slice and must return either a complete Result or an error.
type Algorithm interface {
	Name() string
	Schedule(processes []Process) (Result, error)
}

// Algorithms lists every policy in the order "both" runs them.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS{}, SJF{}}
}

// Lookup resolves a policy by name. "both" and "all" select every policy.
func Lookup(name string) ([]Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return []Algorithm{FCFS{}}, nil
	case "sjf":
		return []Algorithm{SJF{}}, nil
	case "both", "all":
		return Algorithms(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// RunAll runs each algorithm on its own copy of the input concurrently and
// returns the results in the order the algorithms were given.
// Input is validated once up front so no goroutine starts on bad data.
func RunAll(processes []Process, algos ...Algorithm) ([]Result, error) {
	if err := Validate(processes); err != nil {
		return nil, err
	}

	var (
		wg      sync.WaitGroup
		results = make([]Result, len(algos))
		errs    = make([]error, len(algos))
	)
	wg.Add(len(algos))
	for i, algo := range algos {
		go func(i int, algo Algorithm, input []Process) {
			defer wg.Done()
			results[i], errs[i] = algo.Schedule(input)
		}(i, algo, clone(processes))
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algos[i].Name(), err)
		}
	}
	return results, nil
}
