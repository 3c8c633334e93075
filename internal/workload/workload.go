// Package workload reads process records from line-oriented text files.
//
// Each record line holds four whitespace-separated integers:
//
//	pid arrival burst priority
//
// Blank lines and lines whose first non-blank characters are "#" or "//"
// are ignored.
package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"schedsim/internal/sched"
)

// DefaultMaxProcesses caps how many records a file may contribute.
const DefaultMaxProcesses = 256

var ErrMalformedLine = errors.New("malformed process line")

// Options controls how tolerant the parser is.
type Options struct {
	// Strict turns the first malformed line into an error instead of
	// skipping it.
	Strict bool
	// MaxProcesses drops records past this count; <= 0 means DefaultMaxProcesses.
	MaxProcesses int
}

// Load opens path and parses it.
func Load(path string, opts Options) ([]sched.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}

// Parse reads every record from r.
func Parse(r io.Reader, opts Options) ([]sched.Process, error) {
	limit := opts.MaxProcesses
	if limit <= 0 {
		limit = DefaultMaxProcesses
	}

	var (
		processes []sched.Process
		dropped   int
		lineNo    int
	)
	br := bufio.NewReader(r)
	for {
		// lines may be arbitrarily long
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("read process file: %w", readErr)
		}
		if readErr == io.EOF && raw == "" {
			break
		}
		lineNo++

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			if readErr == io.EOF {
				break
			}
			continue
		}

		p, err := parseLine(line)
		if err != nil {
			if opts.Strict {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			log.Printf("[WORKLOAD] skipping line %d: %v", lineNo, err)
		} else if len(processes) >= limit {
			dropped++
		} else {
			processes = append(processes, p)
		}

		if readErr == io.EOF {
			break
		}
	}

	if dropped > 0 {
		log.Printf("[WORKLOAD] dropped %d records beyond the limit of %d", dropped, limit)
	}
	return processes, nil
}

// parseLine converts the first four fields of line; extra fields are ignored.
func parseLine(line string) (sched.Process, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return sched.Process{}, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedLine, len(fields))
	}

	var vals [4]int
	for i := range vals {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return sched.Process{}, fmt.Errorf("%w: field %d %q is not an integer", ErrMalformedLine, i+1, fields[i])
		}
		vals[i] = v
	}

	return sched.Process{
		PID:      vals[0],
		Arrival:  vals[1],
		Burst:    vals[2],
		Priority: vals[3],
	}, nil
}
