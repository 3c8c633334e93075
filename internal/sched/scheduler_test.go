package sched

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want []string
		err  error
	}{
		{"fcfs", []string{"fcfs"}, nil},
		{" SJF ", []string{"sjf"}, nil},
		{"both", []string{"fcfs", "sjf"}, nil},
		{"all", []string{"fcfs", "sjf"}, nil},
		{"rr", nil, ErrUnknownAlgorithm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			algos, err := Lookup(tt.name)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Lookup(%q) err = %v, want %v", tt.name, err, tt.err)
			}
			var names []string
			for _, a := range algos {
				names = append(names, a.Name())
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Fatalf("Lookup(%q) = %v, want %v", tt.name, names, tt.want)
			}
		})
	}
}

func TestRunAllMatchesSequentialRuns(t *testing.T) {
	results, err := RunAll(mixed, Algorithms()...)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}

	fcfs, _ := RunFCFS(mixed)
	sjf, _ := RunSJF(mixed)
	if !reflect.DeepEqual(results[0], fcfs) {
		t.Errorf("concurrent fcfs differs from sequential run")
	}
	if !reflect.DeepEqual(results[1], sjf) {
		t.Errorf("concurrent sjf differs from sequential run")
	}
}

func TestRunAllRejectsInvalidInput(t *testing.T) {
	results, err := RunAll([]Process{{PID: 1, Burst: -3}}, Algorithms()...)
	if !errors.Is(err, ErrInvalidBurst) {
		t.Fatalf("err = %v, want ErrInvalidBurst", err)
	}
	if results != nil {
		t.Fatalf("results = %+v, want nil", results)
	}
}

func TestLoadConfig(t *testing.T) {
	if got, err := Load(""); err != nil || !reflect.DeepEqual(got, DefaultConfig()) {
		t.Fatalf("Load(\"\") = %+v, %v", got, err)
	}
	if got, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err != nil || !reflect.DeepEqual(got, DefaultConfig()) {
		t.Fatalf("missing file = %+v, %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "schedsim.yml")
	data := []byte("algorithm: sjf\ninput: jobs.txt\ncsv_prefix: out/run\nlisten: \":8080\"\nstrict: true\nmax_processes: -4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	want := Config{
		Algorithm:    "sjf",
		Input:        "jobs.txt",
		CSVPrefix:    "out/run",
		Listen:       ":8080",
		Strict:       true,
		MaxProcesses: 256,
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	tests := map[string]string{
		"unclosed list":  "algorithm: sjf\nmax_processes: [1\n",
		"unclosed quote": "algorithm: \"sjf\nstrict: true\n",
		"mixed errors":   "algorithm: sjf\nstrict: maybe\nmax_processes: [1\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "schedsim.yml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := Load(path)
			if err == nil {
				t.Fatalf("Load() accepted %q as %+v", body, got)
			}
			if !strings.Contains(err.Error(), path) {
				t.Fatalf("error %q does not name the file", err)
			}
			if !reflect.DeepEqual(got, DefaultConfig()) {
				t.Fatalf("a failed load returned a partial config: %+v", got)
			}
		})
	}
}

func TestLoadConfigUnreadable(t *testing.T) {
	// a directory exists but cannot be read as a file
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("Load() of a directory should fail")
	}
}
