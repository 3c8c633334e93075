package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"schedsim/api"
	"schedsim/internal/report"
	"schedsim/internal/sched"
	"schedsim/internal/workload"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [-h] [-a {fcfs|sjf|both}] [-f <input_file>] [-config <yaml>] [-csv <prefix>] [-strict] [-serve] [-listen <addr>]\n", fs.Name())
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// run is main without the process exit, so it can be driven from tests.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schedsim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", "schedsim.yml", "YAML config file (missing file = defaults)")
	algo := fs.String("a", "", "scheduling algorithm to run: fcfs | sjf | both")
	file := fs.String("f", "", "input file path")
	csvPrefix := fs.String("csv", "", "write <prefix>-<algo>-timeline.csv and -events.csv")
	strict := fs.Bool("strict", false, "reject malformed input lines instead of skipping them")
	serve := fs.Bool("serve", false, "serve the HTTP API instead of running once")
	listen := fs.String("listen", "", "address the HTTP API listens on (default from config, :9095)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			usage(fs, stdout)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		usage(fs, stderr)
		return 1
	}

	// command line flags win over the config file
	cfg, err := sched.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.Algorithm = *algo
		case "f":
			cfg.Input = *file
		case "csv":
			cfg.CSVPrefix = *csvPrefix
		case "strict":
			cfg.Strict = *strict
		case "listen":
			cfg.Listen = *listen
		}
	})

	if *serve {
		log.Printf("[API] listening on %s", cfg.Listen)
		if err := api.NewApp(api.NewSchedulerHandlerImpl(cfg)).Listen(cfg.Listen); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	algos, err := sched.Lookup(cfg.Algorithm)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		usage(fs, stderr)
		return 1
	}

	processes, err := workload.Load(cfg.Input, workload.Options{Strict: cfg.Strict, MaxProcesses: cfg.MaxProcesses})
	if err != nil || len(processes) == 0 {
		fmt.Fprintf(stderr, "Error: cannot read processes from '%s'\n", cfg.Input)
		if err != nil {
			fmt.Fprintf(stderr, "  %v\n", err)
		}
		return 1
	}
	report.Processes(stdout, cfg.Input, processes)

	results, err := sched.RunAll(processes, algos...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	for _, res := range results {
		report.Write(stdout, res)
		if cfg.CSVPrefix == "" {
			continue
		}
		paths, err := report.ExportCSV(cfg.CSVPrefix, res)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		for _, p := range paths {
			log.Printf("[SCHED] wrote %s", p)
		}
	}
	return 0
}
