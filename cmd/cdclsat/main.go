// Command cdclsat solves DIMACS CNF instances with the CDCL solver in
// internal/sat. Given a single .cnf path it prints the result to stdout;
// given multiple paths, a directory, or --output, it runs in batch mode and
// writes one result line per file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/nextgenbd/cdclsat/internal/batch"
	"github.com/nextgenbd/cdclsat/internal/parser"
	"github.com/nextgenbd/cdclsat/internal/sat"
)

var (
	flagNoWatched = flag.Bool(
		"no-watched",
		false,
		"disable the two-watched-literal BCP engine in favor of the fallback scanner",
	)
	flagOutput = flag.String(
		"output",
		"",
		"write batch results to this file instead of printing a single instance's result",
	)
	flagConflictLimit = flag.Uint64(
		"conflict-limit",
		0,
		"abort search after this many conflicts (0 means unbounded)",
	)
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
)

type config struct {
	paths      []string
	output     string
	options    sat.Options
	cpuProfile bool
	memProfile bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	// Flags may also follow the paths (cdclsat a.cnf --no-watched), so
	// resume flag parsing after each positional argument.
	var paths []string
	for args := flag.Args(); len(args) > 0; args = flag.Args() {
		paths = append(paths, args[0])
		flag.CommandLine.Parse(args[1:])
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("missing instance file(s)")
	}
	return &config{
		paths:  paths,
		output: *flagOutput,
		options: sat.Options{
			UseWatched:    !*flagNoWatched,
			ConflictLimit: *flagConflictLimit,
		},
		cpuProfile: *flagCPUProfile,
		memProfile: *flagMemProfile,
	}, nil
}

// isBatchMode decides between single-instance and batch dispatch: an
// explicit --output, more than one path, or a directory argument all imply
// batch mode.
func isBatchMode(cfg *config) bool {
	if cfg.output != "" {
		return true
	}
	if len(cfg.paths) != 1 {
		return true
	}
	info, err := os.Stat(cfg.paths[0])
	return err == nil && info.IsDir()
}

func runBatch(cfg *config) error {
	results := batch.Run(cfg.paths, cfg.options)
	outputPath := cfg.output
	if outputPath == "" {
		outputPath = "batch_results.txt"
	}
	if err := batch.WriteResults(outputPath, results); err != nil {
		return fmt.Errorf("writing %q: %w", outputPath, err)
	}
	fmt.Printf("Results written to %s\n", outputPath)
	return nil
}

func runSingle(cfg *config) (sat.Status, error) {
	path := cfg.paths[0]
	formula, err := parser.ParseFile(path, parser.IsGzipPath(path))
	if err != nil {
		return sat.StatusUnknown, err
	}
	s, err := formula.NewSolver(cfg.options)
	if err != nil {
		return sat.StatusUnknown, err
	}

	status := s.Solve()
	switch status {
	case sat.StatusSat:
		fmt.Println("RESULT:SAT")
		fmt.Println("ASSIGNMENT:" + formatAssignment(s.Model()))
	default:
		// StatusUnsat and the budget-exhausted StatusUnknown both print
		// RESULT:UNSAT; Unknown is distinguished only by the nonzero exit
		// code set in main (§7).
		fmt.Println("RESULT:UNSAT")
	}
	return status, nil
}

func formatAssignment(model []bool) string {
	parts := make([]string, len(model))
	for i, v := range model {
		val := 0
		if v {
			val = 1
		}
		parts[i] = fmt.Sprintf("%d=%d", i+1, val)
	}
	return strings.Join(parts, " ")
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	var status sat.Status
	if isBatchMode(cfg) {
		err = runBatch(cfg)
	} else {
		status, err = runSingle(cfg)
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	switch status {
	case sat.StatusSat, sat.StatusUnsat:
		os.Exit(0)
	case sat.StatusUnknown:
		os.Exit(1)
	}
}
