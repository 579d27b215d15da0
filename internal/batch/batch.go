// Package batch implements the multi-file driver: given a mix of CNF file
// and directory paths, it solves each file found and renders one result
// line per file, matching the format of the original Python batch runner
// (mySAT.py's directory/file walk).
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nextgenbd/cdclsat/internal/parser"
	"github.com/nextgenbd/cdclsat/internal/sat"
)

// Run solves every .cnf file reachable from paths (files are solved
// directly; directories are globbed one level deep for *.cnf and *.cnf.gz)
// and returns one formatted result line per file, in the order visited. A
// path that cannot be read, parsed, or solved contributes an ERROR line
// instead of aborting the run.
func Run(paths []string, options sat.Options) []string {
	var results []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			results = append(results, fmt.Sprintf("%s: ERROR: %s", path, err))
			continue
		}

		switch {
		case info.IsDir():
			outputPathName := path + "_output"
			var matches []string
			for _, pattern := range []string{"*.cnf", "*.cnf.gz"} {
				found, err := filepath.Glob(filepath.Join(path, pattern))
				if err != nil {
					results = append(results, fmt.Sprintf("%s: ERROR: %s", path, err))
					continue
				}
				matches = append(matches, found...)
			}
			sort.Strings(matches)
			for _, cnf := range matches {
				label := filepath.Base(outputPathName) + "/" + filepath.Base(cnf)
				results = append(results, solveOne(label, cnf, options))
			}
		case strings.HasSuffix(path, ".cnf"), strings.HasSuffix(path, ".cnf.gz"):
			label := filepath.Base(path + "_output")
			results = append(results, solveOne(label, path, options))
		default:
			results = append(results, fmt.Sprintf("%s: ERROR: not a .cnf file or directory", path))
		}
	}
	return results
}

// solveOne parses and solves a single CNF file, rendering one result line.
func solveOne(label, path string, options sat.Options) string {
	start := time.Now()

	formula, err := parser.ParseFile(path, parser.IsGzipPath(path))
	if err != nil {
		return fmt.Sprintf("%s: ERROR: %s", label, err)
	}
	s, err := formula.NewSolver(options)
	if err != nil {
		return fmt.Sprintf("%s: ERROR: %s", label, err)
	}

	status := s.Solve()
	elapsed := time.Since(start).Seconds()

	var assignStr string
	if status == sat.StatusSat {
		assignStr = "ASSIGNMENT:" + formatModel(s.Model())
	}
	return fmt.Sprintf("%s: RESULT:%s %s Time: %.4fs", label, status, assignStr, elapsed)
}

func formatModel(model []bool) string {
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

// WriteResults joins results with newlines and writes them to outputPath.
func WriteResults(outputPath string, results []string) error {
	return os.WriteFile(outputPath, []byte(strings.Join(results, "\n")), 0o644)
}
