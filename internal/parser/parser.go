// Package parser adapts DIMACS CNF input into this module's sat package. It
// wraps github.com/rhartert/dimacs, an external streaming DIMACS reader,
// rather than re-implementing the bufio/strconv scanning by hand.
package parser

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/nextgenbd/cdclsat/internal/sat"
)

// Formula is a parsed CNF instance: a variable count and a clause list, each
// clause already converted to sat.Literal and bounds-checked against
// NumVars.
type Formula struct {
	NumVars int
	Clauses [][]sat.Literal
}

// IsGzipPath reports whether name looks like a gzip-compressed file, by
// extension.
func IsGzipPath(name string) bool {
	return strings.HasSuffix(name, ".gz")
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
		rc = gz
	}
	return rc, nil
}

// ParseFile reads and validates a DIMACS CNF file, returning the parsed
// Formula. gzipped selects transparent gzip decompression (see IsGzipPath
// for a naming convention callers may use to decide).
func ParseFile(filename string, gzipped bool) (*Formula, error) {
	r, err := open(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("parser: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &formulaBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("parser: reading %q: %w", filename, err)
	}
	if !b.sawProblem {
		return nil, fmt.Errorf("parser: %q has no problem line", filename)
	}
	return &b.formula, nil
}

// formulaBuilder implements dimacs.Builder, accumulating a Formula while
// rejecting variables out of the range declared by the problem line.
type formulaBuilder struct {
	formula    Formula
	sawProblem bool
}

func (b *formulaBuilder) Problem(problem string, numVars int, numClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q, want \"cnf\"", problem)
	}
	if numVars < 0 {
		return fmt.Errorf("negative variable count %d", numVars)
	}
	b.sawProblem = true
	b.formula.NumVars = numVars
	b.formula.Clauses = make([][]sat.Literal, 0, numClauses)
	return nil
}

func (b *formulaBuilder) Clause(raw []int) error {
	lits := make([]sat.Literal, len(raw))
	for i, v := range raw {
		if v == 0 {
			return fmt.Errorf("clause contains the zero sentinel")
		}
		av := v
		if av < 0 {
			av = -av
		}
		if av > b.formula.NumVars {
			return fmt.Errorf("literal %d out of range for %d declared variables", v, b.formula.NumVars)
		}
		lits[i] = sat.Literal(v)
	}
	b.formula.Clauses = append(b.formula.Clauses, lits)
	return nil
}

func (b *formulaBuilder) Comment(string) error {
	return nil
}

// NewSolver builds a Solver over the formula's variables and loads every
// parsed clause into it.
func (f *Formula) NewSolver(options sat.Options) (*sat.Solver, error) {
	s := sat.NewSolver(f.NumVars, options)
	for _, lits := range f.Clauses {
		if err := s.AddClause(lits); err != nil {
			return nil, fmt.Errorf("parser: %w", err)
		}
	}
	return s, nil
}

