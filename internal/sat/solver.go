package sat

import "fmt"

// Status is the outcome of a completed or budget-exhausted search.
type Status int

const (
	StatusUnknown Status = iota
	StatusSat
	StatusUnsat
)

func (st Status) String() string {
	switch st {
	case StatusSat:
		return "SAT"
	case StatusUnsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Options configures a Solver.
type Options struct {
	// UseWatched selects the two-watched-literal BCP engine. When false,
	// the naive whole-database fallback scanner (§4.3) is used instead;
	// both must agree on every SAT/UNSAT answer (§8, watched/unwatched
	// equivalence).
	UseWatched bool

	// ConflictLimit bounds the total number of conflicts before Solve gives
	// up and returns StatusUnknown. Zero means unbounded.
	ConflictLimit uint64
}

// DefaultOptions is the solver's default configuration: watched literals
// enabled, no conflict budget.
var DefaultOptions = Options{
	UseWatched:    true,
	ConflictLimit: 0,
}

// Result is the outcome of Solve.
type Result struct {
	Status Status
	// Model holds the value of each variable 1..=numVars (index i is
	// variable i+1) when Status == StatusSat; nil otherwise.
	Model []bool
}

// Solver is a CDCL SAT solver instance. It is single-threaded: every method
// runs to completion on the caller's goroutine, and a Solver must not be
// used from more than one goroutine concurrently. See SPEC_FULL.md §5.
type Solver struct {
	numVars int
	options Options

	store    *ClauseStore
	watchers *watcherIndex
	trail    *Trail
	seen     *ResetSet

	// rootUnsat is set when a clause added at the root level (an empty
	// clause, or a unit clause contradicting an earlier one) makes the
	// formula trivially unsatisfiable before search even begins.
	rootUnsat bool

	analyzeBuf []Literal

	totalDecisions  uint64
	totalConflicts  uint64
	totalIterations uint64
	conflictRate    EMA
}

// NewSolver returns a Solver for a formula over variables 1..=numVars.
func NewSolver(numVars int, options Options) *Solver {
	s := &Solver{
		numVars:      numVars,
		options:      options,
		store:        &ClauseStore{},
		watchers:     newWatcherIndex(numVars),
		trail:        NewTrail(numVars),
		seen:         &ResetSet{},
		conflictRate: NewEMA(0.999),
	}
	for i := 0; i < numVars+1; i++ {
		s.seen.Expand()
	}
	return s
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver(numVars int) *Solver {
	return NewSolver(numVars, DefaultOptions)
}

// NumVariables returns the number of variables the solver was built for.
func (s *Solver) NumVariables() int {
	return s.numVars
}

// AddClause validates and stores a clause. Clauses of size 0 mark the
// formula as trivially UNSAT; clauses of size 1 are asserted immediately as
// level-0 facts and are never registered in the watcher index (§9, resolved
// unit-clause-watching ambiguity); clauses of size >= 2 are registered at
// their initial watch literals. AddClause must only be called before the
// first call to Solve.
func (s *Solver) AddClause(lits []Literal) error {
	id, err := s.store.Add(lits, false)
	if err != nil {
		return fmt.Errorf("sat: invalid clause: %w", err)
	}

	c := s.store.Clause(id)
	switch len(c.literals) {
	case 0:
		s.rootUnsat = true
	case 1:
		lit := c.literals[0]
		switch s.trail.ValueOfLit(lit) {
		case False:
			s.rootUnsat = true
		case Unknown:
			s.trail.Enqueue(lit, 0, id)
		case True:
			// Already implied by an earlier identical unit clause.
		}
	default:
		s.watchers.Watch(c.literals[c.w1], id)
		s.watchers.Watch(c.literals[c.w2], id)
	}
	return nil
}

// Solve runs the CDCL search loop (§4.5) to completion or until the
// conflict budget is exhausted.
func (s *Solver) Solve() Status {
	if s.rootUnsat {
		return StatusUnsat
	}

	for {
		s.totalIterations++

		conflict := s.Propagate()
		if conflict != noConflict {
			s.totalConflicts++
			s.conflictRate.Add(1)

			if s.trail.CurrentLevel() == 0 {
				return StatusUnsat
			}
			if s.options.ConflictLimit > 0 && s.totalConflicts >= s.options.ConflictLimit {
				return StatusUnknown
			}

			learnt, backjump := s.analyze(conflict)
			id := s.recordLearnt(learnt)

			s.trail.BacktrackTo(backjump)
			s.trail.Enqueue(learnt[0], backjump, id)
			continue
		}
		s.conflictRate.Add(0)

		if s.trail.AllAssigned() {
			return StatusSat
		}

		lit, ok := s.pickBranchLiteral()
		if !ok {
			return StatusSat
		}
		s.totalDecisions++
		s.trail.Decide(lit)
	}
}

// recordLearnt appends a clause derived by conflict analysis to the store
// and, for non-unit clauses, installs its watchers. Per §9, this happens
// before the asserting literal is enqueued, so that the literal's own
// propagation sees the new clause through the normal watcher path.
func (s *Solver) recordLearnt(lits []Literal) ClauseID {
	id, err := s.store.Add(lits, true)
	if err != nil {
		panic(fmt.Sprintf("sat: internal error constructing learnt clause: %s", err))
	}
	c := s.store.Clause(id)
	if len(c.literals) >= 2 {
		s.watchers.Watch(c.literals[c.w1], id)
		s.watchers.Watch(c.literals[c.w2], id)
	}
	return id
}

// pickBranchLiteral implements the reference branching heuristic: the
// lowest-index unassigned variable, positive polarity (§4.5).
func (s *Solver) pickBranchLiteral() (Literal, bool) {
	for v := Var(1); int(v) <= s.numVars; v++ {
		if s.trail.Value(v) == Unknown {
			return NewLiteral(v, true), true
		}
	}
	return 0, false
}

// Model returns the satisfying assignment found by the last successful
// Solve call. It panics if the trail does not cover every variable: callers
// must only call it after Solve returned StatusSat.
func (s *Solver) Model() []bool {
	model := make([]bool, s.numVars)
	for v := Var(1); int(v) <= s.numVars; v++ {
		val := s.trail.Value(v)
		if val == Unknown {
			panic("sat: Model called without a complete assignment")
		}
		model[v-1] = val == True
	}
	return model
}

// Solve is the package's single entry point for one-shot use (§6.2): it
// builds a Solver over numVars variables, adds every clause in clauses (each
// a list of DIMACS-style signed, nonzero ints), and solves. A malformed
// clause is treated the same as a root-level contradiction, since this
// entry point has no side channel for reporting construction errors;
// callers that need the error should use NewSolver/AddClause directly.
func Solve(clauses [][]int, numVars int, options Options) Result {
	s := NewSolver(numVars, options)
	for _, cl := range clauses {
		lits := make([]Literal, len(cl))
		for i, v := range cl {
			lits[i] = Literal(v)
		}
		if err := s.AddClause(lits); err != nil {
			return Result{Status: StatusUnsat}
		}
	}

	status := s.Solve()
	result := Result{Status: status}
	if status == StatusSat {
		result.Model = s.Model()
	}
	return result
}
