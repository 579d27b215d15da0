package sat

import (
	"fmt"
	"strings"
)

// ClauseID is a stable identifier for a clause held by a ClauseStore. Clauses
// are addressed by ID rather than by pointer so that watcher lists and trail
// antecedents never hold a handle into a slice that might be reallocated by
// a later append, and so that a clause never needs to know about the
// watcher index that references it.
type ClauseID int32

// noAntecedent marks a trail entry as a decision rather than an implication.
const noAntecedent ClauseID = -1

// clause is a CNF clause: an ordered, duplicate- and complement-free vector
// of literals. Clauses of size >= 2 are watched at two of their literals,
// w1 and w2, indices into literals. Unit clauses (size 1) and the empty
// clause are never watched; see ClauseStore.Add.
type clause struct {
	literals []Literal
	w1, w2   int
	learnt   bool
}

func (c *clause) String() string {
	parts := make([]string, len(c.literals))
	for i, l := range c.literals {
		parts[i] = l.String()
	}
	return "Clause[" + strings.Join(parts, " ") + "]"
}

// ClauseStore owns every clause's literal vector and watch indices. Original
// and learnt clauses share the same backing slice; only original clauses'
// identity (their ClauseID, returned to the caller at construction) matters
// outside the store. Clauses are appended only — this store never shrinks.
type ClauseStore struct {
	clauses []clause
}

// Add validates and appends a clause, returning its ID. It fails if lits
// contains the zero sentinel, a duplicate literal, or a complementary pair
// of literals (the clause would be a tautology, which this core treats as
// malformed input rather than silently discarding).
//
// For clauses of size >= 2, initial watch indices 0 and 1 are chosen; the
// caller (the solver, which also owns the watcher index) is responsible for
// registering those two literals in the watcher index. Clauses of size 0 or
// 1 are never watched: callers must special-case them (size 0 is immediate
// UNSAT, size 1 is a level-0 fact — see Solver.AddClause).
func (cs *ClauseStore) Add(lits []Literal, learnt bool) (ClauseID, error) {
	seen := make(map[Var]Literal, len(lits))
	for _, l := range lits {
		if l == 0 {
			return -1, fmt.Errorf("clause contains the zero sentinel")
		}
		if prev, ok := seen[l.Var()]; ok {
			if prev == l {
				return -1, fmt.Errorf("clause contains duplicate literal %s", l)
			}
			return -1, fmt.Errorf("clause contains complementary literals %s and %s", prev, l)
		}
		seen[l.Var()] = l
	}

	lits = append([]Literal(nil), lits...)
	id := ClauseID(len(cs.clauses))
	w1, w2 := 0, 0
	if len(lits) >= 2 {
		w2 = 1
	}
	cs.clauses = append(cs.clauses, clause{
		literals: lits,
		w1:       w1,
		w2:       w2,
		learnt:   learnt,
	})
	return id, nil
}

// Clause returns the literal vector and watch indices for id.
func (cs *ClauseStore) Clause(id ClauseID) *clause {
	return &cs.clauses[id]
}

// Len returns the number of clauses ever added (originals and learnts).
func (cs *ClauseStore) Len() int {
	return len(cs.clauses)
}

// ForEach visits every clause in the store in insertion order. It is used
// only by the fallback (non-watched) propagation scanner. Returning false
// stops the iteration early.
func (cs *ClauseStore) ForEach(visit func(id ClauseID, lits []Literal) bool) {
	for i := range cs.clauses {
		if !visit(ClauseID(i), cs.clauses[i].literals) {
			return
		}
	}
}
