package sat

// noConflict is returned by Propagate when a fixpoint was reached with no
// falsified clause.
const noConflict ClauseID = -1

// Propagate drains the trail's pending literals, applying two-watched-literal
// BCP (or the naive fallback scanner, per s.options.UseWatched) until a
// fixpoint is reached or a clause is falsified. It returns noConflict or the
// ID of the falsified clause.
func (s *Solver) Propagate() ClauseID {
	if s.options.UseWatched {
		return s.propagateWatched()
	}
	return s.propagateFallback()
}

// propagateWatched implements the two-watched-literal scheme described in
// §4.3: for each literal that just became true, walk the watcher list of its
// complement, re-pointing watches away from clauses that have found another
// non-false literal, and either enqueuing an implication or reporting a
// conflict for clauses that have not.
func (s *Solver) propagateWatched() ClauseID {
	for {
		lit, ok := s.trail.NextPending()
		if !ok {
			return noConflict
		}
		f := lit.Negate()
		ws := s.watchers.list(f)

		i := 0
		conflict := noConflict
		for i < len(ws) {
			id := ws[i]
			c := s.store.Clause(id)

			// Normalize so that lits[wi] == f and wj is the other watch.
			wi, wj := c.w1, c.w2
			if c.literals[wi] != f {
				wi, wj = wj, wi
			}

			other := c.literals[wj]
			if s.trail.ValueOfLit(other) == True {
				// Clause already satisfied by its other watch; no change.
				i++
				continue
			}

			replaced := false
			for k, cand := range c.literals {
				if k == wi || k == wj {
					continue
				}
				if s.trail.ValueOfLit(cand) == False {
					continue
				}
				// cand is unassigned or true: move the watch to it.
				ws[i] = ws[len(ws)-1]
				ws = ws[:len(ws)-1]
				c.w1, c.w2 = wj, k
				s.watchers.Watch(cand, id)
				replaced = true
				break
			}
			if replaced {
				continue // ws shrank in place; don't advance i.
			}

			if s.trail.ValueOfLit(other) == Unknown {
				s.trail.Enqueue(other, s.trail.CurrentLevel(), id)
				i++
				continue
			}

			// other is False: conflict. Abort the walk, leaving ws[i:]
			// (including the conflicting clause) watching f untouched.
			conflict = id
			break
		}

		s.watchers.setList(f, ws)
		if conflict != noConflict {
			return conflict
		}
	}
}

// propagateFallback implements the naive whole-database scanner used when
// watched literals are disabled. It exists for debugging/teaching parity and
// to exercise the watched/unwatched equivalence property.
func (s *Solver) propagateFallback() ClauseID {
	for {
		changed := false
		conflict := noConflict

		s.store.ForEach(func(id ClauseID, lits []Literal) bool {
			var unassignedLit Literal
			numUnassigned := 0
			for _, l := range lits {
				switch s.trail.ValueOfLit(l) {
				case True:
					return true // clause already satisfied
				case Unknown:
					numUnassigned++
					unassignedLit = l
				}
			}
			switch numUnassigned {
			case 0:
				conflict = id
				return false // stop: found a falsified clause
			case 1:
				s.trail.Enqueue(unassignedLit, s.trail.CurrentLevel(), id)
				changed = true
			}
			return true
		})

		if conflict != noConflict {
			return conflict
		}
		if !changed {
			s.trail.drainPending()
			return noConflict
		}
	}
}
