package sat

// trailEntry records one assignment: the literal as asserted, the decision
// level at which it happened, and the clause that forced it (or
// noAntecedent if it was a decision).
type trailEntry struct {
	lit   Literal
	level int
	ante  ClauseID
}

// Trail is the single source of truth for the current partial assignment.
// It stores assigned literals in assignment order and caches, per variable,
// the value/level/antecedent for O(1) lookup. BacktrackTo is the only way
// entries are removed, and it keeps the cache consistent with the trail.
type Trail struct {
	entries []trailEntry

	value []LBool   // indexed by Var (1-based; value[0] unused)
	level []int     // indexed by Var
	ante  []ClauseID // indexed by Var

	trailLim []int // entries[trailLim[i]] is the decision that opened level i+1

	qhead int // entries[:qhead] have been handed to BCP; entries[qhead:] are pending
}

// NewTrail returns a Trail sized for variables 1..=numVars.
func NewTrail(numVars int) *Trail {
	return &Trail{
		value: make([]LBool, numVars+1),
		level: make([]int, numVars+1),
		ante:  make([]ClauseID, numVars+1),
	}
}

// Value returns the current value of variable v.
func (t *Trail) Value(v Var) LBool {
	return t.value[v]
}

// ValueOfLit returns the current value of literal l, accounting for polarity.
func (t *Trail) ValueOfLit(l Literal) LBool {
	v := t.value[l.Var()]
	if v == Unknown || l.IsPositive() {
		return v
	}
	return v.Opposite()
}

// Level returns the decision level at which v was assigned. Unspecified if
// v is currently unassigned.
func (t *Trail) Level(v Var) int {
	return t.level[v]
}

// Antecedent returns the clause that forced v's assignment, or noAntecedent
// if v was a decision. Unspecified if v is currently unassigned.
func (t *Trail) Antecedent(v Var) ClauseID {
	return t.ante[v]
}

// CurrentLevel returns the level of the trail's top entry, or 0 if empty.
func (t *Trail) CurrentLevel() int {
	return len(t.trailLim)
}

// Len returns the number of currently assigned variables.
func (t *Trail) Len() int {
	return len(t.entries)
}

// AllAssigned reports whether every variable 1..=numVars has a value.
func (t *Trail) AllAssigned() bool {
	return len(t.entries) == len(t.value)-1
}

// Decide opens a new decision level and enqueues lit as its decision literal.
func (t *Trail) Decide(lit Literal) {
	t.trailLim = append(t.trailLim, len(t.entries))
	t.Enqueue(lit, t.CurrentLevel(), noAntecedent)
}

// Enqueue asserts lit at the given level with the given antecedent. The
// caller must ensure ValueOfLit(lit) is currently Unknown; enqueueing a
// literal whose value is already False is a caller bug (the BCP engine must
// detect conflicts itself before calling Enqueue).
func (t *Trail) Enqueue(lit Literal, level int, ante ClauseID) {
	if t.ValueOfLit(lit) == False {
		panic("sat: enqueue of a literal already false")
	}
	v := lit.Var()
	val := True
	if !lit.IsPositive() {
		val = False
	}
	t.value[v] = val
	t.level[v] = level
	t.ante[v] = ante
	t.entries = append(t.entries, trailEntry{lit: lit, level: level, ante: ante})
}

// drainPending marks every current entry as propagated. Used by the
// fallback scanner, which rescans the whole clause database rather than
// consuming the trail cursor literal by literal.
func (t *Trail) drainPending() {
	t.qhead = len(t.entries)
}

// NextPending returns the next literal BCP has not yet propagated, and
// advances the cursor past it. ok is false once the trail has been fully
// drained.
func (t *Trail) NextPending() (lit Literal, ok bool) {
	if t.qhead >= len(t.entries) {
		return 0, false
	}
	lit = t.entries[t.qhead].lit
	t.qhead++
	return lit, true
}

// BacktrackTo pops every entry whose level exceeds lvl, restoring the
// popped variables to Unknown and clearing their level/antecedent. It is
// idempotent: calling it again with the same (or a higher) level is a
// no-op.
func (t *Trail) BacktrackTo(lvl int) {
	if lvl >= t.CurrentLevel() {
		return
	}
	cut := t.trailLim[lvl]
	for i := len(t.entries) - 1; i >= cut; i-- {
		v := t.entries[i].lit.Var()
		t.value[v] = Unknown
		t.level[v] = 0
		t.ante[v] = noAntecedent
	}
	t.entries = t.entries[:cut]
	t.trailLim = t.trailLim[:lvl]
	if t.qhead > len(t.entries) {
		t.qhead = len(t.entries)
	}
}

// Literals returns the trail's asserted literals in assignment order, as a
// freshly allocated slice that does not alias Trail-owned storage.
func (t *Trail) Literals() []Literal {
	lits := make([]Literal, len(t.entries))
	for i, e := range t.entries {
		lits[i] = e.lit
	}
	return lits
}
