package sat

// EMA is an exponential moving average. It is used by the solver purely as
// read-only telemetry — a conflicts-per-Propagate-call trend surfaced
// through Solver.Stats to callers of the sat package; the CLI and batch
// driver do not print it. It never feeds back into search decisions (no
// restart policy is implemented).
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay in (0, 1).
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the average.
func (e *EMA) Add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

// Val returns the current average.
func (e *EMA) Val() float64 {
	return e.value
}

// Stats reports read-only search statistics.
type Stats struct {
	TotalDecisions  uint64
	TotalConflicts  uint64
	TotalIterations uint64
	ConflictRateEMA float64
}

// Stats returns a snapshot of the solver's search statistics.
func (s *Solver) Stats() Stats {
	return Stats{
		TotalDecisions:  s.totalDecisions,
		TotalConflicts:  s.totalConflicts,
		TotalIterations: s.totalIterations,
		ConflictRateEMA: s.conflictRate.Val(),
	}
}
