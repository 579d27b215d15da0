package sat

import "testing"

func TestTrail_DecideThenEnqueue(t *testing.T) {
	tr := NewTrail(3)

	tr.Decide(Literal(1))
	if got := tr.CurrentLevel(); got != 1 {
		t.Fatalf("CurrentLevel() after one decision = %d, want 1", got)
	}
	if got := tr.Value(1); got != True {
		t.Errorf("Value(1) = %s, want true", got)
	}
	if got := tr.Antecedent(1); got != noAntecedent {
		t.Errorf("Antecedent(1) = %d, want noAntecedent", got)
	}

	tr.Enqueue(Literal(-2), 1, ClauseID(7))
	if got := tr.Value(2); got != False {
		t.Errorf("Value(2) = %s, want false", got)
	}
	if got := tr.Antecedent(2); got != ClauseID(7) {
		t.Errorf("Antecedent(2) = %d, want 7", got)
	}
	if got := tr.ValueOfLit(Literal(2)); got != False {
		t.Errorf("ValueOfLit(2) = %s, want false", got)
	}
	if got := tr.ValueOfLit(Literal(-2)); got != True {
		t.Errorf("ValueOfLit(-2) = %s, want true", got)
	}

	if got := tr.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestTrail_AllAssigned(t *testing.T) {
	tr := NewTrail(2)
	if tr.AllAssigned() {
		t.Fatalf("AllAssigned() = true on empty trail, want false")
	}
	tr.Decide(Literal(1))
	if tr.AllAssigned() {
		t.Fatalf("AllAssigned() = true with one of two variables set, want false")
	}
	tr.Decide(Literal(2))
	if !tr.AllAssigned() {
		t.Fatalf("AllAssigned() = false with both variables set, want true")
	}
}

func TestTrail_BacktrackTo(t *testing.T) {
	tr := NewTrail(4)

	tr.Decide(Literal(1))               // level 1
	tr.Enqueue(Literal(2), 1, ClauseID(0)) // level 1, implied
	tr.Decide(Literal(3))               // level 2
	tr.Enqueue(Literal(4), 2, ClauseID(1)) // level 2, implied

	tr.BacktrackTo(1)

	if got := tr.CurrentLevel(); got != 1 {
		t.Fatalf("CurrentLevel() after backtrack = %d, want 1", got)
	}
	if got := tr.Len(); got != 2 {
		t.Fatalf("Len() after backtrack = %d, want 2", got)
	}
	if got := tr.Value(3); got != Unknown {
		t.Errorf("Value(3) after backtrack = %s, want unknown", got)
	}
	if got := tr.Value(4); got != Unknown {
		t.Errorf("Value(4) after backtrack = %s, want unknown", got)
	}
	if got := tr.Value(1); got != True {
		t.Errorf("Value(1) after backtrack = %s, want true", got)
	}

	// Idempotent: backtracking again to the same (or higher) level is a no-op.
	tr.BacktrackTo(1)
	if got := tr.Len(); got != 2 {
		t.Errorf("Len() after redundant backtrack = %d, want 2", got)
	}
	tr.BacktrackTo(5)
	if got := tr.Len(); got != 2 {
		t.Errorf("Len() after backtrack to a higher level = %d, want 2", got)
	}
}

func TestTrail_NextPending(t *testing.T) {
	tr := NewTrail(2)
	tr.Decide(Literal(1))
	tr.Decide(Literal(2))

	lit, ok := tr.NextPending()
	if !ok || lit != 1 {
		t.Fatalf("NextPending() = (%d, %v), want (1, true)", lit, ok)
	}
	lit, ok = tr.NextPending()
	if !ok || lit != 2 {
		t.Fatalf("NextPending() = (%d, %v), want (2, true)", lit, ok)
	}
	if _, ok := tr.NextPending(); ok {
		t.Fatalf("NextPending() on drained trail: ok = true, want false")
	}
}

func TestTrail_BacktrackRewindsQhead(t *testing.T) {
	tr := NewTrail(2)
	tr.Decide(Literal(1))
	tr.Decide(Literal(2))
	tr.NextPending()
	tr.NextPending()

	tr.BacktrackTo(0)
	if _, ok := tr.NextPending(); ok {
		t.Fatalf("NextPending() after backtrack to empty trail: ok = true, want false")
	}

	tr.Decide(Literal(1))
	lit, ok := tr.NextPending()
	if !ok || lit != 1 {
		t.Fatalf("NextPending() after re-deciding = (%d, %v), want (1, true)", lit, ok)
	}
}

func TestTrail_Enqueue_panicsOnAlreadyFalse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Enqueue(): want panic when the literal is already false, got none")
		}
	}()

	tr := NewTrail(1)
	tr.Decide(Literal(1))
	tr.Enqueue(Literal(-1), 1, noAntecedent)
}
