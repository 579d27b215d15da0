package sat

import "testing"

func TestClauseStore_Add_valid(t *testing.T) {
	cs := &ClauseStore{}

	id, err := cs.Add([]Literal{1, -2, 3}, false)
	if err != nil {
		t.Fatalf("Add(): unexpected error: %s", err)
	}
	if id != 0 {
		t.Errorf("Add(): first clause got ID %d, want 0", id)
	}

	c := cs.Clause(id)
	if len(c.literals) != 3 {
		t.Fatalf("Clause(): got %d literals, want 3", len(c.literals))
	}
	if c.w1 != 0 || c.w2 != 1 {
		t.Errorf("Clause(): initial watches = (%d, %d), want (0, 1)", c.w1, c.w2)
	}
	if c.learnt {
		t.Errorf("Clause(): learnt = true, want false")
	}

	id2, err := cs.Add([]Literal{5}, true)
	if err != nil {
		t.Fatalf("Add(): unexpected error: %s", err)
	}
	if id2 != 1 {
		t.Errorf("Add(): second clause got ID %d, want 1", id2)
	}
	if cs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cs.Len())
	}
	if !cs.Clause(id2).learnt {
		t.Errorf("Clause(): learnt = false, want true")
	}
}

func TestClauseStore_Add_unitWatchIndices(t *testing.T) {
	cs := &ClauseStore{}
	id, err := cs.Add([]Literal{7}, false)
	if err != nil {
		t.Fatalf("Add(): unexpected error: %s", err)
	}
	c := cs.Clause(id)
	if c.w1 != 0 || c.w2 != 0 {
		t.Errorf("unit clause watches = (%d, %d), want (0, 0)", c.w1, c.w2)
	}
}

func TestClauseStore_Add_rejectsZeroSentinel(t *testing.T) {
	cs := &ClauseStore{}
	if _, err := cs.Add([]Literal{1, 0, 2}, false); err == nil {
		t.Errorf("Add(): want error for zero literal, got none")
	}
}

func TestClauseStore_Add_rejectsDuplicate(t *testing.T) {
	cs := &ClauseStore{}
	if _, err := cs.Add([]Literal{1, 2, 1}, false); err == nil {
		t.Errorf("Add(): want error for duplicate literal, got none")
	}
}

func TestClauseStore_Add_rejectsComplementary(t *testing.T) {
	cs := &ClauseStore{}
	if _, err := cs.Add([]Literal{1, 2, -1}, false); err == nil {
		t.Errorf("Add(): want error for complementary literals, got none")
	}
}

func TestClauseStore_Add_copiesInput(t *testing.T) {
	cs := &ClauseStore{}
	lits := []Literal{1, 2}
	id, err := cs.Add(lits, false)
	if err != nil {
		t.Fatalf("Add(): unexpected error: %s", err)
	}
	lits[0] = 99
	if got := cs.Clause(id).literals[0]; got != 1 {
		t.Errorf("Clause() literals alias caller slice: got %d, want 1", got)
	}
}

func TestClauseStore_ForEach(t *testing.T) {
	cs := &ClauseStore{}
	cs.Add([]Literal{1, 2}, false)
	cs.Add([]Literal{3, 4}, false)
	cs.Add([]Literal{5, 6}, false)

	var visited []ClauseID
	cs.ForEach(func(id ClauseID, lits []Literal) bool {
		visited = append(visited, id)
		return id != 1 // stop after the second clause
	})
	if len(visited) != 2 {
		t.Fatalf("ForEach(): visited %d clauses, want 2", len(visited))
	}
}
