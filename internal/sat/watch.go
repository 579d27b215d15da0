package sat

// watcherIndex maps each literal to the clauses currently watching it.
// Invariant W: a clause of size >= 2 appears in the watcher lists of
// exactly its two watched literals, C.lits[C.w1] and C.lits[C.w2].
type watcherIndex struct {
	lists [][]ClauseID // indexed by Literal.index()
}

func newWatcherIndex(numVars int) *watcherIndex {
	return &watcherIndex{lists: make([][]ClauseID, 2*numVars)}
}

// Watch registers clause id in the watcher list of l.
func (w *watcherIndex) Watch(l Literal, id ClauseID) {
	i := l.index()
	w.lists[i] = append(w.lists[i], id)
}

// list returns the watcher list of l for in-place iteration and mutation.
func (w *watcherIndex) list(l Literal) []ClauseID {
	return w.lists[l.index()]
}

// setList replaces the watcher list of l, e.g. after a swap-remove pass.
func (w *watcherIndex) setList(l Literal, ids []ClauseID) {
	w.lists[l.index()] = ids
}
