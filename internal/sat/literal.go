package sat

import "fmt"

// Var identifies a Boolean variable. Variables are numbered 1..=N; there is
// no variable 0.
type Var int32

// Literal is a signed, nonzero reference to a variable: its absolute value
// is the variable, and its sign is the polarity (positive means the
// variable must be true to satisfy the literal).
type Literal int32

// NewLiteral returns the literal of v with the given polarity.
func NewLiteral(v Var, positive bool) Literal {
	if positive {
		return Literal(v)
	}
	return Literal(-v)
}

// Var returns the variable referenced by l.
func (l Literal) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// IsPositive reports whether l asserts its variable rather than its negation.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Negate returns the complement of l.
func (l Literal) Negate() Literal {
	return -l
}

// index returns a dense, 0-based slot suitable for indexing per-literal
// slices (assignment cache, watcher lists): variable v maps to the pair of
// consecutive slots [2*(v-1), 2*(v-1)+1], positive literal first.
func (l Literal) index() int {
	slot := 2 * (int(l.Var()) - 1)
	if !l.IsPositive() {
		slot++
	}
	return slot
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("-%d", l.Var())
}
