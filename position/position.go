// Package position tracks the printing element's coordinates against
// the paper coordinate system and the micro-unit resolution of a single
// column/row step.
package position

// Default resolution, in micro-units per column (X) and per row (Y).
const (
	DefaultXResolution int32 = 12
	DefaultYResolution int32 = 16
)

// Resolution is the micro-unit step size of one column and one row.
// It is immutable for the lifetime of a machine session.
type Resolution struct {
	X int32
	Y int32
}

// DefaultResolution is the Gabriele 9009's native step size.
var DefaultResolution = Resolution{X: DefaultXResolution, Y: DefaultYResolution}

// Position is a point in the paper coordinate system, in micro-units.
// The origin (0, 0) is the top-left corner. X grows rightward, Y grows
// downward.
type Position struct {
	X int32
	Y int32
}

// Jump overwrites the position in place with new's coordinates.
func (p *Position) Jump(new Position) {
	p.X = new.X
	p.Y = new.Y
}

// Diff returns (Δx, Δy) of p relative to base.
func (p Position) Diff(base Position) (int32, int32) {
	return p.X - base.X, p.Y - base.Y
}

// StepRight returns a copy of p moved one column to the right.
func (p Position) StepRight(res Resolution) Position {
	p.X += res.X
	return p
}

// StepLeft returns a copy of p moved one column to the left.
func (p Position) StepLeft(res Resolution) Position {
	p.X -= res.X
	return p
}

// Newline returns p with Y advanced by one row and X unchanged — the
// bare line feed, not used to realize a physical carriage return.
func (p Position) Newline(res Resolution) Position {
	p.Y += res.Y
	return p
}

// CR returns the position reached by a physical carriage return: Y
// advances one row and X resets to base's home column.
func (p Position) CR(base Position, res Resolution) Position {
	return Position{X: base.X, Y: p.Y + res.Y}
}

// CRMultiple is CR but drops k lines at once, for run-length-coalesced
// newlines.
func (p Position) CRMultiple(base Position, k int32, res Resolution) Position {
	return Position{X: base.X, Y: p.Y + res.Y*k}
}

// IncrementX returns p shifted right by ratio columns.
func (p Position) IncrementX(ratio int32, res Resolution) Position {
	p.X += res.X * ratio
	return p
}

// DecrementX returns p shifted left by ratio columns.
func (p Position) DecrementX(ratio int32, res Resolution) Position {
	p.X -= res.X * ratio
	return p
}
