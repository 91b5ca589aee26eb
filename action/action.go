// Package action compiles one Symbol into the ordered Instructions that
// render it and the Position the machine reaches afterward. It is the
// producer side's core: the Machine facade calls Instructions for every
// Symbol that daisy.Db.Printables streams out, in order.
package action

import (
	"github.com/tarasstruk/gabriele/instruction"
	"github.com/tarasstruk/gabriele/motion"
	"github.com/tarasstruk/gabriele/position"
	"github.com/tarasstruk/gabriele/symbol"
)

// Settings carries the session-wide printing configuration — currently
// just the carriage direction.
type Settings struct {
	Direction symbol.Direction
}

// DirectionSign returns +1 for Right, -1 for Left, matching
// i32::from(PrintingDirection) in the original design.
func (s Settings) DirectionSign() int32 {
	return int32(s.Direction)
}

// Action binds one Symbol to the Settings and Resolution it must be
// rendered under.
type Action struct {
	Symbol     symbol.Symbol
	Settings   Settings
	Resolution position.Resolution
}

// New builds an Action for sym.
func New(sym symbol.Symbol, settings Settings, res position.Resolution) Action {
	return Action{Symbol: sym, Settings: settings, Resolution: res}
}

// multiFactor is the symbol's run-length count, or 1 if unset.
func (a Action) multiFactor() int32 {
	if a.Symbol.RepeatTimes == 0 {
		return 1
	}
	return int32(a.Symbol.RepeatTimes)
}

func (a Action) isSingle() bool {
	return a.multiFactor() == 1
}

// NextPosition returns the Position the machine reaches after
// rendering a.Symbol, given the current position and the base
// (home-column) position used by carriage-return symbols.
func (a Action) NextPosition(base, current position.Position) position.Position {
	switch a.Symbol.Act {
	case symbol.Print:
		if a.Settings.Direction == symbol.Left {
			return current.DecrementX(a.Symbol.XPositionsIncrement(), a.Resolution)
		}
		return current.IncrementX(a.Symbol.XPositionsIncrement(), a.Resolution)
	case symbol.ActWhitespace:
		return current.IncrementX(a.multiFactor()*a.Settings.DirectionSign(), a.Resolution)
	default: // ActCarriageReturn
		return current.CRMultiple(base, a.multiFactor(), a.Resolution)
	}
}

// whitespaceInstructions picks the cheap single-space jump for a lone
// whitespace character, or a coordinate-jump motion for a coalesced
// run of them.
func (a Action) whitespaceInstructions(old, next position.Position) ([]instruction.Instruction, error) {
	if a.isSingle() {
		if a.Settings.Direction == symbol.Left {
			return []instruction.Instruction{motion.SpaceJumpLeft()}, nil
		}
		return []instruction.Instruction{motion.SpaceJumpRight()}, nil
	}
	return motion.MoveAbsolute(old, next)
}

// Instructions computes the Instructions to render a.Symbol and
// advances current in place to the Position reached afterward. base is
// the home column for carriage-return symbols.
func (a Action) Instructions(base position.Position, current *position.Position) ([]instruction.Instruction, error) {
	old := *current
	next := a.NextPosition(base, old)
	current.Jump(next)

	switch a.Symbol.Act {
	case symbol.Print:
		return a.Symbol.Instructions(a.Settings.Direction), nil
	case symbol.ActWhitespace:
		return a.whitespaceInstructions(old, next)
	default: // ActCarriageReturn
		return motion.MoveAbsolute(old, next)
	}
}
