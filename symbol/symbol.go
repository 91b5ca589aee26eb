// Package symbol models the semantic unit the Action compiler consumes:
// a Symbol derived from one or more runes, carrying the ordered petal
// strikes (Signs) needed to render it, possibly coalesced over a run of
// identical repeated characters.
package symbol

import (
	"github.com/tarasstruk/gabriele/impression"
	"github.com/tarasstruk/gabriele/instruction"
)

// Direction is the printing direction of the carriage. It mirrors
// machine.PrintingDirection without importing it, to avoid a cycle —
// the two packages agree on the +1/-1 encoding.
type Direction int8

const (
	Right Direction = 1
	Left  Direction = -1
)

// AfterSymbolPrinted is the carriage behavior following one petal
// strike.
type AfterSymbolPrinted uint8

const (
	// MoveRight is the default: carriage advances one column right.
	MoveRight AfterSymbolPrinted = 0b1000_0000
	// MoveLeft: carriage advances one column left.
	MoveLeft AfterSymbolPrinted = 0b1100_0000
	// HoldOn: carriage stays put. Must be followed by a Sign that moves,
	// or the carriage is stuck on that column indefinitely.
	HoldOn AfterSymbolPrinted = 0b0000_0000
)

// Invert swaps MoveRight/MoveLeft; HoldOn is a fixed point.
func (a AfterSymbolPrinted) Invert() AfterSymbolPrinted {
	switch a {
	case MoveRight:
		return MoveLeft
	case MoveLeft:
		return MoveRight
	default:
		return a
	}
}

// WithDirection inverts a for a Left printing direction; Right is the
// identity.
func (a AfterSymbolPrinted) WithDirection(dir Direction) AfterSymbolPrinted {
	if dir == Left {
		return a.Invert()
	}
	return a
}

// Value is the byte-2 high-bits encoding of a.
func (a AfterSymbolPrinted) Value() uint8 {
	return uint8(a)
}

// ActionMapping classifies what kind of Action a Symbol produces.
type ActionMapping uint8

const (
	Print ActionMapping = iota
	ActWhitespace
	ActCarriageReturn
)

// Sign is a single strike on the wheel: which petal, how hard, and what
// the carriage does afterward.
type Sign struct {
	Idx   uint8
	Imp   impression.Impression
	After AfterSymbolPrinted
}

// BuildInstruction renders the Sign as a SendBytes Instruction for the
// given printing direction.
func (s Sign) BuildInstruction(dir Direction) instruction.Instruction {
	b2 := s.Imp.Value() | s.After.WithDirection(dir).Value()
	return instruction.Bytes2(s.Idx, b2)
}

// Symbol is the unit the Action compiler turns into Instructions: one
// or two Signs (two for a dead-key composite), the source character,
// its ActionMapping, and an optional run-length count when adjacent
// identical input characters were coalesced.
type Symbol struct {
	Signs       []Sign
	Character   rune
	Act         ActionMapping
	RepeatTimes int // 0 means "unset"; valid values are >= 2 when set.
}

// New starts building a Print symbol for character.
func New(character rune) Symbol {
	return Symbol{Character: character, Signs: make([]Sign, 0, 2)}
}

// Petal appends a bare Sign striking petal idx with default impression
// and MoveRight behavior.
func (s Symbol) Petal(idx uint8) Symbol {
	s.Signs = append(s.Signs, Sign{Idx: idx, After: MoveRight})
	return s
}

// Grave adds a grave accent mark (e.g. à), turning the base Sign into a
// HoldOn strike followed by a Mild MoveRight strike on the grave petal
// (72 on the German wheel).
func (s Symbol) Grave() Symbol {
	return s.accent(72)
}

// Acute adds an acute accent mark (e.g. é), using petal 14.
func (s Symbol) Acute() Symbol {
	return s.accent(14)
}

func (s Symbol) accent(markIdx uint8) Symbol {
	s.Signs[0].After = HoldOn
	s.Signs = append(s.Signs, Sign{Idx: markIdx, Imp: impression.Mild, After: MoveRight})
	return s
}

// Whitespace builds the Whitespace Symbol for a single space character.
func Whitespace() Symbol {
	s := New(' ')
	s.Act = ActWhitespace
	return s
}

// CR builds the CarriageReturn Symbol for a newline character.
func CR() Symbol {
	s := New('\n')
	s.Act = ActCarriageReturn
	return s
}

// Imp sets the impression of every Sign in the Symbol.
func (s Symbol) Imp(imp impression.Impression) Symbol {
	for i := range s.Signs {
		s.Signs[i].Imp = imp
	}
	return s
}

// AfterPrinted sets the After behavior of every Sign in the Symbol.
func (s Symbol) AfterPrinted(after AfterSymbolPrinted) Symbol {
	for i := range s.Signs {
		s.Signs[i].After = after
	}
	return s
}

func (s Symbol) Mild() Symbol   { return s.Imp(impression.Mild) }
func (s Symbol) Strong() Symbol { return s.Imp(impression.Strong) }
func (s Symbol) Hold() Symbol   { return s.AfterPrinted(HoldOn) }
func (s Symbol) Left() Symbol   { return s.AfterPrinted(MoveLeft) }

// repeatCount is RepeatTimes if set, otherwise 1.
func (s Symbol) repeatCount() int {
	if s.RepeatTimes == 0 {
		return 1
	}
	return s.RepeatTimes
}

// Instructions renders every Sign of s, repeated RepeatTimes (or once),
// in order, for the given printing direction.
func (s Symbol) Instructions(dir Direction) []instruction.Instruction {
	times := s.repeatCount()
	out := make([]instruction.Instruction, 0, len(s.Signs)*times)
	for i := 0; i < times; i++ {
		for _, sign := range s.Signs {
			out = append(out, sign.BuildInstruction(dir))
		}
	}
	return out
}

// XPositionsIncrement sums, over every Sign (HoldOn ↦ 0, MoveRight ↦
// +1, MoveLeft ↦ -1), multiplied by the run-length repeat count — the
// number of columns one rendering of this Print symbol advances.
func (s Symbol) XPositionsIncrement() int32 {
	var x int32
	for _, sign := range s.Signs {
		switch sign.After {
		case MoveLeft:
			x--
		case MoveRight:
			x++
		}
	}
	return x * int32(s.repeatCount())
}
