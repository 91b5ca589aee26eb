// Package motion synthesizes carriage/platen Instruction sequences from
// coordinate deltas in micro-units. It is a pure function library: it
// knows nothing about Symbols or Positions beyond the deltas it is
// handed.
package motion

import (
	"fmt"

	"github.com/tarasstruk/gabriele/instruction"
	"github.com/tarasstruk/gabriele/position"
)

// ErrStepOverflow is returned when a requested delta's magnitude
// exceeds the wire protocol's 12-bit step-count payload (0x0FFF). This
// should never occur from normal text flow at the default resolution;
// detecting it is a programming-error safety net, not a recoverable
// condition — deltas this large are rejected outright rather than
// split across multiple commands.
type ErrStepOverflow struct {
	Delta int32
}

func (e ErrStepOverflow) Error() string {
	return fmt.Sprintf("motion: delta %d exceeds the 12-bit step payload (max 4095)", e.Delta)
}

const maxSteps = 0x0FFF

// Top nibble of each 2-byte motion command, applied to the big-endian
// 16-bit word whose low 12 bits carry the step count.
const (
	carriageForwardNibble  uint16 = 0b1100_0000_0000_0000
	carriageBackwardNibble uint16 = 0b1110_0000_0000_0000
	rollForwardNibble      uint16 = 0b1101_0000_0000_0000
	rollBackwardNibble     uint16 = 0b1111_0000_0000_0000
)

func steps(delta int32) (uint16, error) {
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	if abs > maxSteps {
		return 0, ErrStepOverflow{Delta: delta}
	}
	return uint16(abs), nil
}

// wrapMotion wraps a single motion command between a settle Idle(Short)
// and a motion-completion Idle(Long).
func wrapMotion(word uint16) []instruction.Instruction {
	return []instruction.Instruction{
		instruction.WaitShort(),
		instruction.FromUint16(word),
		instruction.WaitLong(),
	}
}

// MoveCarriage synthesizes the Instructions for a signed X delta, in
// micro-units. A zero delta yields a single Empty instruction.
func MoveCarriage(delta int32) ([]instruction.Instruction, error) {
	if delta == 0 {
		return []instruction.Instruction{instruction.EmptyInstruction()}, nil
	}
	n, err := steps(delta)
	if err != nil {
		return nil, err
	}
	if delta > 0 {
		return wrapMotion(n | carriageForwardNibble), nil
	}
	return wrapMotion(n | carriageBackwardNibble), nil
}

// MovePaper synthesizes the Instructions for a signed Y delta, in
// micro-units. A zero delta yields a single Empty instruction.
func MovePaper(delta int32) ([]instruction.Instruction, error) {
	if delta == 0 {
		return []instruction.Instruction{instruction.EmptyInstruction()}, nil
	}
	n, err := steps(delta)
	if err != nil {
		return nil, err
	}
	if delta > 0 {
		return wrapMotion(n | rollForwardNibble), nil
	}
	return wrapMotion(n | rollBackwardNibble), nil
}

// MoveRelative chains MoveCarriage(x) then MovePaper(y).
func MoveRelative(x, y int32) ([]instruction.Instruction, error) {
	carriage, err := MoveCarriage(x)
	if err != nil {
		return nil, err
	}
	paper, err := MovePaper(y)
	if err != nil {
		return nil, err
	}
	return append(carriage, paper...), nil
}

// MoveAbsolute computes the delta from actual to target and delegates
// to MoveRelative.
func MoveAbsolute(actual, target position.Position) ([]instruction.Instruction, error) {
	x, y := target.Diff(actual)
	return MoveRelative(x, y)
}

// SpaceJumpRight is the machine's built-in "advance one column right"
// command.
func SpaceJumpRight() instruction.Instruction {
	return instruction.Bytes2(0x83, 0x00)
}

// SpaceJumpLeft is the machine's built-in "advance one column left"
// command.
func SpaceJumpLeft() instruction.Instruction {
	return instruction.Bytes2(0x84, 0x00)
}
