package motion

import (
	"reflect"
	"testing"

	"github.com/tarasstruk/gabriele/instruction"
	"github.com/tarasstruk/gabriele/position"
)

func TestSpaceJumps(t *testing.T) {
	if got, want := SpaceJumpRight(), instruction.Bytes2(0x83, 0x00); got != want {
		t.Errorf("SpaceJumpRight() = %+v, want %+v", got, want)
	}
	if got, want := SpaceJumpLeft(), instruction.Bytes2(0x84, 0x00); got != want {
		t.Errorf("SpaceJumpLeft() = %+v, want %+v", got, want)
	}
}

func TestMoveCarriageZeroIsEmpty(t *testing.T) {
	got, err := MoveCarriage(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []instruction.Instruction{instruction.EmptyInstruction()}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MoveCarriage(0) = %+v, want %+v", got, want)
	}
}

func TestMoveCarriageRightOneColumn(t *testing.T) {
	got, err := MoveCarriage(position.DefaultXResolution)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []instruction.Instruction{
		instruction.WaitShort(),
		instruction.Bytes2(0xC0, 12),
		instruction.WaitLong(),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MoveCarriage(+12) = %+v, want %+v", got, want)
	}
}

func TestMoveCarriageLeftOneColumn(t *testing.T) {
	got, err := MoveCarriage(-position.DefaultXResolution)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []instruction.Instruction{
		instruction.WaitShort(),
		instruction.Bytes2(0xE0, 12),
		instruction.WaitLong(),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MoveCarriage(-12) = %+v, want %+v", got, want)
	}
}

func TestMovePaperDownUp(t *testing.T) {
	down, err := MovePaper(position.DefaultYResolution)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDown := []instruction.Instruction{
		instruction.WaitShort(),
		instruction.Bytes2(0xD0, 16),
		instruction.WaitLong(),
	}
	if !reflect.DeepEqual(down, wantDown) {
		t.Errorf("MovePaper(+16) = %+v, want %+v", down, wantDown)
	}

	up, err := MovePaper(-position.DefaultYResolution)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantUp := []instruction.Instruction{
		instruction.WaitShort(),
		instruction.Bytes2(0xF0, 16),
		instruction.WaitLong(),
	}
	if !reflect.DeepEqual(up, wantUp) {
		t.Errorf("MovePaper(-16) = %+v, want %+v", up, wantUp)
	}
}

func TestMoveRelativeChainsCarriageThenPaper(t *testing.T) {
	got, err := MoveRelative(120, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []instruction.Instruction{
		instruction.WaitShort(),
		instruction.Bytes2(0xC0, 120),
		instruction.WaitLong(),
		instruction.WaitShort(),
		instruction.Bytes2(0xD0, 32),
		instruction.WaitLong(),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MoveRelative(120, 32) = %+v, want %+v", got, want)
	}
}

func TestMoveAbsoluteDelegatesToRelative(t *testing.T) {
	from := position.Position{X: 0, Y: 0}
	to := position.Position{X: -12, Y: 16}
	got, err := MoveAbsolute(from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := MoveRelative(-12, 16)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MoveAbsolute = %+v, want %+v", got, want)
	}
}

func TestStepOverflowIsDetected(t *testing.T) {
	if _, err := MoveCarriage(0x1000); err == nil {
		t.Fatal("expected ErrStepOverflow, got nil")
	}
	if _, err := MovePaper(-0x1000); err == nil {
		t.Fatal("expected ErrStepOverflow, got nil")
	}
}
