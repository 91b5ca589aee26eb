package machine

import (
	"testing"

	"github.com/tarasstruk/gabriele/action"
	"github.com/tarasstruk/gabriele/daisy"
	"github.com/tarasstruk/gabriele/instruction"
	"github.com/tarasstruk/gabriele/queue"
)

func newTestMachine() (*Machine, *queue.Unbounded[instruction.Instruction]) {
	q := queue.NewUnbounded[instruction.Instruction]()
	db := daisy.NewHotSwappable(daisy.German())
	m := New(q, db, action.Settings{Direction: Right})
	return m, q
}

func TestPrintTwoLettersSendsOrderedInstructions(t *testing.T) {
	m, q := newTestMachine()
	if err := m.Print("AT"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	q.Close()

	var got []instruction.Instruction
	for ins := range q.Out() {
		got = append(got, ins)
	}
	want := []instruction.Instruction{
		instruction.Bytes2(36, 159),
		instruction.Bytes2(37, 159),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d instructions, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("instruction[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if pos := m.Position(); pos.X != 24 || pos.Y != 0 {
		t.Errorf("final position = %+v, want (24, 0)", pos)
	}
}

func TestOffsetShiftsBaseAndCurrent(t *testing.T) {
	m, _ := newTestMachine()
	m.Offset(4 * 12)
	if m.base.X != 4*12*12 || m.pos.X != 4*12*12 {
		t.Errorf("base=%+v pos=%+v, want both X=%d", m.base, m.pos, 4*12*12)
	}
}

func TestPrintReturnsErrChannelClosedAfterQueueClosed(t *testing.T) {
	m, q := newTestMachine()
	q.Close()
	if err := m.Print("A"); err != ErrChannelClosed {
		t.Fatalf("err = %v, want ErrChannelClosed", err)
	}
}

func TestShutdownSendsShutdownInstruction(t *testing.T) {
	m, q := newTestMachine()
	if err := m.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	got := <-q.Out()
	if got.Kind != instruction.Shutdown {
		t.Errorf("Kind = %v, want Shutdown", got.Kind)
	}
}

func TestHaltSendsHaltInstruction(t *testing.T) {
	m, q := newTestMachine()
	if err := m.Halt(); err != nil {
		t.Fatalf("Halt: %v", err)
	}
	got := <-q.Out()
	if got.Kind != instruction.Halt {
		t.Errorf("Kind = %v, want Halt", got.Kind)
	}
}

func TestPrintFillsQueueWithoutBlockingOnAConsumer(t *testing.T) {
	m, _ := newTestMachine()
	if err := m.Print("a document nobody is reading yet"); err != nil {
		t.Fatalf("Print: %v", err)
	}
}
