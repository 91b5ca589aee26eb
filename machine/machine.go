// Package machine is the Machine facade: the producer-side owner of
// the current Position and Settings, and the sender half of the
// channel connecting the Action compiler to the hal.Runner. It is the
// only thing the CLI and REPL touch directly.
package machine

import (
	"fmt"

	"github.com/tarasstruk/gabriele/action"
	"github.com/tarasstruk/gabriele/daisy"
	"github.com/tarasstruk/gabriele/instruction"
	"github.com/tarasstruk/gabriele/position"
	"github.com/tarasstruk/gabriele/queue"
	"github.com/tarasstruk/gabriele/symbol"
)

// PrintingDirection mirrors symbol.Direction — Right (+1) or Left (−1).
// It is the public name the rest of the codebase (outside the
// symbol/action internals) uses for carriage direction.
type PrintingDirection = symbol.Direction

const (
	Right = symbol.Right
	Left  = symbol.Left
)

// ErrChannelClosed is returned by Print/Shutdown/Halt/Prepare when the
// instruction queue has already been closed. A HAL worker that has
// exited while the queue is still open is not detected here: sends keep
// succeeding and the values stay buffered in the queue.
var ErrChannelClosed = fmt.Errorf("machine: instruction channel receiver is gone")

// Machine is the producer-side facade: it owns the current and base
// Position, the printing Settings, the active wheel database, and the
// unbounded queue feeding the HAL. A long document fills the queue and
// returns without ever blocking on a byte actually reaching the wire.
type Machine struct {
	out        *queue.Unbounded[instruction.Instruction]
	db         *daisy.HotSwappable
	settings   action.Settings
	resolution position.Resolution
	base       position.Position
	pos        position.Position
}

// New builds a Machine that sends onto out, looks characters up in db,
// and starts at the paper origin.
func New(out *queue.Unbounded[instruction.Instruction], db *daisy.HotSwappable, settings action.Settings) *Machine {
	return &Machine{
		out:        out,
		db:         db,
		settings:   settings,
		resolution: position.DefaultResolution,
	}
}

// send pushes ins onto the queue, converting a send-on-closed-queue
// panic into ErrChannelClosed.
func (m *Machine) send(ins instruction.Instruction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrChannelClosed
		}
	}()
	m.out.Send(ins)
	return nil
}

// Offset shifts both the base and current position right by cols
// columns — used once at startup to move off the physical left margin
// stop.
func (m *Machine) Offset(cols int32) {
	shift := cols * m.resolution.X
	m.base.X += shift
	m.pos.X += shift
}

// Position returns the machine's current position, for diagnostics.
func (m *Machine) Position() position.Position {
	return m.pos
}

// Print compiles text into Instructions via the active wheel database
// and the Action compiler, and sends them onto the channel in order.
func (m *Machine) Print(text string) error {
	for _, sym := range m.db.Current().Printables(text) {
		act := action.New(sym, m.settings, m.resolution)
		instructions, err := act.Instructions(m.base, &m.pos)
		if err != nil {
			return err
		}
		for _, ins := range instructions {
			if err := m.send(ins); err != nil {
				return err
			}
		}
	}
	return nil
}

// Shutdown sends the graceful power-down instruction.
func (m *Machine) Shutdown() error {
	return m.send(instruction.Instruction{Kind: instruction.Shutdown})
}

// Halt sends the immediate-termination instruction.
func (m *Machine) Halt() error {
	return m.send(instruction.Instruction{Kind: instruction.Halt})
}

// Prepare sends the start-up handshake instruction.
func (m *Machine) Prepare() error {
	return m.send(instruction.Instruction{Kind: instruction.Prepare})
}
