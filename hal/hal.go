// Package hal is the consumer half of the producer/consumer split: a
// dedicated worker that drains instruction.Instruction values from a
// channel and drives a Duplex byte link with the pacing and handshake
// the physical typewriter requires. It never shares mutable state with
// the producer except through the channel.
package hal

import (
	"errors"
	"time"

	"github.com/golang/glog"

	"github.com/tarasstruk/gabriele/instruction"
)

// Duplex is the opaque byte-oriented link the Runner drives: something
// that can be written to, read from with a deadline, and whose CTS
// modem line can be queried. serial.Link implements it on Linux; tests
// use an in-memory fake.
type Duplex interface {
	Write(p []byte) (int, error)
	ReadByte(timeout time.Duration) (byte, bool, error)
	CTS() (bool, error)
}

// Handshake selects the acknowledge/pacing scheme the physical machine
// expects between SendBytes writes. Two hardware variants exist
// (CTS-poll and RI/DTR-toggle); which one applies depends on how the
// typewriter is wired and must be chosen in configuration.
type Handshake interface {
	// AwaitByteAck is called after writing one byte of a SendBytes
	// command; it blocks until the machine signals it is ready for the
	// next byte, or returns an error if it times out.
	AwaitByteAck(d Duplex) error
}

// ErrNoAcknowledge is returned when the Prepare handshake never sees a
// status reply.
var ErrNoAcknowledge = errors.New("hal: device did not acknowledge prepare handshake")

// ErrUnexpectedStatus is returned when the device reports 0xA0 (off-line)
// where an on-line acknowledge was expected.
var ErrUnexpectedStatus = errors.New("hal: device reported unexpected status")

// ErrHandshakeTimeout is returned when a per-byte pacing signal never
// arrives: CTS never asserted within 5s is a fatal condition.
var ErrHandshakeTimeout = errors.New("hal: handshake line never asserted")

const (
	statusOK   = 0xA1
	statusOff  = 0xA0
	prepareLine1 = 0xA1
	prepareAck   = 0xA4
	prepareLine2 = 0xA2
	shutdownStop = 0xA3
	shutdownOff  = 0xA0

	prepareStatusPolls = 10
	ctsPollMax         = 1000
	ctsPollInterval    = 5 * time.Millisecond
	interByteWait      = 10 * time.Millisecond
	ctsSettle          = 5 * time.Millisecond
	postCommandWait    = 50 * time.Millisecond
)

// Runner owns the Duplex exclusively and drains Instructions from a
// channel until Shutdown, Halt, or the channel closes.
type Runner struct {
	link      Duplex
	handshake Handshake
	in        <-chan instruction.Instruction
}

// NewRunner builds a Runner over link, paced by handshake, consuming
// from in.
func NewRunner(link Duplex, handshake Handshake, in <-chan instruction.Instruction) *Runner {
	return &Runner{link: link, handshake: handshake, in: in}
}

// Run is the Runner's single-threaded cooperative event loop. It
// returns nil on a graceful Shutdown or a closed channel, and a non-nil
// error on any fatal device condition.
func (r *Runner) Run() error {
	for {
		ins, ok := <-r.in
		if !ok {
			glog.Infof("hal: instruction channel closed, exiting")
			return nil
		}
		switch ins.Kind {
		case instruction.Prepare:
			if err := r.prepare(); err != nil {
				return err
			}
		case instruction.SendBytes:
			if err := r.sendBytes(ins.Bytes); err != nil {
				return err
			}
		case instruction.Idle:
			time.Sleep(time.Duration(ins.Millis) * time.Millisecond)
		case instruction.Empty:
			continue
		case instruction.Shutdown:
			return r.shutdown()
		case instruction.Halt:
			glog.Infof("hal: halt, exiting immediately")
			return nil
		}
	}
}

// prepare runs the start-up handshake: go on-line, poll for
// acknowledge, then begin accepting print commands. Every byte is
// paced through the same handshake discipline sendBytes uses — the
// machine is just as capable of withholding CTS during Prepare as it
// is mid-document.
func (r *Runner) prepare() error {
	if err := r.writeCommand(prepareLine1, 0x00); err != nil {
		return err
	}
	if err := r.writeCommand(prepareAck, 0x00); err != nil {
		return err
	}
	ok, err := r.pollStatus()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoAcknowledge
	}
	if err := r.writeCommand(prepareLine2, 0x00); err != nil {
		return err
	}
	glog.Infof("hal: prepare handshake complete")
	return nil
}

// pollStatus reads up to prepareStatusPolls bytes, TINY_MS apart,
// looking for the device's acknowledge (0xA1 ok, 0xA0 fatal).
func (r *Runner) pollStatus() (bool, error) {
	for i := 0; i < prepareStatusPolls; i++ {
		b, got, err := r.link.ReadByte(time.Duration(instruction.TinyMS) * time.Millisecond)
		if err != nil {
			return false, err
		}
		if got {
			switch b {
			case statusOK:
				return true, nil
			case statusOff:
				return false, ErrUnexpectedStatus
			}
		}
	}
	return false, nil
}

// writeByte writes a single byte after the standard inter-byte wait,
// optionally blocking on the handshake's per-byte acknowledge.
func (r *Runner) writeByte(b byte, awaitAck bool) error {
	time.Sleep(interByteWait)
	if _, err := r.link.Write([]byte{b}); err != nil {
		return err
	}
	if !awaitAck {
		return nil
	}
	return r.handshake.AwaitByteAck(r.link)
}

// writeCommand writes every byte of bytes through writeByte with
// handshake pacing, then settles for postCommandWait.
func (r *Runner) writeCommand(bytes ...byte) error {
	for _, b := range bytes {
		if err := r.writeByte(b, true); err != nil {
			return err
		}
	}
	time.Sleep(postCommandWait)
	return nil
}

// sendBytes writes both bytes of a SendBytes instruction, pacing each
// with the handshake scheme, then settles for postCommandWait.
func (r *Runner) sendBytes(bytes [2]byte) error {
	return r.writeCommand(bytes[0], bytes[1])
}

// shutdown runs the graceful power-down sequence. The stop-accepting
// and go-offline-request bytes are paced like any other command; the
// machine stops asserting CTS only after the go-offline byte lands, so
// the trailing 0x00 is written without waiting on the handshake.
func (r *Runner) shutdown() error {
	time.Sleep(time.Duration(instruction.LongMS) * time.Millisecond)
	if err := r.writeCommand(shutdownStop, 0x00); err != nil {
		return err
	}
	if err := r.writeByte(shutdownOff, true); err != nil {
		return err
	}
	if err := r.writeByte(0x00, false); err != nil {
		return err
	}
	glog.Infof("hal: shutdown complete")
	return nil
}

// CTSHandshake busy-polls the CTS modem line after each byte write.
// It is the default pacing scheme.
type CTSHandshake struct{}

func (CTSHandshake) AwaitByteAck(d Duplex) error {
	for i := 0; i < ctsPollMax; i++ {
		asserted, err := d.CTS()
		if err != nil {
			return err
		}
		if asserted {
			time.Sleep(ctsSettle)
			return nil
		}
		time.Sleep(ctsPollInterval)
	}
	return ErrHandshakeTimeout
}

// RIHandshake is the alternative scheme observed on some machines: DTR
// toggled low for 1ms between bytes latches the next-byte request,
// signaled back via the Ring Indicator line rather than CTS.
type RIHandshake struct {
	// ToggleDTR pulses DTR low for 1ms and returns the RI line's
	// asserted state after the pulse.
	ToggleDTR func() (bool, error)
}

func (h RIHandshake) AwaitByteAck(d Duplex) error {
	for i := 0; i < ctsPollMax; i++ {
		asserted, err := h.ToggleDTR()
		if err != nil {
			return err
		}
		if asserted {
			return nil
		}
		time.Sleep(ctsPollInterval)
	}
	return ErrHandshakeTimeout
}
