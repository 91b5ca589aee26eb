package serial

import (
	"time"
)

// OpenGabriele opens path and configures it 8N1 @ 4800 baud with no
// software flow control, as the Olympia Gabriele 9009 typewriter
// protocol requires — the hal.Runner drives the machine's own hardware
// handshake (CTS or RI/DTR) directly over the modem-control lines
// instead.
func OpenGabriele(path string) (*Port, error) {
	p, err := Open(path, NewOptions())
	if err != nil {
		return nil, wrapErr("serial: opening "+path, err)
	}
	attrs, err := p.GetAttr()
	if err != nil {
		p.Close()
		return nil, wrapErr("serial: reading termios for "+path, err)
	}
	attrs.MakeRaw()
	attrs.Cflag &= ^(CSIZE | PARENB | CSTOPB)
	attrs.Cflag |= CS8 | CREAD | CLOCAL
	attrs.SetSpeed(B4800)
	if err := p.SetAttr(TCSANOW, attrs); err != nil {
		p.Close()
		return nil, wrapErr("serial: applying termios for "+path, err)
	}
	return p, nil
}

// Link adapts a Port to hal.Duplex: byte-at-a-time writes, a
// deadline-bounded single-byte read, and a CTS line query. It is the
// concrete backend the hal.Runner drives in production.
type Link struct {
	*Port
}

// timeoutError is implemented by fdev/poll's wait-timeout errors.
type timeoutError interface {
	Timeout() bool
}

// ReadByte reads a single byte with the given timeout. It reports
// (0, false, nil) on a timeout, matching hal.Duplex's contract for "no
// byte arrived in time" versus a hard I/O error.
func (l Link) ReadByte(timeout time.Duration) (byte, bool, error) {
	var buf [1]byte
	n, err := l.Port.ReadTimeout(buf[:], timeout)
	if err != nil {
		if te, ok := err.(timeoutError); ok && te.Timeout() {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// CTS reports whether the Clear-To-Send modem line is currently
// asserted.
func (l Link) CTS() (bool, error) {
	lines, err := l.Port.GetModemLines()
	if err != nil {
		return false, err
	}
	return lines&TIOCM_CTS != 0, nil
}
