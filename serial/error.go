package serial

import "syscall"

// Error pairs a short message with the underlying cause, letting
// callers errors.Is/errors.As through to the syscall.Errno beneath
// while still printing something readable.
type Error struct {
	msg string
	err error
}

func (e Error) Error() string {
	if e.msg != "" {
		msg := e.msg
		if e.err != nil {
			msg += ": " + e.err.Error()
		}
		return msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

func (e Error) Unwrap() error {
	return e.err
}

// wrapErr attaches msg to e, or returns nil if e is nil. Used by
// OpenGabriele to say which step of port configuration failed.
func wrapErr(msg string, e error) error {
	if e == nil {
		return nil
	}
	return Error{
		msg: msg,
		err: e,
	}
}

// ErrClosed is returned by Port's I/O methods once Close has run.
var ErrClosed = Error{"port already closed", syscall.EBADF}
