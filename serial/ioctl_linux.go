package serial

import (
	ioctl "github.com/daedaluz/goioctl"
	"unsafe"
)

// Only the ioctl numbers Port actually issues are named here: termios
// get/set, modem-line query/enable/disable, and the pseudoterminal
// trio OpenPTY needs to unlock and hand off the peer. The kernel's
// tty_ioctl(4) table has dozens more (break control, RS-485, line
// flushing); this driver never calls them.
var (
	tcgets = uintptr(0x5401)
	tcsets = uintptr(0x5402)

	tiocmget = uintptr(0x5415) // get status
	tiocmbis = uintptr(0x5416) // set indicated bits
	tiocmbic = uintptr(0x5417) // clear indicated bits

	tiocswinsz = uintptr(0x5414)
	tiocgwinsz = uintptr(0x5413)

	tiocsptlck  = ioctl.IOW('T', 0x31, unsafe.Sizeof(int32(0)))
	tiocgptpeer = ioctl.IO('T', 0x41)
)
