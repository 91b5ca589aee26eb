// Package instruction defines Gabriele's wire language: the small set of
// primitive directives exchanged between the Action compiler (the
// producer) and the HAL (the consumer) over a channel, plus the 2-byte
// big-endian command encoding the HAL ultimately writes to the serial
// port.
package instruction

// Standard delays, in milliseconds, bracketing motion and settle time.
const (
	LongMS  uint64 = 1000
	ShortMS uint64 = 200
	TinyMS  uint64 = 50
)

// Kind discriminates the Instruction sum type.
type Kind uint8

const (
	// Prepare runs the machine start-up handshake.
	Prepare Kind = iota
	// SendBytes transmits exactly two bytes.
	SendBytes
	// Idle busy-waits/sleeps on the consumer for Millis milliseconds.
	Idle
	// Empty is a no-op flush marker.
	Empty
	// Shutdown is a graceful power-down; terminates the consumer.
	Shutdown
	// Halt is an immediate termination without the shutdown sequence.
	Halt
)

// Instruction is one directive sent from the Action compiler to the HAL.
type Instruction struct {
	Kind   Kind
	Bytes  [2]byte
	Millis uint64
}

// Bytes2 builds a SendBytes instruction from two literal bytes.
func Bytes2(b1, b2 byte) Instruction {
	return Instruction{Kind: SendBytes, Bytes: [2]byte{b1, b2}}
}

// FromUint16 builds a SendBytes instruction from a big-endian 16-bit
// command word, matching the wire protocol's MSB-first framing.
func FromUint16(value uint16) Instruction {
	return Instruction{Kind: SendBytes, Bytes: [2]byte{byte(value >> 8), byte(value)}}
}

// WaitShort, WaitTiny and WaitLong build the three standard Idle delays.
func WaitShort() Instruction { return Instruction{Kind: Idle, Millis: ShortMS} }
func WaitTiny() Instruction  { return Instruction{Kind: Idle, Millis: TinyMS} }
func WaitLong() Instruction  { return Instruction{Kind: Idle, Millis: LongMS} }

// EmptyInstruction is the canonical no-op flush marker.
func EmptyInstruction() Instruction { return Instruction{Kind: Empty} }
