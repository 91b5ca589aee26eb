package instruction

import "testing"

func TestBytes2SetsSendBytesKind(t *testing.T) {
	ins := Bytes2(0x83, 0x00)
	if ins.Kind != SendBytes {
		t.Errorf("Kind = %v, want SendBytes", ins.Kind)
	}
	if ins.Bytes != [2]byte{0x83, 0x00} {
		t.Errorf("Bytes = %v, want [0x83, 0x00]", ins.Bytes)
	}
}

func TestFromUint16SplitsBigEndian(t *testing.T) {
	ins := FromUint16(0xE078)
	want := [2]byte{0xE0, 0x78}
	if ins.Bytes != want {
		t.Errorf("Bytes = % x, want % x", ins.Bytes, want)
	}
}

func TestWaitHelpersSetMillis(t *testing.T) {
	cases := []struct {
		got  Instruction
		want uint64
	}{
		{WaitShort(), ShortMS},
		{WaitTiny(), TinyMS},
		{WaitLong(), LongMS},
	}
	for _, c := range cases {
		if c.got.Kind != Idle {
			t.Errorf("Kind = %v, want Idle", c.got.Kind)
		}
		if c.got.Millis != c.want {
			t.Errorf("Millis = %d, want %d", c.got.Millis, c.want)
		}
	}
}

func TestEmptyInstructionIsEmptyKind(t *testing.T) {
	if EmptyInstruction().Kind != Empty {
		t.Errorf("EmptyInstruction().Kind != Empty")
	}
}
