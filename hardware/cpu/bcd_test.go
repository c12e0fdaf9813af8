package cpu

import (
	"testing"

	"github.com/deadleaf/apple2core/platform"
)

type flatBus struct {
	mem [1 << 16]uint8
}

func (b *flatBus) Read(addr uint32) uint8       { return b.mem[uint16(addr)] }
func (b *flatBus) Write(addr uint32, data uint8) { b.mem[uint16(addr)] = data }

func TestAdcBinaryCarryAndOverflow(t *testing.T) {
	c := New(platform.Variant6502, &flatBus{})
	c.Reg.SetAByte(0x50)
	c.Reg.P.Carry = false
	c.adc(0x50)
	if c.Reg.AByte() != 0xA0 {
		t.Fatalf("A = %#02x, want 0xA0", c.Reg.AByte())
	}
	if !c.Reg.P.Overflow {
		t.Fatalf("Overflow not set for 0x50+0x50 signed overflow")
	}
	if c.Reg.P.Carry {
		t.Fatalf("Carry set for a sum that does not exceed 0xFF")
	}
}

func TestAdcDecimalMode(t *testing.T) {
	c := New(platform.Variant6502, &flatBus{})
	c.Reg.SetAByte(0x19) // 19 BCD
	c.Reg.P.Decimal = true
	c.Reg.P.Carry = false
	c.adc(0x01) // +1 BCD = 20 BCD
	if c.Reg.AByte() != 0x20 {
		t.Fatalf("A = %#02x after decimal add, want 0x20", c.Reg.AByte())
	}
	if c.Reg.P.Carry {
		t.Fatalf("Carry set for 19+1 BCD, want false")
	}
}

func TestAdcDecimalCarryOut(t *testing.T) {
	c := New(platform.Variant6502, &flatBus{})
	c.Reg.SetAByte(0x99)
	c.Reg.P.Decimal = true
	c.Reg.P.Carry = false
	c.adc(0x01)
	if c.Reg.AByte() != 0x00 {
		t.Fatalf("A = %#02x after 99+1 BCD, want 0x00", c.Reg.AByte())
	}
	if !c.Reg.P.Carry {
		t.Fatalf("Carry not set after 99+1 BCD overflow")
	}
}

func TestSbcBinaryBorrow(t *testing.T) {
	c := New(platform.Variant6502, &flatBus{})
	c.Reg.SetAByte(0x10)
	c.Reg.P.Carry = true // no borrow in
	c.sbc(0x20)
	if c.Reg.AByte() != 0xF0 {
		t.Fatalf("A = %#02x after 0x10-0x20, want 0xF0", c.Reg.AByte())
	}
	if c.Reg.P.Carry {
		t.Fatalf("Carry set after a subtraction that borrowed, want false")
	}
}

func TestSbcDecimalMode(t *testing.T) {
	c := New(platform.Variant6502, &flatBus{})
	c.Reg.SetAByte(0x20) // 20 BCD
	c.Reg.P.Decimal = true
	c.Reg.P.Carry = true // no borrow in
	c.sbc(0x01)          // 20 - 1 = 19 BCD
	if c.Reg.AByte() != 0x19 {
		t.Fatalf("A = %#02x after decimal subtract, want 0x19", c.Reg.AByte())
	}
	if !c.Reg.P.Carry {
		t.Fatalf("Carry cleared for a subtraction that did not borrow")
	}
}
