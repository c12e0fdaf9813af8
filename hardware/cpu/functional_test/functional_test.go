//go:build apple2_functional_test

package functional_test

import (
	_ "embed"
	"testing"

	"github.com/deadleaf/apple2core/hardware/cpu"
	"github.com/deadleaf/apple2core/platform"
)

// flatBus is a 64KiB RAM-only implementation of cpu.Bus, bypassing the
// MMU entirely so the suite exercises only CPU semantics.
type flatBus struct {
	mem [0x10000]uint8
}

func (b *flatBus) Read(addr uint32) uint8 {
	return b.mem[addr&0xFFFF]
}

func (b *flatBus) Write(addr uint32, data uint8) {
	b.mem[addr&0xFFFF] = data
}

//go:embed "6502_functional_test.bin"
var functionalTest6502 []byte

//go:embed "65C02_extended_opcodes_test.bin"
var functionalTest65C02 []byte

func runFunctional(t *testing.T, variant platform.CPUVariant, image []byte, successAddress uint16) {
	const programOrigin = uint16(0x0400)
	const loadAddress = uint16(0x000a)

	bus := &flatBus{}
	copy(bus.mem[loadAddress:], image)
	bus.mem[0xFFFC] = byte(programOrigin)
	bus.mem[0xFFFD] = byte(programOrigin >> 8)

	mc := cpu.New(variant, bus)
	mc.Reset()

	var lastPC uint16
	for {
		pc := mc.Reg.PC
		mc.ExecuteNext()

		if mc.Reg.PC == successAddress {
			return
		}
		if mc.Reg.PC == pc && pc == lastPC {
			t.Fatalf("looped at PC=%04X without reaching success address %04X", pc, successAddress)
		}
		lastPC = pc
	}
}

// TestFunctional6502 runs Klaus Dormann's NMOS 6502 functional test suite.
// The test binary is not checked into the repository; see doc.go.
func TestFunctional6502(t *testing.T) {
	runFunctional(t, platform.Variant6502, functionalTest6502, 0x347d)
}

// TestFunctional65C02 runs the 65C02 extended-opcode variant of the suite.
func TestFunctional65C02(t *testing.T) {
	runFunctional(t, platform.Variant65C02, functionalTest65C02, 0x24f1)
}
