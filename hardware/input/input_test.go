package input_test

import (
	"testing"

	"github.com/deadleaf/apple2core/hardware/input"
)

func TestKeyboardLatchAndStrobe(t *testing.T) {
	k := input.NewKeyboard()
	if k.ReadC000()&0x80 != 0 {
		t.Fatalf("idle keyboard reports strobe pending")
	}

	k.Push(input.KeyEvent{Code: 'A', Down: true})
	k.Poll()

	v := k.ReadC000()
	if v&0x80 == 0 {
		t.Fatalf("strobe not set after keypress")
	}
	if v&0x7F != 'A' {
		t.Fatalf("latch low bits = %#02x, want 'A'", v&0x7F)
	}

	// Reading C000 again must not clear the strobe.
	if v2 := k.ReadC000(); v2&0x80 == 0 {
		t.Fatalf("strobe cleared by a plain C000 read")
	}

	v3 := k.TouchC010()
	if v3&0x80 == 0 {
		t.Fatalf("TouchC010 return value missing strobe bit")
	}
	if k.ReadC000()&0x80 != 0 {
		t.Fatalf("strobe still set after TouchC010")
	}
}

func TestKeyboardIgnoresKeyUp(t *testing.T) {
	k := input.NewKeyboard()
	k.Push(input.KeyEvent{Code: 'Z', Down: false})
	k.Poll()
	if k.ReadC000()&0x80 != 0 {
		t.Fatalf("key-up event set the strobe")
	}
}

func TestPaddlesDischargeOverTime(t *testing.T) {
	p := input.NewPaddles()
	p.SetPosition(0, 0)
	p.TouchC070()
	if p.ReadPaddle(0) != 0 {
		t.Fatalf("paddle at position 0 reported still discharging")
	}

	p.SetPosition(1, 255)
	p.TouchC070()
	if p.ReadPaddle(1) == 0 {
		t.Fatalf("paddle at position 255 reported already discharged")
	}
	for i := 0; i < 255*11+1; i++ {
		p.Tick()
	}
	if p.ReadPaddle(1) != 0 {
		t.Fatalf("paddle timer never reached zero")
	}
}

func TestButtons(t *testing.T) {
	b := &input.Buttons{}
	if b.ReadButton(0) != 0 {
		t.Fatalf("button 0 reads down before Set")
	}
	b.Set(0, true)
	if b.ReadButton(0) == 0 {
		t.Fatalf("button 0 reads up after Set(true)")
	}
	b.Set(0, false)
	if b.ReadButton(0) != 0 {
		t.Fatalf("button 0 reads down after Set(false)")
	}
}
