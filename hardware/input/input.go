// Package input models the Apple II's keyboard latch and game I/O
// port (paddles and pushbuttons), per spec.md §6.2 and SPEC_FULL.md's
// input-model expansion. It is grounded on the teacher's
// hardware/input and hardware/controller packages' event-queue shape,
// generalized from the VCS's joystick/paddle ports to a keyboard plus
// two-button game-paddle device (the Apple II's game I/O port is
// electrically similar: open paddles read as a decaying RC timer,
// buttons read as a single latched bit in the C06x range).
package input

// KeyEvent is one host keypress translated to an Apple II key code.
type KeyEvent struct {
	Code  uint8
	Down  bool
}

// Keyboard models the C000/C010 latch: a single byte plus strobe flag
// (spec.md §6.2 "keyboard latch at C000 (high bit = strobe), strobe
// clear at C010 read or write").
type Keyboard struct {
	latch  uint8
	strobe bool
	queue  []KeyEvent
}

// NewKeyboard returns an idle keyboard latch.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Push queues a translated key event for the next Poll.
func (k *Keyboard) Push(ev KeyEvent) {
	k.queue = append(k.queue, ev)
}

// Poll drains queued key-down events into the latch; called once per
// frame by the dispatcher (spec.md §4.7 step 2, "drain pending host
// events").
func (k *Keyboard) Poll() {
	for len(k.queue) > 0 {
		ev := k.queue[0]
		k.queue = k.queue[1:]
		if ev.Down {
			k.latch = ev.Code&0x7F | 0x80
			k.strobe = true
		}
	}
}

// ReadC000 returns the latch byte (high bit = strobe pending).
func (k *Keyboard) ReadC000() uint8 {
	if k.strobe {
		return k.latch | 0x80
	}
	return k.latch & 0x7F
}

// TouchC010 clears the strobe flag, whether by read or write (spec.md
// §6.2).
func (k *Keyboard) TouchC010() uint8 {
	v := k.latch & 0x7F
	if k.strobe {
		v |= 0x80
	}
	k.strobe = false
	return v
}

// ASCIIToKeyCode is the 256-entry ADB-style translation table mapping
// a host ASCII/control byte to the Apple II key code spec.md §6.2
// names. Printable ASCII passes through unchanged (the Apple II key
// matrix and ASCII agree for 0x20-0x7E); the handful of control keys
// the core cares about (Return, Tab, Backspace/Delete, Escape) are
// named explicitly for clarity even though their codes also happen to
// equal their ASCII values.
var ASCIIToKeyCode [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		ASCIIToKeyCode[i] = uint8(i)
	}
}

const (
	KeyReturn    = 0x0D
	KeyTab       = 0x09
	KeyBackspace = 0x7F
	KeyEscape    = 0x1B
	KeyLeft      = 0x08
	KeyRight     = 0x15
)

// Paddles models the four analog game-paddle inputs (C064-C067) and
// the C070 trigger, per SPEC_FULL.md's "open paddles read as a
// decaying RC timer" expansion: each paddle's 0-255 position value
// sets a countdown that C064-C067 reports as "still discharging"
// (bit 7 set) until it reaches zero.
type Paddles struct {
	position [4]uint8
	timer    [4]int
}

// NewPaddles returns paddles centred at mid-scale.
func NewPaddles() *Paddles {
	p := &Paddles{}
	for i := range p.position {
		p.position[i] = 127
	}
	return p
}

// SetPosition updates paddle n's 0-255 position (host input layer
// calls this from a mouse/analog-stick event).
func (p *Paddles) SetPosition(n int, value uint8) {
	p.position[n] = value
}

// TouchC070 resets all four RC timers, per the real hardware's
// trigger-on-any-access-to-C070 behavior.
func (p *Paddles) TouchC070() {
	for i := range p.timer {
		// the real circuit's discharge time is proportional to the
		// paddle's resistance; scaling position by 11 CPU cycles per
		// unit gives a full-scale (255) discharge of 2805 cycles, about
		// 2.75ms at 1.0205MHz.
		p.timer[i] = int(p.position[i]) * 11
	}
}

// ReadPaddle returns the C064+n reading: bit 7 set while the RC timer
// is still discharging. Tick must be called once per CPU cycle by the
// bus for the timer to count down.
func (p *Paddles) ReadPaddle(n int) uint8 {
	if p.timer[n] > 0 {
		return 0x80
	}
	return 0
}

// Tick decrements every paddle's RC timer by one CPU cycle.
func (p *Paddles) Tick() {
	for i := range p.timer {
		if p.timer[i] > 0 {
			p.timer[i]--
		}
	}
}

// Buttons models the three pushbutton bits at C061-C063 (open-apple,
// closed-apple, and the third game-port button).
type Buttons struct {
	state [3]bool
}

// Set records button n's current down/up state.
func (b *Buttons) Set(n int, down bool) {
	b.state[n] = down
}

// ReadButton returns the C061+n reading: bit 7 set while held.
func (b *Buttons) ReadButton(n int) uint8 {
	if b.state[n] {
		return 0x80
	}
	return 0
}
