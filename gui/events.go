package gui

// Event represents all the different type of events that can occur in the gui
//
// Events are the things that happen in the gui, as a result of user interaction,
// and sent over a registered event channel.
type Event interface{}

// EventQuit is sent when the gui window is closed.
type EventQuit struct{}

// KeyMod identifies.
type KeyMod int

// list of valud key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is the data that accompanies EventKeyboard events.
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// EventMouseMotion is the data that accompanies MouseEventMove events.
type EventMouseMotion struct {
	// as a fraction of the window's dimensions
	X float32
	Y float32
}

// MouseButton identifies the mouse button.
type MouseButton int

// list of valid MouseButtonIDs.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// EventMouseButton is the data that accompanies MouseEventMove events.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventDbgMouseButton is the data that accompanies MouseEventMove events.
type EventDbgMouseButton struct {
	Button   MouseButton
	Down     bool
	X        int
	Y        int
	HorizPos int
	Scanline int
}
