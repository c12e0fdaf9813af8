package gui

// FeatureReq is used to request the setting of a gui attribute
// eg. toggling the overlay.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// EmulationState indicates to the GUI that the emulation is in a
// particular state. The GUI state starts in StateInitialising.
type EmulationState int

// List of valid emulation states.
const (
	StateInitialising EmulationState = iota
	StatePaused
	StateRunning
	StateStepping
	StateEnding
)

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and the application will
// probably crash.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// notify GUI of emulation state. the GUI should use this to alter how
	// information, particularly the display of the Renderer, is presented.
	ReqState FeatureReq = "ReqState" // EmulationState

	// whether gui should try to sync with the monitor refresh rate. not all
	// gui modes have to obey this but for presentation/play modes it's a good
	// idea to have it set.
	ReqMonitorSync FeatureReq = "ReqMonitorSync" // bool

	// whether the gui is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// put gui output into full-screen mode (ie. no window border and content
	// the size of the monitor).
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// toggle the metapixel overlay named in doc.go: a debug visualisation
	// of dirty scanlines and floating-bus reads, not a debugger UI.
	ReqToggleOverlay FeatureReq = "ReqToggleOverlay" // bool

	// notify the GUI of a drive's read/write activity, for a status
	// indicator.
	ReqDiskActivity FeatureReq = "ReqDiskActivity" // DiskActivity
)

// DiskActivity describes one drive's current activity for a GUI status
// indicator (spec.md §4.6's disk model has no activity LED of its own;
// this is purely a host-presentation concern).
type DiskActivity struct {
	Slot    int
	Drive   int
	Reading bool
	Writing bool
}
