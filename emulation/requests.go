package emulation

import (
	"github.com/deadleaf/apple2core/curated"
	"github.com/deadleaf/apple2core/hwerrors"
)

// FeatureReq names an attribute a host can ask the Emulation to change,
// eg. a pause request from a GUI frontend (spec.md §6.2's host/core
// split: the core never reaches into host state, only the reverse).
type FeatureReq string

// The feature requests a host may issue via Emulation.Request.
const (
	ReqSetPause  FeatureReq = "ReqSetPause"  // bool
	ReqMountDisk FeatureReq = "ReqMountDisk" // MountDiskArgs
)

// MountDiskArgs carries ReqMountDisk's argument.
type MountDiskArgs struct {
	Drive          int
	Filename       string
	Image          []byte
	WriteProtected bool
}

// Request applies a feature request synchronously. Unknown requests or
// a wrongly-typed argument are reported as an error rather than a
// panic, since a host frontend's own bug should not crash the core.
func (e *Emulation) Request(req FeatureReq, arg interface{}) error {
	switch req {
	case ReqSetPause:
		set, ok := arg.(bool)
		if !ok {
			return curated.Errorf(hwerrors.UnsupportedFeature, req)
		}
		e.Pause(set)
		return nil

	case ReqMountDisk:
		d, ok := arg.(MountDiskArgs)
		if !ok {
			return curated.Errorf(hwerrors.UnsupportedFeature, req)
		}
		return e.Computer.MountDisk(d.Drive, d.Filename, d.Image, d.WriteProtected)

	default:
		return curated.Errorf(hwerrors.UnsupportedFeature, req)
	}
}
