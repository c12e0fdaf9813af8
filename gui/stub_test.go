package gui_test

import (
	"testing"

	"github.com/deadleaf/apple2core/gui"
)

func TestStubSetFeatureReturnsUnsupported(t *testing.T) {
	var s gui.Stub
	if err := s.SetFeature(gui.ReqFullScreen, true); err == nil {
		t.Fatalf("SetFeature() = nil, want an unsupported-feature error")
	}
}

func TestStubGetFeatureReturnsUnsupported(t *testing.T) {
	var s gui.Stub
	data, err := s.GetFeature(gui.ReqMonitorSync)
	if err == nil {
		t.Fatalf("GetFeature() = nil error, want an unsupported-feature error")
	}
	if data != nil {
		t.Fatalf("GetFeature() data = %v, want nil", data)
	}
}

func TestStubSetFeatureNoErrorIsANoop(t *testing.T) {
	var s gui.Stub
	s.SetFeatureNoError(gui.ReqToggleOverlay, true) // must not panic
}
