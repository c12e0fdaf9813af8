package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/deadleaf/apple2core/curated"
	"github.com/deadleaf/apple2core/gui"
)

// PollEvents drains SDL's event queue and translates it into gui.Event
// values, for a host loop to feed to Emulation.QueueKey/Pause between
// frames. SDL's own keycodes are ASCII-compatible for the printable
// range the Apple II keyboard latch understands, so no lookup table is
// needed for the common case.
func (w *Window) PollEvents() []gui.Event {
	var out []gui.Event
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			break
		}
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			out = append(out, gui.EventQuit{})
		case *sdl.KeyboardEvent:
			if e.Keysym.Sym < 0 || e.Keysym.Sym > 0x7F {
				continue
			}
			out = append(out, gui.EventKeyboard{
				Key:  string(rune(e.Keysym.Sym)),
				Down: e.Type == sdl.KEYDOWN,
				Mod:  keyMod(e.Keysym.Mod),
			})
		}
	}
	return out
}

func keyMod(m uint16) gui.KeyMod {
	switch {
	case m&sdl.KMOD_SHIFT != 0:
		return gui.KeyModShift
	case m&sdl.KMOD_CTRL != 0:
		return gui.KeyModCtrl
	case m&sdl.KMOD_ALT != 0:
		return gui.KeyModAlt
	default:
		return gui.KeyModNone
	}
}

// SetFeature implements gui.GUI for the subset of requests a single SDL
// window can actually satisfy: visibility and full-screen mode. Every
// other request (disk activity, overlay, monitor sync) is acknowledged
// without effect, since this minimal window has no status indicator or
// overlay renderer, per spec.md's "does not prescribe any particular
// host toolkit" Non-goal.
func (w *Window) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetVisibility:
		show, ok := args[0].(bool)
		if !ok {
			return curated.Errorf(gui.UnsupportedGuiFeature, request)
		}
		if show {
			w.window.Show()
		} else {
			w.window.Hide()
		}
		return nil

	case gui.ReqFullScreen:
		full, ok := args[0].(bool)
		if !ok {
			return curated.Errorf(gui.UnsupportedGuiFeature, request)
		}
		flag := uint32(0)
		if full {
			flag = sdl.WINDOW_FULLSCREEN_DESKTOP
		}
		return w.window.SetFullscreen(flag)

	case gui.ReqState, gui.ReqMonitorSync, gui.ReqToggleOverlay, gui.ReqDiskActivity:
		return nil

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}
}

// SetFeatureNoError implements gui.GUI.
func (w *Window) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	_ = w.SetFeature(request, args...)
}

// GetFeature implements gui.GUI. Only visibility is queryable; nothing
// else has host-readable state worth exposing from this window.
func (w *Window) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	switch request {
	case gui.ReqSetVisibility:
		return w.window.GetFlags()&sdl.WINDOW_SHOWN != 0, nil
	default:
		return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
	}
}

var _ gui.GUI = (*Window)(nil)
