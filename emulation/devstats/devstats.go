// Package devstats serves a narrow, read-only live statistics page for
// the running emulation: per-frame slip, achieved Hz, and speaker
// event-buffer occupancy, per SPEC_FULL.md §4.7's "Live stats page"
// expansion. It wraps github.com/go-echarts/statsview (the teacher's
// own indirect dependency, promoted here to direct use) for the
// built-in Go runtime dashboard, and adds one small supplementary JSON
// endpoint for the emulation-specific gauges statsview has no concept
// of, rather than inventing calls into statsview's own chart-plugin
// API without a teacher or pack reference to ground the exact call
// shape (see DESIGN.md).
package devstats

import (
	"encoding/json"
	"math"
	"net/http"
	"sync/atomic"

	"github.com/go-echarts/statsview"
)

// Gauges holds the live values the supplementary endpoint reports.
// Every field is updated with an atomic store from the frame
// dispatcher and read back by the HTTP handler; no locks are needed
// since the dispatcher never blocks on the reader (spec.md §5).
type Gauges struct {
	AchievedHz       atomic.Uint64 // math.Float64bits
	SlipMicroseconds atomic.Int64
	SpeakerPending   atomic.Int32
	FrameNumber      atomic.Uint64
}

// Server serves the statsview runtime dashboard plus a /apple2/stats
// JSON endpoint backed by Gauges.
type Server struct {
	Gauges *Gauges
	mgr    *statsview.Manager
	addr   string
}

// New builds a Server listening on addr (e.g. "127.0.0.1:18066"); call
// Start to begin serving.
func New(addr string) *Server {
	return &Server{
		Gauges: &Gauges{},
		mgr:    statsview.New(),
		addr:   addr,
	}
}

// Start launches the statsview dashboard and the supplementary
// endpoint in background goroutines. It never blocks the caller,
// matching spec.md §5's "no component may block" rule for anything
// outside the main loop.
func (s *Server) Start() {
	go s.mgr.Start()

	mux := http.NewServeMux()
	mux.HandleFunc("/apple2/stats", s.serveStats)
	go http.ListenAndServe(s.addr, mux) //nolint:errcheck
}

type statsJSON struct {
	AchievedHz       float64 `json:"achieved_hz"`
	SlipMicroseconds int64   `json:"slip_us"`
	SpeakerPending   int32   `json:"speaker_pending"`
	FrameNumber      uint64  `json:"frame_number"`
}

// PutAchievedHz stores hz for the next /apple2/stats read. atomic.Uint64
// has no float variant, so the bits are stored/loaded via math.Float64bits,
// the same trick the runtime itself uses for atomic float state.
func (g *Gauges) PutAchievedHz(hz float64) {
	g.AchievedHz.Store(math.Float64bits(hz))
}

func (s *Server) serveStats(w http.ResponseWriter, r *http.Request) {
	hz := math.Float64frombits(s.Gauges.AchievedHz.Load())

	out := statsJSON{
		AchievedHz:       hz,
		SlipMicroseconds: s.Gauges.SlipMicroseconds.Load(),
		SpeakerPending:   s.Gauges.SpeakerPending.Load(),
		FrameNumber:      s.Gauges.FrameNumber.Load(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out) //nolint:errcheck
}
