package limiter_test

import (
	"testing"

	"github.com/deadleaf/apple2core/emulation/limiter"
)

func TestFirstWaitNeverBlocks(t *testing.T) {
	l := limiter.New(16683.33, 16683.42, true)
	// The first call only establishes the reference timestamp; it must
	// return immediately regardless of the configured period.
	l.Wait()
	if l.AchievedHz() != 0 {
		t.Fatalf("AchievedHz() = %v after the first Wait, want 0 (no elapsed interval yet)", l.AchievedHz())
	}
}

func TestSecondWaitMeasuresAchievedHz(t *testing.T) {
	l := limiter.New(1, 1, true) // near-zero period so the test runs fast
	l.Wait()
	l.Wait()
	if l.AchievedHz() <= 0 {
		t.Fatalf("AchievedHz() = %v after the second Wait, want > 0", l.AchievedHz())
	}
}

func TestSleepModeAlsoMeasuresAchievedHz(t *testing.T) {
	l := limiter.New(1, 1, false)
	l.Wait()
	l.Wait()
	if l.AchievedHz() <= 0 {
		t.Fatalf("AchievedHz() = %v in sleep mode, want > 0", l.AchievedHz())
	}
}
