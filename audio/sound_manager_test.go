package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/thingmaker/engine"
)

// openManager returns a manager that queues on its mixer without opening a device
func openManager() *SoundManager {
	sm := NewSoundManager(0.5)
	sm.initialized = true
	return sm
}

func TestPrestigeFollowsPurchaseWithinGap(t *testing.T) {
	sm := openManager()

	// Buying AGI and the reset on the next frame land well inside MinSoundGap
	sm.PlayPurchase(engine.KindAGI)
	sm.PlayPrestige()

	if got := sm.mixer.Len(); got != 2 {
		t.Fatalf("mixer holds %d cues, want purchase and prestige", got)
	}
}

func TestRepeatedCueThrottled(t *testing.T) {
	sm := openManager()

	sm.PlayReject()
	sm.PlayReject()
	sm.PlayPurchase(engine.KindThing)
	sm.PlayPurchase(engine.KindThing)

	if got := sm.mixer.Len(); got != 2 {
		t.Errorf("mixer holds %d cues, want one per cue type", got)
	}
}

func TestVolumeScalesCue(t *testing.T) {
	_, full := drain(t, PrestigeCue())
	_, quiet := drain(t, newVolume(PrestigeCue(), 0.25))

	if math.Abs(quiet-full*0.25) > 1e-9 {
		t.Errorf("peak at 0.25 volume = %v, want %v", quiet, full*0.25)
	}

	_, muted := drain(t, newVolume(PrestigeCue(), 0))
	if muted != 0 {
		t.Errorf("zero volume peak = %v, want silence", muted)
	}
}
