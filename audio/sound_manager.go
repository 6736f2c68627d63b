package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/thingmaker/constants"
	"github.com/lixenwraith/thingmaker/engine"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// cueType separates throttling so one cue cannot swallow another
type cueType uint8

const (
	cuePurchase cueType = iota
	cueReject
	cuePrestige
	cueTypeCount
)

// SoundManager plays game cues through a single mixer on the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastPlay    [cueTypeCount]time.Time
}

// NewSoundManager creates a sound manager, nothing is played until Initialize succeeds
func NewSoundManager(volume float64) *SoundManager {
	if volume <= 0 || volume > 1 {
		volume = constants.DefaultVolume
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether the speaker is open
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayPurchase plays a short chime, higher for later tiers
func (sm *SoundManager) PlayPurchase(k engine.Kind) {
	sm.play(cuePurchase, PurchaseCue(k))
}

// PlayReject plays a low buzz for a press on a disabled button
func (sm *SoundManager) PlayReject() {
	sm.play(cueReject, RejectCue())
}

// PlayPrestige plays a falling sweep when AGI wipes the ledger
func (sm *SoundManager) PlayPrestige() {
	sm.play(cuePrestige, PrestigeCue())
}

// play queues s on the mixer at master volume
// The gap is tracked per cue type, a purchase never mutes the prestige sweep that follows it
func (sm *SoundManager) play(ct cueType, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	now := time.Now()
	if now.Sub(sm.lastPlay[ct]) < constants.MinSoundGap {
		return
	}
	sm.lastPlay[ct] = now

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
}

// newVolume scales s by a linear gain
// math.Log2(0) is -Inf, zero volume is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// PurchaseCue builds the unit-gain chime for buying one unit of k
func PurchaseCue(k engine.Kind) *Cue {
	freq := constants.PurchaseBaseFreq
	for i := engine.Kind(0); i < k && i < engine.KindCount; i++ {
		freq *= constants.PurchaseTierStep
	}
	return NewCue(sampleRate, WaveSine, freq, freq, 1, sampleRate.N(constants.PurchaseSoundDuration))
}

// RejectCue builds the buzz for an unaffordable press
func RejectCue() *Cue {
	return NewCue(sampleRate, WaveSquare, constants.RejectFreq, constants.RejectFreq, constants.RejectGain, sampleRate.N(constants.RejectSoundDuration))
}

// PrestigeCue builds the descending sweep for a reset
func PrestigeCue() *Cue {
	return NewCue(sampleRate, WaveSine, constants.PrestigeStartFreq, constants.PrestigeEndFreq, 1, sampleRate.N(constants.PrestigeSoundDuration))
}
