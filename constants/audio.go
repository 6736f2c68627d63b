package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length, trades latency for underruns
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master gain applied to every cue
	DefaultVolume = 0.3

	// MinSoundGap drops repeated cues closer than this, avoids buzz on key repeat
	MinSoundGap = 30 * time.Millisecond
)

// Purchase Chime
const (
	PurchaseSoundDuration = 90 * time.Millisecond
	PurchaseBaseFreq      = 440.0
	// PurchaseTierStep raises pitch per tier, semitone ratio squared
	PurchaseTierStep = 1.122462
)

// Reject Buzz
const (
	RejectSoundDuration = 120 * time.Millisecond
	RejectFreq          = 110.0
	// RejectGain keeps the square wave below the sine cues
	RejectGain          = 0.5
)

// Prestige Sweep
const (
	PrestigeSoundDuration = 900 * time.Millisecond
	PrestigeStartFreq     = 880.0
	PrestigeEndFreq       = 110.0
)
