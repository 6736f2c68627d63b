package engine

import (
	"sync"
	"time"
)

// MaxFrameDelta caps a single Delta so a suspended process does not replay hours of production
const MaxFrameDelta = 1 * time.Second

// PausableClock measures game time between frames, excluding paused intervals
type PausableClock struct {
	mu sync.Mutex

	provider TimeProvider

	lastFrame time.Time // Real time of the previous Delta call

	paused          bool
	pauseStartTime  time.Time     // When current pause started (real time)
	pausedSinceLast time.Duration // Paused time not yet subtracted from a Delta
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a clock reading from provider, nil selects the monotonic provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		lastFrame: provider.Now(),
	}
}

// Delta returns game seconds elapsed since the previous call
// Paused time is excluded and the result is capped at MaxFrameDelta
func (pc *PausableClock) Delta() float64 {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.provider.Now()
	wall := now.Sub(pc.lastFrame)
	pc.lastFrame = now

	paused := pc.pausedSinceLast
	pc.pausedSinceLast = 0
	if pc.paused {
		// Open pause interval counts up to now, the remainder is charged next frame
		paused += now.Sub(pc.pauseStartTime)
		pc.totalPausedTime += now.Sub(pc.pauseStartTime)
		pc.pauseStartTime = now
	}

	game := wall - paused
	if game < 0 {
		game = 0
	}
	if game > MaxFrameDelta {
		game = MaxFrameDelta
	}
	return game.Seconds()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	d := pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pausedSinceLast += d
	pc.totalPausedTime += d
	pc.paused = false
	pc.pauseStartTime = time.Time{}
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time including any open pause
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
