package constants

import "time"

// Game Loop Timing Constants
const (
	// DefaultFPS is the render and tick rate when no config overrides it
	DefaultFPS = 60

	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 5
	MaxFPS = 240

	// StatusRefreshInterval forces a redraw so the status bar FPS stays live while idle
	StatusRefreshInterval = 250 * time.Millisecond

	// EventQueueSize buffers terminal events between the poller and the loop
	EventQueueSize = 256
)

// FrameInterval converts a frame rate into a ticker interval, clamping to the allowed range
func FrameInterval(fps int) time.Duration {
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}
