package status

import "sync/atomic"

// MaxStringLen bounds string metrics so the status bar stays one line
const MaxStringLen = 24

// AtomicString provides atomic string access with fixed max length
// Zero value is ready to use and holds the empty string
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
