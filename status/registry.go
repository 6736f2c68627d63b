package status

import (
	"strconv"
	"sync/atomic"
)

// Metric keys written by the game loop
const (
	KeyFrames      = "frames"
	KeyTicks       = "ticks"
	KeyActivations = "activations"
	KeyRejections  = "rejections"
	KeyPrestiges   = "prestiges"
	KeyFPS         = "fps"
	KeyGameSeconds = "game_seconds"
	KeyMode        = "mode"
	KeyPolicy      = "policy"
	KeyAudio       = "audio"
)

// Values of KeyMode
const (
	ModeRunning = "running"
	ModePaused  = "paused"
)

// Registry is the central metrics facade
// The loop caches pointers during init and writes atomics directly afterwards
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Int returns the current value of an int metric, 0 if never written
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Float returns the current value of a float metric, 0 if never written
func (r *Registry) Float(key string) float64 {
	if !r.Floats.Has(key) {
		return 0
	}
	return r.Floats.Get(key).Get()
}

// Dump calls fn with every registered metric formatted as text, ints then floats then strings
func (r *Registry) Dump(fn func(key, value string)) {
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fn(key, strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		fn(key, strconv.FormatFloat(v.Get(), 'f', 2, 64))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		fn(key, v.Load())
	})
}

// String returns the current value of a string metric, empty if never written
func (r *Registry) String(key string) string {
	if !r.Strings.Has(key) {
		return ""
	}
	return r.Strings.Get(key).Load()
}
