package engine

import (
	"testing"
	"time"
)

func newTestClock() (*PausableClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewPausableClock(mock), mock
}

func TestPausableClockDelta(t *testing.T) {
	clock, mock := newTestClock()

	mock.Advance(16 * time.Millisecond)
	if got := clock.Delta(); got != 0.016 {
		t.Errorf("Delta() = %v, want 0.016", got)
	}

	// Consecutive calls without time passing yield zero
	if got := clock.Delta(); got != 0 {
		t.Errorf("Delta() = %v, want 0", got)
	}
}

func TestPausableClockClampsLongFrames(t *testing.T) {
	clock, mock := newTestClock()

	mock.Advance(2 * time.Hour)
	if got := clock.Delta(); got != MaxFrameDelta.Seconds() {
		t.Errorf("Delta() = %v, want %v", got, MaxFrameDelta.Seconds())
	}
}

func TestPausableClockExcludesPause(t *testing.T) {
	clock, mock := newTestClock()

	mock.Advance(100 * time.Millisecond)
	clock.Pause()
	mock.Advance(500 * time.Millisecond)
	clock.Resume()
	mock.Advance(200 * time.Millisecond)

	if got := clock.Delta(); got != 0.3 {
		t.Errorf("Delta() = %v, want 0.3", got)
	}
	if got := clock.TotalPaused(); got != 500*time.Millisecond {
		t.Errorf("TotalPaused() = %v, want 500ms", got)
	}
}

func TestPausableClockFramesDuringPause(t *testing.T) {
	clock, mock := newTestClock()

	clock.Pause()
	for i := 0; i < 5; i++ {
		mock.Advance(16 * time.Millisecond)
		if got := clock.Delta(); got != 0 {
			t.Fatalf("frame %d: Delta() = %v while paused", i, got)
		}
	}

	mock.Advance(10 * time.Millisecond)
	clock.Resume()
	mock.Advance(20 * time.Millisecond)

	if got := clock.Delta(); got != 0.02 {
		t.Errorf("Delta() = %v after resume, want 0.02", got)
	}
	if got := clock.TotalPaused(); got != 90*time.Millisecond {
		t.Errorf("TotalPaused() = %v, want 90ms", got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	clock, _ := newTestClock()

	if !clock.Toggle() || !clock.IsPaused() {
		t.Fatal("first Toggle should pause")
	}
	if clock.Toggle() || clock.IsPaused() {
		t.Fatal("second Toggle should resume")
	}

	// Redundant calls are no-ops
	clock.Resume()
	clock.Pause()
	clock.Pause()
	if !clock.IsPaused() {
		t.Error("clock not paused")
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)

	if want := start.Add(90 * time.Minute); !mock.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", mock.Now(), want)
	}
}

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}
