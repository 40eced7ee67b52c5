package core

import (
	"testing"
	"time"
)

var epoch = time.Unix(1_700_000_000, 0)

func at(ms int) time.Time { return epoch.Add(time.Duration(ms) * time.Millisecond) }

func TestFrameQueueDispatchRunsOnlyQueuedCallbacks(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	var again func(time.Time)
	again = func(time.Time) {
		calls++
		q.RequestFrame(again)
	}
	q.RequestFrame(again)

	q.Dispatch(at(0))
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	if q.Len() != 1 {
		t.Fatalf("re-requested frame should wait for the next dispatch, len=%d", q.Len())
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	called := false
	id := q.RequestFrame(func(time.Time) { called = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.Dispatch(at(0))
	if called {
		t.Fatal("cancelled frame should not run")
	}
}

func TestFrameQueueCancelWithinBatch(t *testing.T) {
	q := NewFrameQueue()
	var second FrameID
	ran := false
	q.RequestFrame(func(time.Time) { q.CancelFrame(second) })
	second = q.RequestFrame(func(time.Time) { ran = true })
	q.Dispatch(at(0))
	if ran {
		t.Fatal("frame cancelled by an earlier callback in the batch should not run")
	}
}

func TestSchedulerStartStopIdempotent(t *testing.T) {
	q := NewFrameQueue()
	s := NewScheduler(q, 100*time.Millisecond, func() {})

	s.Start()
	s.Start()
	if !s.Running() {
		t.Fatal("expected running")
	}
	if q.Len() != 1 {
		t.Fatalf("double start should leave one pending frame, got %d", q.Len())
	}

	s.Stop()
	s.Stop()
	if s.Running() || s.HasPendingFrame() {
		t.Fatal("expected stopped with no pending frame")
	}
	if q.Len() != 0 {
		t.Fatalf("stop should cancel the pending frame, got %d", q.Len())
	}
}

func TestSchedulerTicksOncePerElapsedInterval(t *testing.T) {
	q := NewFrameQueue()
	ticks := 0
	s := NewScheduler(q, 100*time.Millisecond, func() { ticks++ })
	s.Start()

	q.Dispatch(at(0)) // baseline
	q.Dispatch(at(50))
	if ticks != 0 {
		t.Fatalf("no tick expected before the interval, got %d", ticks)
	}
	q.Dispatch(at(100))
	if ticks != 1 {
		t.Fatalf("expected one tick, got %d", ticks)
	}
	q.Dispatch(at(150))
	q.Dispatch(at(199))
	if ticks != 1 {
		t.Fatalf("expected still one tick, got %d", ticks)
	}
	q.Dispatch(at(200))
	if ticks != 2 {
		t.Fatalf("expected two ticks, got %d", ticks)
	}
}

func TestSchedulerNoDriftWithLateFrames(t *testing.T) {
	q := NewFrameQueue()
	ticks := 0
	s := NewScheduler(q, 100*time.Millisecond, func() { ticks++ })
	s.Start()

	q.Dispatch(at(0))
	// 60Hz-ish frames that never land on an interval boundary.
	for ms := 17; ms <= 10_000; ms += 17 {
		q.Dispatch(at(ms))
	}
	// 10s at 100ms is 100 ticks; without remainder carry the rate would drop
	// to one tick per 102ms (6 frames) and fall well short.
	if ticks < 99 || ticks > 100 {
		t.Fatalf("expected about 100 ticks, got %d", ticks)
	}
}

func TestSchedulerStallDoesNotBurst(t *testing.T) {
	q := NewFrameQueue()
	ticks := 0
	s := NewScheduler(q, 100*time.Millisecond, func() { ticks++ })
	s.Start()

	q.Dispatch(at(0))
	q.Dispatch(at(1050)) // long stall
	if ticks != 1 {
		t.Fatalf("a stalled frame should run exactly one tick, got %d", ticks)
	}
	q.Dispatch(at(1060))
	q.Dispatch(at(1080))
	if ticks != 1 {
		t.Fatalf("no catch-up ticks expected after a stall, got %d", ticks)
	}
	q.Dispatch(at(1100))
	if ticks != 2 {
		t.Fatalf("phase should be kept after the stall, got %d ticks", ticks)
	}
}

func TestSchedulerSetIntervalResetsBaseline(t *testing.T) {
	q := NewFrameQueue()
	ticks := 0
	s := NewScheduler(q, 500*time.Millisecond, func() { ticks++ })
	s.Start()
	q.Dispatch(at(0))
	q.Dispatch(at(400))

	s.SetInterval(100 * time.Millisecond)
	if !s.Running() {
		t.Fatal("interval change must not stop the loop")
	}
	q.Dispatch(at(450)) // fresh baseline, no burst from the 450ms already elapsed
	if ticks != 0 {
		t.Fatalf("interval change should not release ticks, got %d", ticks)
	}
	q.Dispatch(at(549))
	if ticks != 0 {
		t.Fatalf("expected no tick yet, got %d", ticks)
	}
	q.Dispatch(at(550))
	if ticks != 1 {
		t.Fatalf("expected one tick, got %d", ticks)
	}
}

func TestSchedulerAverageRateAfterIntervalChange(t *testing.T) {
	q := NewFrameQueue()
	ticks := 0
	s := NewScheduler(q, 200*time.Millisecond, func() { ticks++ })
	s.Start()
	q.Dispatch(at(0))
	q.Dispatch(at(16))
	s.SetInterval(50 * time.Millisecond)

	frames := 0
	for ms := 32; ms <= 5032; ms += 16 {
		before := ticks
		q.Dispatch(at(ms))
		frames++
		if ticks-before > 1 {
			t.Fatalf("more than one tick in a frame at %dms", ms)
		}
	}
	// 5s at 50ms is 100 ticks, one frame lost to the fresh baseline.
	if ticks > 100 || ticks < 98 {
		t.Fatalf("expected about 100 ticks, got %d over %d frames", ticks, frames)
	}
}

func TestSchedulerStopFromTick(t *testing.T) {
	q := NewFrameQueue()
	var s *Scheduler
	ticks := 0
	s = NewScheduler(q, 10*time.Millisecond, func() {
		ticks++
		s.Stop()
	})
	s.Start()
	q.Dispatch(at(0))
	q.Dispatch(at(10))
	q.Dispatch(at(20))
	q.Dispatch(at(30))
	if ticks != 1 {
		t.Fatalf("expected a single tick, got %d", ticks)
	}
	if q.Len() != 0 {
		t.Fatal("stopped scheduler should not re-request frames")
	}
}

func TestSchedulerClampsInterval(t *testing.T) {
	s := NewScheduler(NewFrameQueue(), 0, nil)
	if s.Interval() != MinInterval {
		t.Fatalf("expected %v, got %v", MinInterval, s.Interval())
	}
}
