package core

import "time"

// MinInterval is the shortest tick interval a Scheduler accepts.
const MinInterval = time.Millisecond

// FrameID identifies a pending frame callback.
type FrameID uint64

// FrameRequester delivers one callback per display refresh, in the manner of
// requestAnimationFrame. Callbacks receive a monotonic timestamp.
type FrameRequester interface {
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a FrameRequester driven by an external refresh loop calling
// Dispatch once per frame.
type FrameQueue struct {
	next     FrameID
	pending  []queuedFrame
	inFlight []queuedFrame
}

type queuedFrame struct {
	id FrameID
	fn func(now time.Time)
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue { return &FrameQueue{} }

// RequestFrame schedules fn for the next Dispatch.
func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameID {
	q.next++
	q.pending = append(q.pending, queuedFrame{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a pending callback, including one from the batch that is
// currently being dispatched. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.inFlight {
		if q.inFlight[i].id == id {
			q.inFlight[i].fn = nil
			return
		}
	}
}

// Len returns the number of callbacks waiting for the next Dispatch.
func (q *FrameQueue) Len() int { return len(q.pending) }

// Dispatch runs every callback that was pending when Dispatch was entered.
// Callbacks requested while dispatching wait for the next call.
func (q *FrameQueue) Dispatch(now time.Time) {
	if len(q.pending) == 0 {
		return
	}
	q.inFlight = q.pending
	q.pending = nil
	for i := range q.inFlight {
		if fn := q.inFlight[i].fn; fn != nil {
			q.inFlight[i].fn = nil
			fn(now)
		}
	}
	q.inFlight = nil
}

// Scheduler runs a tick function at a fixed interval, independent of how
// often frames are delivered. At most one tick runs per frame.
type Scheduler struct {
	frames   FrameRequester
	tick     func()
	interval time.Duration

	running    bool
	pending    FrameID
	hasPending bool

	baseline    time.Time
	hasBaseline bool
	ticks       uint64
}

// NewScheduler constructs a stopped Scheduler.
func NewScheduler(frames FrameRequester, interval time.Duration, tick func()) *Scheduler {
	s := &Scheduler{frames: frames, tick: tick}
	s.SetInterval(interval)
	return s
}

// Running reports whether the loop is active.
func (s *Scheduler) Running() bool { return s.running }

// Interval returns the configured tick interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Ticks returns how many ticks have run since construction.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// HasPendingFrame reports whether a frame callback is outstanding.
func (s *Scheduler) HasPendingFrame() bool { return s.hasPending }

// Start enters the running state. It is a no-op when already running.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.hasBaseline = false
	s.request()
}

// Stop leaves the running state and cancels the outstanding frame. Calling
// Stop while stopped is a no-op.
func (s *Scheduler) Stop() {
	s.running = false
	s.hasBaseline = false
	if s.hasPending {
		s.frames.CancelFrame(s.pending)
		s.hasPending = false
	}
}

// SetInterval changes the tick interval. The timing baseline restarts from
// the next frame so a shorter interval does not release a burst of ticks.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d < MinInterval {
		d = MinInterval
	}
	s.interval = d
	s.hasBaseline = false
}

func (s *Scheduler) request() {
	s.pending = s.frames.RequestFrame(s.frame)
	s.hasPending = true
}

func (s *Scheduler) frame(now time.Time) {
	s.hasPending = false
	if !s.running {
		return
	}
	if !s.hasBaseline {
		s.baseline = now
		s.hasBaseline = true
	} else if elapsed := now.Sub(s.baseline); elapsed >= s.interval {
		// Keep the phase remainder so the average rate stays exact, but never
		// owe more than the one tick taken here.
		s.baseline = now.Add(-(elapsed % s.interval))
		s.ticks++
		if s.tick != nil {
			s.tick()
		}
	}
	if s.running && !s.hasPending {
		s.request()
	}
}
