// Package sched runs frame-counted callbacks: repeating ticks and one-shot
// deferred effects. It is driven by the front end's update loop and is not
// safe for concurrent use.
package sched

import "time"

// Handle identifies a scheduled task. The zero Handle is never issued.
type Handle int

type task struct {
	handle Handle
	period int
	frames int
	repeat bool
	fn     func()
}

// Scheduler holds pending tasks in the order they were scheduled.
type Scheduler struct {
	tasks []*task
	next  Handle
}

func New() *Scheduler {
	return &Scheduler{}
}

// After runs fn once, frames updates from now. A frames value below 1 fires on
// the next update.
func (s *Scheduler) After(frames int, fn func()) Handle {
	return s.add(frames, false, fn)
}

// Every runs fn each time frames updates pass until the task is canceled.
func (s *Scheduler) Every(frames int, fn func()) Handle {
	return s.add(frames, true, fn)
}

func (s *Scheduler) add(frames int, repeat bool, fn func()) Handle {
	if fn == nil {
		return 0
	}
	if frames < 1 {
		frames = 1
	}
	s.next++
	s.tasks = append(s.tasks, &task{
		handle: s.next,
		period: frames,
		frames: frames,
		repeat: repeat,
		fn:     fn,
	})
	return s.next
}

// Cancel drops the task. It reports false when the task already finished or
// was never scheduled.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, t := range s.tasks {
		if t.handle == h {
			t.fn = nil
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.fn = nil
	}
	s.tasks = nil
}

// Pending reports whether h is still scheduled.
func (s *Scheduler) Pending(h Handle) bool {
	for _, t := range s.tasks {
		if t.handle == h {
			return true
		}
	}
	return false
}

// Len is the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Update advances every task by one frame and fires the ones that are due.
// Tasks scheduled by a callback start counting on the next update. Tasks
// canceled by a callback do not fire.
func (s *Scheduler) Update() {
	if len(s.tasks) == 0 {
		return
	}
	due := append([]*task(nil), s.tasks...)
	for _, t := range due {
		if t.fn == nil {
			continue
		}
		t.frames--
		if t.frames > 0 {
			continue
		}
		fn := t.fn
		if t.repeat {
			t.frames = t.period
		} else {
			s.Cancel(t.handle)
		}
		fn()
	}
}

// Frames converts d to updates at tps updates per second, rounding up so a
// non-zero duration never fires early.
func Frames(d time.Duration, tps int) int {
	if d <= 0 || tps <= 0 {
		return 0
	}
	n := int64(d) * int64(tps)
	return int((n + int64(time.Second) - 1) / int64(time.Second))
}
