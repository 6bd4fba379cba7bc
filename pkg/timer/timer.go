package timer

import "time"

// Timer counts down and signals alarm when the duration elapses.
// Alarm should be buffered: a signal nobody can receive is dropped.
type Timer struct {
	duration time.Duration
	timer    *time.Timer
	endTime  time.Time
	alarm    chan bool
}

func NewTimer(duration time.Duration, alarm chan bool) *Timer {
	return &Timer{
		duration: duration,
		timer:    nil,
		alarm:    alarm,
	}
}

// Start begins the countdown, restarting it if already running.
func (t *Timer) Start() {
	t.Stop()
	t.endTime = time.Now().Add(t.duration)
	t.timer = time.AfterFunc(t.duration, func() {
		select {
		case t.alarm <- true:
		default:
		}
	})
}

func (t *Timer) Stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *Timer) Remaining() time.Duration {
	return time.Until(t.endTime)
}
