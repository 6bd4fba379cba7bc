package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerAlarm(t *testing.T) {
	alarm := make(chan bool, 1)
	tm := NewTimer(10*time.Millisecond, alarm)
	tm.Start()
	select {
	case v := <-alarm:
		assert.True(t, v)
	case <-time.After(time.Second):
		t.Fatal("alarm did not fire")
	}
}

func TestTimerStop(t *testing.T) {
	alarm := make(chan bool, 1)
	tm := NewTimer(50*time.Millisecond, alarm)
	tm.Start()
	assert.True(t, tm.Remaining() > 0)
	tm.Stop()
	select {
	case <-alarm:
		t.Fatal("stopped timer fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTimerRestart(t *testing.T) {
	alarm := make(chan bool, 1)
	tm := NewTimer(20*time.Millisecond, alarm)
	tm.Start()
	tm.Start()
	<-alarm
	select {
	case <-alarm:
		t.Fatal("restarted timer fired twice")
	case <-time.After(60 * time.Millisecond):
	}
}
