package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_OnlyLastCallFires(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(300*time.Millisecond, WithClock(clock))

	var ran []string
	var firedAt time.Duration
	call := func(v string) func() {
		return func() {
			ran = append(ran, v)
			firedAt = clock.Now()
		}
	}

	d.Schedule(call("t0"))
	clock.Advance(100 * time.Millisecond)
	d.Schedule(call("t100"))
	clock.Advance(50 * time.Millisecond)
	d.Schedule(call("t150"))

	clock.Advance(299 * time.Millisecond)
	assert.Empty(t, ran, "nothing may fire inside the window")
	assert.True(t, d.Pending())

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"t150"}, ran)
	assert.Equal(t, 450*time.Millisecond, firedAt)
	assert.False(t, d.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, []string{"t150"}, ran, "superseded calls never run")
}

func TestDebouncer_Cancel(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(300*time.Millisecond, WithClock(clock))

	ran := false
	d.Schedule(func() { ran = true })
	d.Cancel()
	clock.Advance(time.Second)
	assert.False(t, ran)
	assert.False(t, d.Pending())
}

func TestDebouncer_Flush(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(300*time.Millisecond, WithClock(clock))

	runs := 0
	d.Schedule(func() { runs++ })
	assert.True(t, d.Flush())
	assert.Equal(t, 1, runs)
	assert.False(t, d.Flush(), "nothing left to flush")

	clock.Advance(time.Second)
	assert.Equal(t, 1, runs, "flushed call must not fire again")
}

func TestDebouncer_DefaultWindow(t *testing.T) {
	assert.Equal(t, DefaultWindow, NewDebouncer(0).Window())
}

func TestDebouncer_WallClock(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	done := make(chan string, 2)
	d.Schedule(func() { done <- "first" })
	d.Schedule(func() { done <- "second" })

	select {
	case v := <-done:
		assert.Equal(t, "second", v)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never fired")
	}
	select {
	case v := <-done:
		t.Fatalf("unexpected extra call %q", v)
	case <-time.After(50 * time.Millisecond):
	}
}
