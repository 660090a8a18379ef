package core

import "testing"

func TestLoopFrameIsOneShot(t *testing.T) {
	l := NewLoop()
	calls := 0
	l.RequestFrame(func() { calls++ })

	if ran := l.RunFrame(); ran != 1 {
		t.Fatalf("RunFrame() = %d, expected 1", ran)
	}
	if ran := l.RunFrame(); ran != 0 {
		t.Errorf("second RunFrame() = %d, expected 0", ran)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, expected 1", calls)
	}
}

func TestLoopRescheduleRunsNextFrame(t *testing.T) {
	l := NewLoop()
	calls := 0
	var tick func()
	tick = func() {
		calls++
		l.RequestFrame(tick)
	}
	l.RequestFrame(tick)

	for i := 0; i < 5; i++ {
		l.RunFrame()
	}
	if calls != 5 {
		t.Errorf("self-rescheduling callback ran %d times over 5 frames, expected 5", calls)
	}
	if l.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, expected 1", l.PendingFrames())
	}
}

func TestLoopCancelFrame(t *testing.T) {
	l := NewLoop()
	ran := false
	id := l.RequestFrame(func() { ran = true })
	l.CancelFrame(id)
	l.CancelFrame(id)  // twice is fine
	l.CancelFrame(999) // unknown is fine

	l.RunFrame()
	if ran {
		t.Error("cancelled frame should not run")
	}
}

func TestLoopCancelWithinFrame(t *testing.T) {
	l := NewLoop()
	secondRan := false
	var second FrameID
	l.RequestFrame(func() { l.CancelFrame(second) })
	second = l.RequestFrame(func() { secondRan = true })

	if ran := l.RunFrame(); ran != 1 {
		t.Errorf("RunFrame() = %d, expected 1", ran)
	}
	if secondRan {
		t.Error("frame cancelled by an earlier callback should not run")
	}
}

func TestLoopPointerListeners(t *testing.T) {
	l := NewLoop()
	var order []string
	releaseA := l.OnPointerMove(func(x, y float64) { order = append(order, "a") })
	l.OnPointerMove(func(x, y float64) { order = append(order, "b") })

	l.DispatchPointer(1, 2)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("dispatch order = %v, expected [a b]", order)
	}

	releaseA()
	releaseA()
	if l.Listeners() != 1 {
		t.Errorf("Listeners() = %d, expected 1", l.Listeners())
	}

	order = order[:0]
	l.DispatchPointer(3, 4)
	if len(order) != 1 || order[0] != "b" {
		t.Errorf("after release, dispatch order = %v, expected [b]", order)
	}
}

func TestLoopPointerCoordinates(t *testing.T) {
	l := NewLoop()
	var gotX, gotY float64
	l.OnPointerMove(func(x, y float64) { gotX, gotY = x, y })
	l.DispatchPointer(12.5, 40)
	if gotX != 12.5 || gotY != 40 {
		t.Errorf("listener got (%v, %v), expected (12.5, 40)", gotX, gotY)
	}
}
