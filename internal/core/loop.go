package core

import "sort"

// FrameID identifies a pending frame callback.
type FrameID uint64

// PointerFunc receives pointer positions in the host's coordinate space.
type PointerFunc func(x, y float64)

// Loop is a single-threaded host for frame callbacks and pointer listeners.
// It mirrors a browser's animation-frame and event-listener surface: frame
// callbacks are one-shot and must be requested again to keep animating.
//
// Loop is not safe for concurrent use; the owner drives it from one goroutine.
type Loop struct {
	nextFrame    FrameID
	frames       map[FrameID]func()
	nextListener int
	listeners    map[int]PointerFunc
}

// NewLoop creates an idle loop with no listeners.
func NewLoop() *Loop {
	return &Loop{
		frames:    make(map[FrameID]func()),
		listeners: make(map[int]PointerFunc),
	}
}

// RequestFrame schedules fn to run on the next RunFrame.
// Callbacks requested while a frame is running fire on the following frame.
func (l *Loop) RequestFrame(fn func()) FrameID {
	l.nextFrame++
	l.frames[l.nextFrame] = fn
	return l.nextFrame
}

// CancelFrame removes a pending frame callback. Unknown ids are ignored.
func (l *Loop) CancelFrame(id FrameID) {
	delete(l.frames, id)
}

// OnPointerMove registers a pointer listener. The returned release func
// unregisters it and may be called any number of times.
func (l *Loop) OnPointerMove(fn PointerFunc) (release func()) {
	l.nextListener++
	id := l.nextListener
	l.listeners[id] = fn
	return func() {
		delete(l.listeners, id)
	}
}

// DispatchPointer delivers a pointer position to every listener in
// registration order.
func (l *Loop) DispatchPointer(x, y float64) {
	ids := make([]int, 0, len(l.listeners))
	for id := range l.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := l.listeners[id]; ok {
			fn(x, y)
		}
	}
}

// RunFrame runs every callback that was pending when the frame started and
// returns how many ran. A callback cancelled by an earlier one in the same
// frame does not run.
func (l *Loop) RunFrame() int {
	if len(l.frames) == 0 {
		return 0
	}
	ids := make([]FrameID, 0, len(l.frames))
	for id := range l.frames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ran := 0
	for _, id := range ids {
		fn, ok := l.frames[id]
		if !ok {
			continue
		}
		delete(l.frames, id)
		fn()
		ran++
	}
	return ran
}

// PendingFrames returns the number of scheduled frame callbacks.
func (l *Loop) PendingFrames() int {
	return len(l.frames)
}

// Listeners returns the number of registered pointer listeners.
func (l *Loop) Listeners() int {
	return len(l.listeners)
}
