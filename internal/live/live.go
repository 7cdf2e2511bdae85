// Package live turns discrete key presses into trigger gates. Presses arrive
// from any goroutine; the audio goroutine drains them in Fill.
package live

import "sync/atomic"

// High is the gate level of a press.
const High = 5.0

// MaxPending bounds how many presses may queue on one input.
const MaxPending = 16

type input struct {
	pending   atomic.Int32
	remaining int
	wasHigh   bool
}

// Keys holds the up and down inputs. Each press becomes one gate of the
// configured length; presses that land while a gate is high wait for it to
// end and for one low frame, so every press produces its own rising edge.
type Keys struct {
	up, down   input
	holdFrames atomic.Int64
}

func New(holdFrames int) *Keys {
	k := &Keys{}
	k.SetHold(holdFrames)
	return k
}

// SetHold sets the gate length of subsequent presses, in frames.
func (k *Keys) SetHold(frames int) {
	if frames < 1 {
		frames = 1
	}
	k.holdFrames.Store(int64(frames))
}

// PressUp queues one up trigger. It reports false if the queue is full.
func (k *Keys) PressUp() bool { return press(&k.up) }

// PressDown queues one down trigger.
func (k *Keys) PressDown() bool { return press(&k.down) }

func press(in *input) bool {
	for {
		n := in.pending.Load()
		if n >= MaxPending {
			return false
		}
		if in.pending.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Pending reports queued presses that have not started yet.
func (k *Keys) Pending() (up, down int) {
	return int(k.up.pending.Load()), int(k.down.pending.Load())
}

// Fill writes the gate levels of the next len(up) frames.
func (k *Keys) Fill(up, down []float32) {
	hold := int(k.holdFrames.Load())
	for i := range up {
		up[i] = k.up.step(hold)
		down[i] = k.down.step(hold)
	}
}

func (in *input) step(hold int) float32 {
	if in.remaining == 0 && !in.wasHigh && in.pending.Load() > 0 {
		in.pending.Add(-1)
		in.remaining = hold
	}
	high := in.remaining > 0
	if high {
		in.remaining--
	}
	in.wasHigh = high
	if high {
		return High
	}
	return 0
}

// Reset drops queued presses and ends any gate in progress. It must not run
// concurrently with Fill.
func (k *Keys) Reset() {
	for _, in := range []*input{&k.up, &k.down} {
		in.pending.Store(0)
		in.remaining = 0
		in.wasHigh = false
	}
}
