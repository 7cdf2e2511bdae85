// Package trigger turns raw control voltages into gate levels, rising edges,
// and fixed-length pulses.
package trigger

// Threshold is the level a signal must exceed to count as high.
const Threshold = 1.0

// High reports whether v reads as a logic high.
func High(v float32) bool { return v > Threshold }

// EdgeDetector remembers the previous sample of one input so edges spanning a
// block boundary are still seen.
type EdgeDetector struct {
	last float32
}

// Step consumes one sample and returns its gate level and whether it rose
// from at-or-below the threshold since the previous sample.
func (d *EdgeDetector) Step(v float32) (high, rising bool) {
	high = High(v)
	rising = high && !High(d.last)
	d.last = v
	return high, rising
}

func (d *EdgeDetector) Reset() { d.last = 0 }

// Pulse is a retriggerable one-shot. A new trigger always restarts the full
// length, even while a pulse is running; lengths never accumulate.
type Pulse struct {
	countdown int
}

// Trigger (re)starts the pulse for samples samples.
func (p *Pulse) Trigger(samples int) {
	if samples < 0 {
		samples = 0
	}
	p.countdown = samples
}

// Step reports whether the pulse is high for this sample, then counts down.
func (p *Pulse) Step() bool {
	if p.countdown <= 0 {
		return false
	}
	p.countdown--
	return true
}

// Remaining returns the number of high samples still to come.
func (p *Pulse) Remaining() int { return p.countdown }

func (p *Pulse) Reset() { p.countdown = 0 }

// Samples converts a duration in milliseconds to a whole number of samples,
// rounding toward zero.
func Samples(ms, sampleRate int) int {
	if ms <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(int64(ms) * int64(sampleRate) / 1000)
}
