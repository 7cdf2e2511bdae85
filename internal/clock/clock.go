package clock

// High is the level a clock emits while its phase is inside the duty window.
const High = 5.0

// Clock is a square-wave trigger source. It is the signal a host would patch
// into a trigger input when no external clock is connected.
type Clock struct {
	rateHz float64 // cycles per second
	duty   float64 // high fraction of each cycle, (0, 1)
	offset float64 // initial phase in cycles
	phase  float64 // current phase [0, 1)
}

// New returns a clock already positioned at its offset.
func New(rateHz, duty, offset float64) *Clock {
	c := &Clock{}
	c.Set(rateHz, duty, offset)
	c.Reset()
	return c
}

// Set configures the clock. A duty outside (0, 1) falls back to one half.
func (c *Clock) Set(rateHz, duty, offset float64) {
	c.rateHz = rateHz
	if duty <= 0 || duty >= 1 {
		duty = 0.5
	}
	c.duty = duty
	c.offset = wrap(offset)
}

// BPM converts beats per minute and a subdivision (ticks per beat) to Hz.
func BPM(bpm float64, perBeat int) float64 {
	if perBeat <= 0 {
		perBeat = 1
	}
	return bpm / 60 * float64(perBeat)
}

// Sample advances the clock by one sample and returns High or 0.
// Returns 0 if the rate is zero.
func (c *Clock) Sample(sampleRate float64) float32 {
	if c.rateHz <= 0 || sampleRate <= 0 {
		return 0
	}
	var v float32
	if c.phase < c.duty {
		v = High
	}
	c.phase = wrap(c.phase + c.rateHz/sampleRate)
	return v
}

// Fill writes consecutive samples into dst.
func (c *Clock) Fill(dst []float32, sampleRate float64) {
	for i := range dst {
		dst[i] = c.Sample(sampleRate)
	}
}

// Active returns true if the clock has a non-zero rate.
func (c *Clock) Active() bool {
	return c.rateHz > 0
}

// Reset returns the phase to the configured offset.
func (c *Clock) Reset() {
	c.phase = c.offset
}

func wrap(p float64) float64 {
	for p >= 1.0 {
		p -= 1.0
	}
	for p < 0 {
		p += 1.0
	}
	return p
}
