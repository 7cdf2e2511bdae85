package monitor

import "math"

// Effector processes one stereo frame of the monitor signal.
type Effector interface {
	Process(l, r float32) (float32, float32)
	Reset()
}

// Chain applies effects in order.
type Chain []Effector

func (c Chain) Process(l, r float32) (float32, float32) {
	for _, e := range c {
		l, r = e.Process(l, r)
	}
	return l, r
}

func (c Chain) Reset() {
	for _, e := range c {
		e.Reset()
	}
}

// Echo is a ping-pong delay: each repeat swaps sides, so the centred monitor
// voice spreads across the stereo field.
type Echo struct {
	bufL, bufR []float32
	pos        int
	feedback   float32
	wet        float32
}

// NewEcho sizes the delay line for delayMs. feedback is capped below 1.
func NewEcho(sampleRate int, delayMs float64, feedback, wet float32) *Echo {
	samples := int(delayMs * float64(sampleRate) / 1000.0)
	if samples < 1 {
		samples = 1
	}
	return &Echo{
		bufL:     make([]float32, samples),
		bufR:     make([]float32, samples),
		feedback: clampf(feedback, 0, 0.95),
		wet:      clampf(wet, 0, 1),
	}
}

func (e *Echo) Process(l, r float32) (float32, float32) {
	delL := e.bufL[e.pos]
	delR := e.bufR[e.pos]
	// the left input feeds the left line; repeats cross over
	e.bufL[e.pos] = l + delR*e.feedback
	e.bufR[e.pos] = delL * e.feedback
	e.pos++
	if e.pos >= len(e.bufL) {
		e.pos = 0
	}
	return l*(1-e.wet) + delL*e.wet, r*(1-e.wet) + delR*e.wet
}

func (e *Echo) Reset() {
	clear(e.bufL)
	clear(e.bufR)
	e.pos = 0
}

// Limiter holds the stereo peak under a ceiling. Both sides share one gain so
// the image does not shift.
type Limiter struct {
	ceiling float32
	release float32 // coefficient
	env     float32
}

func NewLimiter(sampleRate int, ceiling float32, releaseMs float64) *Limiter {
	if ceiling <= 0 {
		ceiling = 1
	}
	return &Limiter{
		ceiling: ceiling,
		release: float32(1.0 - math.Exp(-1.0/(releaseMs*float64(sampleRate)/1000.0))),
	}
}

func (lm *Limiter) Process(l, r float32) (float32, float32) {
	peak := max(abs32(l), abs32(r))
	if peak > lm.env {
		lm.env = peak
	} else {
		lm.env += lm.release * (peak - lm.env)
	}
	if lm.env <= lm.ceiling {
		return l, r
	}
	g := lm.ceiling / lm.env
	return l * g, r * g
}

func (lm *Limiter) Reset() {
	lm.env = 0
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
