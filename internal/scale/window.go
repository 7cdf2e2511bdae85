package scale

// Window is the rotated, length-limited run of intervals a sequence steps
// through. Like Scale it is a value type.
type Window struct {
	notes [MaxLen]float64
	n     int
}

// NewWindow rotates s by rotate steps and fills length notes, wrapping around
// the scale as often as needed. length is clamped to [1, MaxLen]; rotate may
// be any signed value.
func NewWindow(s *Scale, length, rotate int) Window {
	var w Window
	if s.n == 0 {
		return w
	}
	w.n = ClampLength(length)
	for i := 0; i < w.n; i++ {
		w.notes[i] = s.intervals[Mod(i+rotate, s.n)]
	}
	return w
}

// Len returns the window length.
func (w *Window) Len() int { return w.n }

// At returns note i in semitones.
func (w *Window) At(i int) float64 { return w.notes[i] }

// Contains reports whether i is a valid step index.
func (w *Window) Contains(i int) bool { return i >= 0 && i < w.n }

// ClampLength limits a requested window length to [1, MaxLen].
func ClampLength(length int) int {
	if length < 1 {
		return 1
	}
	if length > MaxLen {
		return MaxLen
	}
	return length
}

// Mod is the mathematical modulo: the result is in [0, n) for any sign of a.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
