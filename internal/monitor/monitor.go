// Package monitor renders the control voltages of a Processor as something
// audible: one oscillator tracking the pitch CV, with its level following the
// louder of the two envelopes.
package monitor

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

const twoPi = math.Pi * 2

// ZeroVoltHz is the frequency a 0 V pitch CV plays (middle C).
const ZeroVoltHz = 261.6255653005986

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSaw
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveTriangle:
		return "triangle"
	case WaveSaw:
		return "saw"
	}
	return fmt.Sprintf("waveform(%d)", int(w))
}

func ParseWaveform(s string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sine", "sin":
		return WaveSine, nil
	case "triangle", "tri":
		return WaveTriangle, nil
	case "saw":
		return WaveSaw, nil
	}
	return 0, fmt.Errorf("unknown waveform %q", s)
}

// Voice is a single oscillator driven by CV. Gain may be changed from any
// goroutine; everything else belongs to the audio goroutine.
type Voice struct {
	sampleRate float64
	waveform   Waveform
	levelFull  float64 // envelope volts that mean full level
	phase      float64
	gain       uint64
	fx         Chain
}

func New(sampleRate int, waveform Waveform, levelFull float64) *Voice {
	if levelFull <= 0 {
		levelFull = 1
	}
	v := &Voice{sampleRate: float64(sampleRate), waveform: waveform, levelFull: levelFull}
	v.SetGain(0.3)
	return v
}

// SetEffects installs a post-oscillator chain. It must not run concurrently
// with Render.
func (v *Voice) SetEffects(fx ...Effector) {
	v.fx = fx
}

func (v *Voice) SetGain(gain float64) {
	if gain < 0 {
		gain = 0
	}
	atomic.StoreUint64(&v.gain, math.Float64bits(gain))
}

func (v *Voice) Gain() float64 {
	return math.Float64frombits(atomic.LoadUint64(&v.gain))
}

// Freq converts a one-volt-per-octave CV to Hz.
func Freq(cv float64) float64 {
	return ZeroVoltHz * math.Pow(2, cv)
}

// Render writes interleaved stereo into dst, one frame per CV sample. dst
// must hold 2*len(pitch) samples; envA and envB must match pitch in length.
func (v *Voice) Render(dst []float32, pitch, envA, envB []float32) {
	gain := v.Gain()
	for i := range pitch {
		level := math.Max(float64(envA[i]), float64(envB[i])) / v.levelFull
		s := v.sample() * level * gain
		v.phase += twoPi * Freq(float64(pitch[i])) / v.sampleRate
		if v.phase > twoPi {
			v.phase = math.Mod(v.phase, twoPi)
		}
		l, r := float32(s), float32(s)
		if len(v.fx) > 0 {
			l, r = v.fx.Process(l, r)
		}
		dst[2*i] = l
		dst[2*i+1] = r
	}
}

func (v *Voice) sample() float64 {
	switch v.waveform {
	case WaveTriangle:
		return 2.0*math.Abs(2.0*v.phase/twoPi-1.0) - 1.0
	case WaveSaw:
		return 1.0 - 2.0*v.phase/twoPi
	default:
		return math.Sin(v.phase)
	}
}

// Reset zeros the oscillator phase and clears the effects.
func (v *Voice) Reset() {
	v.phase = 0
	v.fx.Reset()
}
