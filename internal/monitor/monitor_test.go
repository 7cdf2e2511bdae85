package monitor

import (
	"math"
	"testing"
)

func TestFreqTracksOctaves(t *testing.T) {
	if math.Abs(Freq(0)-ZeroVoltHz) > 1e-9 {
		t.Errorf("Freq(0) = %v", Freq(0))
	}
	if math.Abs(Freq(1)-2*ZeroVoltHz) > 1e-9 {
		t.Errorf("Freq(1) = %v", Freq(1))
	}
	// A4 is nine semitones above middle C
	if math.Abs(Freq(9.0/12)-440) > 1e-6 {
		t.Errorf("Freq(0.75) = %v, want 440", Freq(9.0/12))
	}
}

func TestSilentWithoutEnvelope(t *testing.T) {
	v := New(48000, WaveSaw, 5)
	n := 64
	dst := make([]float32, 2*n)
	v.Render(dst, make([]float32, n), make([]float32, n), make([]float32, n))
	for i, s := range dst {
		if s != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

func TestLevelFollowsLouderEnvelope(t *testing.T) {
	v := New(48000, WaveSine, 5)
	v.SetGain(1)
	n := 480
	pitch := make([]float32, n)
	full := make([]float32, n)
	half := make([]float32, n)
	for i := range full {
		full[i] = 5
		half[i] = 2.5
	}
	dst := make([]float32, 2*n)
	v.Render(dst, pitch, half, full)
	peak := 0.0
	for i := 0; i < n; i++ {
		if dst[2*i] != dst[2*i+1] {
			t.Fatalf("frame %d is not centred", i)
		}
		peak = math.Max(peak, math.Abs(float64(dst[2*i])))
	}
	if peak < 0.99 || peak > 1.0001 {
		t.Errorf("peak = %v, want ~1", peak)
	}
}

func TestParseWaveform(t *testing.T) {
	for _, w := range []Waveform{WaveSine, WaveTriangle, WaveSaw} {
		got, err := ParseWaveform(w.String())
		if err != nil || got != w {
			t.Errorf("ParseWaveform(%q) = %v, %v", w, got, err)
		}
	}
	if _, err := ParseWaveform("organ"); err == nil {
		t.Error("unknown waveform should fail")
	}
}

func TestNegativeGainClamped(t *testing.T) {
	v := New(44100, WaveSine, 5)
	v.SetGain(-2)
	if v.Gain() != 0 {
		t.Errorf("gain = %v", v.Gain())
	}
}
