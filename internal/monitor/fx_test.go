package monitor

import (
	"math"
	"testing"
)

func TestEchoPingPongs(t *testing.T) {
	e := NewEcho(1000, 10, 0.5, 1)
	e.Process(1, 0)
	var outL, outR []float32
	for i := 0; i < 30; i++ {
		l, r := e.Process(0, 0)
		outL = append(outL, l)
		outR = append(outR, r)
	}
	// first repeat on the left after 10 frames, the second on the right
	if outL[9] != 1 || outR[9] != 0 {
		t.Fatalf("first repeat: l=%v r=%v", outL[9], outR[9])
	}
	if outR[19] != 0.5 || outL[19] != 0 {
		t.Fatalf("second repeat: l=%v r=%v", outL[19], outR[19])
	}
	if outL[29] != 0.25 {
		t.Fatalf("third repeat: l=%v", outL[29])
	}
}

func TestEchoReset(t *testing.T) {
	e := NewEcho(1000, 5, 0.9, 1)
	e.Process(1, 1)
	e.Reset()
	for i := 0; i < 20; i++ {
		if l, r := e.Process(0, 0); l != 0 || r != 0 {
			t.Fatalf("frame %d after reset: %v %v", i, l, r)
		}
	}
}

func TestLimiterHoldsCeiling(t *testing.T) {
	lm := NewLimiter(48000, 0.5, 50)
	for i := 0; i < 1000; i++ {
		s := float32(2 * math.Sin(float64(i)*0.05))
		l, r := lm.Process(s, -s)
		if abs32(l) > 0.5001 || abs32(r) > 0.5001 {
			t.Fatalf("frame %d: %v %v exceeds ceiling", i, l, r)
		}
	}
}

func TestLimiterPassesQuietSignal(t *testing.T) {
	lm := NewLimiter(48000, 1, 50)
	if l, r := lm.Process(0.25, -0.5); l != 0.25 || r != -0.5 {
		t.Fatalf("quiet signal changed: %v %v", l, r)
	}
}

func TestVoiceRunsEffects(t *testing.T) {
	v := New(1000, WaveSine, 5)
	v.SetGain(1)
	v.SetEffects(NewLimiter(1000, 0.1, 10))
	n := 200
	env := make([]float32, n)
	for i := range env {
		env[i] = 5
	}
	dst := make([]float32, 2*n)
	v.Render(dst, make([]float32, n), env, env)
	for i, s := range dst {
		if abs32(s) > 0.1001 {
			t.Fatalf("sample %d = %v, limiter not applied", i, s)
		}
	}
}
