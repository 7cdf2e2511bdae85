package strummer

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cbegin/strummer-go/internal/clock"
	"github.com/cbegin/strummer-go/internal/miditrig"
)

func renderClocked(t *testing.T, frames int) *Recording {
	t.Helper()
	p, err := NewProcessor(8192, nil)
	if err != nil {
		t.Fatal(err)
	}
	p.Params().Set(ParamSpacing, 20)
	p.Params().Set(ParamAttack, 5)
	p.Params().Set(ParamRelease, 50)
	src := &ClockTriggers{
		Up:         clock.New(4, 0.25, 0),
		Down:       clock.New(4, 0.25, 0.5),
		SampleRate: 8192,
	}
	rec, err := Render(p, src, frames, 100)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestRenderLengthAndTriggers(t *testing.T) {
	rec := renderClocked(t, 4050)
	if rec.Frames() != 4050 || len(rec.TrigDown) != 4050 || len(rec.GateDown) != 4050 {
		t.Fatalf("frames = %d", rec.Frames())
	}
	if rec.Skipped != 0 {
		t.Fatalf("%d blocks skipped", rec.Skipped)
	}
	if rec.TrigUp[0] != clock.High || rec.TrigDown[0] != 0 || rec.TrigDown[1024] != clock.High {
		t.Fatal("clock inputs not captured")
	}
	if rec.GateUp[0] != OutputLevel || rec.GateDown[1024] != OutputLevel {
		t.Fatal("gate outputs should fire on each clock edge")
	}
	// C major from the root: 20ms spacing is 163 frames at 8192 Hz
	if rec.Pitch[0] != 0 || rec.Pitch[163] != float32(2.0/12) {
		t.Fatalf("pitch[0]=%v pitch[163]=%v", rec.Pitch[0], rec.Pitch[163])
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	hash := func(name string) string {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := renderClocked(t, 3000).WriteWAV(f); err != nil {
			t.Fatal(err)
		}
		f.Close()
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		sum := sha256.Sum256(raw)
		return hex.EncodeToString(sum[:])
	}
	if a, b := hash("a.wav"), hash("b.wav"); a != b {
		t.Fatalf("renders differ\nfirst:  %s\nsecond: %s", a, b)
	}
}

func TestWAVRoundTrip(t *testing.T) {
	rec := renderClocked(t, 2000)
	rec.Pitch[7] = 42 // beyond full scale, must clip
	path := filepath.Join(t.TempDir(), "cv.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.WriteWAV(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	f, err = os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := ReadWAV(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.SampleRate != 8192 || got.Frames() != 2000 {
		t.Fatalf("sample rate %d frames %d", got.SampleRate, got.Frames())
	}
	if math.Abs(float64(got.Pitch[7]-CVFullScale)) > 1e-4 {
		t.Fatalf("clipped pitch = %v, want %v", got.Pitch[7], CVFullScale)
	}
	want, have := rec.signals(), got.signals()
	for ch := range want {
		for i := range want[ch] {
			if i == 7 && ch == 2 {
				continue
			}
			if d := math.Abs(float64(want[ch][i] - have[ch][i])); d > 1e-4 {
				t.Fatalf("%s[%d] = %v, want %v", recordingChannels[ch], i, have[ch][i], want[ch][i])
			}
		}
	}
}

func TestRenderFromMIDINotes(t *testing.T) {
	p, err := NewProcessor(1000, nil)
	if err != nil {
		t.Fatal(err)
	}
	p.Params().Set(ParamSpacing, 10)
	p.Params().Set(ParamLength, 3)
	notes := []miditrig.Note{
		{Key: 30, StartUS: 0, EndUS: 50_000},
		{Key: 80, StartUS: 100_000, EndUS: 150_000},
	}
	src, err := miditrig.NewSource(notes, 1000, miditrig.DefaultMapping())
	if err != nil {
		t.Fatal(err)
	}
	rec, err := Render(p, src, int(src.Frames()), 0)
	if err != nil {
		t.Fatal(err)
	}
	// low note strums down from the top of the window: E, D, C
	for i, want := range []float32{4.0 / 12, 2.0 / 12, 0} {
		if got := rec.Pitch[i*10]; got != want {
			t.Fatalf("down strum step %d = %v, want %v", i, got, want)
		}
	}
	if rec.EnvDown[10] != OutputLevel || rec.EnvUp[10] != 0 {
		t.Fatal("low note should gate the down envelope only")
	}
	if rec.Pitch[100] != 0 || rec.Pitch[110] != float32(2.0/12) {
		t.Fatal("high note should strum up")
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	p, _ := NewProcessor(1000, nil)
	if _, err := Render(p, nil, 10, 0); err == nil {
		t.Fatal("nil source should fail")
	}
	if _, err := Render(p, &ClockTriggers{SampleRate: 1000}, -1, 0); err == nil {
		t.Fatal("negative length should fail")
	}
}

// scaleBreaker invalidates the scale on the nth Fill.
type scaleBreaker struct {
	TriggerSource
	params  *ParamStore
	calls   int
	breakAt int
}

func (s *scaleBreaker) Fill(up, down []float32) {
	s.calls++
	if s.calls == s.breakAt {
		s.params.Set(ParamScale, -1)
	}
	s.TriggerSource.Fill(up, down)
}

func TestRenderSkippedTailKeepsBus(t *testing.T) {
	p, err := NewProcessor(8192, nil)
	if err != nil {
		t.Fatal(err)
	}
	p.Params().Set(ParamSpacing, 20)
	src := &scaleBreaker{
		TriggerSource: &ClockTriggers{Up: clock.New(4, 0.25, 0), SampleRate: 8192},
		params:        p.Params(),
		breakAt:       3,
	}
	rec, err := Render(p, src, 500, 200)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Skipped != 1 || rec.Frames() != 500 {
		t.Fatalf("skipped = %d, frames = %d", rec.Skipped, rec.Frames())
	}
	if rec.Pitch[200] == 0 {
		t.Fatal("expected a running sequence in the second block")
	}
	for i := 0; i < 100; i++ {
		if rec.Pitch[400+i] != rec.Pitch[200+i] || rec.EnvUp[400+i] != rec.EnvUp[200+i] {
			t.Fatalf("tail frame %d = %v/%v, want leftover %v/%v", i,
				rec.Pitch[400+i], rec.EnvUp[400+i], rec.Pitch[200+i], rec.EnvUp[200+i])
		}
	}
}

func TestRecordingChannelsMatchSignals(t *testing.T) {
	names := RecordingChannels()
	rec := &Recording{}
	if len(names) != len(rec.signals()) {
		t.Fatalf("%d names for %d signals", len(names), len(rec.signals()))
	}
	if names[2] != "pitch" || names[6] != "gate_down" {
		t.Fatalf("names = %v", names)
	}
	names[0] = "changed"
	if RecordingChannels()[0] != "trig_up" {
		t.Fatal("RecordingChannels must return a copy")
	}
}
