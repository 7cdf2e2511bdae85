package strummer

import (
	"math"
	"testing"
)

func TestPlayerMonitorGainRuntimeAPI(t *testing.T) {
	pl, err := NewPlayer(48000)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if got := pl.MonitorGain(); got != 0.3 {
		t.Fatalf("default monitor gain = %v, want 0.3", got)
	}
	pl.SetMonitorGain(0.35)
	if got := pl.MonitorGain(); got != 0.35 {
		t.Fatalf("monitor gain = %v, want 0.35", got)
	}
	pl.SetMonitorGain(-2)
	if got := pl.MonitorGain(); got != 0 {
		t.Fatalf("monitor gain should clamp to 0, got %v", got)
	}
}

func TestPlayerKeyPressStrums(t *testing.T) {
	var tapped int
	pl, err := NewPlayer(8000, WithBlockFrames(64), WithSampleTap(func(buf []float32) { tapped += len(buf) }))
	if err != nil {
		t.Fatal(err)
	}
	if err := pl.SetParam("attack", 0); err != nil {
		t.Fatal(err)
	}
	if !pl.PressUp() {
		t.Fatal("press rejected")
	}
	dst := make([]float32, 2*pl.engine.BlockFrames())
	pl.engine.Process(dst)
	if tapped != len(dst) {
		t.Fatalf("tap saw %d samples, want %d", tapped, len(dst))
	}
	loud := false
	for _, s := range dst {
		if math.Abs(float64(s)) > 0.01 {
			loud = true
		}
	}
	if !loud {
		t.Fatal("a key press should make the monitor audible")
	}
	if got := pl.proc.State().Seq.StepIndex(); got != 1 {
		t.Fatalf("sequencer step = %d, want 1", got)
	}
	if blocks, skipped := pl.Stats(); blocks != 1 || skipped != 0 {
		t.Fatalf("stats = %d %d", blocks, skipped)
	}
}

func TestPlayerReportsSkippedBlocks(t *testing.T) {
	pl, err := NewPlayer(8000, WithBlockFrames(32))
	if err != nil {
		t.Fatal(err)
	}
	events := pl.Watch()
	pl.Params().Set(ParamScale, 500)
	pl.engine.Process(make([]float32, 64))
	select {
	case ev := <-events:
		if ev.Kind != EventBlockSkipped || ev.Block != 1 {
			t.Fatalf("event = %+v", ev)
		}
	default:
		t.Fatal("no event for skipped block")
	}
	if _, skipped := pl.Stats(); skipped != 1 {
		t.Fatalf("skipped = %d", skipped)
	}
}

func TestPlayerClockDrivesInputs(t *testing.T) {
	pl, err := NewPlayer(1000, WithBlockFrames(100), WithClock(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	pl.engine.Process(make([]float32, 200))
	if got := pl.engine.views.GateUp[0]; got != OutputLevel {
		t.Fatalf("clock edge should fire the up gate, got %v", got)
	}
	if got := pl.engine.views.TrigDown[50]; got != 0 {
		t.Fatalf("down input should stay low, got %v", got)
	}
}

func TestPlayerSharedParams(t *testing.T) {
	store := NewParamStore()
	pl, err := NewPlayer(8000, WithPlayerParams(store))
	if err != nil {
		t.Fatal(err)
	}
	store.Set(ParamTranspose, 7)
	if pl.Params().Get(ParamTranspose) != 7 {
		t.Fatal("player should read the shared store")
	}
	if err := pl.SetParam("nope", 1); err == nil {
		t.Fatal("unknown parameter should fail")
	}
	if _, err := NewPlayer(8000, WithBlockFrames(0)); err == nil {
		t.Fatal("zero block size should fail")
	}
}

func TestPlayerStopWithoutStart(t *testing.T) {
	pl, err := NewPlayer(8000)
	if err != nil {
		t.Fatal(err)
	}
	if err := pl.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestPlayerSkipEventsDoNotBlockOrAllocate(t *testing.T) {
	pl, err := NewPlayer(8000, WithBlockFrames(32))
	if err != nil {
		t.Fatal(err)
	}
	stale := pl.Watch()
	events := pl.Watch()
	pl.Params().Set(ParamScale, 500)
	dst := make([]float32, 64)
	// more skips than the channel holds; the extras are dropped
	allocs := testing.AllocsPerRun(20, func() {
		pl.sendEvent(PlaybackEvent{Kind: EventBlockSkipped})
	})
	if allocs != 0 {
		t.Fatalf("sendEvent allocated %v times", allocs)
	}
	pl.engine.Process(dst)
	if len(events) != cap(events) {
		t.Fatalf("events buffered = %d, want full %d", len(events), cap(events))
	}
	if len(stale) != 0 {
		t.Fatal("a replaced Watch channel should not receive events")
	}
}
