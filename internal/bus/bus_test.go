package bus

import (
	"errors"
	"testing"
)

func TestChannelsArePlanar(t *testing.T) {
	f := NewFrames(3, 4)
	for ch := 1; ch <= 3; ch++ {
		s, err := f.Channel(ch)
		if err != nil {
			t.Fatalf("channel %d: %v", ch, err)
		}
		for i := range s {
			s[i] = float32(ch*10 + i)
		}
	}
	want := []float32{10, 11, 12, 13, 20, 21, 22, 23, 30, 31, 32, 33}
	for i, v := range want {
		if f.data[i] != v {
			t.Fatalf("data[%d] = %v, want %v", i, f.data[i], v)
		}
	}
}

func TestChannelSlicesCannotGrowIntoNeighbours(t *testing.T) {
	f := NewFrames(2, 2)
	s, _ := f.Channel(1)
	_ = append(s, 99)
	if f.data[2] == 99 {
		t.Fatal("append on a channel view wrote into the next channel")
	}
}

func TestChannelRange(t *testing.T) {
	f := NewFrames(DefaultChannels, 8)
	for _, ch := range []int{0, -1, DefaultChannels + 1} {
		if _, err := f.Channel(ch); !errors.Is(err, ErrChannelRange) {
			t.Errorf("Channel(%d) err = %v, want ErrChannelRange", ch, err)
		}
	}
}

func TestRoutingValidate(t *testing.T) {
	r := DefaultRouting()
	if err := r.Validate(DefaultChannels); err != nil {
		t.Fatalf("default routing: %v", err)
	}
	if err := r.Validate(12); !errors.Is(err, ErrChannelRange) {
		t.Fatalf("12 channels: err = %v, want ErrChannelRange", err)
	}
	r.GateDown = 0
	if err := r.Validate(DefaultChannels); err == nil {
		t.Fatal("channel 0 should be rejected")
	}
}

func TestBindAliases(t *testing.T) {
	f := NewFrames(4, 2)
	r := Routing{TrigUp: 1, TrigDown: 2, Pitch: 3, EnvUp: 4, EnvDown: 4, GateUp: 3, GateDown: 1}
	if err := r.Validate(f.Channels()); err != nil {
		t.Fatal(err)
	}
	v := r.Bind(f)
	v.GateUp[1] = 7
	if v.Pitch[1] != 7 {
		t.Fatal("aliased outputs should share storage")
	}
}

func TestWrap(t *testing.T) {
	if _, err := Wrap(make([]float32, 10), 3, 3); err == nil {
		t.Fatal("mismatched length should fail")
	}
	f, err := Wrap(make([]float32, 12), 3, 4)
	if err != nil || f.Channels() != 3 || f.Len() != 4 {
		t.Fatalf("Wrap = %v, %v", f, err)
	}
}

func TestShrinkKeepsLeadingSamples(t *testing.T) {
	f := NewFrames(3, 4)
	for ch := 1; ch <= 3; ch++ {
		s, _ := f.Channel(ch)
		for i := range s {
			s[i] = float32(ch*10 + i)
		}
	}
	f.Shrink(2)
	if f.Len() != 2 || f.Channels() != 3 {
		t.Fatalf("shape = %dx%d", f.Channels(), f.Len())
	}
	for ch := 1; ch <= 3; ch++ {
		s, _ := f.Channel(ch)
		if len(s) != 2 || s[0] != float32(ch*10) || s[1] != float32(ch*10+1) {
			t.Fatalf("channel %d = %v", ch, s)
		}
	}
	f.Shrink(5)
	if f.Len() != 2 {
		t.Fatalf("growing should be ignored, len = %d", f.Len())
	}
}
