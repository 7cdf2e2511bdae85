package main

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	strummer "github.com/cbegin/strummer-go"
	"github.com/cbegin/strummer-go/internal/bus"
	"github.com/cbegin/strummer-go/internal/envelope"
	"github.com/cbegin/strummer-go/internal/scale"
)

func TestSettingsApply(t *testing.T) {
	s := settings{
		scale:  "dorian",
		shape:  "classic",
		params: []string{"spacing=40", "Transpose = -3"},
	}
	store := strummer.NewParamStore()
	if err := s.apply(store); err != nil {
		t.Fatal(err)
	}
	id, _ := scale.Lookup("Dorian")
	if store.Get(strummer.ParamScale) != float64(id) {
		t.Errorf("scale = %v, want %d", store.Get(strummer.ParamScale), id)
	}
	if store.Get(strummer.ParamShape) != float64(envelope.ShapeClassicExp) {
		t.Errorf("shape = %v", store.Get(strummer.ParamShape))
	}
	if store.Get(strummer.ParamSpacing) != 40 || store.Get(strummer.ParamTranspose) != -3 {
		t.Errorf("params = %v", store.Values())
	}
}

func TestSettingsApplyErrors(t *testing.T) {
	for _, s := range []settings{
		{params: []string{"spacing"}},
		{params: []string{"spacing=fast"}},
		{params: []string{"wobble=1"}},
		{scale: "no such scale"},
		{scale: "999"},
		{shape: "square"},
	} {
		if err := s.apply(strummer.NewParamStore()); err == nil {
			t.Errorf("%+v: expected an error", s)
		}
	}
}

func TestBusRouting(t *testing.T) {
	s := settings{channels: bus.DefaultChannels, routing: `{"pitch": 3}`}
	r, err := s.busRouting()
	if err != nil {
		t.Fatal(err)
	}
	want := bus.DefaultRouting()
	want.Pitch = 3
	if r != want {
		t.Fatalf("routing = %+v, want %+v", r, want)
	}
	s = settings{channels: 8}
	if _, err := s.busRouting(); err == nil {
		t.Fatal("default routing does not fit 8 channels")
	}
	s = settings{channels: bus.DefaultChannels, routing: `{`}
	if _, err := s.busRouting(); err == nil {
		t.Fatal("malformed JSON should fail")
	}
}

func TestActionFor(t *testing.T) {
	cases := map[byte]keyAction{
		'u': keyUp, 'd': keyDown, ' ': keyBoth, 'q': keyQuit, 0x03: keyQuit,
		']': keyScaleNext, '[': keyScalePrev, '+': keyTransposeUp, '-': keyTransposeDown, 'x': keyNone,
	}
	for b, want := range cases {
		if got := actionFor(b); got != want {
			t.Errorf("actionFor(%q) = %v, want %v", b, got, want)
		}
	}
}

func TestScaleStepWraps(t *testing.T) {
	if got := scaleStep(scale.Count-1, 1); got != 0 {
		t.Errorf("next from last = %d", got)
	}
	if got := scaleStep(0, -1); got != scale.Count-1 {
		t.Errorf("previous from first = %d", got)
	}
}

func TestHandleKey(t *testing.T) {
	pl, err := strummer.NewPlayer(8000)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 60; i++ {
		handleKey(pl, keyTransposeUp)
	}
	if got := pl.Params().Get(strummer.ParamTranspose); got != 48 {
		t.Errorf("transpose = %v, want clamp at 48", got)
	}
	handleKey(pl, keyScalePrev)
	if got := pl.Params().Get(strummer.ParamScale); got != scale.Count-1 {
		t.Errorf("scale = %v", got)
	}
	if handleKey(pl, keyQuit) {
		t.Error("quit should stop the loop")
	}
}

func TestScalesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"scales", "pent"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "Maj Pent") || strings.Contains(got, "Dorian") {
		t.Fatalf("output:\n%s", got)
	}
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	rootCmd.SetArgs([]string{"render", "-r", "8000", "-o", path, "-d", "500ms", "--up-rate", "4", "-p", "length=4", "--log-level", "error"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	// flag values persist between Execute calls on the shared command tree
	renderDuration = 0
	renderOut = ""
}

func TestParamsCommandListsByName(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"params"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(strummer.ParamNames())+1 {
		t.Fatalf("output:\n%s", out.String())
	}
	var names []string
	for _, l := range lines[1:] {
		names = append(names, strings.Fields(l)[0])
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !strings.Contains(out.String(), "spacing") || !strings.Contains(out.String(), "100") {
		t.Fatalf("output:\n%s", out.String())
	}
}
