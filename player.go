package strummer

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	intaudio "github.com/cbegin/strummer-go/internal/audio"
	"github.com/cbegin/strummer-go/internal/bus"
	"github.com/cbegin/strummer-go/internal/clock"
	"github.com/cbegin/strummer-go/internal/live"
	"github.com/cbegin/strummer-go/internal/monitor"
	"github.com/cbegin/strummer-go/internal/trigger"
)

// PlaybackEvent is sent on the channel returned by Watch.
type PlaybackEvent struct {
	Kind  int // EventBlockSkipped or EventStopped
	Block uint64
}

const (
	EventBlockSkipped int = iota
	EventStopped
)

// PlayerOption configures NewPlayer.
type PlayerOption func(*playerConfig)

type playerConfig struct {
	blockFrames int
	waveform    monitor.Waveform
	clockUpHz   float64
	clockDownHz float64
	holdMs      int
	bufferSize  time.Duration
	store       *ParamStore
	sampleTap   func([]float32)
	extra       []TriggerSource
	routing     *bus.Routing
	channels    int
	echoMs      float64
	echoFb      float32
}

func defaultPlayerConfig() playerConfig {
	return playerConfig{blockFrames: DefaultBlockFrames, waveform: monitor.WaveTriangle, holdMs: 50}
}

// WithBlockFrames sets how many frames the processor runs per block.
func WithBlockFrames(n int) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.blockFrames = n
	}
}

func WithMonitorWaveform(w monitor.Waveform) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.waveform = w
	}
}

// WithClock drives the trigger inputs from free-running clocks. A zero rate
// leaves that input to the keyboard. The down clock runs half a cycle behind
// the up clock.
func WithClock(upHz, downHz float64) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.clockUpHz = upHz
		cfg.clockDownHz = downHz
	}
}

// WithKeyHold sets the gate length of a key press, in milliseconds.
func WithKeyHold(ms int) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.holdMs = ms
	}
}

// WithBufferSize sets the output device buffer.
func WithBufferSize(d time.Duration) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.bufferSize = d
	}
}

// WithMonitorEcho adds a ping-pong echo after the monitor oscillator.
func WithMonitorEcho(delayMs float64, feedback float32) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.echoMs = delayMs
		cfg.echoFb = feedback
	}
}

// WithBusRouting sets the processor's bus layout.
func WithBusRouting(r bus.Routing, channels int) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.routing = &r
		cfg.channels = channels
	}
}

// WithPlayerParams shares a parameter store, typically with a control server.
func WithPlayerParams(s *ParamStore) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.store = s
	}
}

// WithTriggers mixes another trigger source into the inputs.
func WithTriggers(src TriggerSource) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.extra = append(cfg.extra, src)
	}
}

// WithSampleTap installs a callback invoked with each generated stereo buffer.
// The callback runs on the audio thread; keep work brief and non-blocking.
func WithSampleTap(tap func([]float32)) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.sampleTap = tap
	}
}

// Player runs a Processor in real time and makes its pitch and envelopes
// audible through the monitor voice.
type Player struct {
	mu         sync.Mutex
	sampleRate int
	bufferSize time.Duration
	proc       *Processor
	keys       *live.Keys
	voice      *monitor.Voice
	engine     *engine
	audio      *intaudio.Player
	eventCh    atomic.Pointer[chan PlaybackEvent]
}

// engine is the BlockSource ebiten pulls from.
type engine struct {
	proc      *Processor
	frames    *bus.Frames
	views     bus.Views
	triggers  TriggerSource
	voice     *monitor.Voice
	up, down  []float32
	sampleTap func([]float32)
	blocks    atomic.Uint64
	skipped   atomic.Uint64
	onSkip    func(block uint64)
}

func (e *engine) BlockFrames() int { return e.frames.Len() }

func (e *engine) Process(dst []float32) {
	e.triggers.Fill(e.up, e.down)
	copy(e.views.TrigUp, e.up)
	copy(e.views.TrigDown, e.down)
	n := e.blocks.Add(1)
	if !e.proc.Process(e.frames) {
		e.skipped.Add(1)
		if e.onSkip != nil {
			e.onSkip(n)
		}
	}
	e.voice.Render(dst, e.views.Pitch, e.views.EnvUp, e.views.EnvDown)
	if e.sampleTap != nil {
		e.sampleTap(dst)
	}
}

// NewPlayer builds a player without opening the output device; Start does that.
func NewPlayer(sampleRate int, opts ...PlayerOption) (*Player, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	cfg := defaultPlayerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.blockFrames <= 0 {
		return nil, errors.New("block size must be positive")
	}
	var procOpts []Option
	if cfg.store != nil {
		procOpts = append(procOpts, WithParamStore(cfg.store))
	}
	if cfg.routing != nil {
		procOpts = append(procOpts, WithRouting(*cfg.routing, cfg.channels))
	}
	proc, err := NewProcessor(sampleRate, nil, procOpts...)
	if err != nil {
		return nil, err
	}
	keys := live.New(trigger.Samples(cfg.holdMs, sampleRate))
	sources := []TriggerSource{keys}
	if cfg.clockUpHz > 0 || cfg.clockDownHz > 0 {
		ct := &ClockTriggers{SampleRate: float64(sampleRate)}
		if cfg.clockUpHz > 0 {
			ct.Up = clock.New(cfg.clockUpHz, 0.5, 0)
		}
		if cfg.clockDownHz > 0 {
			ct.Down = clock.New(cfg.clockDownHz, 0.5, 0.5)
		}
		sources = append(sources, ct)
	}
	sources = append(sources, cfg.extra...)

	voice := monitor.New(sampleRate, cfg.waveform, OutputLevel)
	var fx []monitor.Effector
	if cfg.echoMs > 0 {
		fx = append(fx, monitor.NewEcho(sampleRate, cfg.echoMs, cfg.echoFb, 0.35))
	}
	fx = append(fx, monitor.NewLimiter(sampleRate, 0.9, 80))
	voice.SetEffects(fx...)
	frames := bus.NewFrames(proc.Channels(), cfg.blockFrames)
	p := &Player{
		sampleRate: sampleRate,
		bufferSize: cfg.bufferSize,
		proc:       proc,
		keys:       keys,
		voice:      voice,
	}
	p.engine = &engine{
		proc:      proc,
		frames:    frames,
		views:     proc.Routing().Bind(frames),
		triggers:  NewMixTriggers(sources...),
		voice:     voice,
		up:        make([]float32, cfg.blockFrames),
		down:      make([]float32, cfg.blockFrames),
		sampleTap: cfg.sampleTap,
		onSkip: func(block uint64) {
			p.sendEvent(PlaybackEvent{Kind: EventBlockSkipped, Block: block})
		},
	}
	return p, nil
}

// Start opens the output device and begins pulling blocks.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		return nil
	}
	backend, err := intaudio.NewPlayer(p.sampleRate, p.engine, p.bufferSize)
	if err != nil {
		return err
	}
	p.audio = backend
	p.audio.Play()
	return nil
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Pause()
	}
}

func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Play()
	}
}

func (p *Player) Stop() error {
	p.mu.Lock()
	if p.audio == nil {
		p.mu.Unlock()
		return nil
	}
	err := p.audio.Stop()
	p.audio = nil
	p.mu.Unlock()
	p.sendEvent(PlaybackEvent{Kind: EventStopped, Block: p.engine.blocks.Load()})
	return err
}

// PressUp queues an up strum. It reports false if too many are queued.
func (p *Player) PressUp() bool { return p.keys.PressUp() }

// PressDown queues a down strum.
func (p *Player) PressDown() bool { return p.keys.PressDown() }

// Params is the live parameter store. Writes take effect at the next block.
func (p *Player) Params() *ParamStore { return p.proc.Params() }

// SetParam sets a parameter by name.
func (p *Player) SetParam(name string, v float64) error {
	return p.proc.Params().SetByName(name, v)
}

// ParamValues returns every raw parameter value keyed by name.
func (p *Player) ParamValues() map[string]float64 { return p.proc.Params().Values() }

// SetMonitorGain sets the level of the audible voice. It is lock-free.
func (p *Player) SetMonitorGain(gain float64) { p.voice.SetGain(gain) }

func (p *Player) MonitorGain() float64 { return p.voice.Gain() }

func (p *Player) SampleRate() int { return p.sampleRate }

// Stats reports processed and skipped block counts.
func (p *Player) Stats() (blocks, skipped uint64) {
	return p.engine.blocks.Load(), p.engine.skipped.Load()
}

// sendEvent never blocks or locks; it runs on the audio thread for skips.
func (p *Player) sendEvent(ev PlaybackEvent) {
	ch := p.eventCh.Load()
	if ch == nil {
		return
	}
	select {
	case *ch <- ev:
	default:
		// Channel full; drop event
	}
}

// Watch returns a channel that receives playback events. Events are sent when:
//   - EventBlockSkipped: the processor declined a block (unknown scale)
//   - EventStopped: Stop was called
//
// The channel is buffered (cap 8); receive in a goroutine to avoid blocking the audio thread.
// Only the most recent Watch() channel receives events.
func (p *Player) Watch() <-chan PlaybackEvent {
	ch := make(chan PlaybackEvent, 8)
	p.eventCh.Store(&ch)
	return ch
}
