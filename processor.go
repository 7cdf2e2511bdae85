// Package strummer is a trigger-driven pitch sequencer and gate envelope
// generator. A Processor walks a window of scale notes after each trigger edge
// and writes a one-volt-per-octave pitch CV, two envelope CVs and two pulse
// gates into a shared bus buffer, one block at a time.
package strummer

import (
	"errors"
	"unsafe"

	"github.com/cbegin/strummer-go/internal/bus"
	"github.com/cbegin/strummer-go/internal/envelope"
	"github.com/cbegin/strummer-go/internal/scale"
	"github.com/cbegin/strummer-go/internal/sequencer"
	"github.com/cbegin/strummer-go/internal/trigger"
)

// OutputLevel is the high level of the pulse gates and the full scale of the
// envelope outputs, in volts.
const OutputLevel = 5.0

// State is every piece of mutable per-instance state. It is owned by exactly
// one Processor and touched only from its Process calls.
type State struct {
	Seq       sequencer.Sequencer
	EnvUp     envelope.Gate
	EnvDown   envelope.Gate
	PulseUp   trigger.Pulse
	PulseDown trigger.Pulse
	EdgeUp    trigger.EdgeDetector
	EdgeDown  trigger.EdgeDetector
}

// Reset puts the state in its power-on condition.
func (s *State) Reset() {
	s.Seq.Reset()
	s.EnvUp.Reset()
	s.EnvDown.Reset()
	s.PulseUp.Reset()
	s.PulseDown.Reset()
	s.EdgeUp.Reset()
	s.EdgeDown.Reset()
}

// Sizing reports the memory a host must provide for one instance.
type Sizing struct {
	StateBytes     int
	ProcessorBytes int
}

// Requirements is the side-effect free sizing query.
func Requirements() Sizing {
	return Sizing{
		StateBytes:     int(unsafe.Sizeof(State{})),
		ProcessorBytes: int(unsafe.Sizeof(Processor{})),
	}
}

// Option configures a Processor at construction.
type Option func(*Processor) error

// WithRouting sets the bus layout. The routing is validated against channels
// here, once, rather than on every sample.
func WithRouting(r bus.Routing, channels int) Option {
	return func(p *Processor) error {
		return p.SetRouting(r, channels)
	}
}

// WithParamStore shares a store with a control path.
func WithParamStore(s *ParamStore) Option {
	return func(p *Processor) error {
		if s == nil {
			return errors.New("nil param store")
		}
		p.params = s
		return nil
	}
}

// Processor runs the per-block sample loop over one State.
type Processor struct {
	state      *State
	params     *ParamStore
	sampleRate int
	routing    bus.Routing
	channels   int
}

// NewProcessor constructs an instance over state, which the caller may have
// allocated elsewhere; a nil state is allocated here. The state is reset
// before NewProcessor returns.
func NewProcessor(sampleRate int, state *State, opts ...Option) (*Processor, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	if state == nil {
		state = &State{}
	}
	state.Reset()
	p := &Processor{
		state:      state,
		params:     NewParamStore(),
		sampleRate: sampleRate,
		routing:    bus.DefaultRouting(),
		channels:   bus.DefaultChannels,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SetRouting validates and installs a bus layout. It must not run
// concurrently with Process.
func (p *Processor) SetRouting(r bus.Routing, channels int) error {
	if err := r.Validate(channels); err != nil {
		return err
	}
	p.routing = r
	p.channels = channels
	return nil
}

// Routing returns the validated bus layout.
func (p *Processor) Routing() bus.Routing { return p.routing }

// Channels returns the bus channel count the routing was validated for.
func (p *Processor) Channels() int { return p.channels }

// SampleRate returns the rate given at construction.
func (p *Processor) SampleRate() int { return p.sampleRate }

// Params returns the store the processor samples at each block start.
func (p *Processor) Params() *ParamStore { return p.params }

// State exposes the instance state for inspection between blocks.
func (p *Processor) State() *State { return p.state }

// Reset returns the instance to its power-on state.
func (p *Processor) Reset() { p.state.Reset() }

// Process runs one block over every frame of f. Parameters are read once. If
// the selected scale does not resolve, or f does not have the channel count
// the routing was validated for, the block is skipped and f is left as is.
// Process reports whether the block ran. It does not allocate.
func (p *Processor) Process(f *bus.Frames) bool {
	if f.Channels() != p.channels {
		return false
	}
	prm := p.params.Snapshot()
	sc, ok := scale.Resolve(prm.Scale)
	if !ok {
		return false
	}
	win := scale.NewWindow(&sc, prm.Length, prm.Rotate)
	env := prm.Envelope()
	sr := float64(p.sampleRate)
	spacing := trigger.Samples(prm.SpacingMs, p.sampleRate)
	gateLen := trigger.Samples(prm.GateLenMs, p.sampleRate)
	transpose := float64(prm.Transpose)

	st := p.state
	v := p.routing.Bind(f)
	for i := 0; i < f.Len(); i++ {
		// read both inputs before any output can overwrite an aliased channel
		upIn, downIn := v.TrigUp[i], v.TrigDown[i]
		upHigh, upRise := st.EdgeUp.Step(upIn)
		downHigh, downRise := st.EdgeDown.Step(downIn)

		envUp := st.EnvUp.Step(upHigh, &env, sr)
		envDown := st.EnvDown.Step(downHigh, &env, sr)

		if upRise {
			st.PulseUp.Trigger(gateLen)
		}
		if downRise {
			st.PulseDown.Trigger(gateLen)
		}
		gateUp := st.PulseUp.Step()
		gateDown := st.PulseDown.Step()

		pitch := st.Seq.Step(upRise, downRise, &win, transpose, spacing)

		v.EnvUp[i] = float32(envUp * OutputLevel)
		v.EnvDown[i] = float32(envDown * OutputLevel)
		v.GateUp[i] = gateLevel(gateUp)
		v.GateDown[i] = gateLevel(gateDown)
		v.Pitch[i] = float32(pitch)
	}
	return true
}

func gateLevel(high bool) float32 {
	if high {
		return OutputLevel
	}
	return 0
}
