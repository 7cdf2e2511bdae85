package bus

import "fmt"

// Routing assigns each logical signal to a 1-based bus channel.
type Routing struct {
	TrigUp   int `json:"trig_up"`
	TrigDown int `json:"trig_down"`
	Pitch    int `json:"pitch"`
	EnvUp    int `json:"env_up"`
	EnvDown  int `json:"env_down"`
	GateUp   int `json:"gate_up"`
	GateDown int `json:"gate_down"`
}

func DefaultRouting() Routing {
	return Routing{
		TrigUp:   1,
		TrigDown: 2,
		Pitch:    13,
		EnvUp:    15,
		EnvDown:  16,
		GateUp:   17,
		GateDown: 18,
	}
}

// Validate checks every channel against the declared channel count.
func (r Routing) Validate(channels int) error {
	for _, c := range r.fields() {
		if c.ch < 1 || c.ch > channels {
			return fmt.Errorf("%w: %s=%d (have %d)", ErrChannelRange, c.name, c.ch, channels)
		}
	}
	return nil
}

type routedChannel struct {
	name string
	ch   int
}

func (r Routing) fields() [7]routedChannel {
	return [7]routedChannel{
		{"trig-up", r.TrigUp},
		{"trig-down", r.TrigDown},
		{"pitch", r.Pitch},
		{"env-up", r.EnvUp},
		{"env-down", r.EnvDown},
		{"gate-up", r.GateUp},
		{"gate-down", r.GateDown},
	}
}

// Views are the per-signal slices of one block. Outputs may alias inputs or
// each other; later writes win, as on the hardware bus.
type Views struct {
	TrigUp, TrigDown []float32
	Pitch            []float32
	EnvUp, EnvDown   []float32
	GateUp, GateDown []float32
}

// Bind resolves a routing that was validated for f.Channels(). It does no
// range checks of its own.
func (r Routing) Bind(f *Frames) Views {
	return Views{
		TrigUp:   f.channel(r.TrigUp),
		TrigDown: f.channel(r.TrigDown),
		Pitch:    f.channel(r.Pitch),
		EnvUp:    f.channel(r.EnvUp),
		EnvDown:  f.channel(r.EnvDown),
		GateUp:   f.channel(r.GateUp),
		GateDown: f.channel(r.GateDown),
	}
}
