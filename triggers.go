package strummer

import (
	"github.com/cbegin/strummer-go/internal/clock"
)

// TriggerSource produces the up and down trigger input signals, block by
// block. up and down always have the same length.
type TriggerSource interface {
	Fill(up, down []float32)
}

// ClockTriggers drives both inputs from free-running clocks. A nil clock
// leaves its input low.
type ClockTriggers struct {
	Up, Down   *clock.Clock
	SampleRate float64
}

func (c *ClockTriggers) Fill(up, down []float32) {
	fill(c.Up, up, c.SampleRate)
	fill(c.Down, down, c.SampleRate)
}

func fill(c *clock.Clock, dst []float32, sr float64) {
	if c == nil {
		clear(dst)
		return
	}
	c.Fill(dst, sr)
}

// MixTriggers combines several sources; each input is high whenever any
// source holds it high.
type MixTriggers struct {
	sources      []TriggerSource
	upBuf, dnBuf []float32
}

func NewMixTriggers(sources ...TriggerSource) *MixTriggers {
	return &MixTriggers{sources: sources}
}

func (m *MixTriggers) Fill(up, down []float32) {
	clear(up)
	clear(down)
	if cap(m.upBuf) < len(up) {
		m.upBuf = make([]float32, len(up))
		m.dnBuf = make([]float32, len(up))
	}
	u, d := m.upBuf[:len(up)], m.dnBuf[:len(up)]
	for _, src := range m.sources {
		src.Fill(u, d)
		for i := range up {
			up[i] = max(up[i], u[i])
			down[i] = max(down[i], d[i])
		}
	}
}
