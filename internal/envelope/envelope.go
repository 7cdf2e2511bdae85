// Package envelope implements the per-trigger gate envelopes.
package envelope

import (
	"fmt"
	"math"
	"strings"
)

// Stage is the envelope phase.
type Stage int

const (
	StageOff Stage = iota
	StageAttack
	StageDecay
	StageSustain
	StageRelease
)

func (s Stage) String() string {
	switch s {
	case StageOff:
		return "off"
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageSustain:
		return "sustain"
	case StageRelease:
		return "release"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Shape selects the output curve applied on top of the linear stage value.
type Shape int

const (
	ShapeLinear Shape = iota
	ShapeSimpleExp
	ShapeClassicExp
)

var shapeNames = [...]string{"linear", "simple-exp", "classic-exp"}

func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape accepts a shape name or its numeric selector.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if name == n || name == fmt.Sprint(i) {
			return Shape(i), nil
		}
	}
	switch name {
	case "lin":
		return ShapeLinear, nil
	case "exp", "simple":
		return ShapeSimpleExp, nil
	case "classic":
		return ShapeClassicExp, nil
	}
	return ShapeLinear, fmt.Errorf("unknown envelope shape %q (expected linear|simple-exp|classic-exp)", name)
}

// Params are the block-rate settings shared by both gate envelopes.
// Times are in seconds; zero means the stage completes on its first sample.
type Params struct {
	AttackSec  float64
	DecaySec   float64
	Sustain    float64 // 0-1
	ReleaseSec float64
	Shape      Shape
	Exponent   float64 // 1-8, used by the exponential shapes
}

// Apply maps a linear stage value through the configured shape.
func (p *Params) Apply(v float64) float64 {
	switch p.Shape {
	case ShapeSimpleExp:
		return math.Pow(v, p.Exponent)
	case ShapeClassicExp:
		k := 2 * p.Exponent
		if k <= 0 {
			return v
		}
		// normalized so the curve always spans exactly 0..1
		return (1 - math.Exp(-k*v)) / (1 - math.Exp(-k))
	default:
		return v
	}
}

// Gate is a five-stage envelope driven by a gate level rather than note
// events. The zero value is Off at 0.
type Gate struct {
	stage   Stage
	value   float64
	counter int // samples spent in the current stage
}

func (g *Gate) Stage() Stage { return g.stage }

// Value returns the unshaped stage value.
func (g *Gate) Value() float64 { return g.value }

// StageSamples returns the samples spent in the current stage.
func (g *Gate) StageSamples() int { return g.counter }

// Reset returns the envelope to Off at 0.
func (g *Gate) Reset() {
	*g = Gate{}
}

// Step advances one sample and returns the shaped output in [0, 1].
// Attack and Decay run to completion regardless of the gate; only Sustain
// listens for the gate falling, and only Off listens for it rising.
func (g *Gate) Step(gate bool, p *Params, sampleRate float64) float64 {
	g.counter++
	switch g.stage {
	case StageOff:
		g.value = 0
		if gate {
			g.enter(StageAttack)
		}
	case StageAttack:
		if p.AttackSec <= 0 {
			g.value = 1
		} else {
			g.value += 1 / (p.AttackSec * sampleRate)
		}
		if g.value >= 1 {
			g.value = 1
			g.enter(StageDecay)
		}
	case StageDecay:
		step := 1 - p.Sustain
		if p.DecaySec > 0 {
			step /= p.DecaySec * sampleRate
		}
		if p.DecaySec <= 0 || g.value-step <= p.Sustain {
			g.value = p.Sustain
			g.enter(StageSustain)
		} else {
			g.value -= step
		}
	case StageSustain:
		if !gate {
			g.enter(StageRelease)
			break
		}
		g.value = p.Sustain
	case StageRelease:
		// a sustain of 0 gives no slope to ride down, so it ends here too
		if p.ReleaseSec <= 0 || p.Sustain <= 0 {
			g.value = 0
			g.enter(StageOff)
			break
		}
		g.value -= p.Sustain / (p.ReleaseSec * sampleRate)
		if g.value <= 0 {
			g.value = 0
			g.enter(StageOff)
		}
	}
	return p.Apply(g.value)
}

func (g *Gate) enter(s Stage) {
	g.stage = s
	g.counter = 0
}
