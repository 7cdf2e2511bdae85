package sequencer

import "github.com/cbegin/strummer-go/internal/scale"

// Direction of travel through the window.
const (
	Forward  = 1
	Backward = -1
)

// idleIndex parks the sequencer outside any window.
const idleIndex = -1

// Sequencer walks a scale window one step per spacing interval after each
// trigger edge. It is Running while its step index lies inside the current
// window and Idle otherwise; leaving the window is the only way it stops.
type Sequencer struct {
	stepIndex int
	direction int
	counter   int // samples until the next step
	pitch     float64
}

// New returns an idle sequencer.
func New() *Sequencer {
	s := &Sequencer{}
	s.Reset()
	return s
}

// Reset parks the sequencer in Idle with a held pitch of 0.
func (s *Sequencer) Reset() {
	*s = Sequencer{stepIndex: idleIndex, direction: Forward}
}

// StepIndex returns the next index to be emitted.
func (s *Sequencer) StepIndex() int { return s.stepIndex }

// Direction returns Forward or Backward for the current run.
func (s *Sequencer) Direction() int { return s.direction }

// Pitch returns the last emitted pitch in volts, held across Idle.
func (s *Sequencer) Pitch() float64 { return s.pitch }

// Counter returns the samples left before the next step.
func (s *Sequencer) Counter() int { return s.counter }

// Running reports whether the step index is inside w.
func (s *Sequencer) Running(w *scale.Window) bool {
	return w.Contains(s.stepIndex)
}

// Step advances one sample. forward and backward are this sample's rising
// edges; when both fire the backward start wins. spacing is the step interval
// in samples and transpose is in semitones. The returned pitch uses one volt
// per octave and is 0 while Idle.
func (s *Sequencer) Step(forward, backward bool, w *scale.Window, transpose float64, spacing int) float64 {
	if forward {
		s.start(0, Forward)
	}
	if backward {
		s.start(w.Len()-1, Backward)
	}
	if s.counter > 0 {
		s.counter--
	}
	if !s.Running(w) {
		return 0
	}
	if s.counter == 0 {
		s.pitch = (w.At(s.stepIndex) + transpose) / 12
		if spacing < 0 {
			spacing = 0
		}
		s.counter = spacing
		s.stepIndex += s.direction
	}
	return s.pitch
}

func (s *Sequencer) start(index, direction int) {
	s.stepIndex = index
	s.direction = direction
	s.counter = 0
}
