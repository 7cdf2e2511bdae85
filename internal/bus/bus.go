// Package bus models the shared multi-channel frame buffer the processor
// reads triggers from and writes control voltages to.
package bus

import (
	"errors"
	"fmt"
)

// DefaultChannels matches the bus count of the hardware the module targets.
const DefaultChannels = 28

var ErrChannelRange = errors.New("bus channel out of range")

// Frames is a planar buffer: channel c (1-based) occupies samples
// [(c-1)*frames, c*frames) of one contiguous slice.
type Frames struct {
	data     []float32
	channels int
	frames   int
}

// NewFrames allocates a zeroed buffer.
func NewFrames(channels, frames int) *Frames {
	if channels < 0 {
		channels = 0
	}
	if frames < 0 {
		frames = 0
	}
	return &Frames{
		data:     make([]float32, channels*frames),
		channels: channels,
		frames:   frames,
	}
}

// Wrap views an existing planar slice. len(data) must equal channels*frames.
func Wrap(data []float32, channels, frames int) (*Frames, error) {
	if channels < 0 || frames < 0 || len(data) != channels*frames {
		return nil, fmt.Errorf("bus: %d samples cannot hold %d channels of %d frames", len(data), channels, frames)
	}
	return &Frames{data: data, channels: channels, frames: frames}, nil
}

// Channels returns the channel count.
func (f *Frames) Channels() int { return f.channels }

// Len returns the frames per channel.
func (f *Frames) Len() int { return f.frames }

// Shrink cuts every channel to its first frames samples in place, keeping
// their values. It does nothing if frames is not smaller than Len.
func (f *Frames) Shrink(frames int) {
	if frames < 0 {
		frames = 0
	}
	if frames >= f.frames {
		return
	}
	for ch := 0; ch < f.channels; ch++ {
		copy(f.data[ch*frames:(ch+1)*frames], f.data[ch*f.frames:ch*f.frames+frames])
	}
	f.data = f.data[:f.channels*frames]
	f.frames = frames
}

// Channel returns the samples of a 1-based channel. It is meant for
// configuration and test code; the sample loop uses a validated Routing.
func (f *Frames) Channel(ch int) ([]float32, error) {
	if ch < 1 || ch > f.channels {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrChannelRange, ch, f.channels)
	}
	return f.channel(ch), nil
}

func (f *Frames) channel(ch int) []float32 {
	start := (ch - 1) * f.frames
	return f.data[start : start+f.frames : start+f.frames]
}

// Clear zeroes every channel.
func (f *Frames) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}
