package strummer

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cbegin/strummer-go/internal/bus"
)

// DefaultBlockFrames is the block size Render uses when none is given.
const DefaultBlockFrames = 128

// CVFullScale is the voltage that maps to digital full scale in exported
// WAV files. Pitch spans several octaves either side of zero, so the range
// is wider than OutputLevel.
const CVFullScale = 10.0

const cvBitDepth = 24

// Recording is the output of an offline render, one slice per signal.
type Recording struct {
	SampleRate int
	TrigUp     []float32
	TrigDown   []float32
	Pitch      []float32
	EnvUp      []float32
	EnvDown    []float32
	GateUp     []float32
	GateDown   []float32
	Skipped    int // blocks the processor declined to run
}

var recordingChannels = []string{"trig_up", "trig_down", "pitch", "env_up", "env_down", "gate_up", "gate_down"}

// RecordingChannels returns the signal names in WAV channel order.
func RecordingChannels() []string {
	return append([]string(nil), recordingChannels...)
}

func (r *Recording) signals() [][]float32 {
	return [][]float32{r.TrigUp, r.TrigDown, r.Pitch, r.EnvUp, r.EnvDown, r.GateUp, r.GateDown}
}

// Frames is the recorded length.
func (r *Recording) Frames() int { return len(r.Pitch) }

// Render runs p for frames samples, feeding src into the routed trigger
// inputs. The trigger inputs are captured before each block runs, since
// routing may alias them with outputs. A skipped block records whatever the
// bus held from the block before it.
func Render(p *Processor, src TriggerSource, frames, blockFrames int) (*Recording, error) {
	if p == nil || src == nil {
		return nil, errors.New("render: nil processor or trigger source")
	}
	if frames < 0 {
		return nil, fmt.Errorf("render: negative length %d", frames)
	}
	if blockFrames <= 0 {
		blockFrames = DefaultBlockFrames
	}
	rec := &Recording{SampleRate: p.SampleRate()}
	for _, s := range []*[]float32{&rec.TrigUp, &rec.TrigDown, &rec.Pitch, &rec.EnvUp, &rec.EnvDown, &rec.GateUp, &rec.GateDown} {
		*s = make([]float32, 0, frames)
	}
	f := bus.NewFrames(p.Channels(), blockFrames)
	upBuf := make([]float32, blockFrames)
	downBuf := make([]float32, blockFrames)
	for done := 0; done < frames; done += blockFrames {
		n := min(blockFrames, frames-done)
		// a skipped tail block keeps what the bus held, as any other block does
		f.Shrink(n)
		v := p.Routing().Bind(f)
		up, down := upBuf[:n], downBuf[:n]
		src.Fill(up, down)
		copy(v.TrigUp, up)
		copy(v.TrigDown, down)
		if !p.Process(f) {
			rec.Skipped++
		}
		rec.TrigUp = append(rec.TrigUp, up...)
		rec.TrigDown = append(rec.TrigDown, down...)
		rec.Pitch = append(rec.Pitch, v.Pitch...)
		rec.EnvUp = append(rec.EnvUp, v.EnvUp...)
		rec.EnvDown = append(rec.EnvDown, v.EnvDown...)
		rec.GateUp = append(rec.GateUp, v.GateUp...)
		rec.GateDown = append(rec.GateDown, v.GateDown...)
	}
	return rec, nil
}

// WriteWAV stores every signal as one channel of a 24-bit PCM file, in the
// order RecordingChannels lists. CVFullScale volts maps to full scale;
// anything beyond is clipped.
func (r *Recording) WriteWAV(w io.WriteSeeker) error {
	sigs := r.signals()
	frames := r.Frames()
	enc := wav.NewEncoder(w, r.SampleRate, cvBitDepth, len(sigs), 1)
	maxInt := float64(int(1)<<(cvBitDepth-1) - 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(sigs),
			SampleRate:  r.SampleRate,
		},
		Data:           make([]int, frames*len(sigs)),
		SourceBitDepth: cvBitDepth,
	}
	for i := 0; i < frames; i++ {
		for ch, s := range sigs {
			v := float64(s[i]) / CVFullScale
			v = math.Max(-1, math.Min(1, v))
			buf.Data[i*len(sigs)+ch] = int(math.Round(v * maxInt))
		}
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav: %w", err)
	}
	return nil
}

// ReadWAV loads a file written by WriteWAV.
func ReadWAV(rs io.ReadSeeker) (*Recording, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, errors.New("read wav: not a valid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	nch := buf.Format.NumChannels
	if nch != len(recordingChannels) {
		return nil, fmt.Errorf("read wav: %d channels, want %d", nch, len(recordingChannels))
	}
	depth := int(dec.BitDepth)
	maxInt := float64(int(1)<<(depth-1) - 1)
	frames := len(buf.Data) / nch
	rec := &Recording{SampleRate: int(dec.SampleRate)}
	out := make([][]float32, nch)
	for ch := range out {
		out[ch] = make([]float32, frames)
		for i := 0; i < frames; i++ {
			out[ch][i] = float32(float64(buf.Data[i*nch+ch]) / maxInt * CVFullScale)
		}
	}
	rec.TrigUp, rec.TrigDown, rec.Pitch = out[0], out[1], out[2]
	rec.EnvUp, rec.EnvDown, rec.GateUp, rec.GateDown = out[3], out[4], out[5], out[6]
	return rec, nil
}
