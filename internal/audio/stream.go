package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// BlockSource renders interleaved stereo in fixed-size blocks. Process is
// always called with exactly 2*BlockFrames() samples.
type BlockSource interface {
	BlockFrames() int
	Process(dst []float32)
}

// FinishingSource is a BlockSource that can signal when playback has ended.
// When Finished returns true, the stream will return io.EOF on the next Read.
type FinishingSource interface {
	BlockSource
	Finished() bool
}

// StreamReader adapts a BlockSource to the byte stream ebiten pulls from.
// Reads of any size are served from whole blocks; leftover frames of the last
// block are kept for the next Read.
type StreamReader struct {
	mu      sync.Mutex
	source  BlockSource
	block   []float32
	pending []float32
}

func NewStreamReader(source BlockSource) *StreamReader {
	n := source.BlockFrames()
	if n <= 0 {
		n = 1
	}
	return &StreamReader{source: source, block: make([]float32, 2*n)}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	need := frames * 2
	written := 0
	for written < need {
		if len(r.pending) == 0 {
			r.source.Process(r.block)
			r.pending = r.block
		}
		n := min(len(r.pending), need-written)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(p[(written+i)*4:], math.Float32bits(r.pending[i]))
		}
		r.pending = r.pending[n:]
		written += n
	}
	if fs, ok := r.source.(FinishingSource); ok && fs.Finished() {
		return frames * 8, io.EOF
	}
	return frames * 8, nil
}

func (r *StreamReader) Close() error { return nil }

type Player struct {
	player *ebitaudio.Player
	reader io.ReadCloser
}

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioSampleRate  int
)

func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext = ebitaudio.NewContext(sampleRate)
	})
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// NewPlayer opens the shared output device at sampleRate. bufferSize is the
// device buffer ebiten keeps ahead of the listener; zero keeps its default.
func NewPlayer(sampleRate int, source BlockSource, bufferSize time.Duration) (*Player, error) {
	ctx, err := sharedAudioContext(sampleRate)
	if err != nil {
		return nil, err
	}
	reader := NewStreamReader(source)
	pl, err := ctx.NewPlayerF32(reader)
	if err != nil {
		return nil, err
	}
	if bufferSize > 0 {
		pl.SetBufferSize(bufferSize)
	}
	return &Player{
		player: pl,
		reader: reader,
	}, nil
}

func (p *Player) Play()  { p.player.Play() }
func (p *Player) Pause() { p.player.Pause() }

// Stop closes the device player. The Player cannot be restarted.
func (p *Player) Stop() error {
	p.player.Pause()
	p.player.Close()
	return p.reader.Close()
}
