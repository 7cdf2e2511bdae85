// Package miditrig turns the notes of a Standard MIDI File into the two gate
// signals a Processor reads as its up and down trigger inputs.
package miditrig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// High is the gate level written while a note is held.
const High = 5.0

// DefaultSplit sends middle C and above to the up input.
const DefaultSplit = 60

var ErrNoNotes = errors.New("miditrig: file has no notes")

// Input selects which trigger input a note drives.
type Input int

const (
	Up Input = iota
	Down
)

func (i Input) String() string {
	if i == Up {
		return "up"
	}
	return "down"
}

// Mapping decides which notes become gates.
type Mapping struct {
	Split   uint8 // keys >= Split drive Up, lower keys drive Down
	Channel int   // 0-15, or -1 for every channel
}

func DefaultMapping() Mapping {
	return Mapping{Split: DefaultSplit, Channel: -1}
}

func (m Mapping) input(key uint8) Input {
	if key >= m.Split {
		return Up
	}
	return Down
}

// Note is one held key in absolute time.
type Note struct {
	Channel uint8
	Key     uint8
	StartUS int64
	EndUS   int64
}

// ReadNotes decodes every note of an SMF. Notes still held at the end of
// their track are closed at the last event seen.
func ReadNotes(r io.Reader) ([]Note, error) {
	type held struct {
		ch, key uint8
	}
	open := map[held][]int{}
	var notes []Note
	var lastUS int64
	rd := smf.ReadTracksFrom(r).Do(func(ev smf.TrackEvent) {
		if ev.AbsMicroSeconds > lastUS {
			lastUS = ev.AbsMicroSeconds
		}
		msg := midi.Message(ev.Message)
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			k := held{ch, key}
			open[k] = append(open[k], len(notes))
			notes = append(notes, Note{Channel: ch, Key: key, StartUS: ev.AbsMicroSeconds, EndUS: -1})
		case msg.GetNoteEnd(&ch, &key):
			k := held{ch, key}
			if idx := open[k]; len(idx) > 0 {
				notes[idx[0]].EndUS = ev.AbsMicroSeconds
				open[k] = idx[1:]
			}
		}
	})
	if err := rd.Error(); err != nil {
		return nil, fmt.Errorf("miditrig: read smf: %w", err)
	}
	for i := range notes {
		if notes[i].EndUS < 0 {
			notes[i].EndUS = lastUS
		}
	}
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}
	return notes, nil
}

type event struct {
	frame int64
	input Input
	on    bool
}

// Source plays a note list back as gate levels, one frame at a time.
type Source struct {
	events []event
	next   int
	frame  int64
	held   [2]int
	end    int64
}

// Open reads an SMF from disk.
func Open(path string, sampleRate int, m Mapping) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	notes, err := ReadNotes(f)
	if err != nil {
		return nil, err
	}
	return NewSource(notes, sampleRate, m)
}

// NewSource schedules notes at sampleRate. A note that starts on the frame
// where another note on the same input ends is pushed back one frame so the
// gate drops and the processor sees a fresh edge.
func NewSource(notes []Note, sampleRate int, m Mapping) (*Source, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("miditrig: invalid sample rate %d", sampleRate)
	}
	toFrame := func(us int64) int64 {
		return us * int64(sampleRate) / 1_000_000
	}
	type edge struct {
		frame int64
		input Input
	}
	offs := map[edge]int{}
	var kept []Note
	for _, n := range notes {
		if m.Channel >= 0 && int(n.Channel) != m.Channel {
			continue
		}
		kept = append(kept, n)
		offs[edge{toFrame(n.EndUS), m.input(n.Key)}]++
	}
	if len(kept) == 0 {
		return nil, ErrNoNotes
	}
	s := &Source{}
	for _, n := range kept {
		in := m.input(n.Key)
		start, end := toFrame(n.StartUS), toFrame(n.EndUS)
		others := offs[edge{start, in}]
		if end == start {
			others--
		}
		if others > 0 {
			start++
		}
		if end <= start {
			end = start + 1
		}
		s.events = append(s.events, event{start, in, true}, event{end, in, false})
		if end > s.end {
			s.end = end
		}
	}
	sort.SliceStable(s.events, func(i, j int) bool {
		a, b := s.events[i], s.events[j]
		if a.frame != b.frame {
			return a.frame < b.frame
		}
		return !a.on && b.on
	})
	return s, nil
}

// Frames is the length of the performance, up to the last note release.
func (s *Source) Frames() int64 { return s.end }

// Fill writes the next len(up) frames of both gates. up and down must have
// the same length.
func (s *Source) Fill(up, down []float32) {
	for i := range up {
		for s.next < len(s.events) && s.events[s.next].frame <= s.frame {
			ev := s.events[s.next]
			if ev.on {
				s.held[ev.input]++
			} else if s.held[ev.input] > 0 {
				s.held[ev.input]--
			}
			s.next++
		}
		up[i] = level(s.held[Up])
		down[i] = level(s.held[Down])
		s.frame++
	}
}

// Rewind restarts playback from frame zero.
func (s *Source) Rewind() {
	s.next = 0
	s.frame = 0
	s.held = [2]int{}
}

func level(n int) float32 {
	if n > 0 {
		return High
	}
	return 0
}
