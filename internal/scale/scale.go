// Package scale resolves scale identifiers into interval sets and derives the
// rotated note window a sequence walks through.
package scale

import "strings"

const (
	StandardCount = 16
	ExoticCount   = 117
	Count         = StandardCount + ExoticCount
	// MaxLen bounds both a resolved scale and the active window.
	MaxLen = 20
)

// Definition is an immutable, named interval set in semitones.
type Definition struct {
	Name      string
	Intervals []float64
}

var standard = [StandardCount]Definition{
	{Name: "Major", Intervals: []float64{0, 2, 4, 5, 7, 9, 11, 12}},
	{Name: "Minor", Intervals: []float64{0, 2, 3, 5, 7, 8, 10, 12}},
	{Name: "Harmonic Minor", Intervals: []float64{0, 2, 3, 5, 7, 8, 11, 12}},
	{Name: "Melodic Minor", Intervals: []float64{0, 2, 3, 5, 7, 9, 11, 12}},
	{Name: "Mixolydian", Intervals: []float64{0, 2, 4, 5, 7, 9, 10, 12}},
	{Name: "Dorian", Intervals: []float64{0, 2, 3, 5, 7, 9, 10, 12}},
	{Name: "Lydian", Intervals: []float64{0, 2, 4, 6, 7, 9, 11, 12}},
	{Name: "Phrygian", Intervals: []float64{0, 1, 3, 5, 7, 8, 10, 12}},
	{Name: "Aeolian", Intervals: []float64{0, 2, 3, 5, 7, 8, 10, 12}},
	{Name: "Locrian", Intervals: []float64{0, 1, 3, 5, 6, 8, 10, 12}},
	{Name: "Maj Pent", Intervals: []float64{0, 2, 4, 7, 9}},
	{Name: "Min Pent", Intervals: []float64{0, 3, 5, 7, 10}},
	{Name: "Whole Tone", Intervals: []float64{0, 2, 4, 6, 8, 10, 12}},
	{Name: "Octatonic HW", Intervals: []float64{0, 1, 3, 4, 6, 7, 9, 10}},
	{Name: "Octatonic WH", Intervals: []float64{0, 2, 3, 5, 6, 8, 9, 11}},
	{Name: "Ionian", Intervals: []float64{0, 2, 4, 5, 7, 9, 11, 12}},
}

// Scale is a resolved interval set held by value so resolving on the audio
// thread never touches the heap.
type Scale struct {
	intervals [MaxLen]float64
	n         int
}

// Len returns the number of intervals.
func (s *Scale) Len() int { return s.n }

// At returns interval i in semitones.
func (s *Scale) At(i int) float64 { return s.intervals[i] }

// Resolve looks up scale id. ok is false for an unknown id or an empty
// definition; callers skip the block in that case.
func Resolve(id int) (s Scale, ok bool) {
	def, ok := definition(id)
	if !ok {
		return s, false
	}
	s.n = copy(s.intervals[:], def.Intervals)
	return s, s.n > 0
}

func definition(id int) (*Definition, bool) {
	switch {
	case id >= 0 && id < StandardCount:
		return &standard[id], true
	case id >= StandardCount && id < Count:
		return &exotic[id-StandardCount], true
	}
	return nil, false
}

// IsExotic reports whether id indexes the exotic table.
func IsExotic(id int) bool {
	return id >= StandardCount && id < Count
}

// Name returns the display name for id, or "" when id is out of range.
func Name(id int) string {
	def, ok := definition(id)
	if !ok {
		return ""
	}
	return def.Name
}

// Names lists every scale name in identifier order.
func Names() []string {
	names := make([]string, 0, Count)
	for id := 0; id < Count; id++ {
		names = append(names, Name(id))
	}
	return names
}

// Lookup finds a scale id by case-insensitive name.
func Lookup(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for id := 0; id < Count; id++ {
		if strings.EqualFold(Name(id), name) {
			return id, true
		}
	}
	return 0, false
}
