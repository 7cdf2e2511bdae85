package strummer

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/cbegin/strummer-go/internal/envelope"
	"github.com/cbegin/strummer-go/internal/scale"
)

var (
	ErrUnknownParam = errors.New("unknown parameter")
	ErrNotFinite    = errors.New("value is not finite")
)

// Param identifies one block-rate setting.
type Param int

const (
	ParamScale Param = iota
	ParamSpacing
	ParamLength
	ParamTranspose
	ParamRotate
	ParamAttack
	ParamDecay
	ParamSustain
	ParamRelease
	ParamShape
	ParamExponent
	ParamGateLen
	numParams
)

type paramInfo struct {
	name     string
	min, max float64
	def      float64
}

var paramTable = [numParams]paramInfo{
	ParamScale:     {"scale", 0, scale.Count - 1, 0},
	ParamSpacing:   {"spacing", 1, 1000, 100},
	ParamLength:    {"length", 1, scale.MaxLen, 6},
	ParamTranspose: {"transpose", -48, 48, 0},
	ParamRotate:    {"rotate", -15, 15, 0},
	ParamAttack:    {"attack", 0, 10000, 0},
	ParamDecay:     {"decay", 0, 10000, 0},
	ParamSustain:   {"sustain", 0, 100, 100},
	ParamRelease:   {"release", 0, 10000, 0},
	ParamShape:     {"shape", 0, 2, 0},
	ParamExponent:  {"exponent", 1, 8, 2},
	ParamGateLen:   {"gate", 1, 30000, 100},
}

func (p Param) String() string {
	if p >= 0 && p < numParams {
		return paramTable[p].name
	}
	return fmt.Sprintf("param(%d)", int(p))
}

// ParseParam resolves a parameter by name.
func ParseParam(name string) (Param, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range paramTable {
		if info.name == name {
			return Param(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownParam, name)
}

// ParamNames lists the parameter names in declaration order.
func ParamNames() []string {
	names := make([]string, numParams)
	for i, info := range paramTable {
		names[i] = info.name
	}
	return names
}

// Params is one block's worth of settings, already normalized.
type Params struct {
	Scale      int
	SpacingMs  int
	Length     int
	Transpose  int
	Rotate     int
	AttackMs   int
	DecayMs    int
	SustainPct int
	ReleaseMs  int
	Shape      envelope.Shape
	Exponent   float64
	GateLenMs  int
}

func DefaultParams() Params {
	var s ParamStore
	s.Reset()
	return s.Snapshot()
}

// Envelope converts the ADSR settings to seconds and a 0-1 sustain level.
func (p *Params) Envelope() envelope.Params {
	return envelope.Params{
		AttackSec:  float64(p.AttackMs) / 1000,
		DecaySec:   float64(p.DecayMs) / 1000,
		Sustain:    float64(p.SustainPct) / 100,
		ReleaseSec: float64(p.ReleaseMs) / 1000,
		Shape:      p.Shape,
		Exponent:   p.Exponent,
	}
}

// ParamStore holds every parameter as an independently atomic value. A
// control goroutine may write while the audio goroutine snapshots; each
// parameter is observed either old or new, never torn.
type ParamStore struct {
	values [numParams]atomic.Uint64
}

// NewParamStore returns a store holding the defaults.
func NewParamStore() *ParamStore {
	s := &ParamStore{}
	s.Reset()
	return s
}

// Reset restores every default.
func (s *ParamStore) Reset() {
	for i, info := range paramTable {
		s.values[i].Store(math.Float64bits(info.def))
	}
}

// Set stores v as given. Range enforcement happens when a block reads it.
func (s *ParamStore) Set(p Param, v float64) {
	if p < 0 || p >= numParams {
		return
	}
	s.values[p].Store(math.Float64bits(v))
}

// SetByName is Set keyed by parameter name.
func (s *ParamStore) SetByName(name string, v float64) error {
	p, err := ParseParam(name)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("parameter %s: %w: %v", p, ErrNotFinite, v)
	}
	s.Set(p, v)
	return nil
}

// Get returns the raw stored value.
func (s *ParamStore) Get(p Param) float64 {
	if p < 0 || p >= numParams {
		return 0
	}
	return math.Float64frombits(s.values[p].Load())
}

// Values returns every raw value keyed by name.
func (s *ParamStore) Values() map[string]float64 {
	out := make(map[string]float64, numParams)
	for i, info := range paramTable {
		out[info.name] = s.Get(Param(i))
	}
	return out
}

// SortedNames is ParamNames in alphabetical order, for stable listings.
func SortedNames() []string {
	names := ParamNames()
	sort.Strings(names)
	return names
}

// Snapshot reads each parameter once and normalizes it. Out-of-range values
// are clamped; non-finite values fall back to the default. The scale id is
// passed through untouched so an unknown id can skip the block.
func (s *ParamStore) Snapshot() Params {
	return Params{
		Scale:      s.intParam(ParamScale, false),
		SpacingMs:  s.intParam(ParamSpacing, true),
		Length:     s.intParam(ParamLength, true),
		Transpose:  s.intParam(ParamTranspose, true),
		Rotate:     s.intParam(ParamRotate, false),
		AttackMs:   s.intParam(ParamAttack, true),
		DecayMs:    s.intParam(ParamDecay, true),
		SustainPct: s.intParam(ParamSustain, true),
		ReleaseMs:  s.intParam(ParamRelease, true),
		Shape:      envelope.Shape(s.intParam(ParamShape, true)),
		Exponent:   s.floatParam(ParamExponent),
		GateLenMs:  s.intParam(ParamGateLen, true),
	}
}

func (s *ParamStore) floatParam(p Param) float64 {
	info := &paramTable[p]
	v := s.Get(p)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return info.def
	}
	return clamp(v, info.min, info.max)
}

func (s *ParamStore) intParam(p Param, clamped bool) int {
	info := &paramTable[p]
	v := s.Get(p)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return int(info.def)
	}
	if clamped {
		v = clamp(v, info.min, info.max)
	} else {
		// keep the int conversion defined
		v = clamp(v, math.MinInt32, math.MaxInt32)
	}
	return int(math.Round(v))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
