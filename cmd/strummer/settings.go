package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	strummer "github.com/cbegin/strummer-go"
	"github.com/cbegin/strummer-go/internal/bus"
	"github.com/cbegin/strummer-go/internal/envelope"
	"github.com/cbegin/strummer-go/internal/scale"
)

// settings are the flags shared by render and play.
type settings struct {
	scale    string
	shape    string
	params   []string
	routing  string
	channels int
}

func (s *settings) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.scale, "scale", "s", "", "Scale name or id (see 'strummer scales')")
	f.StringVar(&s.shape, "shape", "", "Envelope shape (linear, simple, classic)")
	f.StringArrayVarP(&s.params, "param", "p", nil, "Parameter as name=value, repeatable (see 'strummer params')")
	f.StringVar(&s.routing, "routing", "", `Bus routing as JSON, e.g. {"trig_up":1,"pitch":13,...}`)
	f.IntVar(&s.channels, "channels", bus.DefaultChannels, "Bus channel count")
}

// apply writes every flag into store.
func (s *settings) apply(store *strummer.ParamStore) error {
	for _, kv := range s.params {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --param %q (expected name=value)", kv)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return fmt.Errorf("invalid --param %q: %w", kv, err)
		}
		if err := store.SetByName(name, v); err != nil {
			return err
		}
	}
	if s.scale != "" {
		id, err := parseScale(s.scale)
		if err != nil {
			return err
		}
		store.Set(strummer.ParamScale, float64(id))
	}
	if s.shape != "" {
		shape, err := envelope.ParseShape(s.shape)
		if err != nil {
			return err
		}
		store.Set(strummer.ParamShape, float64(shape))
	}
	return nil
}

// busRouting decodes --routing over the defaults, so a partial object only
// moves the channels it names.
func (s *settings) busRouting() (bus.Routing, error) {
	r := bus.DefaultRouting()
	if s.routing != "" {
		if err := json.Unmarshal([]byte(s.routing), &r); err != nil {
			return r, fmt.Errorf("invalid --routing: %w", err)
		}
	}
	if err := r.Validate(s.channels); err != nil {
		return r, fmt.Errorf("invalid --routing: %w", err)
	}
	return r, nil
}

func parseScale(s string) (int, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if scale.Name(id) == "" {
			return 0, fmt.Errorf("scale id %d out of range 0..%d", id, scale.Count-1)
		}
		return id, nil
	}
	if id, ok := scale.Lookup(s); ok {
		return id, nil
	}
	return 0, fmt.Errorf("unknown scale %q", s)
}
