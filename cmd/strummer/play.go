package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	strummer "github.com/cbegin/strummer-go"
	"github.com/cbegin/strummer-go/internal/control"
	"github.com/cbegin/strummer-go/internal/miditrig"
	"github.com/cbegin/strummer-go/internal/monitor"
	"github.com/cbegin/strummer-go/internal/scale"
)

var (
	playSettings settings
	playListen   string
	playUpHz     float64
	playDownHz   float64
	playHoldMs   int
	playWave     string
	playGain     float64
	playBlock    int
	playBuffer   time.Duration
	playMIDI     string
	playNoKeys   bool
	playEcho     time.Duration
	playEchoFb   float32
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run live, strumming from the keyboard and monitoring the pitch CV",
	Long: `Play runs the processor in real time. Each key press raises a trigger
input; a monitor oscillator follows the pitch CV with its level set by the
envelopes.

With --listen, parameters can be changed over HTTP while playing:
  curl -X PUT localhost:7070/params/spacing -d '{"value": 40}'

Examples:
  strummer play -s "Harmonic Minor" -p length=8
  strummer play --up-rate 3 --listen :7070`,
	RunE: runPlay,
}

func init() {
	playSettings.register(playCmd)
	f := playCmd.Flags()
	f.StringVar(&playListen, "listen", "", "Serve the HTTP control API on this address")
	f.Float64Var(&playUpHz, "up-rate", 0, "Up trigger clock rate in Hz (0 for keyboard only)")
	f.Float64Var(&playDownHz, "down-rate", 0, "Down trigger clock rate in Hz (0 for keyboard only)")
	f.IntVar(&playHoldMs, "hold", 50, "Gate length of a key press in ms")
	f.StringVar(&playWave, "wave", "triangle", "Monitor waveform (sine, triangle, saw)")
	f.Float64Var(&playGain, "gain", 0.3, "Monitor level")
	f.IntVar(&playBlock, "block", strummer.DefaultBlockFrames, "Frames per processing block")
	f.DurationVar(&playBuffer, "buffer", 0, "Output device buffer (0 for the default)")
	f.StringVar(&playMIDI, "midi", "", "Also play triggers from this MIDI file")
	f.DurationVar(&playEcho, "echo", 0, "Monitor echo time (0 for none)")
	f.Float32Var(&playEchoFb, "echo-feedback", 0.4, "Monitor echo feedback 0..0.95")
	f.BoolVar(&playNoKeys, "no-keys", false, "Do not read the keyboard; stop with a signal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	wave, err := monitor.ParseWaveform(playWave)
	if err != nil {
		return err
	}
	routing, err := playSettings.busRouting()
	if err != nil {
		return err
	}
	store := strummer.NewParamStore()
	if err := playSettings.apply(store); err != nil {
		return err
	}
	opts := []strummer.PlayerOption{
		strummer.WithPlayerParams(store),
		strummer.WithBusRouting(routing, playSettings.channels),
		strummer.WithBlockFrames(playBlock),
		strummer.WithMonitorWaveform(wave),
		strummer.WithClock(playUpHz, playDownHz),
		strummer.WithKeyHold(playHoldMs),
		strummer.WithBufferSize(playBuffer),
		strummer.WithMonitorEcho(float64(playEcho.Milliseconds()), playEchoFb),
	}
	if playMIDI != "" {
		ms, err := miditrig.Open(playMIDI, sampleRate, miditrig.DefaultMapping())
		if err != nil {
			return fmt.Errorf("load %s: %w", playMIDI, err)
		}
		opts = append(opts, strummer.WithTriggers(ms))
	}
	pl, err := strummer.NewPlayer(sampleRate, opts...)
	if err != nil {
		return err
	}
	pl.SetMonitorGain(playGain)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := pl.Start(); err != nil {
		return fmt.Errorf("open audio: %w", err)
	}
	defer pl.Stop()
	slog.Info("playing",
		slog.Int("sample_rate", sampleRate),
		slog.String("scale", scale.Name(int(store.Get(strummer.ParamScale)))),
	)

	g, ctx := errgroup.WithContext(ctx)
	events := pl.Watch()
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if ev.Kind == strummer.EventBlockSkipped {
					slog.Warn("block skipped", slog.Uint64("block", ev.Block))
				}
			}
		}
	})
	if playListen != "" {
		srv := control.New(control.Config{Addr: playListen}, pl, slog.Default())
		g.Go(func() error {
			return srv.Run(ctx)
		})
	}
	if !playNoKeys {
		keys := make(chan byte)
		g.Go(func() error {
			err := readKeys(ctx, keys)
			if errors.Is(err, errNotTerminal) {
				slog.Warn("keyboard disabled", slog.Any("error", err))
				<-ctx.Done()
				return nil
			}
			// the keyboard is the only way to quit besides a signal
			cancel()
			return err
		})
		g.Go(func() error {
			fmt.Fprint(os.Stderr, keyHelpText+"\r\n")
			for {
				select {
				case <-ctx.Done():
					return nil
				case b := <-keys:
					if !handleKey(pl, actionFor(b)) {
						cancel()
						return nil
					}
				}
			}
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	blocks, skipped := pl.Stats()
	slog.Info("stopped", slog.Uint64("blocks", blocks), slog.Uint64("skipped", skipped))
	return nil
}

// handleKey applies one action and reports whether to keep running.
func handleKey(pl *strummer.Player, a keyAction) bool {
	ps := pl.Params()
	switch a {
	case keyUp:
		pl.PressUp()
	case keyDown:
		pl.PressDown()
	case keyBoth:
		pl.PressUp()
		pl.PressDown()
	case keyScaleNext, keyScalePrev:
		step := 1
		if a == keyScalePrev {
			step = -1
		}
		id := scaleStep(int(ps.Get(strummer.ParamScale)), step)
		ps.Set(strummer.ParamScale, float64(id))
		fmt.Fprintf(os.Stderr, "scale %d: %s\r\n", id, scale.Name(id))
	case keyTransposeUp, keyTransposeDown:
		step := 1.0
		if a == keyTransposeDown {
			step = -1
		}
		v := min(48, max(-48, ps.Get(strummer.ParamTranspose)+step))
		ps.Set(strummer.ParamTranspose, v)
		fmt.Fprintf(os.Stderr, "transpose %+d\r\n", int(v))
	case keyHelp:
		fmt.Fprint(os.Stderr, keyHelpText+"\r\n")
	case keyQuit:
		return false
	}
	return true
}

// scaleStep moves through the scale table, wrapping at both ends.
func scaleStep(id, step int) int {
	return scale.Mod(id+step, scale.Count)
}
