package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	strummer "github.com/cbegin/strummer-go"
	"github.com/cbegin/strummer-go/internal/clock"
	"github.com/cbegin/strummer-go/internal/miditrig"
)

var (
	renderSettings settings
	renderOut      string
	renderDuration time.Duration
	renderMIDI     string
	renderSplit    uint8
	renderChannel  int
	renderUpHz     float64
	renderDownHz   float64
	renderBlock    int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render trigger input and every output to a multichannel WAV",
	Long: `Render runs the processor offline and writes one 24-bit WAV channel per
signal: trig_up, trig_down, pitch, env_up, env_down, gate_up, gate_down.
10 V maps to digital full scale.

Triggers come from a MIDI file (notes at or above --split strum up, lower
notes strum down) or from two free-running clocks.

Examples:
  strummer render -o out.wav --up-rate 4 --down-rate 1 -s Dorian
  strummer render -o out.wav --midi riff.mid -p length=8 -p spacing=60`,
	RunE: runRender,
}

func init() {
	renderSettings.register(renderCmd)
	f := renderCmd.Flags()
	f.StringVarP(&renderOut, "output", "o", "", "Output WAV file (required)")
	f.DurationVarP(&renderDuration, "duration", "d", 0, "Render length (default: the MIDI file, or 4s)")
	f.StringVar(&renderMIDI, "midi", "", "Standard MIDI file to read triggers from")
	f.Uint8Var(&renderSplit, "split", miditrig.DefaultSplit, "Lowest MIDI key that strums up")
	f.IntVar(&renderChannel, "midi-channel", -1, "MIDI channel 0-15 to read (-1 for all)")
	f.Float64Var(&renderUpHz, "up-rate", 2, "Up trigger clock rate in Hz, without --midi")
	f.Float64Var(&renderDownHz, "down-rate", 0, "Down trigger clock rate in Hz, without --midi")
	f.IntVar(&renderBlock, "block", strummer.DefaultBlockFrames, "Frames per processing block")
	_ = renderCmd.MarkFlagRequired("output")
}

func runRender(cmd *cobra.Command, args []string) error {
	routing, err := renderSettings.busRouting()
	if err != nil {
		return err
	}
	proc, err := strummer.NewProcessor(sampleRate, nil, strummer.WithRouting(routing, renderSettings.channels))
	if err != nil {
		return err
	}
	if err := renderSettings.apply(proc.Params()); err != nil {
		return err
	}

	var src strummer.TriggerSource
	frames := int(renderDuration.Seconds() * float64(sampleRate))
	if renderMIDI != "" {
		ms, err := miditrig.Open(renderMIDI, sampleRate, miditrig.Mapping{Split: renderSplit, Channel: renderChannel})
		if err != nil {
			return fmt.Errorf("load %s: %w", renderMIDI, err)
		}
		if frames == 0 {
			// let the last release ring out
			frames = int(ms.Frames()) + sampleRate
		}
		src = ms
	} else {
		if renderUpHz <= 0 && renderDownHz <= 0 {
			return errors.New("no trigger source: give --midi or a positive --up-rate/--down-rate")
		}
		ct := &strummer.ClockTriggers{SampleRate: float64(sampleRate)}
		if renderUpHz > 0 {
			ct.Up = clock.New(renderUpHz, 0.5, 0)
		}
		if renderDownHz > 0 {
			ct.Down = clock.New(renderDownHz, 0.5, 0.5)
		}
		if frames == 0 {
			frames = 4 * sampleRate
		}
		src = ct
	}

	start := time.Now()
	rec, err := strummer.Render(proc, src, frames, renderBlock)
	if err != nil {
		return err
	}
	if rec.Skipped > 0 {
		slog.Warn("blocks skipped", slog.Int("count", rec.Skipped))
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return err
	}
	if err := rec.WriteWAV(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("rendered",
		slog.String("file", renderOut),
		slog.Int("frames", rec.Frames()),
		slog.Int("sample_rate", sampleRate),
		slog.String("channels", strings.Join(strummer.RecordingChannels(), ",")),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}
