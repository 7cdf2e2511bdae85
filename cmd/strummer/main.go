package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	logLevel   string
	sampleRate int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "strummer",
	Short: "Trigger-driven scale sequencer and gate envelope generator",
	Long: `Strummer walks a window of scale notes each time a trigger input rises,
writing a one-volt-per-octave pitch CV, two envelope CVs and two gates.

Render offline to a multichannel WAV, or play live with the keyboard.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		if sampleRate <= 0 {
			return fmt.Errorf("invalid --sample-rate %d", sampleRate)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVarP(&sampleRate, "sample-rate", "r", 48000, "Sample rate in Hz")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scalesCmd)
	rootCmd.AddCommand(paramsCmd)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid --log-level %q (expected debug|info|warn|error)", s)
}
