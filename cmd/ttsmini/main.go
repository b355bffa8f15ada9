package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/vahdetkaratas/tts-mini-assistant/internal/audio"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/config"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/fileops"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/logger"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/tts"
)

func init() {
	// Set custom usage message to show -- prefix
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(out, "  --%s", f.Name)
			name, usage := flag.UnquoteUsage(f)
			if len(name) > 0 {
				fmt.Fprintf(out, " %s", name)
			}
			fmt.Fprintf(out, "\n    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Fprintf(out, " (default %q)", f.DefValue)
			}
			fmt.Fprintf(out, "\n")
		})
	}
}

func main() {
	text := flag.String("text", "", "Text to synthesize (required)")
	engineName := flag.String("engine", "", "TTS engine: google, openai or piper")
	language := flag.String("language", "", "Language code or label (en, tr, \"English (US)\", ...)")
	speed := flag.Float64("speed", 0, "Speed hint, best-effort (engine default when 0)")
	pitch := flag.Float64("pitch", 0, "Pitch hint, best-effort (most engines ignore it)")
	outDir := flag.String("out-dir", "", "Output directory (defaults to the ttsmini outputs dir)")
	basename := flag.String("basename", "", "Base name for the output files")
	formats := flag.String("formats", "", "Comma-separated output formats: wav, mp3, png")
	play := flag.Bool("play", false, "Play the synthesized audio on the default output device")
	logLevel := flag.String("log-level", "info", "Set log level (debug|info|warn|error)")
	flag.Parse()

	logger.SetLevel(*logLevel)

	if strings.TrimSpace(*text) == "" {
		flag.Usage()
		fmt.Fprintln(os.Stderr, "\nerror: --text is required")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", err)
		os.Exit(1)
	}

	engineCfg := cfg.GetEngineConfig()
	if *engineName != "" {
		engineCfg.Engine = *engineName
	}
	if *language != "" {
		engineCfg.Language = *language
	}

	outputCfg := cfg.GetOutputConfig()
	if *outDir != "" {
		outputCfg.Dir = *outDir
	}
	if *basename != "" {
		outputCfg.Basename = *basename
	}
	if *formats != "" {
		outputCfg.Formats = strings.Split(*formats, ",")
	}
	if outputCfg.Dir == "" {
		fileOps, err := fileops.NewDefaultFileOps()
		if err != nil {
			logger.Error("Failed to initialize file operations", err)
			os.Exit(1)
		}
		outputCfg.Dir = fileOps.GetOutputsDir()
	}

	engine, err := tts.New(engineCfg)
	if err != nil {
		reportEngineError(err)
		os.Exit(1)
	}

	clip, err := engine.Synthesize(context.Background(), tts.Request{
		Text:     *text,
		Language: engineCfg.Language,
		Speed:    *speed,
		Pitch:    *pitch,
	})
	if err != nil {
		logger.Errorf("Synthesis failed with %s", err, engine.Name())
		os.Exit(1)
	}

	if err := audio.Validate(clip); err != nil {
		logger.Errorf("%s returned a malformed clip", err, engine.Name())
		os.Exit(1)
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	bold := color.New(color.Bold)

	bold.Printf("%s: %.2fs of audio at %d Hz\n", engine.Name(), clip.Duration().Seconds(), clip.SampleRate)

	failed := false
	for _, format := range outputCfg.Formats {
		path := filepath.Join(outputCfg.Dir, outputCfg.Basename+"."+strings.TrimSpace(format))

		switch strings.TrimSpace(format) {
		case "wav":
			if err := audio.SaveWav(clip, path); err != nil {
				logger.Error("Failed to write WAV", err)
				failed = true
				continue
			}
			green.Printf("  wav  %s\n", path)

		case "mp3":
			if err := audio.SaveMP3(clip, path); err != nil {
				if errors.Is(err, audio.ErrEncoderUnavailable) {
					yellow.Printf("  mp3  skipped: %v\n", err)
					continue
				}
				logger.Error("Failed to write MP3", err)
				failed = true
				continue
			}
			green.Printf("  mp3  %s\n", path)

		case "png":
			if err := audio.PlotWaveform(clip, path); err != nil {
				logger.Error("Failed to render waveform", err)
				failed = true
				continue
			}
			green.Printf("  png  %s\n", path)

		default:
			yellow.Printf("  skipping unknown format %q\n", format)
		}
	}

	if *play {
		if err := audio.Play(clip); err != nil {
			if errors.Is(err, audio.ErrUnsupportedPlatform) {
				yellow.Printf("  playback skipped: %v\n", err)
			} else {
				logger.Error("Playback failed", err)
				failed = true
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}

// reportEngineError points the user at the specific missing precondition
// instead of a generic failure
func reportEngineError(err error) {
	switch {
	case errors.Is(err, tts.ErrCredentialMissing):
		logger.Error("Missing credential", err)
	case errors.Is(err, tts.ErrEngineUnavailable):
		logger.Error("Engine unavailable", err)
	default:
		logger.Error("Failed to create TTS engine", err)
	}
}
