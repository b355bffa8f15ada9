package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vahdetkaratas/tts-mini-assistant/internal/audio"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/fileops"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/logger"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/types"
)

// PiperEngine runs a local piper process per synthesis call. No network is
// needed for synthesis itself, but the first call may download the
// configured voice model into the model cache. The speed hint maps to
// piper's length scale; pitch is ignored.
type PiperEngine struct {
	binary      string
	model       string
	modelURL    string
	defaultLang string
	fileOps     fileops.FileOps
}

// NewPiperEngine creates a local piper engine. Fails with
// ErrEngineUnavailable when the piper executable cannot be found, naming
// where it looked.
func NewPiperEngine(config types.PiperConfig, defaultLang string) (*PiperEngine, error) {
	binary := config.Binary
	if binary == "" {
		path, err := exec.LookPath("piper")
		if err != nil {
			return nil, fmt.Errorf("%w: piper executable not found on PATH (install it from https://github.com/rhasspy/piper or set tts.piper.binary)", ErrEngineUnavailable)
		}
		binary = path
	} else if _, err := os.Stat(binary); err != nil {
		return nil, fmt.Errorf("%w: piper executable not found at %s", ErrEngineUnavailable, config.Binary)
	}

	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file operations: %w", err)
	}

	if defaultLang == "" {
		defaultLang = "en"
	}

	return &PiperEngine{
		binary:      binary,
		model:       config.Model,
		modelURL:    config.ModelURL,
		defaultLang: defaultLang,
		fileOps:     fileOps,
	}, nil
}

// Synthesize pipes the text through piper and loads the WAV it produced.
// The sample rate comes from the header piper wrote, never from an assumed
// model rate, so swapping models cannot desync clip and rate.
func (e *PiperEngine) Synthesize(ctx context.Context, req Request) (*audio.Clip, error) {
	if err := checkText(req.Text); err != nil {
		return nil, err
	}
	if _, err := normalizeLanguage(req.Language, e.defaultLang); err != nil {
		return nil, err
	}

	model, err := e.ensureModel(ctx)
	if err != nil {
		return nil, err
	}

	tmpFile, err := os.CreateTemp("", "ttsmini_piper_*.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	args := []string{"--model", model, "--output_file", tmpFile.Name()}
	if req.Speed > 0 {
		// piper expresses rate as a length scale, the inverse of speed
		args = append(args, "--length_scale", fmt.Sprintf("%.3f", 1.0/req.Speed))
	}
	if req.Pitch != 0 {
		logger.Debugf("Piper engine ignores the pitch hint (pitch=%.2f)", req.Pitch)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stdin = strings.NewReader(req.Text)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("piper synthesis failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}

	clip, err := audio.LoadWav(tmpFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read piper output: %w", err)
	}

	logger.Debugf("Piper produced %.2fs of audio at %d Hz", clip.Duration().Seconds(), clip.SampleRate)
	return clip, nil
}

// ensureModel returns the path of a usable voice model, downloading it into
// the model cache on first use when only a URL is configured.
func (e *PiperEngine) ensureModel(ctx context.Context) (string, error) {
	if e.model != "" {
		if _, err := os.Stat(e.model); err != nil {
			return "", fmt.Errorf("%w: voice model not found at %s", ErrEngineUnavailable, e.model)
		}
		return e.model, nil
	}
	if e.modelURL == "" {
		return "", fmt.Errorf("%w: no voice model configured, set tts.piper.model or tts.piper.model_url", ErrEngineUnavailable)
	}

	if err := e.fileOps.EnsureDirectories(); err != nil {
		return "", err
	}

	dest := filepath.Join(e.fileOps.GetModelsDir(), filepath.Base(e.modelURL))
	if _, err := os.Stat(dest); err == nil {
		e.model = dest
		return dest, nil
	}

	logger.Infof("Downloading piper voice model: %s", e.modelURL)
	if err := downloadFile(ctx, e.modelURL, dest); err != nil {
		return "", fmt.Errorf("failed to download voice model: %w", err)
	}
	// piper expects the model config next to the model itself
	if err := downloadFile(ctx, e.modelURL+".json", dest+".json"); err != nil {
		return "", fmt.Errorf("failed to download voice model config: %w", err)
	}

	e.model = dest
	return dest, nil
}

func downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}

	tmp := dest + ".partial"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}

// Voices returns the configured model as the single selectable voice
func (e *PiperEngine) Voices() []string {
	if e.model == "" {
		return nil
	}
	return []string{strings.TrimSuffix(filepath.Base(e.model), ".onnx")}
}

// Name returns the engine name
func (e *PiperEngine) Name() string {
	return "Piper"
}
