package tts

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vahdetkaratas/tts-mini-assistant/internal/audio"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/types"
)

// Smoke tests hit real TTS endpoints. They only run when
// TTSMINI_SMOKE_TEST=1 is set, so the regular suite stays offline.

func smokeGuard(t *testing.T) {
	t.Helper()
	if os.Getenv("TTSMINI_SMOKE_TEST") != "1" {
		t.Skip("set TTSMINI_SMOKE_TEST=1 to run network smoke tests")
	}
}

func TestGoogleSynthesizeSmoke(t *testing.T) {
	smokeGuard(t)

	engine, err := New(types.EngineConfig{Engine: "google", Language: "en"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clip, err := engine.Synthesize(ctx, Request{Text: "Hello from the smoke test."})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if err := audio.Validate(clip); err != nil {
		t.Fatalf("engine returned a malformed clip: %v", err)
	}
	if clip.Duration() < 200*time.Millisecond {
		t.Errorf("suspiciously short clip: %v", clip.Duration())
	}

	// same phrase, same engine: durations should roughly agree
	clip2, err := engine.Synthesize(ctx, Request{Text: "Hello from the smoke test."})
	if err != nil {
		t.Fatalf("second Synthesize: %v", err)
	}
	a, b := clip.Duration().Seconds(), clip2.Duration().Seconds()
	if math.Abs(a-b) > 0.2*math.Max(a, b) {
		t.Errorf("durations diverge beyond engine nondeterminism: %.3fs vs %.3fs", a, b)
	}

	// and the full pipeline holds together
	dir := t.TempDir()
	if err := audio.SaveWav(clip, filepath.Join(dir, "smoke.wav")); err != nil {
		t.Errorf("SaveWav: %v", err)
	}
	if err := audio.PlotWaveform(clip, filepath.Join(dir, "smoke.png")); err != nil {
		t.Errorf("PlotWaveform: %v", err)
	}
}

func TestOpenAISynthesizeSmoke(t *testing.T) {
	smokeGuard(t)
	if os.Getenv("OPENAI_API_KEY") == "" {
		t.Skip("OPENAI_API_KEY not set")
	}

	engine, err := New(types.EngineConfig{
		Engine:   "openai",
		Language: "en",
		OpenAI:   types.OpenAIConfig{APIKey: os.Getenv("OPENAI_API_KEY")},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	clip, err := engine.Synthesize(ctx, Request{Text: "Hello from the smoke test.", Speed: 1.1})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if err := audio.Validate(clip); err != nil {
		t.Fatalf("engine returned a malformed clip: %v", err)
	}
}
