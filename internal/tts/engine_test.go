package tts

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vahdetkaratas/tts-mini-assistant/internal/types"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in       string
		fallback string
		want     string
		wantErr  bool
	}{
		{"en", "en", "en", false},
		{"tr", "en", "tr", false},
		{"EN", "en", "en", false},
		{"English (US)", "en", "en", false},
		{"English (UK)", "en", "en", false},
		{"Turkish", "en", "tr", false},
		{"", "tr", "tr", false},
		{"  ", "en", "en", false},
		{"de", "en", "", true},
		{"klingon", "en", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in+"/"+tt.fallback, func(t *testing.T) {
			got, err := normalizeLanguage(tt.in, tt.fallback)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewUnknownEngine(t *testing.T) {
	_, err := New(types.EngineConfig{Engine: "festival", Language: "en"})
	if err == nil {
		t.Fatal("expected an error for an unknown engine")
	}
	if !strings.Contains(err.Error(), "google, openai, piper") {
		t.Errorf("error should name the supported set, got: %v", err)
	}
}

func TestNewDefaultsToGoogle(t *testing.T) {
	engine, err := New(types.EngineConfig{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if engine.Name() != "Google Translate TTS" {
		t.Errorf("expected the google engine by default, got %s", engine.Name())
	}
}

func TestNewOpenAIWithoutCredential(t *testing.T) {
	// must fail at construction, before any network access
	_, err := New(types.EngineConfig{Engine: "openai", Language: "en"})
	if !errors.Is(err, ErrCredentialMissing) {
		t.Fatalf("expected ErrCredentialMissing, got %v", err)
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error should name the missing credential, got: %v", err)
	}
}

func TestNewPiperWithoutBinary(t *testing.T) {
	cfg := types.EngineConfig{
		Engine:   "piper",
		Language: "en",
		Piper:    types.PiperConfig{Binary: filepath.Join(t.TempDir(), "no-such-piper")},
	}
	_, err := New(cfg)
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("expected ErrEngineUnavailable, got %v", err)
	}
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	// every engine must reject blank input before doing any I/O
	engines := map[string]Engine{
		"google": NewGoogleEngine("en"),
		"openai": NewOpenAIEngine(types.OpenAIConfig{APIKey: "test-key"}, "en"),
		"piper":  &PiperEngine{binary: "/bin/true", defaultLang: "en"},
	}

	for name, engine := range engines {
		for _, text := range []string{"", "   ", "\t\n"} {
			t.Run(name+"/"+strings.TrimSpace(text), func(t *testing.T) {
				_, err := engine.Synthesize(context.Background(), Request{Text: text})
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
			})
		}
	}
}

func TestSynthesizeRejectsUnsupportedLanguage(t *testing.T) {
	engine := NewGoogleEngine("en")
	_, err := engine.Synthesize(context.Background(), Request{Text: "hello", Language: "xx"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPiperWithoutModel(t *testing.T) {
	engine := &PiperEngine{binary: "/bin/true", defaultLang: "en"}
	_, err := engine.ensureModel(context.Background())
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("expected ErrEngineUnavailable, got %v", err)
	}
}

func TestOpenAIVoices(t *testing.T) {
	engine := NewOpenAIEngine(types.OpenAIConfig{APIKey: "test-key"}, "en")
	voices := engine.Voices()
	if len(voices) == 0 {
		t.Fatal("expected a non-empty voice list")
	}
	found := false
	for _, v := range voices {
		if v == "alloy" {
			found = true
		}
	}
	if !found {
		t.Error("expected alloy among the voices")
	}
}
