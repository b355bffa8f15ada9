// Package tts wraps several text-to-speech backends behind one synthesis
// interface. The concrete engine is picked once, by name, when the engine is
// constructed; credential and availability preconditions fail there, not
// halfway through a synthesis call.
package tts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vahdetkaratas/tts-mini-assistant/internal/audio"
)

var (
	// ErrInvalidInput is returned when the text to synthesize is empty or
	// whitespace-only
	ErrInvalidInput = errors.New("text must be a non-empty string")

	// ErrCredentialMissing is returned when the selected engine needs an API
	// key that is not configured
	ErrCredentialMissing = errors.New("required credential is not configured")

	// ErrEngineUnavailable is returned when the selected engine cannot run in
	// the current environment
	ErrEngineUnavailable = errors.New("engine not available")
)

// Request carries one synthesis call. Speed and pitch are best-effort hints:
// engines that cannot honor them ignore them silently, which is documented
// behavior rather than an error. Zero values mean "engine default".
type Request struct {
	Text     string
	Language string
	Speed    float64
	Pitch    float64
}

// Engine is a single text-to-speech backend. Synthesize blocks for the
// duration of the call; engines that reach a remote service perform network
// I/O and honor ctx only up to the limits of the underlying client.
type Engine interface {
	// Synthesize converts text to a mono float32 clip and its sample rate
	Synthesize(ctx context.Context, req Request) (*audio.Clip, error)

	// Voices returns the selectable voices, nil when the engine has none
	Voices() []string

	// Name returns a human-readable engine name
	Name() string
}

// languageMap normalizes UI labels and short codes to engine language codes.
// gTTS-style endpoints have no UK accent, so both English labels map to "en".
var languageMap = map[string]string{
	"en":           "en",
	"tr":           "tr",
	"english (us)": "en",
	"english (uk)": "en",
	"turkish":      "tr",
}

func normalizeLanguage(lang, fallback string) (string, error) {
	if strings.TrimSpace(lang) == "" {
		lang = fallback
	}
	code, ok := languageMap[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return "", fmt.Errorf("%w: unsupported language %q (supported: en, tr)", ErrInvalidInput, lang)
	}
	return code, nil
}

func checkText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrInvalidInput
	}
	return nil
}
