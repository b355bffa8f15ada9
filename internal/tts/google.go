package tts

import (
	"context"
	"fmt"
	"os"

	htgotts "github.com/hegedustibor/htgo-tts"

	"github.com/vahdetkaratas/tts-mini-assistant/internal/audio"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/logger"
)

// GoogleEngine synthesizes through the Google Translate speech endpoint.
// Every call performs network I/O. Speed and pitch hints are ignored, the
// endpoint has no parameters for them.
type GoogleEngine struct {
	defaultLang string
}

// NewGoogleEngine creates a Google Translate TTS engine with a default
// language applied when a request carries none
func NewGoogleEngine(defaultLang string) *GoogleEngine {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return &GoogleEngine{defaultLang: defaultLang}
}

// Synthesize fetches MP3 speech from the endpoint and decodes it to a mono
// clip at the stream's native sample rate. The HTTP leg itself is not
// cancelable; ctx is only consulted between steps.
func (e *GoogleEngine) Synthesize(ctx context.Context, req Request) (*audio.Clip, error) {
	if err := checkText(req.Text); err != nil {
		return nil, err
	}
	lang, err := normalizeLanguage(req.Language, e.defaultLang)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.Speed != 0 || req.Pitch != 0 {
		logger.Debugf("Google engine ignores speed/pitch hints (speed=%.2f, pitch=%.2f)", req.Speed, req.Pitch)
	}

	tmpDir, err := os.MkdirTemp("", "ttsmini-google-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	speech := htgotts.Speech{Folder: tmpDir, Language: lang}
	mp3Path, err := speech.CreateSpeechFile(req.Text, "speech")
	if err != nil {
		return nil, fmt.Errorf("google tts request failed (check your internet connection): %w", err)
	}

	clip, err := audio.LoadMP3(mp3Path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode google tts response: %w", err)
	}

	logger.Debugf("Google TTS produced %.2fs of audio at %d Hz", clip.Duration().Seconds(), clip.SampleRate)
	return clip, nil
}

// Voices returns nil: the endpoint offers a single voice per language
func (e *GoogleEngine) Voices() []string {
	return nil
}

// Name returns the engine name
func (e *GoogleEngine) Name() string {
	return "Google Translate TTS"
}
