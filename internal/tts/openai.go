package tts

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vahdetkaratas/tts-mini-assistant/internal/audio"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/logger"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/types"
)

// OpenAIEngine implements Engine on the OpenAI speech API. Requires an API
// key; the factory refuses to construct it without one. The speed hint is
// forwarded (clamped to the API's 0.25-4.0 range), pitch is ignored.
type OpenAIEngine struct {
	client      *openai.Client
	config      types.OpenAIConfig
	defaultLang string
}

// NewOpenAIEngine creates an OpenAI TTS engine
func NewOpenAIEngine(config types.OpenAIConfig, defaultLang string) *OpenAIEngine {
	client := openai.NewClient(config.APIKey)

	if config.Model == "" {
		config.Model = "tts-1"
	}
	if config.Voice == "" {
		config.Voice = "alloy"
	}
	if config.Speed == 0 {
		config.Speed = 1.0
	}
	if defaultLang == "" {
		defaultLang = "en"
	}

	return &OpenAIEngine{
		client:      client,
		config:      config,
		defaultLang: defaultLang,
	}
}

// Synthesize requests WAV speech and decodes it to a mono clip. The language
// is validated but not forwarded: the API has no language parameter, the
// model follows the text.
func (e *OpenAIEngine) Synthesize(ctx context.Context, req Request) (*audio.Clip, error) {
	if err := checkText(req.Text); err != nil {
		return nil, err
	}
	if _, err := normalizeLanguage(req.Language, e.defaultLang); err != nil {
		return nil, err
	}

	speed := e.config.Speed
	if req.Speed > 0 {
		speed = req.Speed
	}
	if speed < 0.25 {
		speed = 0.25
	} else if speed > 4.0 {
		speed = 4.0
	}
	if req.Pitch != 0 {
		logger.Debugf("OpenAI engine ignores the pitch hint (pitch=%.2f)", req.Pitch)
	}

	logger.Debugf("Generating TTS for text (length: %d chars) with voice: %s", len(req.Text), e.config.Voice)

	response, err := e.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(e.config.Model),
		Input:          req.Text,
		Voice:          openai.SpeechVoice(e.config.Voice),
		Speed:          speed,
		ResponseFormat: openai.SpeechResponseFormatWav,
	})
	if err != nil {
		return nil, fmt.Errorf("openai tts request failed (check your API key and network connectivity): %w", err)
	}
	defer response.Close()

	clip, err := audio.DecodeWav(response)
	if err != nil {
		return nil, fmt.Errorf("failed to decode openai tts response: %w", err)
	}

	logger.Debugf("OpenAI TTS produced %.2fs of audio at %d Hz", clip.Duration().Seconds(), clip.SampleRate)
	return clip, nil
}

// Voices returns the OpenAI speech voices
func (e *OpenAIEngine) Voices() []string {
	return []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}
}

// Name returns the engine name
func (e *OpenAIEngine) Name() string {
	return "OpenAI TTS"
}
