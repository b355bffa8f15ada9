package tts

import (
	"fmt"
	"strings"

	"github.com/vahdetkaratas/tts-mini-assistant/internal/logger"
	"github.com/vahdetkaratas/tts-mini-assistant/internal/types"
)

// New creates the engine named in cfg.Engine. The supported set is closed:
// "google" (remote, no credential), "openai" (remote, API key) and "piper"
// (local neural model). Preconditions are checked here once.
func New(cfg types.EngineConfig) (Engine, error) {
	if _, err := normalizeLanguage(cfg.Language, "en"); err != nil {
		return nil, err
	}

	var (
		engine Engine
		err    error
	)

	switch strings.ToLower(strings.TrimSpace(cfg.Engine)) {
	case "", "google":
		engine = NewGoogleEngine(cfg.Language)

	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("%w: set OPENAI_API_KEY or tts.openai.api_key to use the openai engine", ErrCredentialMissing)
		}
		engine = NewOpenAIEngine(cfg.OpenAI, cfg.Language)

	case "piper":
		engine, err = NewPiperEngine(cfg.Piper, cfg.Language)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unsupported engine: %s (supported: google, openai, piper)", cfg.Engine)
	}

	logger.Infof("Initialized TTS engine: %s", engine.Name())
	return engine, nil
}
