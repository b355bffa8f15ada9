package types

// EngineConfig holds construction-time options for a synthesis engine.
// The engine is selected once, by name; there is no re-selection mid-call.
type EngineConfig struct {
	Engine   string       `yaml:"engine"`   // "google", "openai" or "piper"
	Language string       `yaml:"language"` // default language code used when a request carries none
	OpenAI   OpenAIConfig `yaml:"openai"`
	Piper    PiperConfig  `yaml:"piper"`
}

// OpenAIConfig holds OpenAI speech API configuration
type OpenAIConfig struct {
	APIKey string  `yaml:"api_key"` // falls back to OPENAI_API_KEY
	Model  string  `yaml:"model"`   // "tts-1" or "tts-1-hd"
	Voice  string  `yaml:"voice"`   // "alloy", "nova", ...
	Speed  float64 `yaml:"speed"`   // 0.25-4.0, default 1.0
}

// PiperConfig holds configuration for the local piper engine
type PiperConfig struct {
	Binary   string `yaml:"binary"`    // piper executable, looked up on PATH when empty
	Model    string `yaml:"model"`     // path to a voice model (.onnx)
	ModelURL string `yaml:"model_url"` // downloaded into the model cache on first use when Model is unset
}

// OutputConfig controls where and in which formats synthesized audio lands
type OutputConfig struct {
	Dir      string   `yaml:"dir"`      // defaults to the fileops outputs directory
	Formats  []string `yaml:"formats"`  // subset of "wav", "mp3", "png"
	Basename string   `yaml:"basename"` // defaults to "speech"
}

type Config struct {
	TTS    EngineConfig `yaml:"tts"`
	Output OutputConfig `yaml:"output"`
}

// GetEngineConfig returns engine configuration with defaults applied
func (c *Config) GetEngineConfig() EngineConfig {
	config := c.TTS

	if config.Engine == "" {
		config.Engine = "google"
	}
	if config.Language == "" {
		config.Language = "en"
	}
	if config.OpenAI.Model == "" {
		config.OpenAI.Model = "tts-1"
	}
	if config.OpenAI.Voice == "" {
		config.OpenAI.Voice = "alloy"
	}
	if config.OpenAI.Speed == 0 {
		config.OpenAI.Speed = 1.0
	}

	return config
}

// GetOutputConfig returns output configuration with defaults applied
func (c *Config) GetOutputConfig() OutputConfig {
	config := c.Output

	if len(config.Formats) == 0 {
		config.Formats = []string{"wav", "mp3", "png"}
	}
	if config.Basename == "" {
		config.Basename = "speech"
	}

	return config
}
