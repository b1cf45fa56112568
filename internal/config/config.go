// Package config loads moderk settings from YAML and the environment.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	LLM     LLMConfig     `yaml:"llm"`
	Speech  SpeechConfig  `yaml:"speech"`
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig holds the durable snapshot database location.
// An empty Path resolves to ~/.moderk/moderk.db.
type StorageConfig struct {
	Path string `yaml:"path" env:"MODERK_DB"`
}

// LLMConfig holds remote text-generation settings.
type LLMConfig struct {
	APIKey    string `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	BaseURL   string `yaml:"base_url"   env:"ANTHROPIC_BASE_URL"`
	Model     string `yaml:"model"      env:"MODERK_MODEL"      env-default:"claude-3-5-haiku-latest"`
	MaxTokens int64  `yaml:"max_tokens" env:"MODERK_MAX_TOKENS" env-default:"1024"`
}

// SpeechConfig holds host speech engine commands.
// An empty RecognizeCommand means speech capture is unsupported.
type SpeechConfig struct {
	SynthCommand     string `yaml:"synth_command"     env:"MODERK_TTS_CMD"     env-default:"espeak-ng"`
	RecognizeCommand string `yaml:"recognize_command" env:"MODERK_STT_CMD"`
	Lang             string `yaml:"lang"              env:"MODERK_SPEECH_LANG" env-default:"ar-SA"`
}

// HTTPConfig holds the local API server settings.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"             env:"MODERK_HTTP_ADDR"             env-default:"127.0.0.1:8787"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"MODERK_HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
