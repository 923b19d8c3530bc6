package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Paths  PathsConfig  `yaml:"paths"`
	Tools  ToolsConfig  `yaml:"tools"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

// ServerConfig contains HTTP serving settings
type ServerConfig struct {
	Bind string `yaml:"bind"`
}

// PathsConfig contains directory paths for media processing
type PathsConfig struct {
	WorkDirectory string `yaml:"work_directory"`
}

// ToolsConfig contains fixed host paths for external binaries
type ToolsConfig struct {
	FFmpegPath    string `yaml:"ffmpeg_path"`
	FFprobePath   string `yaml:"ffprobe_path"`
	YtdlpPath     string `yaml:"ytdlp_path"`
	TesseractPath string `yaml:"tesseract_path"`
	WhisperPath   string `yaml:"whisper_path"`
	WhisperModel  string `yaml:"whisper_model"`
}

// OpenAIConfig contains completion service settings. The API key itself is
// never stored in the file; it is read from the environment at startup.
type OpenAIConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// APIKeyEnvVar is the environment variable holding the completion API key
const APIKeyEnvVar = "OPENAI_API_KEY"

// Load reads and parses the configuration from the specified YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Bind == "" {
		c.Server.Bind = "127.0.0.1:8000"
	}
	if c.Paths.WorkDirectory == "" {
		c.Paths.WorkDirectory = os.TempDir()
	}
	if c.Tools.FFmpegPath == "" {
		c.Tools.FFmpegPath = "/usr/bin/ffmpeg"
	}
	if c.Tools.FFprobePath == "" {
		c.Tools.FFprobePath = "ffprobe"
	}
	if c.Tools.YtdlpPath == "" {
		c.Tools.YtdlpPath = "yt-dlp"
	}
	if c.Tools.TesseractPath == "" {
		c.Tools.TesseractPath = "/usr/bin/tesseract"
	}
	if c.Tools.WhisperPath == "" {
		c.Tools.WhisperPath = "whisper-cli"
	}
	if c.Tools.WhisperModel == "" {
		c.Tools.WhisperModel = "models/ggml-base.bin"
	}
}

// ReadAPIKey reads the completion API key from the environment. Absence is a
// startup-time misconfiguration, not a per-request error.
func ReadAPIKey() (string, error) {
	key := os.Getenv(APIKeyEnvVar)
	if key == "" {
		return "", fmt.Errorf("%s is not set", APIKeyEnvVar)
	}
	return key, nil
}
