package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Audio   AudioConfig   `yaml:"audio"`
	Whisper WhisperConfig `yaml:"whisper"`
	Naming  NamingConfig  `yaml:"naming"`
	Google  GoogleConfig  `yaml:"google"`
}

// PathsConfig contains directory paths for batch processing
type PathsConfig struct {
	SourceDirectory string `yaml:"source_directory"`
	ModelsDirectory string `yaml:"models_directory"`
	LogDirectory    string `yaml:"log_directory"`
	BundledFFmpeg   string `yaml:"bundled_ffmpeg"`
}

// AudioConfig contains audio extraction settings
type AudioConfig struct {
	Bitrate    string `yaml:"bitrate"`
	SampleRate int    `yaml:"sample_rate"`
}

// WhisperConfig contains speech-to-text model settings
type WhisperConfig struct {
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

// NamingConfig contains name-detection tuning
type NamingConfig struct {
	// ExtraStopwords extends the built-in stopword set; words listed here are
	// never returned as a speaker name.
	ExtraStopwords []string `yaml:"extra_stopwords"`
}

// GoogleConfig contains Google API settings for the optional Drive upload
type GoogleConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	TokenFile       string `yaml:"token_file"`
	AudioFolderID   string `yaml:"audio_folder_id"`
}

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

// Default returns a configuration with sensible local defaults: process the
// working directory, keep models and logs under it.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			SourceDirectory: ".",
			ModelsDirectory: "models",
			LogDirectory:    ".",
		},
		Audio: AudioConfig{
			Bitrate:    "128k",
			SampleRate: 44100,
		},
		Whisper: WhisperConfig{
			Model:    "base",
			Language: "en",
		},
	}
}
