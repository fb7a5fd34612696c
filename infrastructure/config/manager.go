package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errors for config management
var (
	ErrStopwordNotFound = errors.New("stopword not found")
	ErrDuplicateEntry   = errors.New("entry already exists")
)

// ConfigManager provides CRUD operations for config entries
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager creates a new config manager
func NewConfigManager(cfg *Config, configPath string) *ConfigManager {
	return &ConfigManager{
		config:     cfg,
		configPath: configPath,
	}
}

// --- Stopword CRUD ---

// AddStopword adds a word to the extra-stopword list. Words are stored
// lowercase; the extractor compares case-insensitively anyway.
func (m *ConfigManager) AddStopword(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return fmt.Errorf("stopword is required")
	}

	for _, existing := range m.config.Naming.ExtraStopwords {
		if existing == word {
			return fmt.Errorf("%w: stopword %q", ErrDuplicateEntry, word)
		}
	}

	m.config.Naming.ExtraStopwords = append(m.config.Naming.ExtraStopwords, word)
	sort.Strings(m.config.Naming.ExtraStopwords)
	return Save(m.config, m.configPath)
}

// ListStopwords returns the configured extra stopwords
func (m *ConfigManager) ListStopwords() []string {
	result := make([]string, len(m.config.Naming.ExtraStopwords))
	copy(result, m.config.Naming.ExtraStopwords)
	return result
}

// RemoveStopword removes a word from the extra-stopword list
func (m *ConfigManager) RemoveStopword(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))

	for i, existing := range m.config.Naming.ExtraStopwords {
		if existing == word {
			m.config.Naming.ExtraStopwords = append(
				m.config.Naming.ExtraStopwords[:i],
				m.config.Naming.ExtraStopwords[i+1:]...,
			)
			return Save(m.config, m.configPath)
		}
	}

	return fmt.Errorf("%w: %q", ErrStopwordNotFound, word)
}

// SuggestAddStopwordCommand returns the CLI command that adds a stopword
func SuggestAddStopwordCommand(word string) string {
	return fmt.Sprintf("speakertag config add stopword %s", word)
}
