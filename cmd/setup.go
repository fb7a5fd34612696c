package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"speakertag/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

This command guides you through the paths, audio settings, whisper model
choice, and optional Google Drive upload settings.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to speakertag setup!")
	fmt.Println()

	cfg := config.Default()

	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}

	if err := promptAudio(prompter, cfg); err != nil {
		return err
	}

	if err := promptWhisper(prompter, cfg); err != nil {
		return err
	}

	if err := promptGoogle(prompter, cfg); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	source, err := prompter.Input("Where are your video recordings?", cfg.Paths.SourceDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if source != "" {
		cfg.Paths.SourceDirectory = source
	}

	models, err := prompter.Input("Where should whisper models be cached?", cfg.Paths.ModelsDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if models != "" {
		cfg.Paths.ModelsDirectory = models
	}

	logs, err := prompter.Input("Where should run logs go?", cfg.Paths.LogDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if logs != "" {
		cfg.Paths.LogDirectory = logs
	}

	bundled, err := prompter.Input("Path to a bundled ffmpeg binary (blank to rely on PATH)?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Paths.BundledFFmpeg = bundled

	return nil
}

func promptAudio(prompter Prompter, cfg *config.Config) error {
	bitrate, err := prompter.Input("Audio bitrate for mp3 extraction?", cfg.Audio.Bitrate)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if bitrate != "" {
		cfg.Audio.Bitrate = bitrate
	}

	rate, err := prompter.Input("Sample rate (Hz)?", strconv.Itoa(cfg.Audio.SampleRate))
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if rate != "" {
		parsed, err := strconv.Atoi(rate)
		if err != nil {
			return fmt.Errorf("invalid sample rate %q", rate)
		}
		cfg.Audio.SampleRate = parsed
	}

	return nil
}

func promptWhisper(prompter Prompter, cfg *config.Config) error {
	model, err := prompter.Input("Whisper model (tiny, base, small, medium, large)?", cfg.Whisper.Model)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if model != "" {
		cfg.Whisper.Model = model
	}

	language, err := prompter.Input("Transcription language?", cfg.Whisper.Language)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if language != "" {
		cfg.Whisper.Language = language
	}

	return nil
}

func promptGoogle(prompter Prompter, cfg *config.Config) error {
	enable, err := prompter.Confirm("Configure Google Drive upload?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if !enable {
		return nil
	}

	credentials, err := prompter.Input("Path to Google credentials file?", "credentials.json")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if credentials == "" {
		credentials = "credentials.json"
	}
	cfg.Google.CredentialsFile = credentials

	token, err := prompter.Input("Path for the OAuth token file?", "drive_token.json")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if token == "" {
		token = "drive_token.json"
	}
	cfg.Google.TokenFile = token

	folder, err := prompter.Input("Google Drive folder ID for audio uploads?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if folder == "" {
		return fmt.Errorf("folder ID is required")
	}
	cfg.Google.AudioFolderID = folder

	return nil
}
