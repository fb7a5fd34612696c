package cmd

import (
	"fmt"
	"os"

	"speakertag/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "speakertag",
	Short: "Turn folders of recordings into speaker-named audio files",
	Long: `speakertag processes every video in a directory into a named MP3:

  - Extract the audio track with ffmpeg
  - Transcribe it locally with a whisper model
  - Detect the speaker's first name from the introduction
  - Save the audio as <Name>.mp3 next to the source video

Example:
  speakertag process --source ./recordings`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// A missing config file is fine; commands fall back to defaults
		cfg = config.Default()
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
