package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"speakertag/domain/naming"
	"speakertag/domain/transcription"
	"speakertag/infrastructure/config"
	"speakertag/infrastructure/ffmpeg"
	"speakertag/infrastructure/whisper"

	"github.com/spf13/cobra"
)

var (
	transcribeSourcePath string
	transcribeFull       bool
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe an audio file and show the detected speaker name",
	Long: `Transcribe a single audio file with the local whisper model and report
which speaker name would be detected from the introduction.

Useful for checking why a video was named audio.mp3: the transcript
shows what the model heard, and the detected name (or its absence)
shows how the introduction was interpreted.

Example:
  speakertag transcribe --source ./recordings/temp_audio_intro.mp3
  speakertag transcribe --source take1.mp3 --full`,
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().StringVar(&transcribeSourcePath, "source", "", "Path to audio file (required)")
	transcribeCmd.Flags().BoolVar(&transcribeFull, "full", false, "Print the full transcript instead of a preview")
	transcribeCmd.MarkFlagRequired("source")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	ctx := cmd.Context()

	locator := ffmpeg.NewLocator(ffmpeg.WithBundledPath(cfg.Paths.BundledFFmpeg))
	ffmpegPath, _, err := locator.Resolve(ctx)
	if err != nil {
		return err
	}

	modelPath, err := whisper.EnsureModel(ctx, cfg.Paths.ModelsDirectory, cfg.Whisper.Model)
	if err != nil {
		return fmt.Errorf("prepare whisper model: %w", err)
	}

	transcriber := whisper.NewTranscriber(modelPath,
		whisper.WithLanguage(cfg.Whisper.Language),
		whisper.WithFFmpegPath(ffmpegPath),
	)
	defer transcriber.Close()

	nameExtractor := naming.NewExtractor(cfg.Naming.ExtraStopwords...)

	return RunTranscribeWithDependencies(ctx, transcriber, nameExtractor, transcribeSourcePath, transcribeFull, os.Stdout)
}

// RunTranscribeWithDependencies runs the transcribe command with injected dependencies (for testing)
func RunTranscribeWithDependencies(
	ctx context.Context,
	transcriber transcription.Transcriber,
	nameExtractor *naming.Extractor,
	sourcePath string,
	full bool,
	output io.Writer,
) error {
	transcript, err := transcriber.Transcribe(ctx, sourcePath)
	if err != nil {
		return err
	}

	text := transcript
	if !full {
		runes := []rune(transcript)
		if len(runes) > 500 {
			text = string(runes[:500]) + "..."
		}
	}
	fmt.Fprintf(output, "Transcript:\n%s\n\n", text)

	if name, ok := nameExtractor.FindFirstName(transcript); ok {
		fmt.Fprintf(output, "Detected speaker: %s\n", name)
		fmt.Fprintf(output, "If this is not a name, exclude it with:\n  %s\n", config.SuggestAddStopwordCommand(name))
	} else {
		fmt.Fprintln(output, "No speaker name detected; batch processing would use audio.mp3")
	}
	return nil
}
