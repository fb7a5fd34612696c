package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	appvideo "speakertag/application/video"
	"speakertag/domain/video"
	"speakertag/infrastructure/ffmpeg"
	"speakertag/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	extractSourcePath string
	extractOutputPath string
	extractBitrate    string
)

var extractAudioCmd = &cobra.Command{
	Use:   "extract-audio",
	Short: "Extract the audio track from a single video file",
	Long: `Extract the audio track from a video file to MP3 format.

By default the output is written next to the source with the same stem
and an .mp3 extension. Use --output to choose another path.

Example:
  speakertag extract-audio --source "./recordings/intro_take1.mp4"
  speakertag extract-audio --source video.mp4 --output take1.mp3 --bitrate 192k`,
	RunE: runExtractAudio,
}

func init() {
	rootCmd.AddCommand(extractAudioCmd)
	extractAudioCmd.Flags().StringVar(&extractSourcePath, "source", "", "Path to source video file (required)")
	extractAudioCmd.Flags().StringVar(&extractOutputPath, "output", "", "Output MP3 path (defaults to <source stem>.mp3)")
	extractAudioCmd.Flags().StringVar(&extractBitrate, "bitrate", "", "Audio bitrate (default from config or 128k)")
	extractAudioCmd.MarkFlagRequired("source")
}

func runExtractAudio(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	bitrate := extractBitrate
	if bitrate == "" {
		bitrate = cfg.Audio.Bitrate
	}

	outputPath := extractOutputPath
	if outputPath == "" {
		base := strings.TrimSuffix(extractSourcePath, filepath.Ext(extractSourcePath))
		outputPath = base + video.AudioExtensionMP3
	}

	locator := ffmpeg.NewLocator(ffmpeg.WithBundledPath(cfg.Paths.BundledFFmpeg))
	ffmpegPath, _, err := locator.Resolve(cmd.Context())
	if err != nil {
		return err
	}

	extractor := ffmpeg.NewExtractor(ffmpeg.WithExtractorFFmpegPath(ffmpegPath))
	fileChecker := filesystem.NewChecker()

	return RunExtractAudioWithDependencies(
		cmd.Context(),
		extractor,
		fileChecker,
		bitrate,
		cfg.Audio.SampleRate,
		extractSourcePath,
		outputPath,
		os.Stdout,
	)
}

// RunExtractAudioWithDependencies runs the extract-audio command with injected dependencies (for testing)
func RunExtractAudioWithDependencies(
	ctx context.Context,
	extractor video.AudioExtractor,
	fileChecker video.FileChecker,
	bitrate string,
	sampleRate int,
	sourcePath string,
	outputPath string,
	output io.Writer,
) error {
	// Verify ffmpeg is available if extractor supports it
	if verifiable, ok := extractor.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return fmt.Errorf("ffmpeg verification failed: %w", err)
		}
	}

	service := appvideo.NewExtractService(extractor, fileChecker, bitrate, sampleRate)

	fmt.Fprintf(output, "Extracting audio from %s...\n", sourcePath)

	result, err := service.Extract(ctx, appvideo.ExtractInput{
		SourcePath: sourcePath,
		OutputPath: outputPath,
		Bitrate:    bitrate,
		SampleRate: sampleRate,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Successfully created: %s\n", result.OutputPath)
	return nil
}
