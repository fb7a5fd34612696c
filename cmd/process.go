package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	appbatch "speakertag/application/batch"
	appdist "speakertag/application/distribution"
	appvideo "speakertag/application/video"
	"speakertag/domain/naming"
	"speakertag/domain/transcription"
	"speakertag/domain/video"
	"speakertag/infrastructure/config"
	"speakertag/infrastructure/drive"
	"speakertag/infrastructure/ffmpeg"
	"speakertag/infrastructure/filesystem"
	"speakertag/infrastructure/logging"
	"speakertag/infrastructure/probe"
	"speakertag/infrastructure/whisper"

	"github.com/spf13/cobra"
)

var (
	processSourceDir string
	processUpload    bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process every video in a directory into speaker-named audio",
	Long: `Process every .mp4 file in the source directory, in name order:
1. Extract the audio track as MP3
2. Transcribe the audio with a local whisper model
3. Detect the speaker's first name from the introduction
4. Save the audio as <Name>.mp3 (or audio.mp3 when no name is found)

A file whose target name already exists is skipped. One failing video
does not stop the rest of the batch.

Each run writes a timestamped log file with full transcription detail.

Example:
  speakertag process --source ./recordings
  speakertag process --source ./recordings --upload`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringVar(&processSourceDir, "source", "", "Directory of videos to process (defaults to configured source directory)")
	processCmd.Flags().BoolVar(&processUpload, "upload", false, "Upload finished audio files to Google Drive")
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	ctx := cmd.Context()

	sourceDir := processSourceDir
	if sourceDir == "" {
		sourceDir = cfg.Paths.SourceDirectory
	}

	logger, logPath, cleanup, err := logging.Init(cfg.Paths.LogDirectory, os.Stdout)
	if err != nil {
		return err
	}
	defer cleanup()
	logger.Debug("logging to file", "path", logPath)

	// Resolve a working ffmpeg before touching any input
	locator := ffmpeg.NewLocator(ffmpeg.WithBundledPath(cfg.Paths.BundledFFmpeg))
	ffmpegPath, strategy, err := locator.Resolve(ctx)
	if err != nil {
		return err
	}
	logger.Debug("decoder resolved", "path", ffmpegPath, "strategy", string(strategy))

	// Download model weights on first run, reuse the cache afterwards
	modelPath, err := whisper.EnsureModel(ctx, cfg.Paths.ModelsDirectory, cfg.Whisper.Model)
	if err != nil {
		return fmt.Errorf("prepare whisper model: %w", err)
	}

	extractor := ffmpeg.NewExtractor(ffmpeg.WithExtractorFFmpegPath(ffmpegPath))
	transcriber := whisper.NewTranscriber(modelPath,
		whisper.WithLanguage(cfg.Whisper.Language),
		whisper.WithFFmpegPath(ffmpegPath),
	)
	defer transcriber.Close()

	var uploader appbatch.Uploader
	if processUpload {
		driveClient, err := drive.NewClientWithOAuth(ctx, cfg.Google.CredentialsFile, cfg.Google.TokenFile)
		if err != nil {
			return fmt.Errorf("failed to create Google Drive client: %w", err)
		}
		uploader = appdist.NewUploadService(driveClient, cfg.Google.AudioFolderID)
	}

	return RunProcessWithDependencies(ctx, cfg, extractor, transcriber, probe.NewProber(), uploader, logger, sourceDir)
}

// RunProcessWithDependencies runs the process command with injected
// dependencies (for testing)
func RunProcessWithDependencies(
	ctx context.Context,
	cfg *config.Config,
	extractor video.AudioExtractor,
	transcriber transcription.Transcriber,
	prober video.Prober,
	uploader appbatch.Uploader,
	logger *slog.Logger,
	sourceDir string,
) error {
	extractService := appvideo.NewExtractService(extractor, filesystem.NewChecker(), cfg.Audio.Bitrate, cfg.Audio.SampleRate)
	nameExtractor := naming.NewExtractor(cfg.Naming.ExtraStopwords...)

	service := appbatch.NewService(
		extractService,
		transcriber,
		prober,
		nameExtractor,
		filesystem.NewFinder(),
		filesystem.NewOps(),
		uploader,
		logger,
	)

	_, err := service.Run(ctx, sourceDir)
	return err
}
