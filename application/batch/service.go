package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	appvideo "speakertag/application/video"
	"speakertag/domain/distribution"
	"speakertag/domain/naming"
	"speakertag/domain/transcription"
	"speakertag/domain/video"
)

// FallbackAudioName is the artifact name used when no speaker name is detected
const FallbackAudioName = "audio"

// TranscriptPreviewChars bounds how much of each transcript is logged at debug level
const TranscriptPreviewChars = 500

// FileFinder abstracts file system operations for discovering input files
type FileFinder interface {
	ListFiles(dir, ext string) ([]string, error)
}

// FileOps abstracts the file system mutations the pipeline performs
type FileOps interface {
	Exists(path string) bool
	Rename(oldPath, newPath string) error
	Remove(path string) error
}

// Uploader publishes finalized audio files to shared storage
type Uploader interface {
	UploadAudio(ctx context.Context, audioPath string) (*distribution.UploadResult, error)
}

// FileOutcome describes how a single video fared in a batch run
type FileOutcome struct {
	SourcePath string
	OutputPath string
	Name       string // Detected speaker name, empty when fallback was used
	Skipped    bool   // Output already existed, extraction was discarded
	ShareURL   string // Set when the finalized audio was uploaded
	Err        error  // Set when processing failed
}

// Summary aggregates the outcomes of a batch run
type Summary struct {
	Total      int
	Successful int // Includes skipped files
	Failed     int
	Outcomes   []FileOutcome
}

// Service orchestrates the batch video-to-named-audio workflow
type Service struct {
	extractService *appvideo.ExtractService
	transcriber    transcription.Transcriber
	prober         video.Prober
	nameExtractor  *naming.Extractor
	fileFinder     FileFinder
	fileOps        FileOps
	uploader       Uploader // Optional, nil disables publishing
	logger         *slog.Logger
}

// NewService creates a new batch service
func NewService(
	extractService *appvideo.ExtractService,
	transcriber transcription.Transcriber,
	prober video.Prober,
	nameExtractor *naming.Extractor,
	fileFinder FileFinder,
	fileOps FileOps,
	uploader Uploader,
	logger *slog.Logger,
) *Service {
	return &Service{
		extractService: extractService,
		transcriber:    transcriber,
		prober:         prober,
		nameExtractor:  nameExtractor,
		fileFinder:     fileFinder,
		fileOps:        fileOps,
		uploader:       uploader,
		logger:         logger,
	}
}

// Run processes every video in sourceDir in sorted order. A failure on one
// file is logged and counted, never fatal to the rest of the batch. An empty
// source directory is an error so callers can exit nonzero.
func (s *Service) Run(ctx context.Context, sourceDir string) (*Summary, error) {
	started := time.Now()

	videos, err := s.fileFinder.ListFiles(sourceDir, video.VideoExtension)
	if err != nil {
		return nil, fmt.Errorf("scan source directory: %w", err)
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", video.VideoExtension, sourceDir)
	}

	s.logger.Info("starting batch", "directory", sourceDir, "videos", len(videos))

	summary := &Summary{Total: len(videos)}
	for _, videoPath := range videos {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		outcome := s.processOne(ctx, videoPath)
		summary.Outcomes = append(summary.Outcomes, outcome)

		switch {
		case outcome.Err != nil:
			summary.Failed++
			s.logger.Error("processing failed", "video", filepath.Base(videoPath), "error", outcome.Err)
		case outcome.Skipped:
			summary.Successful++
			s.logger.Info("output already exists, skipping", "video", filepath.Base(videoPath), "output", filepath.Base(outcome.OutputPath))
		default:
			summary.Successful++
			s.logger.Info("finished", "video", filepath.Base(videoPath), "output", filepath.Base(outcome.OutputPath))
		}
	}

	s.logger.Info("batch complete",
		"successful", summary.Successful,
		"failed", summary.Failed,
		"elapsed", time.Since(started).Round(time.Second).String(),
	)
	return summary, nil
}

// processOne runs the per-file pipeline. A panic anywhere in the pipeline is
// converted into a failed outcome so one broken input cannot abort the batch.
func (s *Service) processOne(ctx context.Context, videoPath string) (outcome FileOutcome) {
	outcome.SourcePath = videoPath

	// The temp path is deterministic, so it can be cleaned up even when the
	// step that writes it fails partway. tempLive tracks whether the artifact
	// may still exist, so a panic anywhere before finalization also cleans up.
	tempPath := video.TempArtifactPathFor(videoPath)
	tempLive := false

	defer func() {
		if r := recover(); r != nil {
			outcome.Err = fmt.Errorf("unexpected panic: %v", r)
			if tempLive {
				s.discard(tempPath)
			}
		}
	}()

	s.logger.Info("processing", "video", filepath.Base(videoPath))

	if err := s.prober.Probe(ctx, videoPath); err != nil {
		outcome.Err = fmt.Errorf("probe: %w", err)
		return outcome
	}

	if _, err := s.extractService.Extract(ctx, appvideo.ExtractInput{SourcePath: videoPath, OutputPath: tempPath}); err != nil {
		s.discard(tempPath)
		outcome.Err = fmt.Errorf("extract audio: %w", err)
		return outcome
	}
	tempLive = true
	s.logger.Debug("audio extracted", "video", filepath.Base(videoPath), "temp", filepath.Base(tempPath))

	transcript, err := s.transcriber.Transcribe(ctx, tempPath)
	if err != nil {
		s.discard(tempPath)
		outcome.Err = fmt.Errorf("transcribe: %w", err)
		return outcome
	}
	s.logger.Debug("transcript preview", "video", filepath.Base(videoPath), "text", preview(transcript))

	name, found := s.nameExtractor.FindFirstName(transcript)
	stem := FallbackAudioName
	if found {
		outcome.Name = name
		stem = naming.SanitizeFilename(name)
		s.logger.Info("speaker identified", "video", filepath.Base(videoPath), "name", name)
	} else {
		s.logger.Info("no speaker name found, using fallback", "video", filepath.Base(videoPath))
	}

	finalPath := filepath.Join(filepath.Dir(videoPath), stem+video.AudioExtensionMP3)
	outcome.OutputPath = finalPath

	if s.fileOps.Exists(finalPath) {
		s.discard(tempPath)
		outcome.Skipped = true
		return outcome
	}

	if err := s.fileOps.Rename(tempPath, finalPath); err != nil {
		s.discard(tempPath)
		outcome.Err = fmt.Errorf("finalize %s: %w", filepath.Base(finalPath), err)
		return outcome
	}
	tempLive = false

	if s.uploader != nil {
		uploadResult, err := s.uploader.UploadAudio(ctx, finalPath)
		if err != nil {
			outcome.Err = fmt.Errorf("upload %s: %w", filepath.Base(finalPath), err)
			return outcome
		}
		outcome.ShareURL = uploadResult.ShareableURL
	}

	return outcome
}

// discard removes a temporary artifact, logging rather than failing when the
// cleanup itself goes wrong.
func (s *Service) discard(tempPath string) {
	if err := s.fileOps.Remove(tempPath); err != nil {
		s.logger.Warn("could not remove temporary audio", "path", tempPath, "error", err)
	}
}

func preview(transcript string) string {
	runes := []rune(transcript)
	if len(runes) <= TranscriptPreviewChars {
		return transcript
	}
	return string(runes[:TranscriptPreviewChars]) + "..."
}
