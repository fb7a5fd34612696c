package video

import (
	"context"
	"fmt"

	"speakertag/domain/video"
)

// ExtractResult contains the result of an audio extraction operation
type ExtractResult struct {
	OutputPath string
}

// ExtractService coordinates audio extraction operations
type ExtractService struct {
	extractor   video.AudioExtractor
	fileChecker video.FileChecker
	bitrate     string
	sampleRate  int
}

// NewExtractService creates a new ExtractService
func NewExtractService(extractor video.AudioExtractor, fileChecker video.FileChecker, bitrate string, sampleRate int) *ExtractService {
	if bitrate == "" {
		bitrate = video.DefaultAudioBitrate
	}
	if sampleRate == 0 {
		sampleRate = video.DefaultSampleRate
	}
	return &ExtractService{
		extractor:   extractor,
		fileChecker: fileChecker,
		bitrate:     bitrate,
		sampleRate:  sampleRate,
	}
}

// ExtractInput represents the input for an audio extraction operation
type ExtractInput struct {
	SourcePath string
	OutputPath string // Optional, defaults to the temp artifact path next to the source
	Bitrate    string // Optional, uses service default if empty
	SampleRate int    // Optional, uses service default if zero
}

// Extract extracts the audio track from a video according to the input parameters
func (s *ExtractService) Extract(ctx context.Context, input ExtractInput) (*ExtractResult, error) {
	// Verify source file exists
	if !s.fileChecker.Exists(input.SourcePath) {
		return nil, fmt.Errorf("source video does not exist: %s", input.SourcePath)
	}

	// Use service defaults where the input leaves parameters unset
	bitrate := input.Bitrate
	if bitrate == "" {
		bitrate = s.bitrate
	}
	sampleRate := input.SampleRate
	if sampleRate == 0 {
		sampleRate = s.sampleRate
	}

	// Create extraction request
	req, err := video.NewAudioExtractionRequest(input.SourcePath, bitrate, sampleRate)
	if err != nil {
		return nil, err
	}

	// Perform extraction
	outputPath := input.OutputPath
	if outputPath == "" {
		outputPath = req.TempArtifactPath()
	}
	if err := s.extractor.Extract(ctx, req, outputPath); err != nil {
		return nil, err
	}

	return &ExtractResult{OutputPath: outputPath}, nil
}
