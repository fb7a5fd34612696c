package video

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultAudioBitrate is the default bitrate for extracted audio
const DefaultAudioBitrate = "128k"

// DefaultSampleRate is the default sample rate (Hz) for extracted audio
const DefaultSampleRate = 44100

// VideoExtension is the container extension discovered and processed
const VideoExtension = ".mp4"

// AudioExtensionMP3 is the extension of the extracted audio artifact
const AudioExtensionMP3 = ".mp3"

// AudioExtractionRequest represents a request to extract the audio track of a video
type AudioExtractionRequest struct {
	SourceVideoPath string
	Bitrate         string
	SampleRate      int
}

// NewAudioExtractionRequest creates a new AudioExtractionRequest with validation
func NewAudioExtractionRequest(sourcePath, bitrate string, sampleRate int) (*AudioExtractionRequest, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source video path is required")
	}

	if bitrate == "" {
		bitrate = DefaultAudioBitrate
	}
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}

	return &AudioExtractionRequest{
		SourceVideoPath: sourcePath,
		Bitrate:         bitrate,
		SampleRate:      sampleRate,
	}, nil
}

// Stem returns the source filename without directory or extension
func (r *AudioExtractionRequest) Stem() string {
	base := filepath.Base(r.SourceVideoPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TempArtifactPath returns the uniquely-named temporary audio path for this
// source, placed alongside the source video. Uniqueness per source file keeps
// concurrent artifacts of one batch from colliding.
func (r *AudioExtractionRequest) TempArtifactPath() string {
	return TempArtifactPathFor(r.SourceVideoPath)
}

// TempArtifactPathFor returns the temporary audio path the extraction of
// sourcePath writes to. Deterministic so callers can clean the artifact up
// even when extraction itself failed partway.
func TempArtifactPathFor(sourcePath string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(sourcePath), "temp_audio_"+stem+AudioExtensionMP3)
}
