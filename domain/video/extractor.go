package video

import "context"

// AudioExtractor defines the interface for audio extraction operations
// This is a port that can be implemented by different infrastructure adapters
type AudioExtractor interface {
	// Extract extracts the audio track according to the request and saves to outputPath
	Extract(ctx context.Context, req *AudioExtractionRequest, outputPath string) error
}

// FileChecker defines the interface for checking file existence
// This is used to validate sources and to detect naming collisions
type FileChecker interface {
	// Exists returns true if the file exists
	Exists(path string) bool
}

// Prober defines the interface for preflight validation of video inputs
type Prober interface {
	// Probe returns an error if the file cannot be opened as a video
	Probe(ctx context.Context, videoPath string) error
}
