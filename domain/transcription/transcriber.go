package transcription

import (
	"context"
	"fmt"
)

// Transcriber defines the interface for speech-to-text operations
// This is a port that can be implemented by different infrastructure adapters
type Transcriber interface {
	// Transcribe returns the full recognized text of the audio file
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// TranscriptionError indicates model load, audio decode, or inference failure
type TranscriptionError struct {
	AudioPath string
	Err       error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed for %s: %v", e.AudioPath, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}
