package video

import (
	"errors"
	"fmt"
)

// ErrToolUnavailable is returned when neither execution strategy for the media
// decoder works: nothing on PATH and no usable bundled binary.
var ErrToolUnavailable = errors.New("no usable media decoder found")

// ExtractionError indicates the external decoder failed for one source file
type ExtractionError struct {
	SourcePath string
	Err        error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("audio extraction failed for %s: %v", e.SourcePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
