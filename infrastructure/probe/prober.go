//go:build probe

package probe

import (
	"context"
	"fmt"

	"speakertag/domain/video"

	"gocv.io/x/gocv"
)

// Prober implements video.Prober using GoCV. It opens the container and reads
// one frame, catching corrupt or zero-length recordings before ffmpeg spends
// time on them.
type Prober struct{}

// NewProber creates a new GoCV-backed prober
func NewProber() *Prober {
	return &Prober{}
}

// Probe implements video.Prober
func (p *Prober) Probe(ctx context.Context, videoPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	capture, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return fmt.Errorf("open video %s: %w", videoPath, err)
	}
	defer capture.Close()

	if !capture.IsOpened() {
		return fmt.Errorf("video %s could not be opened", videoPath)
	}

	frame := gocv.NewMat()
	defer frame.Close()
	if ok := capture.Read(&frame); !ok || frame.Empty() {
		return fmt.Errorf("video %s has no readable frames", videoPath)
	}

	return nil
}

// Ensure Prober implements video.Prober
var _ video.Prober = (*Prober)(nil)
