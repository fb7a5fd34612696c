//go:build !probe

package probe

import (
	"context"

	"speakertag/domain/video"
)

// Prober is a stub implementation used when the binary is built without
// the probe tag. It accepts every input so the pipeline proceeds straight
// to extraction.
type Prober struct{}

// NewProber creates a new stub prober
func NewProber() *Prober {
	return &Prober{}
}

// Probe implements video.Prober as a no-op
func (p *Prober) Probe(ctx context.Context, videoPath string) error {
	return ctx.Err()
}

// Ensure Prober implements video.Prober
var _ video.Prober = (*Prober)(nil)
