package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"

	"speakertag/domain/video"
)

// Strategy identifies which execution path provides the decoder
type Strategy string

const (
	// StrategySystem means ffmpeg was found on PATH
	StrategySystem Strategy = "system"

	// StrategyBundled means the configured fallback binary is used
	StrategyBundled Strategy = "bundled"
)

// Locator selects an ffmpeg binary by preflight capability check: the system
// installation is preferred, with a bundled binary as fallback. Extraction
// behavior is identical regardless of which strategy is selected.
type Locator struct {
	bundledPath string
	runner      CommandRunner
}

// LocatorOption is a functional option for configuring Locator
type LocatorOption func(*Locator)

// WithBundledPath sets the path of the fallback ffmpeg binary
func WithBundledPath(path string) LocatorOption {
	return func(l *Locator) {
		l.bundledPath = path
	}
}

// WithLocatorCommandRunner sets a custom command runner (for testing)
func WithLocatorCommandRunner(runner CommandRunner) LocatorOption {
	return func(l *Locator) {
		l.runner = runner
	}
}

// NewLocator creates a new decoder locator
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		runner: &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Resolve returns the path of a working ffmpeg binary and the strategy that
// produced it. Returns video.ErrToolUnavailable when neither strategy works.
func (l *Locator) Resolve(ctx context.Context) (string, Strategy, error) {
	if path, err := exec.LookPath("ffmpeg"); err == nil {
		if l.verify(ctx, path) == nil {
			return path, StrategySystem, nil
		}
	}

	if l.bundledPath != "" {
		if err := l.verify(ctx, l.bundledPath); err == nil {
			return l.bundledPath, StrategyBundled, nil
		}
	}

	return "", "", fmt.Errorf("%w: ffmpeg not on PATH and no bundled binary configured", video.ErrToolUnavailable)
}

// verify checks that the binary at path runs and reports a version
func (l *Locator) verify(ctx context.Context, path string) error {
	if _, err := l.runner.Output(ctx, path, "-version"); err != nil {
		return fmt.Errorf("ffmpeg not executable at %s: %w", path, err)
	}
	return nil
}
