package ffmpeg

import (
	"context"
	"errors"
	"testing"

	"speakertag/domain/video"
)

// mockRunner records invocations and can simulate failures
type mockRunner struct {
	runCalls    [][]string
	outputCalls [][]string
	runErr      error
	outputErr   error
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) error {
	m.runCalls = append(m.runCalls, append([]string{name}, args...))
	return m.runErr
}

func (m *mockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.outputCalls = append(m.outputCalls, append([]string{name}, args...))
	if m.outputErr != nil {
		return nil, m.outputErr
	}
	return []byte("ffmpeg version 6.0"), nil
}

func TestExtractor_Extract(t *testing.T) {
	t.Run("builds the expected ffmpeg invocation", func(t *testing.T) {
		runner := &mockRunner{}
		e := NewExtractor(WithExtractorCommandRunner(runner))

		req, err := video.NewAudioExtractionRequest("/videos/intro.mp4", "128k", 44100)
		if err != nil {
			t.Fatalf("unexpected error creating request: %v", err)
		}

		if err := e.Extract(context.Background(), req, "/videos/temp_audio_intro.mp3"); err != nil {
			t.Fatalf("unexpected extract error: %v", err)
		}

		if len(runner.runCalls) != 1 {
			t.Fatalf("expected 1 run call, got %d", len(runner.runCalls))
		}

		want := []string{
			"ffmpeg",
			"-i", "/videos/intro.mp4",
			"-vn",
			"-acodec", "libmp3lame",
			"-ab", "128k",
			"-ar", "44100",
			"-y",
			"/videos/temp_audio_intro.mp3",
		}
		got := runner.runCalls[0]
		if len(got) != len(want) {
			t.Fatalf("expected %d args, got %d: %v", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("arg %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("wraps decoder failure as ExtractionError", func(t *testing.T) {
		runner := &mockRunner{runErr: errors.New("exit status 1")}
		e := NewExtractor(WithExtractorCommandRunner(runner))

		req, _ := video.NewAudioExtractionRequest("/videos/bad.mp4", "", 0)
		err := e.Extract(context.Background(), req, "/videos/out.mp3")
		if err == nil {
			t.Fatal("expected an error")
		}

		var extractErr *video.ExtractionError
		if !errors.As(err, &extractErr) {
			t.Fatalf("expected ExtractionError, got %T", err)
		}
		if extractErr.SourcePath != "/videos/bad.mp4" {
			t.Errorf("expected source path in error, got %s", extractErr.SourcePath)
		}
	})

	t.Run("custom ffmpeg path is used", func(t *testing.T) {
		runner := &mockRunner{}
		e := NewExtractor(
			WithExtractorCommandRunner(runner),
			WithExtractorFFmpegPath("/opt/tools/ffmpeg"),
		)

		req, _ := video.NewAudioExtractionRequest("/videos/a.mp4", "128k", 44100)
		if err := e.Extract(context.Background(), req, "/videos/out.mp3"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if runner.runCalls[0][0] != "/opt/tools/ffmpeg" {
			t.Errorf("expected custom binary path, got %s", runner.runCalls[0][0])
		}
	})
}

func TestAudioExtractionRequest_Defaults(t *testing.T) {
	t.Run("empty bitrate and sample rate use defaults", func(t *testing.T) {
		req, err := video.NewAudioExtractionRequest("/videos/a.mp4", "", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Bitrate != video.DefaultAudioBitrate {
			t.Errorf("expected default bitrate %s, got %s", video.DefaultAudioBitrate, req.Bitrate)
		}
		if req.SampleRate != video.DefaultSampleRate {
			t.Errorf("expected default sample rate %d, got %d", video.DefaultSampleRate, req.SampleRate)
		}
	})

	t.Run("empty source path is rejected", func(t *testing.T) {
		if _, err := video.NewAudioExtractionRequest("", "128k", 44100); err == nil {
			t.Error("expected error for empty source path")
		}
	})

	t.Run("temp artifact is unique per source stem", func(t *testing.T) {
		req, _ := video.NewAudioExtractionRequest("/videos/week1 intro.mp4", "", 0)
		if req.TempArtifactPath() != "/videos/temp_audio_week1 intro.mp3" {
			t.Errorf("unexpected temp path: %s", req.TempArtifactPath())
		}
	})
}

func TestLocator_Resolve(t *testing.T) {
	t.Run("bundled fallback when PATH lookup fails", func(t *testing.T) {
		// In this test environment there may or may not be a system ffmpeg,
		// so exercise only the bundled verification path directly.
		runner := &mockRunner{}
		l := NewLocator(
			WithBundledPath("/opt/bundled/ffmpeg"),
			WithLocatorCommandRunner(runner),
		)
		if err := l.verify(context.Background(), "/opt/bundled/ffmpeg"); err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}
		if len(runner.outputCalls) != 1 || runner.outputCalls[0][1] != "-version" {
			t.Errorf("expected a -version preflight, got %v", runner.outputCalls)
		}
	})

	t.Run("verify failure propagates", func(t *testing.T) {
		runner := &mockRunner{outputErr: errors.New("no such file")}
		l := NewLocator(WithLocatorCommandRunner(runner))
		if err := l.verify(context.Background(), "/missing/ffmpeg"); err == nil {
			t.Error("expected verify to fail")
		}
	})
}
