package whisper

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"speakertag/domain/transcription"
	"speakertag/infrastructure/ffmpeg"

	whisperlib "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// DefaultLanguage is the language hint passed to the model
const DefaultLanguage = "en"

// modelSampleRate is the sample rate (Hz) whisper.cpp expects for input audio
const modelSampleRate = 16000

// Transcriber implements transcription.Transcriber using the whisper.cpp Go
// bindings. The model is loaded lazily on first use and reused for every file
// in a batch. The transcription backend performs its own audio decoding, so
// Transcribe decodes the MP3 to the model's PCM format with the same ffmpeg
// binary used for extraction, inside a scoped temporary directory that is
// always released.
type Transcriber struct {
	modelPath  string
	language   string
	ffmpegPath string
	runner     ffmpeg.CommandRunner

	model whisperlib.Model
}

// TranscriberOption is a functional option for configuring Transcriber
type TranscriberOption func(*Transcriber)

// WithLanguage sets the language hint for the model (default "en")
func WithLanguage(lang string) TranscriberOption {
	return func(t *Transcriber) {
		t.language = lang
	}
}

// WithFFmpegPath sets the decoder binary used to prepare model input
func WithFFmpegPath(path string) TranscriberOption {
	return func(t *Transcriber) {
		t.ffmpegPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner ffmpeg.CommandRunner) TranscriberOption {
	return func(t *Transcriber) {
		t.runner = runner
	}
}

// NewTranscriber creates a Transcriber for the model weights at modelPath.
// The weights are not loaded until the first Transcribe call, so construction
// never fails; load failures surface as TranscriptionError per file.
func NewTranscriber(modelPath string, opts ...TranscriberOption) *Transcriber {
	t := &Transcriber{
		modelPath:  modelPath,
		language:   DefaultLanguage,
		ffmpegPath: "ffmpeg",
		runner:     &ffmpeg.ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Transcribe implements transcription.Transcriber
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := t.ensureModel(); err != nil {
		return "", &transcription.TranscriptionError{AudioPath: audioPath, Err: err}
	}

	samples, err := t.decodeToSamples(ctx, audioPath)
	if err != nil {
		return "", &transcription.TranscriptionError{AudioPath: audioPath, Err: err}
	}

	text, err := t.process(samples)
	if err != nil {
		return "", &transcription.TranscriptionError{AudioPath: audioPath, Err: err}
	}

	return text, nil
}

// Close releases the model if it was loaded
func (t *Transcriber) Close() error {
	if t.model != nil {
		return t.model.Close()
	}
	return nil
}

// ensureModel loads the whisper model once
func (t *Transcriber) ensureModel() error {
	if t.model != nil {
		return nil
	}
	model, err := whisperlib.New(t.modelPath)
	if err != nil {
		return fmt.Errorf("load model %q: %w", t.modelPath, err)
	}
	t.model = model
	return nil
}

// decodeToSamples converts the audio file to the mono 16 kHz float32 PCM the
// model expects. The intermediate WAV lives in a scoped temporary directory,
// and the decoder is exposed on PATH for the duration of the decode when it is
// not already there; both are released on every exit path.
func (t *Transcriber) decodeToSamples(ctx context.Context, audioPath string) ([]float32, error) {
	tempDir, err := os.MkdirTemp("", "speakertag-decode-")
	if err != nil {
		return nil, fmt.Errorf("create decode workspace: %w", err)
	}
	defer os.RemoveAll(tempDir)

	restore, err := exposeDecoderOnPath(tempDir, t.ffmpegPath)
	if err != nil {
		return nil, err
	}
	defer restore()

	wavPath := filepath.Join(tempDir, "audio.wav")
	args := []string{
		"-i", audioPath,
		"-ar", fmt.Sprintf("%d", modelSampleRate),
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}
	if err := t.runner.Run(ctx, t.ffmpegPath, args...); err != nil {
		return nil, fmt.Errorf("decode %s for model input: %w", filepath.Base(audioPath), err)
	}

	return readWAVSamples(wavPath)
}

// process runs inference over the samples and joins the recognized segments
func (t *Transcriber) process(samples []float32) (string, error) {
	mctx, err := t.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("create model context: %w", err)
	}
	if err := mctx.SetLanguage(t.language); err != nil {
		return "", fmt.Errorf("set language %q: %w", t.language, err)
	}

	if err := mctx.Process(samples, nil, nil, nil); err != nil {
		return "", fmt.Errorf("model inference: %w", err)
	}

	var segments []string
	for {
		seg, err := mctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read segment: %w", err)
		}
		segments = append(segments, seg.Text)
	}

	return strings.TrimSpace(strings.Join(segments, " ")), nil
}

// exposeDecoderOnPath links the decoder binary into dir and prepends dir to
// PATH so anything resolving "ffmpeg" during the decode finds the same binary
// extraction used. The returned release function restores the previous PATH.
// When the binary is already named on PATH this is a no-op.
func exposeDecoderOnPath(dir, ffmpegPath string) (func(), error) {
	if ffmpegPath == "ffmpeg" {
		return func() {}, nil
	}

	link := filepath.Join(dir, "ffmpeg")
	if err := os.Symlink(ffmpegPath, link); err != nil {
		// Symlinks can fail across filesystems or on restricted mounts; fall
		// back to a copy.
		if copyErr := copyFile(ffmpegPath, link); copyErr != nil {
			return nil, fmt.Errorf("expose decoder in %s: %w", dir, copyErr)
		}
	}

	oldPath := os.Getenv("PATH")
	os.Setenv("PATH", dir+string(os.PathListSeparator)+oldPath)
	return func() { os.Setenv("PATH", oldPath) }, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// Ensure Transcriber implements transcription.Transcriber
var _ transcription.Transcriber = (*Transcriber)(nil)
