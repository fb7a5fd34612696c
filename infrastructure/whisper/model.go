package whisper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DefaultModelName is the whisper model used when none is configured
const DefaultModelName = "base"

// modelBaseURL hosts the ggml-converted whisper.cpp model weights
const modelBaseURL = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main"

// ModelFilename returns the weight filename for a model name, e.g. "base" ->
// "ggml-base.bin".
func ModelFilename(name string) string {
	return "ggml-" + name + ".bin"
}

// EnsureModel makes sure the named model's weights exist in modelsDir,
// downloading them on first use. The directory is created if needed and reused
// across runs. Returns the path to the weight file.
func EnsureModel(ctx context.Context, modelsDir, name string) (string, error) {
	if name == "" {
		name = DefaultModelName
	}

	if err := os.MkdirAll(modelsDir, 0o755); err != nil {
		return "", fmt.Errorf("create models directory: %w", err)
	}

	modelPath := filepath.Join(modelsDir, ModelFilename(name))
	if _, err := os.Stat(modelPath); err == nil {
		return modelPath, nil
	}

	if err := downloadModel(ctx, name, modelPath); err != nil {
		return "", err
	}
	return modelPath, nil
}

// downloadModel fetches the weights to a temp file and renames into place so a
// partial download never masquerades as a cached model.
func downloadModel(ctx context.Context, name, modelPath string) error {
	url := fmt.Sprintf("%s/%s", modelBaseURL, ModelFilename(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build model download request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("download model %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download model %q: unexpected status %s", name, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(modelPath), ModelFilename(name)+".partial-")
	if err != nil {
		return fmt.Errorf("create model temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write model weights: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close model temp file: %w", err)
	}

	return os.Rename(tmp.Name(), modelPath)
}
