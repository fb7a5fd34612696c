package whisper

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestModelFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"base", "ggml-base.bin"},
		{"base.en", "ggml-base.en.bin"},
		{"small", "ggml-small.bin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ModelFilename(tc.name); got != tc.want {
				t.Errorf("ModelFilename(%q) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestEnsureModel_CachedWeights(t *testing.T) {
	t.Run("existing weights are reused without download", func(t *testing.T) {
		dir := t.TempDir()
		cached := filepath.Join(dir, "ggml-base.bin")
		if err := os.WriteFile(cached, []byte("weights"), 0o644); err != nil {
			t.Fatalf("seed cached model: %v", err)
		}

		path, err := EnsureModel(context.Background(), dir, "base")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != cached {
			t.Errorf("expected cached path %s, got %s", cached, path)
		}
	})

	t.Run("models directory is created on demand", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "models")
		cached := filepath.Join(dir, "ggml-base.bin")

		// Pre-create so EnsureModel does not reach for the network.
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(cached, []byte("weights"), 0o644); err != nil {
			t.Fatalf("seed cached model: %v", err)
		}

		if _, err := EnsureModel(context.Background(), dir, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestExposeDecoderOnPath(t *testing.T) {
	t.Run("plain PATH lookup is a no-op", func(t *testing.T) {
		before := os.Getenv("PATH")
		restore, err := exposeDecoderOnPath(t.TempDir(), "ffmpeg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		restore()
		if os.Getenv("PATH") != before {
			t.Error("PATH changed for the no-op case")
		}
	})

	t.Run("explicit binary is linked and PATH restored", func(t *testing.T) {
		dir := t.TempDir()
		bin := filepath.Join(t.TempDir(), "ffmpeg-custom")
		if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("seed binary: %v", err)
		}

		before := os.Getenv("PATH")
		restore, err := exposeDecoderOnPath(dir, bin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := os.Lstat(filepath.Join(dir, "ffmpeg")); err != nil {
			t.Errorf("expected linked decoder in scoped dir: %v", err)
		}
		if os.Getenv("PATH") == before {
			t.Error("expected PATH to be prefixed while scope is held")
		}

		restore()
		if os.Getenv("PATH") != before {
			t.Error("expected PATH to be restored on release")
		}
	})
}
