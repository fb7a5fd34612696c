package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func testManager(t *testing.T) (*ConfigManager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	if err := Save(cfg, path); err != nil {
		t.Fatalf("save initial config: %v", err)
	}
	return NewConfigManager(cfg, path), path
}

func TestConfigManager_Stopwords(t *testing.T) {
	t.Run("add and list", func(t *testing.T) {
		mgr, path := testManager(t)

		if err := mgr.AddStopword("Welcome"); err != nil {
			t.Fatalf("add: %v", err)
		}

		words := mgr.ListStopwords()
		if len(words) != 1 || words[0] != "welcome" {
			t.Errorf("expected [welcome], got %v", words)
		}

		// Change must be persisted.
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("reload config: %v", err)
		}
		if len(loaded.Naming.ExtraStopwords) != 1 || loaded.Naming.ExtraStopwords[0] != "welcome" {
			t.Errorf("expected persisted stopword, got %v", loaded.Naming.ExtraStopwords)
		}
	})

	t.Run("duplicate add is rejected", func(t *testing.T) {
		mgr, _ := testManager(t)

		if err := mgr.AddStopword("campus"); err != nil {
			t.Fatalf("add: %v", err)
		}
		err := mgr.AddStopword("Campus")
		if !errors.Is(err, ErrDuplicateEntry) {
			t.Errorf("expected ErrDuplicateEntry, got %v", err)
		}
	})

	t.Run("remove", func(t *testing.T) {
		mgr, _ := testManager(t)

		if err := mgr.AddStopword("campus"); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := mgr.RemoveStopword("campus"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if words := mgr.ListStopwords(); len(words) != 0 {
			t.Errorf("expected empty list, got %v", words)
		}
	})

	t.Run("remove unknown word", func(t *testing.T) {
		mgr, _ := testManager(t)

		err := mgr.RemoveStopword("nope")
		if !errors.Is(err, ErrStopwordNotFound) {
			t.Errorf("expected ErrStopwordNotFound, got %v", err)
		}
	})

	t.Run("empty word is rejected", func(t *testing.T) {
		mgr, _ := testManager(t)

		if err := mgr.AddStopword("   "); err == nil {
			t.Error("expected error for blank stopword")
		}
	})
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Paths.SourceDirectory = "/recordings"
	cfg.Whisper.Model = "small"
	cfg.Naming.ExtraStopwords = []string{"welcome"}

	if err := Save(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Paths.SourceDirectory != "/recordings" {
		t.Errorf("source directory not preserved: %s", loaded.Paths.SourceDirectory)
	}
	if loaded.Whisper.Model != "small" {
		t.Errorf("model not preserved: %s", loaded.Whisper.Model)
	}
	if loaded.Audio.Bitrate != "128k" {
		t.Errorf("bitrate not preserved: %s", loaded.Audio.Bitrate)
	}
	if len(loaded.Naming.ExtraStopwords) != 1 {
		t.Errorf("stopwords not preserved: %v", loaded.Naming.ExtraStopwords)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
