package distribution

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"speakertag/domain/distribution"
)

// mockDriveClient implements distribution.DriveClient for testing
type mockDriveClient struct {
	existing map[string]*distribution.FileInfo // keyed by fileName
	uploaded []distribution.UploadRequest
}

func newMockDriveClient() *mockDriveClient {
	return &mockDriveClient{existing: make(map[string]*distribution.FileInfo)}
}

func (m *mockDriveClient) ListFiles(ctx context.Context, folderID string) ([]distribution.FileInfo, error) {
	var result []distribution.FileInfo
	for _, f := range m.existing {
		result = append(result, *f)
	}
	return result, nil
}

func (m *mockDriveClient) FindFileByName(ctx context.Context, folderID, fileName string) (*distribution.FileInfo, error) {
	return m.existing[fileName], nil
}

func (m *mockDriveClient) Upload(ctx context.Context, req distribution.UploadRequest) (*distribution.UploadResult, error) {
	m.uploaded = append(m.uploaded, req)
	return &distribution.UploadResult{
		FileID:       "new-id",
		FileName:     req.FileName,
		ShareableURL: distribution.ShareableURL("new-id"),
	}, nil
}

func (m *mockDriveClient) SetPublicSharing(ctx context.Context, fileID string) error {
	return nil
}

func (m *mockDriveClient) UploadAndShare(ctx context.Context, req distribution.UploadRequest) (*distribution.UploadResult, error) {
	return m.Upload(ctx, req)
}

func writeTempAudio(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("mp3"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestUploadAudio(t *testing.T) {
	t.Run("uploads new file with mp3 mime type", func(t *testing.T) {
		client := newMockDriveClient()
		service := NewUploadService(client, "folder-1")
		path := writeTempAudio(t, "Sarah.mp3")

		result, err := service.UploadAudio(context.Background(), path)
		if err != nil {
			t.Fatalf("UploadAudio() error = %v", err)
		}

		if len(client.uploaded) != 1 {
			t.Fatalf("uploaded %d files, want 1", len(client.uploaded))
		}
		req := client.uploaded[0]
		if req.FileName != "Sarah.mp3" || req.MimeType != distribution.MimeTypeMP3 || req.FolderID != "folder-1" {
			t.Errorf("upload request = %+v", req)
		}
		if result.ShareableURL == "" {
			t.Error("missing shareable URL")
		}
	})

	t.Run("reuses existing Drive file instead of replacing it", func(t *testing.T) {
		client := newMockDriveClient()
		client.existing["Sarah.mp3"] = &distribution.FileInfo{ID: "old-id", Name: "Sarah.mp3", Size: 99}
		service := NewUploadService(client, "folder-1")
		path := writeTempAudio(t, "Sarah.mp3")

		result, err := service.UploadAudio(context.Background(), path)
		if err != nil {
			t.Fatalf("UploadAudio() error = %v", err)
		}

		if len(client.uploaded) != 0 {
			t.Errorf("existing file was re-uploaded: %+v", client.uploaded)
		}
		if result.FileID != "old-id" {
			t.Errorf("result file ID = %q, want old-id", result.FileID)
		}
	})

	t.Run("fails for missing local file", func(t *testing.T) {
		service := NewUploadService(newMockDriveClient(), "folder-1")

		if _, err := service.UploadAudio(context.Background(), filepath.Join(t.TempDir(), "nope.mp3")); err == nil {
			t.Error("expected error for missing local file")
		}
	})
}
