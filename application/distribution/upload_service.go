package distribution

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"speakertag/domain/distribution"
)

// UploadService handles publishing finalized audio files to Google Drive
type UploadService struct {
	driveClient distribution.DriveClient
	folderID    string
}

// NewUploadService creates a new upload service
func NewUploadService(client distribution.DriveClient, folderID string) *UploadService {
	return &UploadService{
		driveClient: client,
		folderID:    folderID,
	}
}

// UploadAudio uploads an audio file to Google Drive and sets public sharing.
// An existing Drive file with the same name is left untouched and its link is
// returned instead, mirroring the local collision-skip rule.
func (s *UploadService) UploadAudio(ctx context.Context, audioPath string) (*distribution.UploadResult, error) {
	// Verify file exists
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", audioPath)
	}

	fileName := filepath.Base(audioPath)

	existing, err := s.driveClient.FindFileByName(ctx, s.folderID, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing file: %w", err)
	}
	if existing != nil {
		return &distribution.UploadResult{
			FileID:       existing.ID,
			FileName:     existing.Name,
			ShareableURL: distribution.ShareableURL(existing.ID),
			Size:         existing.Size,
		}, nil
	}

	req := distribution.UploadRequest{
		LocalPath: audioPath,
		FileName:  fileName,
		FolderID:  s.folderID,
		MimeType:  distribution.MimeTypeMP3,
	}

	result, err := s.driveClient.UploadAndShare(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload and share %s: %w", fileName, err)
	}

	return result, nil
}
