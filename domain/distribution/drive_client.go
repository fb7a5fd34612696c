package distribution

import (
	"context"
	"time"
)

// DriveClient defines the interface for Google Drive operations
// This is a port that can be implemented by different infrastructure adapters
type DriveClient interface {
	// ListFiles lists files in a folder
	ListFiles(ctx context.Context, folderID string) ([]FileInfo, error)

	// FindFileByName returns the file with the given name in a folder, or nil
	FindFileByName(ctx context.Context, folderID, fileName string) (*FileInfo, error)

	// Upload uploads a local file into a folder
	Upload(ctx context.Context, req UploadRequest) (*UploadResult, error)

	// SetPublicSharing grants "anyone with the link" read access
	SetPublicSharing(ctx context.Context, fileID string) error

	// UploadAndShare uploads a file and sets public sharing in one step
	UploadAndShare(ctx context.Context, req UploadRequest) (*UploadResult, error)
}

// FileInfo represents metadata about a file in Google Drive
type FileInfo struct {
	ID          string
	Name        string
	MimeType    string
	Size        int64
	CreatedTime time.Time
}
