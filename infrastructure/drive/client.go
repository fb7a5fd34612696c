package drive

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	domdist "speakertag/domain/distribution"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// DriveService defines the interface for Google Drive API operations
// This allows mocking the Google Drive API in tests
type DriveService interface {
	ListFiles(ctx context.Context, query string, fields string, orderBy string) ([]*drive.File, error)
	CreateFile(ctx context.Context, file *drive.File, media io.Reader) (*drive.File, error)
	CreatePermission(ctx context.Context, fileID string, permission *drive.Permission) error
}

// GoogleDriveService is the production implementation using the Google Drive API
type GoogleDriveService struct {
	service *drive.Service
}

// ListFiles lists files matching the query
func (s *GoogleDriveService) ListFiles(ctx context.Context, query string, fields string, orderBy string) ([]*drive.File, error) {
	r, err := s.service.Files.List().
		Q(query).
		Fields(googleapi.Field("files(" + fields + ")")).
		OrderBy(orderBy).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return r.Files, nil
}

// CreateFile uploads media into a new Drive file
func (s *GoogleDriveService) CreateFile(ctx context.Context, file *drive.File, media io.Reader) (*drive.File, error) {
	return s.service.Files.Create(file).
		Media(media).
		Fields("id, name, size").
		Context(ctx).
		Do()
}

// CreatePermission adds a permission to a file
func (s *GoogleDriveService) CreatePermission(ctx context.Context, fileID string, permission *drive.Permission) error {
	_, err := s.service.Permissions.Create(fileID, permission).Context(ctx).Do()
	return err
}

// Client implements distribution.DriveClient using Google Drive API
type Client struct {
	driveService DriveService
}

// ClientOption is a functional option for configuring Client
type ClientOption func(*Client)

// WithDriveService sets a custom drive service (for testing)
func WithDriveService(svc DriveService) ClientOption {
	return func(c *Client) {
		c.driveService = svc
	}
}

// ListFiles implements distribution.DriveClient
func (c *Client) ListFiles(ctx context.Context, folderID string) ([]domdist.FileInfo, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	files, err := c.driveService.ListFiles(ctx, query, "id, name, mimeType, size, createdTime", "name")
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var result []domdist.FileInfo
	for _, f := range files {
		result = append(result, domdist.FileInfo{
			ID:          f.Id,
			Name:        f.Name,
			MimeType:    f.MimeType,
			Size:        f.Size,
			CreatedTime: parseTime(f.CreatedTime),
		})
	}
	return result, nil
}

// FindFileByName implements distribution.DriveClient
func (c *Client) FindFileByName(ctx context.Context, folderID, fileName string) (*domdist.FileInfo, error) {
	query := fmt.Sprintf("'%s' in parents and name = '%s' and trashed = false", folderID, escapeQueryValue(fileName))
	files, err := c.driveService.ListFiles(ctx, query, "id, name, mimeType, size, createdTime", "name")
	if err != nil {
		return nil, fmt.Errorf("failed to find file %s: %w", fileName, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	f := files[0]
	return &domdist.FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		CreatedTime: parseTime(f.CreatedTime),
	}, nil
}

// Upload implements distribution.DriveClient
func (c *Client) Upload(ctx context.Context, req domdist.UploadRequest) (*domdist.UploadResult, error) {
	f, err := os.Open(req.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", req.LocalPath, err)
	}
	defer f.Close()

	meta := &drive.File{
		Name:     req.FileName,
		MimeType: req.MimeType,
		Parents:  []string{req.FolderID},
	}

	created, err := c.driveService.CreateFile(ctx, meta, f)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", req.FileName, err)
	}

	return &domdist.UploadResult{
		FileID:       created.Id,
		FileName:     created.Name,
		ShareableURL: domdist.ShareableURL(created.Id),
		Size:         created.Size,
	}, nil
}

// SetPublicSharing implements distribution.DriveClient
func (c *Client) SetPublicSharing(ctx context.Context, fileID string) error {
	permission := &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}
	if err := c.driveService.CreatePermission(ctx, fileID, permission); err != nil {
		return fmt.Errorf("failed to set sharing on %s: %w", fileID, err)
	}
	return nil
}

// UploadAndShare implements distribution.DriveClient
func (c *Client) UploadAndShare(ctx context.Context, req domdist.UploadRequest) (*domdist.UploadResult, error) {
	result, err := c.Upload(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.SetPublicSharing(ctx, result.FileID); err != nil {
		return nil, err
	}
	return result, nil
}

// escapeQueryValue escapes single quotes for Drive query strings
func escapeQueryValue(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// parseTime parses a Google Drive timestamp string
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Ensure Client implements distribution.DriveClient
var _ domdist.DriveClient = (*Client)(nil)
