package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	appdist "speakertag/application/distribution"
	"speakertag/domain/distribution"
	"speakertag/domain/video"
	"speakertag/infrastructure/drive"
	"speakertag/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var uploadAudioPath string

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload an audio file to Google Drive with public sharing",
	Long: `Upload a finished audio file to Google Drive and set public sharing.

By default the most recently created .mp3 in the source directory is
uploaded. The file is placed in the configured Drive folder and made
accessible to anyone with the link.

Example:
  speakertag upload
  speakertag upload --audio ./recordings/Sarah.mp3`,
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVar(&uploadAudioPath, "audio", "", "Path to audio file (defaults to newest in source directory)")
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	audioPath := uploadAudioPath
	if audioPath == "" {
		newest, err := filesystem.NewFinder().FindNewestFile(cfg.Paths.SourceDirectory, video.AudioExtensionMP3)
		if err != nil {
			return fmt.Errorf("no audio file specified and could not find latest: %w", err)
		}
		audioPath = newest
	}

	ctx := cmd.Context()
	client, err := drive.NewClientWithOAuth(ctx, cfg.Google.CredentialsFile, cfg.Google.TokenFile)
	if err != nil {
		return fmt.Errorf("failed to create Google Drive client: %w", err)
	}

	return RunUploadWithDependencies(ctx, client, cfg.Google.AudioFolderID, audioPath, os.Stdout)
}

// RunUploadWithDependencies runs the upload command with injected dependencies (for testing)
func RunUploadWithDependencies(
	ctx context.Context,
	driveClient distribution.DriveClient,
	folderID string,
	audioPath string,
	output io.Writer,
) error {
	service := appdist.NewUploadService(driveClient, folderID)

	fmt.Fprintf(output, "Uploading audio: %s...\n", filepath.Base(audioPath))
	result, err := service.UploadAudio(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("audio upload failed: %w", err)
	}

	fmt.Fprintf(output, "Audio uploaded successfully!\n")
	fmt.Fprintf(output, "  File ID: %s\n", result.FileID)
	fmt.Fprintf(output, "  Shareable URL: %s\n", result.ShareableURL)
	return nil
}
