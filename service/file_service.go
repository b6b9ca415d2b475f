package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tranhn/docchat-be/utils"
)

// FileService persists uploaded files under a fixed local directory.
// Files are never deleted by this service.
type FileService struct {
	uploadDir string
}

func NewFileService(uploadDir string) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}
	return &FileService{
		uploadDir: uploadDir,
	}, nil
}

// SaveUpload writes the uploaded content under the upload directory using
// a sanitized version of the client-supplied filename and returns the
// destination path.
func (s *FileService) SaveUpload(src io.Reader, filename string) (string, error) {
	destPath := filepath.Join(s.uploadDir, utils.SanitizeFilename(filename))

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy file: %v", err)
	}

	return destPath, nil
}
