package asset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// File is an in-memory binary asset awaiting upload
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// allowedImageTypes is the asset host's image allow-list. The browser
// dashboard checked the file's declared type against the same set.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/jpg":  true,
	"image/heic": true,
	"image/heif": true,
}

// AllowedImageType returns true if the content type is an accepted image format
func AllowedImageType(contentType string) bool {
	return allowedImageTypes[contentType]
}

// LoadFile reads a file from disk and sniffs its content type. There is no
// declared MIME type outside a browser, so detection stands in for it.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file is empty: %s", path)
	}

	detected := mimetype.Detect(data)

	return &File{
		Name:        filepath.Base(path),
		ContentType: detected.String(),
		Data:        data,
	}, nil
}
