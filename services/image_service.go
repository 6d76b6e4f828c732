package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// ImageStore keeps uploaded images in one flat directory served at /uploads.
// Stored names are bare file names, never paths.
type ImageStore struct {
	Dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{Dir: dir}
}

func (s *ImageStore) ensureDir() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("mkdir uploads dir: %w", err)
	}
	return nil
}

// SaveUpload copies a multipart image to disk under a fresh uuid name.
func (s *ImageStore) SaveUpload(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExt[ext] || fh.Size > maxImageSize {
		return "", ErrInvalidImage
	}
	if err := s.ensureDir(); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		s.Remove(filename)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		s.Remove(filename)
		return "", fmt.Errorf("close file: %w", err)
	}
	return filename, nil
}

// SaveBase64 stores a data URI (e.g. a signature pad export).
func (s *ImageStore) SaveBase64(b64 string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	if len(data) == 0 || len(data) > maxImageSize {
		return "", ErrInvalidImage
	}

	ext := ".png"
	switch http.DetectContentType(data) {
	case "image/png":
	case "image/jpeg":
		ext = ".jpg"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	default:
		return "", ErrInvalidImage
	}

	if err := s.ensureDir(); err != nil {
		return "", err
	}
	filename := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.Dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return filename, nil
}

// Remove deletes stored files, best effort. Missing files are ignored.
func (s *ImageStore) Remove(names ...string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		path := filepath.Join(s.Dir, filepath.Base(name))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️ could not remove upload %s: %v", path, err)
		}
	}
}
