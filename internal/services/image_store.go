package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"logo-gallery-api/internal/apperrors"
	"logo-gallery-api/internal/config"
	"logo-gallery-api/internal/utils"
)

// maxDownloadBytes caps a single image download so a hostile or
// misconfigured remote cannot exhaust memory
const maxDownloadBytes = 10 * 1024 * 1024

// ProvisionalFile is a downloaded image stored under a temporary name,
// pending sequence assignment
type ProvisionalFile struct {
	Filename   string
	StoredPath string
}

// ImageStore manages image bytes inside the content directory: remote
// download, provisional write, rename to the final sequenced name, delete
type ImageStore struct {
	contentDir string
	publicPath string
	client     *http.Client
}

// NewImageStore creates an image store from the gallery configuration
func NewImageStore(cfg config.GalleryConfig) *ImageStore {
	return &ImageStore{
		contentDir: cfg.Storage.Dir,
		publicPath: cfg.Storage.PublicPath,
		client: &http.Client{
			Timeout: time.Duration(cfg.Download.TimeoutSeconds) * time.Second,
		},
	}
}

// Download fetches the remote image and returns its bytes and declared
// content type. A single failed attempt is surfaced to the caller; there is
// no retry.
func (s *ImageStore) Download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", apperrors.FetchError(err, "Failed to fetch image")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", apperrors.FetchError(err, "Failed to fetch image")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", apperrors.FetchError(nil, fmt.Sprintf("Failed to fetch image: %d", resp.StatusCode))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	if !utils.MatchesMimeType(contentType, "image/*") {
		return nil, "", apperrors.NotAnImageError("URL does not point to an image")
	}

	// Read one byte past the cap so an oversized body is detectable
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes+1))
	if err != nil {
		return nil, "", apperrors.FetchError(err, "Failed to read image response")
	}
	if len(data) > maxDownloadBytes {
		return nil, "", apperrors.FetchError(nil, "Image exceeds the maximum allowed size")
	}

	return data, contentType, nil
}

// PersistProvisional writes the downloaded bytes under a fresh temporary
// name inside the content directory, creating the directory if absent. The
// timestamp plus subject plus variant name is collision-free under the
// single-writer submission flow.
func (s *ImageStore) PersistProvisional(data []byte, contentType string, subjectNumber int, variant string) (ProvisionalFile, error) {
	if err := os.MkdirAll(s.contentDir, 0755); err != nil {
		return ProvisionalFile{}, apperrors.StorageError(err, "Failed to create content directory")
	}

	ext := utils.ExtensionForContentType(contentType)
	filename := fmt.Sprintf("temp-%d-%d-%s.%s", time.Now().UnixNano(), subjectNumber, variant, ext)

	if err := os.WriteFile(filepath.Join(s.contentDir, filename), data, 0644); err != nil {
		return ProvisionalFile{}, apperrors.StorageError(err, "Failed to write image file")
	}

	return ProvisionalFile{
		Filename:   filename,
		StoredPath: s.publicPath + "/" + filename,
	}, nil
}

// Finalize renames a provisional file to its final sequenced name and
// returns the new stored path. The extension is taken from the provisional
// file itself, and the sequence is supplied by the caller; this is a pure
// rename, not a counter.
func (s *ImageStore) Finalize(file ProvisionalFile, subjectNumber, sequence int) (string, error) {
	ext := utils.GetFileExtension(file.Filename)
	if ext == "" {
		ext = "jpg"
	}
	finalName := utils.FormatFilename(subjectNumber, sequence, ext)

	oldPath := filepath.Join(s.contentDir, file.Filename)
	newPath := filepath.Join(s.contentDir, finalName)
	if err := os.Rename(oldPath, newPath); err != nil {
		return "", apperrors.StorageError(err, "Failed to finalize image file")
	}

	return s.publicPath + "/" + finalName, nil
}

// Remove deletes a file from the content directory. A missing file is not
// an error, so cleanup paths can call this unconditionally.
func (s *ImageStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.contentDir, filename))
	if err != nil && !os.IsNotExist(err) {
		return apperrors.StorageError(err, "Failed to delete image file")
	}
	return nil
}
