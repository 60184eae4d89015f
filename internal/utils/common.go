package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Common utilities used across the logo-gallery-api

// contentTypeExtensions maps image content types to stored file extensions
var contentTypeExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// ExtensionForContentType returns the file extension for an image content
// type. Unknown or absent content types fall back to jpg.
func ExtensionForContentType(contentType string) string {
	// Strip parameters like "; charset=..."
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	contentType = strings.TrimSpace(contentType)

	if ext, ok := contentTypeExtensions[contentType]; ok {
		return ext
	}
	return "jpg"
}

// GetFileExtension extracts and normalizes the file extension
func GetFileExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

// FormatFilename builds the final stored name: {subject:04d}-{sequence}.{ext}
func FormatFilename(subjectNumber, sequence int, extension string) string {
	return fmt.Sprintf("%04d-%d.%s", subjectNumber, sequence, extension)
}

// FilenameFromPath returns the last path segment of a stored path
func FilenameFromPath(storedPath string) string {
	parts := strings.Split(storedPath, "/")
	return parts[len(parts)-1]
}

// MatchesMimeType checks if a MIME type matches a pattern
func MatchesMimeType(actual, pattern string) bool {
	// Exact match
	if actual == pattern {
		return true
	}

	// Wildcard match (e.g., "image/*" matches "image/png")
	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "/*")
		return strings.HasPrefix(actual, prefix+"/")
	}

	return false
}
