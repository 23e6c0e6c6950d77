package core

import (
	"mime"
	"path/filepath"
)

const defaultMimeType = "application/octet-stream"

// MimeType infers a content type from the path's file extension,
// falling back to a generic binary type when the extension is
// unknown or missing.
func MimeType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return defaultMimeType
}
