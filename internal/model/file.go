package model

import (
	"strings"
	"time"
)

// File records an uploaded document or image reference.
// Size is kept as the human-readable string the source provided
// (e.g. "27.4 KB"); it is never renormalized to bytes.
type File struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Filename     string
	OriginalName string
	Size         string
	Type         string
	Category     string
	Notes        string
	Mimetype     string
	UploadPath   string
	ID           int64
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".svg": true, ".webp": true,
}

var documentExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".txt": true, ".rtf": true, ".odt": true,
}

// IsImage reports whether the file extension denotes an image.
func (f *File) IsImage() bool {
	return imageExtensions[strings.ToLower(f.Type)]
}

// IsDocument reports whether the file extension denotes a document.
func (f *File) IsDocument() bool {
	return documentExtensions[strings.ToLower(f.Type)]
}
